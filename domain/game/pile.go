package game

import (
	"github.com/idsulik/go-collections/v3/deque"

	"github.com/luca-patrignani/three-thirteen/domain/card"
)

// Pile is the discard pile. The front is the top, i.e. the last discarded card.
type Pile struct {
	cards *deque.Deque[card.Card]
}

func NewPile() *Pile {
	return &Pile{cards: deque.New[card.Card](16)}
}

// Push puts c on top of the pile.
func (p *Pile) Push(c card.Card) {
	p.cards.PushFront(c)
}

// Top returns the top card without removing it.
func (p *Pile) Top() (card.Card, bool) {
	c, ok := p.cards.PopFront()
	if ok {
		p.cards.PushFront(c)
	}
	return c, ok
}

// TakeTop removes and returns the top card.
func (p *Pile) TakeTop() (card.Card, error) {
	c, ok := p.cards.PopFront()
	if !ok {
		return card.Card{}, ErrPileEmpty
	}
	return c, nil
}

// TakeAllButTop removes every card except the top one and returns them,
// most recently discarded first.
func (p *Pile) TakeAllButTop() []card.Card {
	top, ok := p.cards.PopFront()
	if !ok {
		return nil
	}
	rest := make([]card.Card, 0, p.cards.Len())
	for p.cards.Len() > 0 {
		c, _ := p.cards.PopFront()
		rest = append(rest, c)
	}
	p.cards.PushFront(top)
	return rest
}

func (p *Pile) Len() int {
	return p.cards.Len()
}

// Cards returns a copy of the pile, top first.
func (p *Pile) Cards() []card.Card {
	n := p.cards.Len()
	out := make([]card.Card, 0, n)
	for range n {
		c, _ := p.cards.PopFront()
		out = append(out, c)
		p.cards.PushBack(c)
	}
	return out
}
