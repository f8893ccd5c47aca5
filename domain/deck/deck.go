package deck

import (
	"errors"
	"fmt"

	"github.com/idsulik/go-collections/v3/deque"

	"github.com/luca-patrignani/three-thirteen/domain/card"
)

var (
	ErrEmpty             = errors.New("deck is empty")
	ErrInsufficientCards = errors.New("not enough cards in deck")
)

// Receiver is anything that can take a dealt card, usually a player's hand.
type Receiver interface {
	AddToHand(c card.Card)
}

// Deck is the draw pile: an ordered, double-ended sequence of cards.
// The front of the sequence is the top of the deck.
type Deck struct {
	cards *deque.Deque[card.Card]
}

// New creates a deck holding the given cards, first card on top.
func New(cards ...card.Card) *Deck {
	d := &Deck{cards: deque.New[card.Card](len(cards))}
	for _, c := range cards {
		d.cards.PushBack(c)
	}
	return d
}

// NewStandard builds one deck in canonical variant order, with the joker last
// when withJokers is set.
func NewStandard(withJokers bool) *Deck {
	return New(standardCards(withJokers)...)
}

// NewDouble builds two standard decks one after the other.
func NewDouble(withJokers bool) *Deck {
	cards := standardCards(withJokers)
	return New(append(cards, standardCards(withJokers)...)...)
}

// ForPlayers returns the deck a game of n players starts with: a standard deck
// for two players, a double deck for three or four.
func ForPlayers(n int) (*Deck, error) {
	switch n {
	case 2:
		return NewStandard(true), nil
	case 3, 4:
		return NewDouble(true), nil
	default:
		return nil, fmt.Errorf("no deck for %d players, 2-4 are supported", n)
	}
}

func standardCards(withJokers bool) []card.Card {
	cards := make([]card.Card, 0, card.NumVariants)
	for _, v := range card.Variants() {
		if v == card.JokerVariant && !withJokers {
			continue
		}
		cards = append(cards, card.New(v))
	}
	return cards
}

func (d *Deck) Len() int {
	return d.cards.Len()
}

func (d *Deck) IsEmpty() bool {
	return d.cards.Len() == 0
}

// DrawTop removes and returns the top card.
func (d *Deck) DrawTop() (card.Card, error) {
	c, ok := d.cards.PopFront()
	if !ok {
		return card.Card{}, ErrEmpty
	}
	return c, nil
}

// PutBottom places cards under the deck, in the given order.
func (d *Deck) PutBottom(cards ...card.Card) {
	for _, c := range cards {
		d.cards.PushBack(c)
	}
}

// Deal gives countForEach cards to every receiver, one at a time and in the
// order of receivers, for countForEach rounds. When the deck cannot cover the
// whole deal no card is moved and ErrInsufficientCards is returned.
func (d *Deck) Deal(countForEach int, receivers []Receiver) error {
	if countForEach < 0 {
		return fmt.Errorf("invalid deal count %d", countForEach)
	}
	need := countForEach * len(receivers)
	if d.Len() < need {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientCards, need, d.Len())
	}
	for range countForEach {
		for _, r := range receivers {
			c, err := d.DrawTop()
			if err != nil {
				return err
			}
			r.AddToHand(c)
		}
	}
	return nil
}

// Cards returns a copy of the deck contents, top card first.
func (d *Deck) Cards() []card.Card {
	n := d.cards.Len()
	out := make([]card.Card, 0, n)
	for range n {
		c, _ := d.cards.PopFront()
		out = append(out, c)
		d.cards.PushBack(c)
	}
	return out
}
