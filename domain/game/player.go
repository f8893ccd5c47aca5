package game

import (
	"fmt"

	"github.com/luca-patrignani/three-thirteen/domain/card"
)

type Player struct {
	Id   int
	hand []card.Card
}

func NewPlayer(id int) *Player {
	return &Player{Id: id}
}

// AddToHand appends c to the back of the hand.
func (p *Player) AddToHand(c card.Card) {
	p.hand = append(p.hand, c)
}

// RemoveFromHand removes and returns the card at position index, shifting the
// following cards. The hand is left untouched when index is out of range.
func (p *Player) RemoveFromHand(index int) (card.Card, error) {
	if index < 0 || index >= len(p.hand) {
		return card.Card{}, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, index, len(p.hand))
	}
	c := p.hand[index]
	p.hand = append(p.hand[:index], p.hand[index+1:]...)
	return c, nil
}

// Hand returns a copy of the player's cards.
func (p *Player) Hand() []card.Card {
	out := make([]card.Card, len(p.hand))
	copy(out, p.hand)
	return out
}

func (p *Player) HandSize() int {
	return len(p.hand)
}
