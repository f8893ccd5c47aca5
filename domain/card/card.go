package card

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Suit constants (0-3), in the order the variants cycle through them.
const (
	Club    Suit = 0 // ♣ (black)
	Diamond Suit = 1 // ♦ (red)
	Heart   Suit = 2 // ♥ (red)
	Spade   Suit = 3 // ♠ (black)
)

// Rank constants. One is the ace.
const (
	One   Rank = 1
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

type Suit uint8

type Rank uint8

// Kind separates ranked/suited cards from the joker.
type Kind uint8

const (
	Normal Kind = iota
	Joker
)

var suitNames = [...]string{"Club", "Diamond", "Heart", "Spade"}

var rankNames = [...]string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

func (s Suit) String() string {
	if int(s) < len(suitNames) {
		return suitNames[s]
	}
	return fmt.Sprintf("Suit(%d)", uint8(s))
}

func (r Rank) String() string {
	if r >= One && r <= King {
		return rankNames[r]
	}
	return fmt.Sprintf("Rank(%d)", uint8(r))
}

func (k Kind) String() string {
	if k == Joker {
		return "Joker"
	}
	return "Normal"
}

// Card wraps a Variant together with the attributes derived from it.
// The derived fields are computed once by New and never change.
type Card struct {
	variant  Variant
	kind     Kind
	rank     Rank
	suit     Suit
	wildcard bool
}

// New creates the Card for the given variant.
func New(v Variant) Card {
	c := Card{variant: v}
	rank, hasRank := v.Rank()
	suit, hasSuit := v.Suit()
	if !hasRank || !hasSuit {
		c.kind = Joker
		c.wildcard = true
		return c
	}
	c.kind = Normal
	c.rank = rank
	c.suit = suit
	return c
}

func (c Card) Variant() Variant {
	return c.variant
}

func (c Card) Kind() Kind {
	return c.kind
}

// Rank returns the rank of the card. The boolean is false for the joker.
func (c Card) Rank() (Rank, bool) {
	return c.rank, c.kind == Normal
}

// Suit returns the suit of the card. The boolean is false for the joker.
func (c Card) Suit() (Suit, bool) {
	return c.suit, c.kind == Normal
}

// Value returns 1-13 for ranked cards and 0 for the joker.
func (c Card) Value() uint8 {
	return c.variant.Value()
}

// IsWildcard reports whether the card can stand in for any other card.
func (c Card) IsWildcard() bool {
	return c.wildcard
}

// String returns the card identity, e.g. "QueenSpade".
func (c Card) String() string {
	return c.variant.String()
}

// Face returns a short human-readable face using suit symbols
// (♣, ♦, ♥, ♠) and rank abbreviations (A, J, Q, K, or number).
func (c Card) Face() string {
	if c.kind == Joker {
		return pterm.LightMagenta("JOKER")
	}
	var suit string
	switch c.suit {
	case Club:
		suit = pterm.Black("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Black("♠")
	}

	var rankStr string
	switch c.rank {
	case One:
		rankStr = "A"
	case Jack:
		rankStr = "J"
	case Queen:
		rankStr = "Q"
	case King:
		rankStr = "K"
	default:
		rankStr = fmt.Sprintf("%d", c.rank)
	}
	return rankStr + suit
}
