package deck

import (
	"github.com/idsulik/go-collections/v3/deque"

	"github.com/luca-patrignani/three-thirteen/domain/card"
)

const shuffleRounds = 10

// Run length bounds (inclusive) for the two shuffle passes.
const (
	chunkMinRun  = 4
	chunkMaxRun  = 8
	zipperMinRun = 1
	zipperMaxRun = 3
)

// Shuffle reorders the deck by running ten rounds of a chunk shuffle followed
// by a zipper shuffle. Cards are only moved, never created or dropped.
func (d *Deck) Shuffle(src RandomSource) {
	cards := d.cards
	for range shuffleRounds {
		cards = chunkShuffle(cards, src)
		cards = zipperShuffle(cards, src)
	}
	d.cards = cards
}

// chunkShuffle takes runs of 4-8 cards off the front of cards and drops each
// run onto alternating ends of the result, starting with the back. A run that
// is cut short by the end of the input is still placed.
func chunkShuffle(cards *deque.Deque[card.Card], src RandomSource) *deque.Deque[card.Card] {
	out := deque.New[card.Card](cards.Len())
	leaningLeft := false
	for cards.Len() > 0 {
		run := src.Between(chunkMinRun, chunkMaxRun)
		for range run {
			c, ok := cards.PopFront()
			if !ok {
				break
			}
			if leaningLeft {
				out.PushFront(c)
			} else {
				out.PushBack(c)
			}
		}
		leaningLeft = !leaningLeft
	}
	return out
}

// zipperShuffle splits cards in two halves (the second one gets the extra card
// on odd counts) and interleaves runs of 1-3 cards, starting from the second
// half. When the active half runs dry it is marked empty and the other half
// takes over; the pass ends once both are empty.
func zipperShuffle(cards *deque.Deque[card.Card], src RandomSource) *deque.Deque[card.Card] {
	total := cards.Len()
	left := deque.New[card.Card](total / 2)
	for range total / 2 {
		c, _ := cards.PopFront()
		left.PushBack(c)
	}
	right := cards

	out := deque.New[card.Card](total)
	leaningLeft := false
	leftEmpty, rightEmpty := false, false
	for !leftEmpty || !rightEmpty {
		run := src.Between(zipperMinRun, zipperMaxRun)
		current := right
		if leaningLeft {
			current = left
		}
		for range run {
			c, ok := current.PopFront()
			if !ok {
				if leaningLeft {
					leftEmpty = true
				} else {
					rightEmpty = true
				}
				break
			}
			out.PushBack(c)
		}
		leaningLeft = !leaningLeft
	}
	return out
}
