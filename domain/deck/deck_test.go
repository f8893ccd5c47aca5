package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/three-thirteen/domain/card"
)

type hand struct {
	cards []card.Card
}

func (h *hand) AddToHand(c card.Card) {
	h.cards = append(h.cards, c)
}

func variantsOf(cards []card.Card) []card.Variant {
	out := make([]card.Variant, len(cards))
	for i, c := range cards {
		out[i] = c.Variant()
	}
	return out
}

func countVariants(cards []card.Card) map[card.Variant]int {
	counts := map[card.Variant]int{}
	for _, c := range cards {
		counts[c.Variant()]++
	}
	return counts
}

func TestNewStandardCanonicalOrder(t *testing.T) {
	d := NewStandard(true)
	require.Equal(t, 53, d.Len())
	assert.Equal(t, card.Variants(), variantsOf(d.Cards()))
}

func TestNewStandardWithoutJokers(t *testing.T) {
	d := NewStandard(false)
	require.Equal(t, 52, d.Len())
	for _, c := range d.Cards() {
		if c.IsWildcard() {
			t.Fatal("joker found in a deck built without jokers")
		}
	}
}

func TestNewDoubleIsTwoStandardDecks(t *testing.T) {
	d := NewDouble(true)
	cards := d.Cards()
	require.Len(t, cards, 106)
	assert.Equal(t, card.Variants(), variantsOf(cards[:53]))
	assert.Equal(t, card.Variants(), variantsOf(cards[53:]))
	for v, n := range countVariants(cards) {
		if n != 2 {
			t.Fatalf("expected 2 copies of %s, got %d", v, n)
		}
	}
}

func TestForPlayers(t *testing.T) {
	for n, size := range map[int]int{2: 53, 3: 106, 4: 106} {
		d, err := ForPlayers(n)
		require.NoError(t, err)
		assert.Equal(t, size, d.Len(), "players: %d", n)
	}
	for _, n := range []int{0, 1, 5} {
		_, err := ForPlayers(n)
		assert.Error(t, err, "players: %d", n)
	}
}

func TestDrawTop(t *testing.T) {
	d := New(card.New(card.OneClub), card.New(card.KingHeart))
	c, err := d.DrawTop()
	require.NoError(t, err)
	assert.Equal(t, card.OneClub, c.Variant())
	c, err = d.DrawTop()
	require.NoError(t, err)
	assert.Equal(t, card.KingHeart, c.Variant())
	_, err = d.DrawTop()
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestPutBottom(t *testing.T) {
	d := New(card.New(card.OneClub))
	d.PutBottom(card.New(card.TwoClub), card.New(card.ThreeClub))
	assert.Equal(t, []card.Variant{card.OneClub, card.TwoClub, card.ThreeClub}, variantsOf(d.Cards()))
}

func TestDealRoundRobin(t *testing.T) {
	d := NewStandard(true)
	p0, p1 := &hand{}, &hand{}
	require.NoError(t, d.Deal(4, []Receiver{p0, p1}))

	assert.Equal(t, 53-8, d.Len())
	assert.Equal(t, []card.Variant{card.OneClub, card.OneHeart, card.TwoClub, card.TwoHeart}, variantsOf(p0.cards))
	assert.Equal(t, []card.Variant{card.OneDiamond, card.OneSpade, card.TwoDiamond, card.TwoSpade}, variantsOf(p1.cards))
}

func TestDealConsumesCountTimesPlayers(t *testing.T) {
	for players := 2; players <= 4; players++ {
		d, err := ForPlayers(players)
		require.NoError(t, err)
		before := d.Len()
		receivers := make([]Receiver, players)
		hands := make([]*hand, players)
		for i := range receivers {
			hands[i] = &hand{}
			receivers[i] = hands[i]
		}
		require.NoError(t, d.Deal(4, receivers))
		assert.Equal(t, before-4*players, d.Len())
		for _, h := range hands {
			assert.Len(t, h.cards, 4)
		}
	}
}

func TestDealInsufficientCardsLeavesDeckUntouched(t *testing.T) {
	d := New(card.New(card.OneClub), card.New(card.TwoClub), card.New(card.ThreeClub))
	p0, p1 := &hand{}, &hand{}
	err := d.Deal(2, []Receiver{p0, p1})
	if !errors.Is(err, ErrInsufficientCards) {
		t.Fatalf("expected ErrInsufficientCards, got %v", err)
	}
	assert.Equal(t, 3, d.Len())
	assert.Empty(t, p0.cards)
	assert.Empty(t, p1.cards)
}
