package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/three-thirteen/domain/card"
	"github.com/luca-patrignani/three-thirteen/domain/game"
)

func newConsole(input string) (*Console, *bytes.Buffer) {
	pterm.DisableColor()
	out := &bytes.Buffer{}
	return New(strings.NewReader(input), out), out
}

func TestPromptBool(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"true", "true\n", true},
		{"false", "false\n", false},
		{"mixed case", "TrUe\n", true},
		{"surrounding spaces", "  false  \n", false},
		{"no trailing newline", "true", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newConsole(tt.input)
			got, err := c.PromptBool("Do you want to pickup card ThreeClub from pile?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPromptBoolRepromptsOnInvalidInput(t *testing.T) {
	c, out := newConsole("yes\n1\n\nfalse\n")
	got, err := c.PromptBool("question")
	require.NoError(t, err)
	assert.False(t, got)
	assert.Equal(t, 3, strings.Count(out.String(), "Invalid input"))
	assert.Equal(t, 4, strings.Count(out.String(), `Enter "true" or "false"`))
}

func TestPromptBoolQuit(t *testing.T) {
	for _, input := range []string{"quit\n", "Q\n", ""} {
		c, _ := newConsole(input)
		_, err := c.PromptBool("question")
		assert.ErrorIs(t, err, game.ErrQuit, "input %q", input)
	}
}

func TestPromptIndex(t *testing.T) {
	c, out := newConsole("4\n")
	got, err := c.PromptIndex(5)
	require.NoError(t, err)
	assert.Equal(t, 4, got)
	assert.Contains(t, out.String(), "entering number between 0 and 4")
}

func TestPromptIndexRejectsOutOfRange(t *testing.T) {
	c, out := newConsole("5\n-1\nabc\n2\n")
	got, err := c.PromptIndex(5)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
	assert.Equal(t, 2, strings.Count(out.String(), "Number must be between 0 and 4."))
	assert.Contains(t, out.String(), "is not a number")
}

func TestPromptIndexQuit(t *testing.T) {
	c, _ := newConsole("7\n")
	_, err := c.PromptIndex(5)
	assert.ErrorIs(t, err, game.ErrQuit)
}

func TestPromptIndexEmpty(t *testing.T) {
	c, _ := newConsole("0\n")
	_, err := c.PromptIndex(0)
	assert.ErrorIs(t, err, game.ErrInvalidIndex)
}

type brokenReader struct{}

var errBroken = errors.New("read failed")

func (brokenReader) Read([]byte) (int, error) { return 0, errBroken }

func TestReadErrorsPropagate(t *testing.T) {
	c := New(brokenReader{}, &bytes.Buffer{})
	_, err := c.PromptBool("question")
	assert.ErrorIs(t, err, errBroken)
	_, err = c.PromptIndex(3)
	assert.ErrorIs(t, err, errBroken)
}

func TestShowHand(t *testing.T) {
	c, out := newConsole("")
	c.ShowHand("Player 0's hand", []card.Card{
		card.New(card.OneClub),
		card.New(card.QueenSpade),
		card.New(card.JokerVariant),
	})
	s := out.String()
	assert.Contains(t, s, "Player 0's hand")
	assert.Contains(t, s, " 0: OneClub")
	assert.Contains(t, s, " 1: QueenSpade")
	assert.Contains(t, s, " 2: Joker")
}

func TestShowCardsAndNotify(t *testing.T) {
	c, out := newConsole("")
	c.ShowCards("pile", []card.Card{card.New(card.ThreeClub), card.New(card.TwoHeart)})
	c.Notify("deck is empty")
	s := out.String()
	assert.Contains(t, s, "ThreeClub\nTwoHeart\n")
	assert.Contains(t, s, "deck is empty")
}
