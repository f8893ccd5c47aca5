package game

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/three-thirteen/domain/card"
)

// Prompter is the console side of the game: it reads validated answers from
// the user and shows cards. Implementations re-prompt on invalid input and
// return ErrQuit when the user wants to stop.
type Prompter interface {
	// PromptBool asks a yes/no question.
	PromptBool(question string) (bool, error)
	// PromptIndex asks for a card position in [0, size-1].
	PromptIndex(size int) (int, error)
	ShowHand(title string, hand []card.Card)
	ShowCards(title string, cards []card.Card)
	Notify(msg string)
}

// Play runs turns until the game finishes. A quit from the prompter ends the
// game cleanly and Play returns nil.
func (g *Game) Play(ui Prompter) error {
	for g.phase != PhaseFinished {
		if err := g.playTurn(ui); err != nil {
			if errors.Is(err, ErrQuit) {
				return g.Apply(Action{PlayerID: g.queue.Current(), Type: ActionQuit})
			}
			return err
		}
	}
	return nil
}

func (g *Game) playTurn(ui Prompter) error {
	p := g.Current()
	ui.ShowHand(fmt.Sprintf("Player %d's hand", p.Id), p.Hand())

	for g.phase == PhasePickup {
		top, ok := g.pile.Top()
		if !ok {
			return ErrPileEmpty
		}
		fromPile, err := ui.PromptBool(fmt.Sprintf("Do you want to pickup card %s from pile?", top))
		if err != nil {
			return err
		}
		a := Action{PlayerID: p.Id, Type: ActionPickupDeck}
		if fromPile {
			a.Type = ActionPickupPile
		}
		if err := g.Apply(a); err != nil {
			if errors.Is(err, ErrDeckExhausted) {
				ui.Notify("The deck is exhausted, pick up from the pile instead.")
				continue
			}
			return err
		}
	}

	ui.ShowHand(fmt.Sprintf("Player %d's new hand state", p.Id), p.Hand())
	idx, err := ui.PromptIndex(p.HandSize())
	if err != nil {
		return err
	}
	return g.Apply(Action{PlayerID: p.Id, Type: ActionDiscard, Index: idx})
}
