package game

import "fmt"

// Validate checks whether a is allowed in the current state: the game must
// still be running, a must come from the active player, and the action must
// fit the phase. It returns nil if a can be applied.
func (g *Game) Validate(a Action) error {
	if g.phase == PhaseFinished {
		return ErrGameOver
	}
	if _, err := g.Player(a.PlayerID); err != nil {
		return err
	}
	if current := g.queue.Current(); a.PlayerID != current {
		return fmt.Errorf("%w: current player %d, got %d", ErrNotYourTurn, current, a.PlayerID)
	}
	return checkTurnLogic(g, a)
}

func checkTurnLogic(g *Game, a Action) error {
	switch a.Type {
	case ActionQuit:
		return nil
	case ActionPickupPile:
		if g.phase != PhasePickup {
			return fmt.Errorf("%w: cannot pick up during %s", ErrWrongPhase, g.phase)
		}
		if g.pile.Len() == 0 {
			return ErrPileEmpty
		}
	case ActionPickupDeck:
		if g.phase != PhasePickup {
			return fmt.Errorf("%w: cannot pick up during %s", ErrWrongPhase, g.phase)
		}
		// an empty deck is refilled from every pile card but the top
		if g.deck.IsEmpty() && g.pile.Len() <= 1 {
			return ErrDeckExhausted
		}
	case ActionDiscard:
		if g.phase != PhaseDiscard {
			return fmt.Errorf("%w: cannot discard during %s", ErrWrongPhase, g.phase)
		}
		size := g.players[a.PlayerID].HandSize()
		if a.Index < 0 || a.Index >= size {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, a.Index, size)
		}
	default:
		return fmt.Errorf("unknown action %q", a.Type)
	}
	return nil
}
