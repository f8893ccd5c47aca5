package game

import "errors"

var (
	ErrInvalidPlayerCount = errors.New("game requires between 2 - 4 players")
	ErrInvalidIndex       = errors.New("invalid card index")
	ErrNotYourTurn        = errors.New("not player's turn")
	ErrWrongPhase         = errors.New("action not allowed in this phase")
	ErrPileEmpty          = errors.New("pile is empty")
	ErrDeckExhausted      = errors.New("deck is exhausted and the pile cannot refill it")
	ErrGameOver           = errors.New("game is over")
	ErrUnknownPlayer      = errors.New("unknown player")

	// ErrQuit is returned by a Prompter when the user asks to leave the game.
	ErrQuit = errors.New("quit requested")
)

const (
	MinPlayers     = 2
	MaxPlayers     = 4
	CardsPerHand   = 4
	DefaultStarter = 0
)

// Phase is the current state of the turn state machine.
type Phase string

const (
	PhaseSetup    Phase = "setup"
	PhasePickup   Phase = "pickup"
	PhaseDiscard  Phase = "discard"
	PhaseFinished Phase = "finished"
)

// Reason tells why a game reached PhaseFinished.
type Reason string

const (
	ReasonQuit      Reason = "quit"
	ReasonEmptyHand Reason = "empty_hand"
)

type ActionType string

const (
	ActionPickupPile ActionType = "pickup_pile"
	ActionPickupDeck ActionType = "pickup_deck"
	ActionDiscard    ActionType = "discard"
	ActionQuit       ActionType = "quit"
)

// Action is a move made by the active player. Index is only used by discards.
type Action struct {
	PlayerID int        `json:"player_id"`
	Type     ActionType `json:"type"`
	Index    int        `json:"index,omitempty"`
}

// Record is what the ledger keeps for every applied action.
type Record struct {
	Turn   int        `json:"turn"`
	Type   ActionType `json:"type"`
	Index  int        `json:"index,omitempty"`
	Card   string     `json:"card,omitempty"`
	Refill int        `json:"refill,omitempty"` // cards moved from the pile back into the deck
}
