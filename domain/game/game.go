package game

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/luca-patrignani/three-thirteen/domain/deck"
	"github.com/luca-patrignani/three-thirteen/ledger"
)

// Game holds the state of a single game. It is not safe for concurrent use;
// a game is driven by one loop at a time.
type Game struct {
	id      uuid.UUID
	players []*Player
	queue   *PlayerQueue
	deck    *deck.Deck
	pile    *Pile
	phase   Phase
	reason  Reason
	turns   int

	src      deck.RandomSource
	shuffle  bool
	starting int
	logger   *slog.Logger
	history  *ledger.Ledger

	onPhaseChange func(old, new Phase)
}

type Option func(*Game)

// WithSource sets the randomness used for every shuffle of the game.
func WithSource(src deck.RandomSource) Option {
	return func(g *Game) {
		g.src = src
	}
}

// WithoutShuffle keeps the deck in its build order, including after the pile
// is turned back into the deck.
func WithoutShuffle() Option {
	return func(g *Game) {
		g.shuffle = false
	}
}

func WithStartingPlayer(id int) Option {
	return func(g *Game) {
		g.starting = id
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithLedger records the game's actions in l instead of a fresh ledger.
func WithLedger(l *ledger.Ledger) Option {
	return func(g *Game) {
		g.history = l
	}
}

// WithPhaseChange registers a callback invoked on every phase transition.
func WithPhaseChange(fn func(old, new Phase)) Option {
	return func(g *Game) {
		g.onPhaseChange = fn
	}
}

// New sets up a game for playerCount players: it builds the deck sized for
// the table, shuffles it, deals CardsPerHand cards to each player in turn
// order and moves one more card onto the pile.
func New(playerCount int, opts ...Option) (*Game, error) {
	if playerCount < MinPlayers || playerCount > MaxPlayers {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidPlayerCount, playerCount)
	}
	g := &Game{
		id:       uuid.New(),
		pile:     NewPile(),
		phase:    PhaseSetup,
		shuffle:  true,
		starting: DefaultStarter,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = deck.NewCryptoSource()
	}
	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if g.history == nil {
		g.history = ledger.New(g.id.String())
	}
	g.logger = g.logger.With("game", g.id.String())

	queue, err := NewPlayerQueue(playerCount, g.starting)
	if err != nil {
		return nil, err
	}
	g.queue = queue
	g.players = make([]*Player, playerCount)
	for i := range g.players {
		g.players[i] = NewPlayer(i)
	}

	g.deck, err = deck.ForPlayers(playerCount)
	if err != nil {
		return nil, err
	}
	g.logger.Info("game created", "players", playerCount, "deck", g.deck.Len())

	if g.shuffle {
		g.deck.Shuffle(g.src)
		g.logger.Debug("deck shuffled")
	}

	receivers := make([]deck.Receiver, 0, playerCount)
	for _, id := range g.queue.Order() {
		receivers = append(receivers, g.players[id])
	}
	if err := g.deck.Deal(CardsPerHand, receivers); err != nil {
		return nil, fmt.Errorf("dealing: %w", err)
	}

	seed, err := g.deck.DrawTop()
	if err != nil {
		return nil, fmt.Errorf("seeding pile: %w", err)
	}
	g.pile.Push(seed)
	g.logger.Debug("cards dealt", "each", CardsPerHand, "deck", g.deck.Len(), "pile", seed.String())

	g.setPhase(PhasePickup)
	return g, nil
}

func (g *Game) ID() uuid.UUID {
	return g.id
}

func (g *Game) Phase() Phase {
	return g.phase
}

// Finished reports whether the game is over and why.
func (g *Game) Finished() (Reason, bool) {
	return g.reason, g.phase == PhaseFinished
}

// Turns returns the number of completed turns.
func (g *Game) Turns() int {
	return g.turns
}

// Current returns the active player.
func (g *Game) Current() *Player {
	return g.players[g.queue.Current()]
}

func (g *Game) Player(id int) (*Player, error) {
	if id < 0 || id >= len(g.players) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, id)
	}
	return g.players[id], nil
}

func (g *Game) Players() []*Player {
	out := make([]*Player, len(g.players))
	copy(out, g.players)
	return out
}

func (g *Game) Queue() *PlayerQueue {
	return g.queue
}

func (g *Game) Deck() *deck.Deck {
	return g.deck
}

func (g *Game) Pile() *Pile {
	return g.pile
}

func (g *Game) History() *ledger.Ledger {
	return g.history
}

// Apply validates a and applies it to the game state. A completed discard
// passes the turn to the next player in the queue. The action is recorded in
// the history before the phase changes.
func (g *Game) Apply(a Action) error {
	if err := g.Validate(a); err != nil {
		return err
	}
	p := g.players[a.PlayerID]
	rec := Record{Turn: g.turns, Type: a.Type}
	next := g.phase
	var reason Reason

	switch a.Type {
	case ActionPickupPile:
		c, err := g.pile.TakeTop()
		if err != nil {
			return err
		}
		p.AddToHand(c)
		rec.Card = c.String()
		next = PhaseDiscard
	case ActionPickupDeck:
		if g.deck.IsEmpty() {
			rec.Refill = g.refillDeck()
		}
		c, err := g.deck.DrawTop()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDeckExhausted, err)
		}
		p.AddToHand(c)
		rec.Card = c.String()
		next = PhaseDiscard
	case ActionDiscard:
		c, err := p.RemoveFromHand(a.Index)
		if err != nil {
			return err
		}
		g.pile.Push(c)
		rec.Index = a.Index
		rec.Card = c.String()
		g.turns++
		g.queue.Cycle()
		next = PhasePickup
		if p.HandSize() == 0 {
			reason = ReasonEmptyHand
		}
	case ActionQuit:
		reason = ReasonQuit
	}

	g.logger.Debug("action applied", "player", a.PlayerID, "type", string(a.Type), "card", rec.Card)
	if err := g.history.Append(a.PlayerID, rec); err != nil {
		return fmt.Errorf("recording action: %w", err)
	}

	if reason != "" {
		g.finish(reason)
	} else {
		g.setPhase(next)
	}
	return nil
}

// refillDeck turns every pile card except the top back into the deck and
// shuffles it. It returns the number of cards moved.
func (g *Game) refillDeck() int {
	cards := g.pile.TakeAllButTop()
	if len(cards) == 0 {
		return 0
	}
	g.deck.PutBottom(cards...)
	if g.shuffle {
		g.deck.Shuffle(g.src)
	}
	g.logger.Info("deck refilled from pile", "cards", len(cards))
	return len(cards)
}

func (g *Game) finish(reason Reason) {
	g.reason = reason
	g.setPhase(PhaseFinished)
	g.logger.Info("game finished", "reason", string(reason), "turns", g.turns)
}

func (g *Game) setPhase(next Phase) {
	old := g.phase
	g.phase = next
	if g.onPhaseChange != nil && old != next {
		g.onPhaseChange(old, next)
	}
}
