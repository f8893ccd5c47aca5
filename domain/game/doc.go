// Package game implements the rules of 313, a rummy-style draw/discard card
// game for two to four players.
//
// # Core Types
//
// Game: The complete state of one game: the players and their hands, the
// turn queue, the deck and the discard pile.
//
// Player: A player identifier and the cards in their hand.
//
// PlayerQueue: The rotating turn order. The player at the front acts.
//
// Pile: The discard pile. Its top is the most recently discarded card.
//
// Action: A move by the active player (pick up from the pile, pick up from
// the deck, discard, quit).
//
// # Game Flow
//
// New deals four cards to each player and seeds the pile with one card. Each
// turn the active player picks up one card and then discards one, after which
// the turn passes on: pickup → discard → pickup … until a player quits.
// Validate checks an action against the current state and Apply performs it.
// Play drives the whole loop through a Prompter.
package game
