// Package ledger implements an append-only, in-memory record of the turns
// played in a single game.
//
// # Core Components
//
// Ledger: An ordered log of applied actions with SHA-256 hash chaining, so
// any later modification of a recorded turn is detectable.
//
// Block: One recorded action with the id of the player who performed it and
// the link to the previous block.
//
// # Usage
//
// Create a ledger for a game id, append a block each time an action is
// applied, and call Verify to check that the history is intact. Nothing is
// written to disk; the ledger lives as long as the game.
package ledger
