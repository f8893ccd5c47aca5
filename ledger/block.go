package ledger

// Block is a single recorded action.
type Block struct {
	Index     int    `json:"index"`
	Timestamp int64  `json:"timestamp"`
	PrevHash  string `json:"prev_hash"`
	Hash      string `json:"hash"`
	GameID    string `json:"game_id"`
	Actor     int    `json:"actor"`  // -1 for the genesis block
	Action    any    `json:"action"` // Generic action data
}
