package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

const genesisPrevHash = "0"

var ErrEmpty = errors.New("ledger is empty")

type Ledger struct {
	mu     sync.RWMutex
	gameID string
	blocks []Block
	now    func() time.Time
}

// New creates a ledger for the given game with an initialized genesis block.
// The genesis block has index 0, previous hash "0" and a "genesis" action.
func New(gameID string) *Ledger {
	l := &Ledger{
		gameID: gameID,
		blocks: make([]Block, 0),
		now:    time.Now,
	}

	genesis := Block{
		Index:     0,
		Timestamp: l.now().Unix(),
		PrevHash:  genesisPrevHash,
		GameID:    gameID,
		Actor:     -1,
		Action:    "genesis",
	}
	genesis.Hash = calculateHash(genesis)
	l.blocks = append(l.blocks, genesis)

	return l
}

// GameID returns the id of the game this ledger belongs to.
func (l *Ledger) GameID() string {
	return l.gameID
}

// Append records an action performed by actor. The block is hashed and
// validated against the latest block before being added.
func (l *Ledger) Append(actor int, action any) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.blocks) == 0 {
		return ErrEmpty
	}
	latest := l.blocks[len(l.blocks)-1]

	newBlock := Block{
		Index:     latest.Index + 1,
		Timestamp: l.now().Unix(),
		PrevHash:  latest.Hash,
		GameID:    l.gameID,
		Actor:     actor,
		Action:    action,
	}
	newBlock.Hash = calculateHash(newBlock)

	if err := validateBlock(newBlock, latest); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}

	l.blocks = append(l.blocks, newBlock)
	return nil
}

// Latest returns the most recently added block.
func (l *Ledger) Latest() (Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.blocks) == 0 {
		return Block{}, ErrEmpty
	}
	return l.blocks[len(l.blocks)-1], nil
}

// GetByIndex retrieves a block by its index in the chain.
func (l *Ledger) GetByIndex(index int) (Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return l.blocks[index], nil
}

// Len returns the number of blocks, genesis included.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.blocks)
}

// Blocks returns a copy of the chain.
func (l *Ledger) Blocks() []Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Block, len(l.blocks))
	copy(out, l.blocks)
	return out
}

// Verify validates the integrity of the entire chain by checking the genesis
// block and each subsequent block's hash, index continuity and previous hash
// linkage.
func (l *Ledger) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.blocks) == 0 {
		return ErrEmpty
	}
	if l.blocks[0].PrevHash != genesisPrevHash {
		return fmt.Errorf("invalid genesis block")
	}
	if l.blocks[0].Hash != calculateHash(l.blocks[0]) {
		return fmt.Errorf("invalid genesis hash")
	}

	for i := 1; i < len(l.blocks); i++ {
		if err := validateBlock(l.blocks[i], l.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	if current.GameID != previous.GameID {
		return fmt.Errorf("invalid game id: expected %s, got %s", previous.GameID, current.GameID)
	}
	expectedHash := calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}
	return nil
}

// calculateHash computes the SHA256 hash of a block from its index,
// timestamp, previous hash, game id, actor and JSON-encoded action.
func calculateHash(block Block) string {
	actionBytes, _ := json.Marshal(block.Action)

	data := fmt.Sprintf("%d%d%s%s%d%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		block.GameID,
		block.Actor,
		string(actionBytes),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
