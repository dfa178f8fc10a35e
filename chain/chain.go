// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// GenesisPrevHash is the previous-hash value of the genesis block.
const GenesisPrevHash = "0"

// Block is a single immutable audit log entry. Hash covers every field
// except itself.
type Block struct {
	Index     int    `json:"index"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds, informational only
	Event     Event  `json:"event"`
	PrevHash  string `json:"prev_hash"`
	Hash      string `json:"hash"`
}

// Chain is an append-only, hash-linked sequence of blocks. Appends are
// serialized; reads work on copies so Verify can run concurrently with
// appends.
type Chain struct {
	mu     sync.RWMutex
	blocks []Block
	now    func() time.Time
}

// New creates a chain holding only the genesis block.
func New(now func() time.Time) *Chain {
	if now == nil {
		now = time.Now
	}
	c := &Chain{now: now}
	genesis := Block{
		Index:     0,
		Timestamp: now().UnixMilli(),
		Event:     Genesis(),
		PrevHash:  GenesisPrevHash,
	}
	genesis.Hash = blockHash(genesis)
	c.blocks = []Block{genesis}
	return c
}

// Load rebuilds a chain from previously stored blocks. The linkage is
// re-verified; a tampered or truncated log is rejected rather than
// silently extended.
func Load(blocks []Block, now func() time.Time) (*Chain, error) {
	if now == nil {
		now = time.Now
	}
	if len(blocks) == 0 {
		return nil, fmt.Errorf("chain load: no blocks")
	}
	c := &Chain{now: now, blocks: append([]Block(nil), blocks...)}
	if err := c.Verify(); err != nil {
		return nil, fmt.Errorf("chain load: %w", err)
	}
	return c, nil
}

// Append stamps, links, and hashes a new block carrying ev and returns it.
func (c *Chain) Append(ev Event) Block {
	c.mu.Lock()
	defer c.mu.Unlock()

	tail := c.blocks[len(c.blocks)-1]
	b := Block{
		Index:     tail.Index + 1,
		Timestamp: c.now().UnixMilli(),
		Event:     ev,
		PrevHash:  tail.Hash,
	}
	b.Hash = blockHash(b)
	c.blocks = append(c.blocks, b)
	return b
}

// LatestHash returns the hash of the tail block. It changes with every
// recorded event, so its value at draw time cannot be known when a seed
// was committed.
func (c *Chain) LatestHash() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.blocks[len(c.blocks)-1].Hash
}

// Len returns the number of blocks including genesis.
func (c *Chain) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.blocks)
}

// Blocks returns a copy of the full block sequence.
func (c *Chain) Blocks() []Block {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Block, len(c.blocks))
	copy(out, c.blocks)
	return out
}

// Verify recomputes every block hash and previous-hash link over a
// snapshot of the chain. Returns nil if the chain is intact, otherwise an
// error naming the first bad index.
func (c *Chain) Verify() error {
	blocks := c.Blocks()

	g := blocks[0]
	if g.Index != 0 || g.PrevHash != GenesisPrevHash {
		return fmt.Errorf("invalid genesis block")
	}
	if g.Hash != blockHash(g) {
		return fmt.Errorf("hash mismatch at index 0")
	}
	for i := 1; i < len(blocks); i++ {
		b := blocks[i]
		if b.Index != i {
			return fmt.Errorf("index mismatch at position %d", i)
		}
		if b.PrevHash != blocks[i-1].Hash {
			return fmt.Errorf("broken link at index %d", i)
		}
		if b.Hash != blockHash(b) {
			return fmt.Errorf("hash mismatch at index %d", i)
		}
	}
	return nil
}

// blockHash computes the SHA-256 digest over index, timestamp, event and
// previous hash. The stored hash is never an input to itself.
func blockHash(b Block) string {
	payload, err := json.Marshal(b.Event)
	if err != nil {
		// Event is a plain struct of strings and slices; Marshal cannot fail.
		panic(err)
	}

	h := sha256.New()
	h.Write([]byte(strconv.Itoa(b.Index)))
	h.Write([]byte("|"))
	h.Write([]byte(strconv.FormatInt(b.Timestamp, 10)))
	h.Write([]byte("|"))
	h.Write(payload)
	h.Write([]byte("|"))
	h.Write([]byte(b.PrevHash))
	return hex.EncodeToString(h.Sum(nil))
}
