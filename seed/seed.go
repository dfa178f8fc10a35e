// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
)

var (
	ErrAlreadyCommitted  = errors.New("seed hash already committed")
	ErrAlreadyRevealed   = errors.New("seed already revealed")
	ErrSeedHashMismatch  = errors.New("revealed seed does not match committed hash")
	ErrInvalidCommitment = errors.New("committed hash must be a 64-character hex digest")
)

// Commitment holds a committed seed hash and, after a successful reveal,
// the seed itself. The hash is immutable once set; the seed is immutable
// once revealed.
type Commitment struct {
	CommittedHash string `json:"committed_hash"`
	RevealedSeed  string `json:"revealed_seed,omitempty"`
}

// Hash returns the hex SHA-256 digest of a seed secret.
func Hash(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// Commit stores the seed hash. Committing twice is an error, never a
// silent overwrite.
func (c *Commitment) Commit(hash string) error {
	if c.CommittedHash != "" {
		return ErrAlreadyCommitted
	}
	if len(hash) != sha256.Size*2 {
		return ErrInvalidCommitment
	}
	if _, err := hex.DecodeString(hash); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCommitment, err)
	}
	c.CommittedHash = hash
	return nil
}

// Reveal verifies that secret hashes to the committed value and stores
// it. Re-revealing is an error even with the same secret.
func (c *Commitment) Reveal(secret string) error {
	if c.RevealedSeed != "" {
		return ErrAlreadyRevealed
	}
	if Hash(secret) != c.CommittedHash {
		return ErrSeedHashMismatch
	}
	c.RevealedSeed = secret
	return nil
}

// Revealed reports whether a verified seed is present. Drawing is gated
// on this, never on a caller-supplied seed value.
func (c *Commitment) Revealed() bool {
	return c.RevealedSeed != ""
}
