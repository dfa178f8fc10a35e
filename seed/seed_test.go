// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"errors"
	"strings"
	"testing"
)

func TestHash(t *testing.T) {
	// Known SHA-256 vector
	got := Hash("s3cr3t")
	want := "4e738ca5563c06cfd0018299933d58db1dd8bf97f6973dc99bf6cdc64b5550bd"
	if got != want {
		t.Errorf("Hash(s3cr3t) = %s, want %s", got, want)
	}
	if Hash("a") == Hash("b") {
		t.Error("Distinct secrets produced the same hash")
	}
}

func TestCommit(t *testing.T) {
	tests := []struct {
		name    string
		hash    string
		wantErr error
	}{
		{"valid digest", Hash("secret"), nil},
		{"too short", "abcd", ErrInvalidCommitment},
		{"not hex", strings.Repeat("z", 64), ErrInvalidCommitment},
		{"empty", "", ErrInvalidCommitment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Commitment
			err := c.Commit(tt.hash)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Commit() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCommitTwiceFails(t *testing.T) {
	var c Commitment
	if err := c.Commit(Hash("secret")); err != nil {
		t.Fatalf("First Commit() error = %v", err)
	}
	err := c.Commit(Hash("other"))
	if !errors.Is(err, ErrAlreadyCommitted) {
		t.Errorf("Second Commit() error = %v, want ErrAlreadyCommitted", err)
	}
	if c.CommittedHash != Hash("secret") {
		t.Error("Second Commit() overwrote the committed hash")
	}
}

func TestReveal(t *testing.T) {
	var c Commitment
	if err := c.Commit(Hash("s3cr3t")); err != nil {
		t.Fatal(err)
	}

	if err := c.Reveal("s3cr3t"); err != nil {
		t.Fatalf("Reveal() error = %v", err)
	}
	if !c.Revealed() {
		t.Error("Revealed() = false after successful reveal")
	}
	if c.RevealedSeed != "s3cr3t" {
		t.Errorf("RevealedSeed = %q, want s3cr3t", c.RevealedSeed)
	}
}

func TestRevealWrongSecret(t *testing.T) {
	var c Commitment
	if err := c.Commit(Hash("s3cr3t")); err != nil {
		t.Fatal(err)
	}

	err := c.Reveal("wrong")
	if !errors.Is(err, ErrSeedHashMismatch) {
		t.Errorf("Reveal(wrong) error = %v, want ErrSeedHashMismatch", err)
	}
	if c.Revealed() {
		t.Error("Failed reveal left a revealed seed set")
	}

	// A correct reveal still works afterwards
	if err := c.Reveal("s3cr3t"); err != nil {
		t.Errorf("Reveal() after failed attempt error = %v", err)
	}
}

func TestRevealTwiceFails(t *testing.T) {
	var c Commitment
	if err := c.Commit(Hash("s3cr3t")); err != nil {
		t.Fatal(err)
	}
	if err := c.Reveal("s3cr3t"); err != nil {
		t.Fatal(err)
	}

	// Re-reveal is rejected even with the identical secret
	err := c.Reveal("s3cr3t")
	if !errors.Is(err, ErrAlreadyRevealed) {
		t.Errorf("Second Reveal() error = %v, want ErrAlreadyRevealed", err)
	}
}
