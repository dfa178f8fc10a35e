// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chain

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestNewChainHasGenesis(t *testing.T) {
	c := New(nil)

	blocks := c.Blocks()
	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(blocks))
	}
	g := blocks[0]
	if g.Index != 0 {
		t.Errorf("Genesis index = %d, want 0", g.Index)
	}
	if g.PrevHash != GenesisPrevHash {
		t.Errorf("Genesis prev hash = %q, want %q", g.PrevHash, GenesisPrevHash)
	}
	if g.Event.Type != EventGenesis {
		t.Errorf("Genesis event type = %q, want %q", g.Event.Type, EventGenesis)
	}
	if err := c.Verify(); err != nil {
		t.Errorf("Verify() = %v, want nil", err)
	}
}

func TestAppendLinksBlocks(t *testing.T) {
	c := New(nil)

	b1 := c.Append(UserEntered("s1", "alice"))
	b2 := c.Append(UserEntered("s1", "bob"))

	if b1.Index != 1 || b2.Index != 2 {
		t.Errorf("Indexes = %d, %d, want 1, 2", b1.Index, b2.Index)
	}
	if b1.PrevHash != c.Blocks()[0].Hash {
		t.Error("Block 1 not linked to genesis")
	}
	if b2.PrevHash != b1.Hash {
		t.Error("Block 2 not linked to block 1")
	}
	if c.LatestHash() != b2.Hash {
		t.Error("LatestHash did not return the tail hash")
	}
	if err := c.Verify(); err != nil {
		t.Errorf("Verify() = %v, want nil", err)
	}
}

func TestVerifyAfterEveryAppend(t *testing.T) {
	c := New(nil)
	events := []Event{
		SessionCreated("s1", "launch", "abc"),
		UserEntered("s1", "alice"),
		UsersImported("s1", []string{"bob", "carol"}),
		SeedRevealed("s1", "abc", "secret"),
		TierDrawn("s1", "first", []string{"bob"}, "deadbeef"),
	}
	for i, ev := range events {
		c.Append(ev)
		if err := c.Verify(); err != nil {
			t.Fatalf("Verify() after append %d = %v, want nil", i, err)
		}
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	c := New(nil)
	c.Append(UserEntered("s1", "alice"))
	c.Append(UserEntered("s1", "bob"))

	tests := []struct {
		name   string
		mutate func(blocks []Block)
		want   string
	}{
		{
			name:   "payload changed",
			mutate: func(b []Block) { b[1].Event.Participant = "mallory" },
			want:   "hash mismatch at index 1",
		},
		{
			name:   "link broken",
			mutate: func(b []Block) { b[2].PrevHash = strings.Repeat("0", 64) },
			want:   "broken link at index 2",
		},
		{
			name:   "timestamp changed",
			mutate: func(b []Block) { b[2].Timestamp++ },
			want:   "hash mismatch at index 2",
		},
		{
			name:   "genesis changed",
			mutate: func(b []Block) { b[0].Event.Note = "rewritten" },
			want:   "hash mismatch at index 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := c.Blocks()
			tt.mutate(blocks)
			_, err := Load(blocks, nil)
			if err == nil {
				t.Fatal("Load() accepted a tampered chain")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestLoadRoundTrip(t *testing.T) {
	c := New(nil)
	c.Append(SessionCreated("s1", "launch", "abc"))
	c.Append(UserEntered("s1", "alice"))

	restored, err := Load(c.Blocks(), nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if restored.Len() != c.Len() {
		t.Errorf("Restored length = %d, want %d", restored.Len(), c.Len())
	}
	if restored.LatestHash() != c.LatestHash() {
		t.Error("Restored chain tip differs")
	}

	// Appends continue the restored chain
	b := restored.Append(UserEntered("s1", "bob"))
	if b.PrevHash != c.LatestHash() {
		t.Error("Append after Load did not link to the stored tip")
	}
}

func TestLoadEmptyFails(t *testing.T) {
	if _, err := Load(nil, nil); err == nil {
		t.Error("Load() accepted an empty chain")
	}
}

func TestLatestHashChangesPerAppend(t *testing.T) {
	c := New(nil)
	seen := map[string]bool{c.LatestHash(): true}
	for i := 0; i < 20; i++ {
		c.Append(UserEntered("s1", "p"))
		tip := c.LatestHash()
		if seen[tip] {
			t.Fatalf("Chain tip repeated after append %d", i)
		}
		seen[tip] = true
	}
}

func TestVerifyConcurrentWithAppends(t *testing.T) {
	c := New(nil)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			c.Append(UserEntered("s1", "p"))
		}
		close(stop)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				if err := c.Verify(); err != nil {
					t.Errorf("Verify() during appends = %v", err)
					return
				}
			}
		}
	}()

	wg.Wait()
	if c.Len() != 201 {
		t.Errorf("Chain length = %d, want 201", c.Len())
	}
}

func TestClockIsInformationalOnly(t *testing.T) {
	// A frozen clock must not affect linkage or verification
	frozen := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := New(func() time.Time { return frozen })

	c.Append(UserEntered("s1", "alice"))
	c.Append(UserEntered("s1", "bob"))

	for _, b := range c.Blocks() {
		if b.Timestamp != frozen.UnixMilli() {
			t.Errorf("Block %d timestamp = %d, want %d", b.Index, b.Timestamp, frozen.UnixMilli())
		}
	}
	if err := c.Verify(); err != nil {
		t.Errorf("Verify() = %v, want nil", err)
	}
}
