// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package chain implements the tamper-evident audit log.

# Structure

The chain is an append-only sequence of hash-linked blocks. Every block
carries an index, a timestamp, an event payload, the hash of the previous
block, and its own SHA-256 hash computed over everything except itself:

	hash = SHA-256(index | timestamp | eventJSON | prevHash)

The genesis block has index 0 and previous hash "0". Blocks are never
mutated or deleted, so any change to a recorded event invalidates every
hash from that point forward.

# Events

Block payloads form a closed set built through constructors:

	chain.SessionCreated(id, name, seedHash)
	chain.UserEntered(id, participant)
	chain.UsersImported(id, added)
	chain.SeedRevealed(id, seedHash, seed)
	chain.TierDrawn(id, tier, winners, material)

# Verification

	if err := c.Verify(); err != nil {
		// first bad index is named in the error
	}

Verify is a read-only pass over a snapshot and is safe to call at any
time, including concurrently with appends.

# Chain Tip

LatestHash returns the tail block's hash. It is used as public,
commit-time-unpredictable randomness material for draws: it changes with
every recorded event, yet is fully reproducible afterwards because the
chain is public.
*/
package chain
