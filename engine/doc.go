// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package engine orchestrates fairness-auditable prize draws.

# Lifecycle

Each session moves through: Open (enrolling) → SeedRevealed → Drawing →
Completed. A session is created with a committed seed hash, accepts
enrollments until the seed is revealed, and then draws winners tier by
tier. Each tier is drawn at most once; once every configured tier has
been drawn (or after a legacy single draw) the session is immutable.

# Audit Trail

Every mutating operation appends a block to the audit chain and writes a
whole-state snapshot through the persistence store before reporting
success. Draw randomness is derived from the chain tip, the revealed
seed, and the tier name, so outcomes can be recomputed by anyone holding
the published chain, seed, and participant list.

# Concurrency

Mutations on one session are serialized by a per-session lock; distinct
sessions proceed in parallel. Chain appends and snapshot writes share a
single critical section, so every saved snapshot pairs each block with
the session state that produced it, and two concurrent draws of the same
tier resolve to exactly one success and one ErrTierAlreadyDrawn.

# Failure Semantics

All errors are typed sentinels and caller-correctable. Validation runs
before any mutation, so the only failure after a session has been
mutated is the persistence write, which is surfaced as ErrPersistence;
callers must not treat such an operation as durable.
*/
package engine
