// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the fairdraw API server.

Fairdraw runs fairness-auditable prize draws: the operator commits to the
hash of a secret seed before participants enroll, reveals the seed later,
and the engine deterministically selects winners across ordered prize
tiers. Every state transition is recorded in a hash-linked audit chain,
so nobody (the operator included) can alter the seed or the entrant
list after commitment without detection, and every outcome can be
recomputed from public data.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=draws.db OPERATOR_KEY_SALT=... go run main.go

Or with flags:

	go run main.go -p 3319 -d draws.db -tiers "grand:1,second:3"

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite path or PostgreSQL connection string
  - OPERATOR_KEY_SALT (-operator-salt): Secret for operator key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3319)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - TIERS (-tiers): Ordered prize tiers, e.g. "grand:1,second:3"
  - BEACON_URL (-beacon): External randomness beacon for generated seeds

# Architecture

The server uses a handler-based architecture with dependency injection:

  - engine: Draw engine - session lifecycle, reveal gate, tier draws
  - chain: Hash-linked append-only audit log
  - seed: Commit-reveal protocol and seed sources
  - selection: Deterministic partial Fisher-Yates winner selection
  - handlers: HTTP request handlers (sessions, entries, draws, chain)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Operator key generation and validation
  - db: Snapshot persistence (sqlite or postgres)
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
