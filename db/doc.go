// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles snapshot persistence.

# Backends

Open connects to sqlite (default) or postgres depending on configuration:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

# Schema Creation

CreateSchema initializes the single snapshot table:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Snapshot Store

Store implements the engine's load/save contract. The engine hands it
opaque whole-state snapshots; the store keeps exactly one row and
replaces it atomically on every save:

	store := db.NewStore(conn, cfg.DatabaseType)
	data, err := store.Load()   // nil on first start
	err = store.Save(data)      // single-statement upsert

The engine waits for Save before reporting any mutation as successful.
*/
package db
