// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3319)
  - DatabaseURL: Connection string or sqlite path (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - OperatorKeySalt: Secret for operator key HMAC (required)
  - Tiers: Ordered prize tiers as "name:count,..." (optional)
  - BeaconURL: External randomness beacon URL (optional)

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type
	-tiers          Prize tier configuration
	-beacon         Randomness beacon URL
	-operator-salt  Operator key salt

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	TIERS             → -tiers
	BEACON_URL        → -beacon
	OPERATOR_KEY_SALT → -operator-salt

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - OPERATOR_KEY_SALT must be provided
  - DATABASE_TYPE, when set, must be sqlite or postgres
*/
package cliparse
