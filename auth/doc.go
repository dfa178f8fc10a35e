// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides operator key generation and validation.

# Operator Keys

Operator keys use HMAC-SHA256 to create deterministic, verifiable keys:

	key := auth.GenerateOperatorKey(sessionID, salt)
	err := auth.ValidateOperatorKey(sessionID, key, salt)

The key is URL-safe base64 encoded without padding. Since it's
deterministic, the same session ID and salt always produce the same key,
which allows validation without storing the key anywhere.

The key is returned once when a session is created and is required (via
the X-Operator-Key header) for the operations that only the operator may
perform: revealing the seed and drawing tiers.
*/
package auth
