// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package seed implements the commit-reveal seed protocol.

# Commit-Reveal

The operator publishes the SHA-256 hash of a secret seed before anyone
enrolls, and discloses the seed itself only after enrollment closes:

	var c seed.Commitment
	c.Commit(seed.Hash("s3cr3t"))  // before enrollment
	c.Reveal("s3cr3t")             // later; must hash-match

Because the hash is published first, the operator cannot learn the
outcome and then choose a different seed, and because the reveal must
match exactly, the seed cannot be substituted after the fact. Both
transitions are terminal: re-committing fails with ErrAlreadyCommitted
and re-revealing fails with ErrAlreadyRevealed.

# Seed Sources

Sources produce fresh secrets for operators who want the server to pick
one. LocalSource uses crypto/rand. BeaconSource fetches from an external
randomness beacon (drand-style {"randomness": "..."} JSON) and silently
falls back to a local seed on any failure. The security property only
requires the hash be committed before enrollment, not where the entropy
came from.
*/
package seed
