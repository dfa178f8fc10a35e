// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import "errors"

// All engine errors are caller-correctable; none are process-fatal.
// Commitment errors (already committed, already revealed, hash mismatch)
// propagate from the seed package unchanged.
var (
	ErrSessionNotFound         = errors.New("session not found")
	ErrAlreadyDrawn            = errors.New("session draw already complete")
	ErrTierAlreadyDrawn        = errors.New("tier already drawn")
	ErrSeedNotRevealed         = errors.New("seed not revealed")
	ErrInvalidWinnerCount      = errors.New("winner count must be positive")
	ErrNoParticipantsRemaining = errors.New("no participants remaining")
	ErrEnrollmentClosed        = errors.New("enrollment closed after seed reveal")
	ErrPersistence             = errors.New("failed to persist state")
)
