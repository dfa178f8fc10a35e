// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/fairdraw/engine"
	"github.com/danielhkuo/fairdraw/middleware"
	"github.com/danielhkuo/fairdraw/seed"
)

// writeEngineError maps engine and seed sentinels to HTTP status codes.
func writeEngineError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, engine.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, seed.ErrInvalidCommitment),
		errors.Is(err, engine.ErrInvalidWinnerCount):
		status = http.StatusBadRequest
	case errors.Is(err, seed.ErrAlreadyCommitted),
		errors.Is(err, seed.ErrAlreadyRevealed),
		errors.Is(err, seed.ErrSeedHashMismatch),
		errors.Is(err, engine.ErrAlreadyDrawn),
		errors.Is(err, engine.ErrTierAlreadyDrawn),
		errors.Is(err, engine.ErrSeedNotRevealed),
		errors.Is(err, engine.ErrEnrollmentClosed),
		errors.Is(err, engine.ErrNoParticipantsRemaining):
		status = http.StatusConflict
	}
	middleware.ErrorResponse(w, status, err.Error())
}
