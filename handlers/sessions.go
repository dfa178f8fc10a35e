// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/fairdraw/auth"
	"github.com/danielhkuo/fairdraw/cliparse"
	"github.com/danielhkuo/fairdraw/engine"
	"github.com/danielhkuo/fairdraw/middleware"
	"github.com/danielhkuo/fairdraw/models"
	"github.com/danielhkuo/fairdraw/seed"
)

type SessionHandler struct {
	eng   *engine.Engine
	cfg   cliparse.Config
	seeds seed.Source
}

func NewSessionHandler(eng *engine.Engine, cfg cliparse.Config, seeds seed.Source) *SessionHandler {
	return &SessionHandler{eng: eng, cfg: cfg, seeds: seeds}
}

// CreateSession handles POST /sessions
//
// When committed_hash is omitted the server picks a seed from the
// configured source, commits its hash, and returns the seed once so the
// operator can reveal it later. The seed is never stored.
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	committedHash := req.CommittedHash
	var generatedSeed string
	if committedHash == "" {
		secret, err := h.seeds.NewSeed()
		if err != nil {
			slog.Error("failed to generate seed", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
			return
		}
		generatedSeed = secret
		committedHash = seed.Hash(secret)
	}

	sessionID, err := h.eng.CreateSession(req.Name, committedHash)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionID:     sessionID,
		OperatorKey:   auth.GenerateOperatorKey(sessionID, h.cfg.OperatorKeySalt),
		CommittedHash: committedHash,
		Seed:          generatedSeed,
	})
}

// ListSessions handles GET /sessions
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.SessionsResponse{
		Sessions: h.eng.Sessions(),
		Tiers:    h.eng.Tiers(),
	})
}

// GetSession handles GET /sessions/{id}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}

	summary, err := h.eng.Session(sessionID)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, summary)
}
