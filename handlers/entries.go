// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/fairdraw/cliparse"
	"github.com/danielhkuo/fairdraw/engine"
	"github.com/danielhkuo/fairdraw/middleware"
	"github.com/danielhkuo/fairdraw/models"
)

type EntryHandler struct {
	eng *engine.Engine
	cfg cliparse.Config
}

func NewEntryHandler(eng *engine.Engine, cfg cliparse.Config) *EntryHandler {
	return &EntryHandler{eng: eng, cfg: cfg}
}

// Enter handles POST /sessions/{id}/entries
//
// Enrolling an already-enrolled participant is a no-op, not an error;
// the response reports whether the entry was added.
func (h *EntryHandler) Enter(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}

	var req models.EnterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Participant == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "participant is required")
		return
	}

	participants, added, err := h.eng.Enter(sessionID, req.Participant)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.EnterResponse{
		Added:        added,
		Participants: participants,
	})
}

// Import handles POST /sessions/{id}/import
func (h *EntryHandler) Import(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}

	var req models.ImportRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.Participants) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "participants are required")
		return
	}

	participants, added, err := h.eng.ImportParticipants(sessionID, req.Participants)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ImportResponse{
		Added:        added,
		Participants: participants,
	})
}

// GetParticipants handles GET /sessions/{id}/participants
func (h *EntryHandler) GetParticipants(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}

	participants, err := h.eng.Participants(sessionID)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ParticipantsResponse{
		Participants: participants,
	})
}
