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
)

type DrawHandler struct {
	eng *engine.Engine
	cfg cliparse.Config
}

func NewDrawHandler(eng *engine.Engine, cfg cliparse.Config) *DrawHandler {
	return &DrawHandler{eng: eng, cfg: cfg}
}

// RevealSeed handles POST /sessions/{id}/reveal
func (h *DrawHandler) RevealSeed(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}

	operatorKey := r.Header.Get("X-Operator-Key")
	if err := auth.ValidateOperatorKey(sessionID, operatorKey, h.cfg.OperatorKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid operator key")
		return
	}

	var req models.RevealRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Seed == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "seed is required")
		return
	}

	if err := h.eng.RevealSeed(sessionID, req.Seed); err != nil {
		writeEngineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RevealResponse{Revealed: true})
}

// DrawTier handles POST /sessions/{id}/draws/{tier}
//
// A zero or omitted count falls back to the tier's configured quota.
func (h *DrawHandler) DrawTier(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	tier := r.PathValue("tier")
	if sessionID == "" || tier == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id and tier are required")
		return
	}

	operatorKey := r.Header.Get("X-Operator-Key")
	if err := auth.ValidateOperatorKey(sessionID, operatorKey, h.cfg.OperatorKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid operator key")
		return
	}

	var req models.DrawRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	count := req.Count
	if count == 0 {
		count = h.tierQuota(tier)
	}

	winners, err := h.eng.DrawTier(sessionID, tier, count)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	slog.Info("draw served", "session_id", sessionID, "tier", tier, "winners", len(winners))

	middleware.JSONResponse(w, http.StatusOK, models.DrawResponse{
		Tier:    tier,
		Winners: winners,
	})
}

// SingleDraw handles POST /sessions/{id}/draw (legacy one-tier mode)
func (h *DrawHandler) SingleDraw(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}

	operatorKey := r.Header.Get("X-Operator-Key")
	if err := auth.ValidateOperatorKey(sessionID, operatorKey, h.cfg.OperatorKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid operator key")
		return
	}

	var req models.DrawRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	winners, err := h.eng.SingleDraw(sessionID, req.Count)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DrawResponse{
		Tier:    engine.SingleDrawTier,
		Winners: winners,
	})
}

// GetWinners handles GET /sessions/{id}/winners
func (h *DrawHandler) GetWinners(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}

	all, tiers, err := h.eng.Winners(sessionID)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.WinnersResponse{
		All:   all,
		Tiers: tiers,
	})
}

// tierQuota returns the configured winner count for a tier, or 1 when
// the tier is not configured.
func (h *DrawHandler) tierQuota(tier string) int {
	for _, t := range h.eng.Tiers() {
		if t.Name == tier {
			return t.Count
		}
	}
	return 1
}
