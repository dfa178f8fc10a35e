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

type ChainHandler struct {
	eng *engine.Engine
	cfg cliparse.Config
}

func NewChainHandler(eng *engine.Engine, cfg cliparse.Config) *ChainHandler {
	return &ChainHandler{eng: eng, cfg: cfg}
}

// GetChain handles GET /chain
//
// The full chain is public: anyone holding it plus the revealed seed
// and participant list can recompute every draw.
func (h *ChainHandler) GetChain(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.ChainResponse{
		Blocks: h.eng.ChainBlocks(),
	})
}

// VerifyChain handles GET /chain/verify
func (h *ChainHandler) VerifyChain(w http.ResponseWriter, r *http.Request) {
	resp := models.VerifyResponse{
		Valid:  true,
		Blocks: len(h.eng.ChainBlocks()),
	}
	if err := h.eng.VerifyChain(); err != nil {
		resp.Valid = false
		resp.Detail = err.Error()
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}
