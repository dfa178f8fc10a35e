// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/fairdraw/cliparse"
	"github.com/danielhkuo/fairdraw/engine"
	"github.com/danielhkuo/fairdraw/handlers"
	"github.com/danielhkuo/fairdraw/middleware"
	"github.com/danielhkuo/fairdraw/seed"
)

func NewRouter(eng *engine.Engine, cfg cliparse.Config, seeds seed.Source) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(eng, cfg, seeds)
	entryHandler := handlers.NewEntryHandler(eng, cfg)
	drawHandler := handlers.NewDrawHandler(eng, cfg)
	chainHandler := handlers.NewChainHandler(eng, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session management
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.CreateSession))
	mux.HandleFunc("GET /sessions", middleware.WithLogging(sessionHandler.ListSessions))
	mux.HandleFunc("GET /sessions/{id}", middleware.WithLogging(sessionHandler.GetSession))

	// Enrollment (public)
	mux.HandleFunc("POST /sessions/{id}/entries", middleware.WithLogging(entryHandler.Enter))
	mux.HandleFunc("POST /sessions/{id}/import", middleware.WithLogging(entryHandler.Import))
	mux.HandleFunc("GET /sessions/{id}/participants", middleware.WithLogging(entryHandler.GetParticipants))

	// Draw operations (operator key required)
	mux.HandleFunc("POST /sessions/{id}/reveal", middleware.WithLogging(drawHandler.RevealSeed))
	mux.HandleFunc("POST /sessions/{id}/draws/{tier}", middleware.WithLogging(drawHandler.DrawTier))
	mux.HandleFunc("POST /sessions/{id}/draw", middleware.WithLogging(drawHandler.SingleDraw))
	mux.HandleFunc("GET /sessions/{id}/winners", middleware.WithLogging(drawHandler.GetWinners))

	// Audit chain (public)
	mux.HandleFunc("GET /chain", middleware.WithLogging(chainHandler.GetChain))
	mux.HandleFunc("GET /chain/verify", middleware.WithLogging(chainHandler.VerifyChain))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fairdraw API v1"))
	})

	return mux
}
