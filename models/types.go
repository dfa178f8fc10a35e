package models

import (
	"github.com/danielhkuo/fairdraw/chain"
	"github.com/danielhkuo/fairdraw/engine"
)

// Request types

type CreateSessionRequest struct {
	Name          string `json:"name"`
	CommittedHash string `json:"committed_hash,omitempty"`
}

type EnterRequest struct {
	Participant string `json:"participant"`
}

type ImportRequest struct {
	Participants []string `json:"participants"`
}

type RevealRequest struct {
	Seed string `json:"seed"`
}

type DrawRequest struct {
	Count int `json:"count"`
}

// Response types

type CreateSessionResponse struct {
	SessionID     string `json:"session_id"`
	OperatorKey   string `json:"operator_key"`
	CommittedHash string `json:"committed_hash"`
	// Seed is set only when the server generated the seed; the operator
	// must keep it for the reveal. It is never stored.
	Seed string `json:"seed,omitempty"`
}

type EnterResponse struct {
	Added        bool     `json:"added"`
	Participants []string `json:"participants"`
}

type ImportResponse struct {
	Added        []string `json:"added"`
	Participants []string `json:"participants"`
}

type RevealResponse struct {
	Revealed bool `json:"revealed"`
}

type DrawResponse struct {
	Tier    string   `json:"tier"`
	Winners []string `json:"winners"`
}

type ParticipantsResponse struct {
	Participants []string `json:"participants"`
}

type WinnersResponse struct {
	All   []string            `json:"all"`
	Tiers map[string][]string `json:"tiers"`
}

type SessionsResponse struct {
	Sessions map[string]engine.Summary `json:"sessions"`
	Tiers    []engine.TierSpec         `json:"tiers"`
}

type ChainResponse struct {
	Blocks []chain.Block `json:"blocks"`
}

type VerifyResponse struct {
	Valid  bool   `json:"valid"`
	Blocks int    `json:"blocks"`
	Detail string `json:"detail,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
