// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Source produces new seed secrets. Callers never depend on which source
// produced a seed, only on the commit/reveal contract.
type Source interface {
	NewSeed() (string, error)
}

// LocalSource generates seeds from crypto/rand.
type LocalSource struct{}

// NewSeed returns a random 32-character hex secret.
func (LocalSource) NewSeed() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate seed: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// BeaconSource fetches entropy from an external randomness beacon and
// falls back to a local seed when the beacon is unreachable or returns
// an unexpected shape. Seed provenance is outside the commit-reveal
// trust boundary, so the fallback is silent apart from a log line.
type BeaconSource struct {
	URL    string
	Client *http.Client
}

// NewBeaconSource creates a beacon source with a bounded request timeout.
func NewBeaconSource(url string) *BeaconSource {
	return &BeaconSource{
		URL:    url,
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}

type beaconResponse struct {
	Randomness string `json:"randomness"`
}

// NewSeed returns the beacon's randomness value, or a local seed if the
// fetch fails in any way.
func (s *BeaconSource) NewSeed() (string, error) {
	local := LocalSource{}

	resp, err := s.Client.Get(s.URL)
	if err != nil {
		slog.Warn("seed beacon unreachable, using local seed", "url", s.URL, "error", err)
		return local.NewSeed()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("seed beacon returned non-OK status, using local seed", "url", s.URL, "status", resp.StatusCode)
		return local.NewSeed()
	}

	var body beaconResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Randomness == "" {
		slog.Warn("seed beacon returned unexpected shape, using local seed", "url", s.URL, "error", err)
		return local.NewSeed()
	}

	return body.Randomness, nil
}
