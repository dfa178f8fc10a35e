// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/danielhkuo/fairdraw/auth"
	"github.com/danielhkuo/fairdraw/cliparse"
	"github.com/danielhkuo/fairdraw/engine"
	"github.com/danielhkuo/fairdraw/seed"
)

// MemStore is an in-memory snapshot store for tests.
type MemStore struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) Load() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data, nil
}

func (m *MemStore) Save(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	m.saves++
	return nil
}

// Saves returns how many snapshots have been written.
func (m *MemStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3319,
		DatabaseURL:     ":memory:",
		DatabaseType:    "sqlite",
		OperatorKeySalt: "test-operator-salt",
		Tiers:           "first:2,second:3",
	}
}

// NewTestEngine creates an engine backed by an in-memory store, with
// the given tier configuration ("" for none).
func NewTestEngine(t *testing.T, tiers string) *engine.Engine {
	t.Helper()

	specs, err := engine.ParseTiers(tiers)
	if err != nil {
		t.Fatalf("Failed to parse tiers: %v", err)
	}
	eng, err := engine.New(NewMemStore(), engine.WithTiers(specs))
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	return eng
}

// CreateTestSession creates a session committed to the given secret and
// returns its ID and operator key.
func CreateTestSession(t *testing.T, eng *engine.Engine, cfg cliparse.Config, name, secret string) (sessionID, operatorKey string) {
	t.Helper()

	sessionID, err := eng.CreateSession(name, seed.Hash(secret))
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}
	return sessionID, auth.GenerateOperatorKey(sessionID, cfg.OperatorKeySalt)
}

// EnrollTestParticipants bulk-enrolls participants into a session.
func EnrollTestParticipants(t *testing.T, eng *engine.Engine, sessionID string, ids []string) {
	t.Helper()

	if _, _, err := eng.ImportParticipants(sessionID, ids); err != nil {
		t.Fatalf("Failed to enroll test participants: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
