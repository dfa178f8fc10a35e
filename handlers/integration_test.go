// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/fairdraw/chain"
	"github.com/danielhkuo/fairdraw/models"
	"github.com/danielhkuo/fairdraw/seed"
	"github.com/danielhkuo/fairdraw/testutil"
)

// TestFullDrawWorkflow tests the complete end-to-end workflow:
// 1. Create a session with a server-generated seed
// 2. Enroll participants one by one and in bulk
// 3. Reveal the seed
// 4. Draw both tiers
// 5. Verify winners and the audit chain
func TestFullDrawWorkflow(t *testing.T) {
	eng := testutil.NewTestEngine(t, "first:1,second:2")
	cfg := testutil.GetTestConfig()

	sessionHandler := NewSessionHandler(eng, cfg, seed.LocalSource{})
	entryHandler := NewEntryHandler(eng, cfg)
	drawHandler := NewDrawHandler(eng, cfg)
	chainHandler := NewChainHandler(eng, cfg)

	// Step 1: Create a session; the server picks and commits a seed.
	req := testutil.MakeRequest("POST", "/sessions", models.CreateSessionRequest{Name: "Integration Draw"}, nil)
	w := httptest.NewRecorder()
	sessionHandler.CreateSession(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Create session failed: %d - %s", w.Code, w.Body.String())
	}

	var createResp models.CreateSessionResponse
	testutil.AssertJSON(t, w, &createResp)
	sessionID := createResp.SessionID
	operatorKey := createResp.OperatorKey
	secret := createResp.Seed
	if sessionID == "" || operatorKey == "" || secret == "" {
		t.Fatal("Step 1 - Missing session_id, operator_key, or seed")
	}
	t.Logf("Step 1 - Created session: %s", sessionID)

	// Step 2: Enroll participants.
	req = testutil.MakeRequest("POST", "/sessions/"+sessionID+"/entries", models.EnterRequest{Participant: "alice"}, nil)
	req.SetPathValue("id", sessionID)
	w = httptest.NewRecorder()
	entryHandler.Enter(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 2 - Enter failed: %d - %s", w.Code, w.Body.String())
	}

	importReq := models.ImportRequest{Participants: []string{"bob", "carol", "dave", "eve"}}
	req = testutil.MakeRequest("POST", "/sessions/"+sessionID+"/import", importReq, nil)
	req.SetPathValue("id", sessionID)
	w = httptest.NewRecorder()
	entryHandler.Import(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 2 - Import failed: %d - %s", w.Code, w.Body.String())
	}

	var importResp models.ImportResponse
	testutil.AssertJSON(t, w, &importResp)
	if len(importResp.Participants) != 5 {
		t.Fatalf("Step 2 - Participants = %v, want 5", importResp.Participants)
	}
	t.Logf("Step 2 - Enrolled %d participants", len(importResp.Participants))

	operator := map[string]string{"X-Operator-Key": operatorKey}

	// Step 3: Reveal the seed returned at creation.
	req = testutil.MakeRequest("POST", "/sessions/"+sessionID+"/reveal", models.RevealRequest{Seed: secret}, operator)
	req.SetPathValue("id", sessionID)
	w = httptest.NewRecorder()
	drawHandler.RevealSeed(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 3 - Reveal failed: %d - %s", w.Code, w.Body.String())
	}
	t.Log("Step 3 - Seed revealed")

	// Step 4: Draw both tiers with their configured quotas.
	allWinners := map[string]bool{}
	for _, tier := range []string{"first", "second"} {
		req = testutil.MakeRequest("POST", "/sessions/"+sessionID+"/draws/"+tier, models.DrawRequest{}, operator)
		req.SetPathValue("id", sessionID)
		req.SetPathValue("tier", tier)
		w = httptest.NewRecorder()
		drawHandler.DrawTier(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Step 4 - Draw %s failed: %d - %s", tier, w.Code, w.Body.String())
		}

		var drawResp models.DrawResponse
		testutil.AssertJSON(t, w, &drawResp)
		for _, winner := range drawResp.Winners {
			if allWinners[winner] {
				t.Errorf("Step 4 - %s won more than once", winner)
			}
			allWinners[winner] = true
		}
		t.Logf("Step 4 - Drew %s: %v", tier, drawResp.Winners)
	}
	if len(allWinners) != 3 {
		t.Fatalf("Step 4 - Total winners = %d, want 3", len(allWinners))
	}

	// Step 5: Winners endpoint agrees and the chain verifies.
	req = testutil.MakeRequest("GET", "/sessions/"+sessionID+"/winners", nil, nil)
	req.SetPathValue("id", sessionID)
	w = httptest.NewRecorder()
	drawHandler.GetWinners(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var winnersResp models.WinnersResponse
	testutil.AssertJSON(t, w, &winnersResp)
	if len(winnersResp.All) != 3 {
		t.Errorf("Step 5 - All = %v", winnersResp.All)
	}
	for _, winner := range winnersResp.All {
		if !allWinners[winner] {
			t.Errorf("Step 5 - Unexpected winner %s", winner)
		}
	}

	req = testutil.MakeRequest("GET", "/chain/verify", nil, nil)
	w = httptest.NewRecorder()
	chainHandler.VerifyChain(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var verifyResp models.VerifyResponse
	testutil.AssertJSON(t, w, &verifyResp)
	if !verifyResp.Valid {
		t.Fatalf("Step 5 - Chain invalid: %s", verifyResp.Detail)
	}

	req = testutil.MakeRequest("GET", "/chain", nil, nil)
	w = httptest.NewRecorder()
	chainHandler.GetChain(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var chainResp models.ChainResponse
	testutil.AssertJSON(t, w, &chainResp)
	// genesis + created + entered + imported + revealed + 2 draws
	if len(chainResp.Blocks) != 7 {
		t.Errorf("Step 5 - Chain length = %d, want 7", len(chainResp.Blocks))
	}
	drawBlocks := 0
	for _, b := range chainResp.Blocks {
		if b.Event.Type == chain.EventTierDrawn {
			drawBlocks++
			if b.Event.Material == "" {
				t.Error("Step 5 - Draw block missing material")
			}
		}
	}
	if drawBlocks != 2 {
		t.Errorf("Step 5 - Draw blocks = %d, want 2", drawBlocks)
	}
	t.Logf("Step 5 - Chain verified across %d blocks", len(chainResp.Blocks))
}
