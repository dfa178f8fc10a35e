// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/fairdraw/chain"
	"github.com/danielhkuo/fairdraw/seed"
	"github.com/danielhkuo/fairdraw/selection"
)

// SingleDrawTier is the tier name recorded by SingleDraw.
const SingleDrawTier = "default"

// Store is the persistence collaborator. It receives whole-state
// snapshots it must treat as opaque and write as a single unit.
type Store interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// Engine owns the session registry and the audit chain. It is the only
// writer to either; every mutating operation appends an audit block and
// writes a state snapshot through the store before reporting success.
type Engine struct {
	mu       sync.RWMutex // guards sessions
	sessions map[string]*Session

	// persistMu serializes block appends and snapshot writes: every block
	// enters the chain in the same critical section that captures the
	// session state it belongs to, so no snapshot can hold a block whose
	// session state is stale. states holds the last serialized copy of
	// every session so committing one session never needs another
	// session's lock.
	persistMu sync.Mutex
	states    map[string]SessionState

	chain *chain.Chain
	store Store
	tiers []TierSpec
	now   func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithTiers sets the deployment's ordered tier configuration.
func WithTiers(tiers []TierSpec) Option {
	return func(e *Engine) { e.tiers = tiers }
}

// WithClock overrides the timestamp source used for block stamping.
// Timestamps are informational only; ordering is by chain index.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// snapshot is the whole-state unit handed to the store.
type snapshot struct {
	Sessions map[string]SessionState `json:"sessions"`
	Chain    []chain.Block           `json:"chain"`
}

// New builds an engine from the store's snapshot, or from a fresh
// genesis block when the store is empty. A stored chain that fails
// verification is rejected at startup.
func New(store Store, opts ...Option) (*Engine, error) {
	e := &Engine{
		sessions: map[string]*Session{},
		states:   map[string]SessionState{},
		store:    store,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	data, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: load: %v", ErrPersistence, err)
	}
	if len(data) == 0 {
		e.chain = chain.New(e.now)
		return e, nil
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: decode snapshot: %v", ErrPersistence, err)
	}
	e.chain, err = chain.Load(snap.Chain, e.now)
	if err != nil {
		return nil, err
	}
	for id, st := range snap.Sessions {
		e.sessions[id] = sessionFromState(st)
		e.states[id] = st
	}
	slog.Info("engine state restored", "sessions", len(e.sessions), "blocks", e.chain.Len())
	return e, nil
}

// CreateSession allocates a new open session with the given committed
// seed hash and records a SESSION_CREATED block.
func (e *Engine) CreateSession(name, committedHash string) (string, error) {
	var commitment seed.Commitment
	if err := commitment.Commit(committedHash); err != nil {
		return "", err
	}

	s := newSession(uuid.NewString(), name, commitment)

	e.mu.Lock()
	e.sessions[s.ID] = s
	e.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := e.commit(s, chain.SessionCreated(s.ID, s.Name, committedHash)); err != nil {
		return "", err
	}
	slog.Info("session created", "session_id", s.ID, "name", name)
	return s.ID, nil
}

// Enter enrolls one participant. Re-enrolling the same identifier is an
// idempotent no-op: added is false, no block is appended, and no error
// is returned. Enrollment after reveal is rejected: permitting it would
// let an operator pick participants with foreknowledge of the random
// material.
func (e *Engine) Enter(sessionID, participant string) (participants []string, added bool, err error) {
	s, err := e.session(sessionID)
	if err != nil {
		return nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enrollable(); err != nil {
		return nil, false, err
	}
	if !s.enter(participant) {
		return append([]string(nil), s.Participants...), false, nil
	}
	if err := e.commit(s, chain.UserEntered(s.ID, participant)); err != nil {
		return nil, false, err
	}
	return append([]string(nil), s.Participants...), true, nil
}

// ImportParticipants is the bulk form of Enter. Duplicates, whether
// already enrolled or repeated within the batch, are silently skipped;
// the returned added list holds only the identifiers actually enrolled.
func (e *Engine) ImportParticipants(sessionID string, ids []string) (participants, added []string, err error) {
	s, err := e.session(sessionID)
	if err != nil {
		return nil, nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enrollable(); err != nil {
		return nil, nil, err
	}
	added = []string{}
	for _, id := range ids {
		if s.enter(id) {
			added = append(added, id)
		}
	}
	if len(added) > 0 {
		if err := e.commit(s, chain.UsersImported(s.ID, added)); err != nil {
			return nil, nil, err
		}
	}
	return append([]string(nil), s.Participants...), added, nil
}

// enrollable reports whether the session still accepts entries.
// Called with s.mu held.
func (s *Session) enrollable() error {
	if s.DrawComplete {
		return ErrAlreadyDrawn
	}
	if s.Commitment.Revealed() {
		return ErrEnrollmentClosed
	}
	return nil
}

// RevealSeed verifies the secret against the session's commitment and,
// on success, unlocks drawing and records a SEED_REVEALED block. A
// mismatched secret leaves the session unchanged.
func (e *Engine) RevealSeed(sessionID, secret string) error {
	s, err := e.session(sessionID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.DrawComplete {
		return ErrAlreadyDrawn
	}
	if err := s.Commitment.Reveal(secret); err != nil {
		return err
	}
	if err := e.commit(s, chain.SeedRevealed(s.ID, s.Commitment.CommittedHash, secret)); err != nil {
		return err
	}
	slog.Info("seed revealed", "session_id", s.ID)
	return nil
}

// DrawTier draws a tier's winners from the participants who have not won
// in any earlier tier. The count is clamped to the remaining pool. The
// randomness material binds the revealed seed to the chain tip at call
// time, so it was unpredictable at commitment yet is reproducible from
// the published chain. A tier can be drawn at most once.
func (e *Engine) DrawTier(sessionID, tier string, count int) ([]string, error) {
	if count <= 0 {
		return nil, ErrInvalidWinnerCount
	}
	s, err := e.session(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.DrawComplete {
		return nil, ErrAlreadyDrawn
	}
	if !s.Commitment.Revealed() {
		return nil, ErrSeedNotRevealed
	}
	if _, drawn := s.TierWinners[tier]; drawn {
		return nil, ErrTierAlreadyDrawn
	}

	material := drawMaterial(e.chain.LatestHash(), s.Commitment.RevealedSeed, tier)
	winners, err := e.draw(s, tier, material, count, false)
	if err != nil {
		return nil, err
	}
	slog.Info("tier drawn", "session_id", s.ID, "tier", tier, "winners", len(winners))
	return winners, nil
}

// SingleDraw is the legacy one-tier mode: a single draw under the
// "default" tier that completes the session.
func (e *Engine) SingleDraw(sessionID string, count int) ([]string, error) {
	if count <= 0 {
		return nil, ErrInvalidWinnerCount
	}
	s, err := e.session(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.DrawComplete || len(s.TierOrder) > 0 {
		return nil, ErrAlreadyDrawn
	}
	if !s.Commitment.Revealed() {
		return nil, ErrSeedNotRevealed
	}

	material := singleDrawMaterial(e.chain.LatestHash(), s.Commitment.RevealedSeed, len(s.Participants))
	winners, err := e.draw(s, SingleDrawTier, material, count, true)
	if err != nil {
		return nil, err
	}
	slog.Info("single draw complete", "session_id", s.ID, "winners", len(winners))
	return winners, nil
}

// draw runs the selection, records the result, and commits the
// TIER_DRAWN block and snapshot. Called with s.mu held, after all
// validations, so the only failure past this point is the persistence
// write. complete forces DrawComplete regardless of tier configuration.
func (e *Engine) draw(s *Session, tier string, material []byte, count int, complete bool) ([]string, error) {
	remaining := s.remaining()
	if len(remaining) == 0 {
		return nil, ErrNoParticipantsRemaining
	}
	if count > len(remaining) {
		count = len(remaining)
	}

	winners, err := selection.Select(remaining, material, count)
	if err != nil {
		return nil, err
	}
	s.recordDraw(tier, winners)
	if complete {
		s.DrawComplete = true
	}
	s.markCompleteIfDone(e.tiers)
	if err := e.commit(s, chain.TierDrawn(s.ID, tier, winners, hex.EncodeToString(material))); err != nil {
		return nil, err
	}
	return winners, nil
}

// drawMaterial derives tier-draw randomness:
// SHA-256(chainTip ++ revealedSeed ++ tierName).
func drawMaterial(chainTip, revealedSeed, tier string) []byte {
	h := sha256.New()
	h.Write([]byte(chainTip))
	h.Write([]byte(revealedSeed))
	h.Write([]byte(tier))
	return h.Sum(nil)
}

// singleDrawMaterial derives legacy single-draw randomness:
// SHA-256(chainTip ++ revealedSeed ++ decimal participant count).
func singleDrawMaterial(chainTip, revealedSeed string, participants int) []byte {
	h := sha256.New()
	h.Write([]byte(chainTip))
	h.Write([]byte(revealedSeed))
	h.Write([]byte(strconv.Itoa(participants)))
	return h.Sum(nil)
}

// commit appends ev to the chain and writes the whole-state snapshot
// through the store, as one critical section: the new block and the
// session state it belongs to always land in the same snapshot. Called
// with s.mu held. On failure the in-memory mutation and chain append
// stand (the chain is append-only) but the caller sees ErrPersistence
// and must not treat the operation as durable; a restart reloads the
// last successful snapshot.
func (e *Engine) commit(s *Session, ev chain.Event) error {
	e.persistMu.Lock()
	defer e.persistMu.Unlock()

	e.chain.Append(ev)
	e.states[s.ID] = s.state()
	data, err := json.Marshal(snapshot{Sessions: e.states, Chain: e.chain.Blocks()})
	if err != nil {
		return fmt.Errorf("%w: encode snapshot: %v", ErrPersistence, err)
	}
	if err := e.store.Save(data); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func (e *Engine) session(id string) (*Session, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s, ok := e.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Sessions returns a summary of every session keyed by id.
func (e *Engine) Sessions() map[string]Summary {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make(map[string]Summary, len(e.sessions))
	for id, s := range e.sessions {
		s.mu.Lock()
		out[id] = s.summary()
		s.mu.Unlock()
	}
	return out
}

// Session returns one session's summary.
func (e *Engine) Session(id string) (Summary, error) {
	s, err := e.session(id)
	if err != nil {
		return Summary{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary(), nil
}

// Participants returns the enrollment list in insertion order.
func (e *Engine) Participants(sessionID string) ([]string, error) {
	s, err := e.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.Participants...), nil
}

// Winners returns all winners and the per-tier breakdown.
func (e *Engine) Winners(sessionID string) (all []string, tiers map[string][]string, err error) {
	s, err := e.session(sessionID)
	if err != nil {
		return nil, nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	all = append([]string(nil), s.AllWinners...)
	tiers = make(map[string][]string, len(s.TierWinners))
	for tier, winners := range s.TierWinners {
		tiers[tier] = append([]string(nil), winners...)
	}
	return all, tiers, nil
}

// ChainBlocks returns a copy of the audit chain.
func (e *Engine) ChainBlocks() []chain.Block {
	return e.chain.Blocks()
}

// VerifyChain recomputes the full chain linkage.
func (e *Engine) VerifyChain() error {
	return e.chain.Verify()
}

// Tiers returns the configured tier list.
func (e *Engine) Tiers() []TierSpec {
	return append([]TierSpec(nil), e.tiers...)
}
