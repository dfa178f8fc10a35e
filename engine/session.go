// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"sync"

	"github.com/danielhkuo/fairdraw/seed"
)

// Session aggregates a seed commitment, the participant registry, and
// per-tier winner records for one draw. All fields are guarded by mu,
// which the engine holds across every mutating operation so that two
// concurrent draws of the same tier cannot both succeed.
type Session struct {
	mu sync.Mutex

	ID           string
	Name         string
	Commitment   seed.Commitment
	Participants []string            // insertion order, no duplicates
	TierWinners  map[string][]string // winners in draw order
	TierOrder    []string            // tiers in the order they were drawn
	AllWinners   []string            // union of tier winners, in draw order
	DrawComplete bool

	enrolled map[string]bool
	won      map[string]bool
}

// SessionState is the serializable form of a Session, used in snapshots.
type SessionState struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Commitment   seed.Commitment     `json:"commitment"`
	Participants []string            `json:"participants"`
	TierWinners  map[string][]string `json:"tier_winners"`
	TierOrder    []string            `json:"tier_order"`
	AllWinners   []string            `json:"all_winners"`
	DrawComplete bool                `json:"draw_complete"`
}

// Summary is the read-only view returned by session listings.
type Summary struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	CommittedHash    string   `json:"committed_hash"`
	Revealed         bool     `json:"revealed"`
	ParticipantCount int      `json:"participant_count"`
	TiersDrawn       []string `json:"tiers_drawn"`
	DrawComplete     bool     `json:"draw_complete"`
}

func newSession(id, name string, commitment seed.Commitment) *Session {
	return &Session{
		ID:           id,
		Name:         name,
		Commitment:   commitment,
		Participants: []string{},
		TierWinners:  map[string][]string{},
		TierOrder:    []string{},
		AllWinners:   []string{},
		enrolled:     map[string]bool{},
		won:          map[string]bool{},
	}
}

// sessionFromState rebuilds a session, including its lookup sets, from a
// stored snapshot.
func sessionFromState(st SessionState) *Session {
	s := newSession(st.ID, st.Name, st.Commitment)
	s.DrawComplete = st.DrawComplete
	for _, p := range st.Participants {
		s.Participants = append(s.Participants, p)
		s.enrolled[p] = true
	}
	for tier, winners := range st.TierWinners {
		s.TierWinners[tier] = append([]string(nil), winners...)
	}
	s.TierOrder = append(s.TierOrder, st.TierOrder...)
	for _, w := range st.AllWinners {
		s.AllWinners = append(s.AllWinners, w)
		s.won[w] = true
	}
	return s
}

// The methods below do not lock; the engine holds s.mu.

// state copies the session into its serializable form.
func (s *Session) state() SessionState {
	st := SessionState{
		ID:           s.ID,
		Name:         s.Name,
		Commitment:   s.Commitment,
		Participants: append([]string(nil), s.Participants...),
		TierWinners:  make(map[string][]string, len(s.TierWinners)),
		TierOrder:    append([]string(nil), s.TierOrder...),
		AllWinners:   append([]string(nil), s.AllWinners...),
		DrawComplete: s.DrawComplete,
	}
	for tier, winners := range s.TierWinners {
		st.TierWinners[tier] = append([]string(nil), winners...)
	}
	return st
}

func (s *Session) summary() Summary {
	return Summary{
		ID:               s.ID,
		Name:             s.Name,
		CommittedHash:    s.Commitment.CommittedHash,
		Revealed:         s.Commitment.Revealed(),
		ParticipantCount: len(s.Participants),
		TiersDrawn:       append([]string(nil), s.TierOrder...),
		DrawComplete:     s.DrawComplete,
	}
}

// enter appends a participant; returns false for an already-enrolled
// identifier.
func (s *Session) enter(participant string) bool {
	if s.enrolled[participant] {
		return false
	}
	s.enrolled[participant] = true
	s.Participants = append(s.Participants, participant)
	return true
}

// remaining returns participants who have not won in any earlier tier,
// in enrollment order.
func (s *Session) remaining() []string {
	out := make([]string, 0, len(s.Participants)-len(s.AllWinners))
	for _, p := range s.Participants {
		if !s.won[p] {
			out = append(out, p)
		}
	}
	return out
}

// recordDraw stores a tier's winners and unions them into AllWinners.
func (s *Session) recordDraw(tier string, winners []string) {
	s.TierWinners[tier] = append([]string(nil), winners...)
	s.TierOrder = append(s.TierOrder, tier)
	for _, w := range winners {
		s.won[w] = true
		s.AllWinners = append(s.AllWinners, w)
	}
}

// markCompleteIfDone flips DrawComplete once every configured tier has
// been drawn.
func (s *Session) markCompleteIfDone(tiers []TierSpec) {
	if len(tiers) == 0 {
		return
	}
	for _, t := range tiers {
		if _, drawn := s.TierWinners[t.Name]; !drawn {
			return
		}
	}
	s.DrawComplete = true
}
