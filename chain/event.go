// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chain

// Event type constants. The set is closed: events are only built through
// the constructors below so every block payload has a fixed field shape.
const (
	EventGenesis        = "GENESIS"
	EventSessionCreated = "SESSION_CREATED"
	EventUserEntered    = "USER_ENTERED"
	EventUsersImported  = "USERS_IMPORTED"
	EventSeedRevealed   = "SEED_REVEALED"
	EventTierDrawn      = "TIER_DRAWN"
)

// Event is the payload carried by a Block. Field order is fixed so the
// JSON form, and therefore the block hash, is deterministic.
type Event struct {
	Type         string   `json:"type"`
	SessionID    string   `json:"session_id,omitempty"`
	SessionName  string   `json:"session_name,omitempty"`
	SeedHash     string   `json:"seed_hash,omitempty"`
	Seed         string   `json:"seed,omitempty"`
	Participant  string   `json:"participant,omitempty"`
	Participants []string `json:"participants,omitempty"`
	Tier         string   `json:"tier,omitempty"`
	Winners      []string `json:"winners,omitempty"`
	Material     string   `json:"material,omitempty"`
	Note         string   `json:"note,omitempty"`
}

// Genesis is the payload of the first block.
func Genesis() Event {
	return Event{Type: EventGenesis, Note: "genesis block"}
}

// SessionCreated records a new session and its seed commitment hash.
func SessionCreated(sessionID, name, seedHash string) Event {
	return Event{
		Type:        EventSessionCreated,
		SessionID:   sessionID,
		SessionName: name,
		SeedHash:    seedHash,
	}
}

// UserEntered records a single enrollment.
func UserEntered(sessionID, participant string) Event {
	return Event{
		Type:        EventUserEntered,
		SessionID:   sessionID,
		Participant: participant,
	}
}

// UsersImported records a bulk enrollment; participants holds only the
// identifiers that were actually added.
func UsersImported(sessionID string, participants []string) Event {
	return Event{
		Type:         EventUsersImported,
		SessionID:    sessionID,
		Participants: participants,
	}
}

// SeedRevealed records a successful reveal. Both the committed hash and
// the seed are carried so observers can confirm the match from the chain
// alone.
func SeedRevealed(sessionID, seedHash, seed string) Event {
	return Event{
		Type:      EventSeedRevealed,
		SessionID: sessionID,
		SeedHash:  seedHash,
		Seed:      seed,
	}
}

// TierDrawn records a tier draw: the winners in draw order and the hex
// digest of the selection material, for independent verification.
func TierDrawn(sessionID, tier string, winners []string, material string) Event {
	return Event{
		Type:      EventTierDrawn,
		SessionID: sessionID,
		Tier:      tier,
		Winners:   winners,
		Material:  material,
	}
}
