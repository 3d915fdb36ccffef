package session

import (
	"time"

	"github.com/roversim/plateau/rover/service"
)

// SessionPersistence defines the interface for persisting sessions.
type SessionPersistence interface {
	// Save persists a session to storage
	Save(sess *service.Session) error

	// Load retrieves a session from storage by ID
	Load(id string) (*service.Session, error)

	// Delete removes a session from storage
	Delete(id string) error

	// ListAll returns all persisted session IDs
	ListAll() ([]string, error)

	// Exists checks if a session exists in storage
	Exists(id string) bool
}

// PersistedSessionData is the JSON structure for persisted sessions. Only the
// raw mission text is stored; the mission is re-parsed on load, which keeps
// the file format independent of internal types and guarantees a restored
// session still satisfies the parser.
type PersistedSessionData struct {
	ID             string             `json:"id"`
	MissionName    string             `json:"mission_name"`
	MissionText    string             `json:"mission_text"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	Result         *service.RunResult `json:"result,omitempty"`
}
