package session

import (
	"context"

	"github.com/google/uuid"
)

// Session is one client session: an opaque ID plus string values.
type Session struct {
	ID     string            `json:"id"`
	Values map[string]string `json:"values"`
}

// New creates an empty session with a fresh ID.
func New() Session {
	return Session{
		ID:     uuid.New().String(),
		Values: make(map[string]string),
	}
}

// Store persists sessions between requests.
type Store interface {
	// Load returns the session for id. The second result reports
	// whether the session exists.
	Load(ctx context.Context, id string) (Session, bool, error)
	Save(ctx context.Context, s Session) error
	Delete(ctx context.Context, id string) error
}
