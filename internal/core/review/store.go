package review

import (
	"context"
	"errors"
)

// Sentinel errors for review operations.
var (
	ErrSessionNotFound = errors.New("review session not found")
	ErrNoSession       = errors.New("no active review session")
)

// Store defines persistence operations for review sessions.
//
// The contract is a single-slot session cache: at most one active session is
// persisted at a time, SaveSession overwrites the slot, and ClearAll wipes
// it. Lookups are by session ID or by (projectName, filePath). Last write
// wins; the store provides no multi-writer coordination.
type Store interface {
	// SaveSession persists the session, replacing any previously saved one.
	SaveSession(ctx context.Context, s Session) error

	// GetSession returns the persisted session with the given ID.
	// Returns ErrSessionNotFound if the slot is empty or holds another session.
	GetSession(ctx context.Context, id string) (Session, error)

	// GetSessionForFile returns the persisted session for the given project
	// and file path. Returns ErrSessionNotFound if none matches.
	GetSessionForFile(ctx context.Context, projectName, filePath string) (Session, error)

	// Latest returns whatever session currently occupies the slot.
	// Returns ErrSessionNotFound when the slot is empty.
	Latest(ctx context.Context) (Session, error)

	// ClearAll empties the session slot.
	ClearAll(ctx context.Context) error
}
