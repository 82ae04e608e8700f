package stores

import (
	"context"

	"github.com/inkfold/redline/internal/core/review"
	"github.com/inkfold/redline/pkg/slot"
)

// MemorySessionStore implements review.Store in memory. It is used by
// tests and by embedders that want a review without disk persistence.
type MemorySessionStore struct {
	slot *slot.Slot[review.Session]
}

var _ review.Store = (*MemorySessionStore)(nil)

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{slot: slot.New[review.Session]()}
}

// SaveSession stores the session, replacing any previous one.
func (s *MemorySessionStore) SaveSession(ctx context.Context, sess review.Session) error {
	s.slot.Put(sess)
	return nil
}

// GetSession returns the stored session with the given ID.
func (s *MemorySessionStore) GetSession(ctx context.Context, id string) (review.Session, error) {
	sess, ok := s.slot.Get()
	if !ok || sess.ID != id {
		return review.Session{}, review.ErrSessionNotFound
	}
	return sess, nil
}

// GetSessionForFile returns the stored session for the given project and
// file path.
func (s *MemorySessionStore) GetSessionForFile(ctx context.Context, projectName, filePath string) (review.Session, error) {
	sess, ok := s.slot.Get()
	if !ok || sess.ProjectName != projectName || sess.FilePath != filePath {
		return review.Session{}, review.ErrSessionNotFound
	}
	return sess, nil
}

// Latest returns whatever session currently occupies the slot.
func (s *MemorySessionStore) Latest(ctx context.Context) (review.Session, error) {
	sess, ok := s.slot.Get()
	if !ok {
		return review.Session{}, review.ErrSessionNotFound
	}
	return sess, nil
}

// ClearAll empties the session slot.
func (s *MemorySessionStore) ClearAll(ctx context.Context) error {
	s.slot.Clear()
	return nil
}
