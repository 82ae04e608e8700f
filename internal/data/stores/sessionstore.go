// Package stores provides persistence implementations for the review
// session cache.
package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/inkfold/redline/internal/core/review"
)

// sessionFile is the root JSON structure stored on disk. The cache is a
// single slot: a nil Session means the slot is empty.
type sessionFile struct {
	Session *review.Session `json:"session"`
}

// SessionFileStore implements review.Store using a single JSON file.
// Writes go through a temp file and rename so a crash mid-write cannot
// leave a truncated cache.
type SessionFileStore struct {
	path string
	mu   sync.RWMutex
}

var _ review.Store = (*SessionFileStore)(nil)

// NewSessionFileStore creates a store persisting to session.json under the
// given data directory.
func NewSessionFileStore(dataDir string) *SessionFileStore {
	return &SessionFileStore{path: filepath.Join(dataDir, "session.json")}
}

// SaveSession persists the session, replacing any previously saved one.
func (s *SessionFileStore) SaveSession(ctx context.Context, sess review.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(sessionFile{Session: &sess})
}

// GetSession returns the persisted session with the given ID.
func (s *SessionFileStore) GetSession(ctx context.Context, id string) (review.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.load()
	if err != nil {
		return review.Session{}, err
	}

	if file.Session == nil || file.Session.ID != id {
		return review.Session{}, review.ErrSessionNotFound
	}

	return *file.Session, nil
}

// GetSessionForFile returns the persisted session for the given project and
// file path.
func (s *SessionFileStore) GetSessionForFile(ctx context.Context, projectName, filePath string) (review.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.load()
	if err != nil {
		return review.Session{}, err
	}

	if file.Session == nil ||
		file.Session.ProjectName != projectName ||
		file.Session.FilePath != filePath {
		return review.Session{}, review.ErrSessionNotFound
	}

	return *file.Session, nil
}

// Latest returns whatever session currently occupies the slot.
func (s *SessionFileStore) Latest(ctx context.Context) (review.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.load()
	if err != nil {
		return review.Session{}, err
	}

	if file.Session == nil {
		return review.Session{}, review.ErrSessionNotFound
	}

	return *file.Session, nil
}

// ClearAll empties the session slot by removing the cache file.
func (s *SessionFileStore) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session cache: %w", err)
	}
	return nil
}

// load reads the cache file. A missing file is an empty slot, reported as
// ErrSessionNotFound.
func (s *SessionFileStore) load() (sessionFile, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return sessionFile{}, review.ErrSessionNotFound
	}
	if err != nil {
		return sessionFile{}, fmt.Errorf("read session cache: %w", err)
	}

	var file sessionFile
	if err := json.Unmarshal(data, &file); err != nil {
		return sessionFile{}, fmt.Errorf("parse session cache: %w", err)
	}

	return file, nil
}

func (s *SessionFileStore) save(file sessionFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session cache: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write session cache: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session cache: %w", err)
	}

	return nil
}
