package review

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/inkfold/redline/internal/core/report"
)

// Service owns the active review session and its state-machine transitions.
//
// All computation is synchronous and in-memory; the store is a best-effort
// cache written after every mutation. A failed write is logged and never
// surfaced, so the review remains usable when the cache is unreachable.
// The service assumes a single reviewer; concurrent callers get last-write-
// wins semantics at the store.
type Service struct {
	store   Store
	logger  zerolog.Logger
	now     func() time.Time
	current *Session
}

// NewService creates a review service backed by the given session store.
func NewService(store Store, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Current returns the active session, or nil when none exists.
func (s *Service) Current() *Session {
	return s.current
}

// CurrentIssue returns the issue under the review cursor, or nil.
func (s *Service) CurrentIssue() *Issue {
	if s.current == nil {
		return nil
	}
	return s.current.CurrentIssue()
}

// Init parses the report and starts a new review session over the given
// manuscript. On parser failure (unreadable report or zero suggestions) no
// session is created and the parser error is returned.
func (s *Service) Init(ctx context.Context, projectName, fileName, filePath, manuscript, reportText string) error {
	suggestions, err := report.Parse(reportText)
	if err != nil {
		return err
	}
	if len(suggestions) == 0 {
		return report.ErrNoIssues
	}

	issues := make([]Issue, len(suggestions))
	for i, sug := range suggestions {
		issues[i] = Issue{
			Passage:     sug.Passage,
			Issues:      sug.Issues,
			Replacement: sug.Replacement,
			Explanation: sug.Explanation,
			Status:      StatusPending,
		}
	}

	now := s.now()
	s.current = &Session{
		ID:              uuid.NewString(),
		ProjectName:     projectName,
		FileName:        fileName,
		FilePath:        filePath,
		OriginalContent: manuscript,
		WorkingContent:  manuscript,
		Issues:          issues,
		CurrentIndex:    0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	s.logger.Info().
		Str("session_id", s.current.ID).
		Str("file", filePath).
		Int("issues", len(issues)).
		Msg("review session started")

	s.persist(ctx)
	return nil
}

// Resume loads a previously persisted session by ID.
func (s *Service) Resume(ctx context.Context, id string) error {
	sess, err := s.store.GetSession(ctx, id)
	if err != nil {
		return fmt.Errorf("resume session %s: %w", id, err)
	}
	s.adopt(sess)
	return nil
}

// ResumeActive loads whatever session currently occupies the store slot.
func (s *Service) ResumeActive(ctx context.Context) error {
	sess, err := s.store.Latest(ctx)
	if err != nil {
		return fmt.Errorf("resume active session: %w", err)
	}
	s.adopt(sess)
	return nil
}

// CheckForExisting looks up a persisted session for the given project and
// file. It is a best-effort helper for resume-on-reopen: every failure is
// swallowed and reported as no session.
func (s *Service) CheckForExisting(ctx context.Context, projectName, filePath string) *Session {
	sess, err := s.store.GetSessionForFile(ctx, projectName, filePath)
	if err != nil {
		s.logger.Debug().Err(err).Str("file", filePath).Msg("no resumable session")
		return nil
	}
	return &sess
}

// AcceptCurrent marks the issue under the cursor as accepted. Re-accepting
// a customized issue discards its custom replacement. Returns false when
// there is no session or no issues.
func (s *Service) AcceptCurrent(ctx context.Context) bool {
	iss := s.CurrentIssue()
	if iss == nil {
		return false
	}

	iss.Status = StatusAccepted
	iss.CustomReplacement = ""
	s.current.Touch(s.now())
	s.persist(ctx)
	return true
}

// ApplyCustom marks the issue under the cursor as customized with the given
// replacement text. Returns false when there is no session or no issues.
func (s *Service) ApplyCustom(ctx context.Context, text string) bool {
	iss := s.CurrentIssue()
	if iss == nil {
		return false
	}

	iss.Status = StatusCustom
	iss.CustomReplacement = text
	s.current.Touch(s.now())
	s.persist(ctx)
	return true
}

// ResetCurrent returns the issue under the cursor to pending, discarding
// any recorded decision. Returns false when there is no session or issues.
func (s *Service) ResetCurrent(ctx context.Context) bool {
	iss := s.CurrentIssue()
	if iss == nil {
		return false
	}

	iss.Status = StatusPending
	iss.CustomReplacement = ""
	s.current.Touch(s.now())
	s.persist(ctx)
	return true
}

// GoTo moves the review cursor to index i, clamped to the valid range.
// A move that does not change the cursor is a no-op and is not persisted.
func (s *Service) GoTo(ctx context.Context, i int) {
	if s.current == nil || len(s.current.Issues) == 0 {
		return
	}

	next := s.current.ClampIndex(i)
	if next == s.current.CurrentIndex {
		return
	}

	s.current.CurrentIndex = next
	s.current.Touch(s.now())
	s.persist(ctx)
}

// Next advances the review cursor by one, clamped at the last issue.
func (s *Service) Next(ctx context.Context) {
	if s.current == nil {
		return
	}
	s.GoTo(ctx, s.current.CurrentIndex+1)
}

// Prev moves the review cursor back by one, clamped at the first issue.
func (s *Service) Prev(ctx context.Context) {
	if s.current == nil {
		return
	}
	s.GoTo(ctx, s.current.CurrentIndex-1)
}

// WorkingContent returns the preview buffer for the active session.
func (s *Service) WorkingContent() string {
	if s.current == nil {
		return ""
	}
	return s.current.WorkingContent
}

// Stats returns review progress for the active session.
func (s *Service) Stats() Stats {
	if s.current == nil {
		return Stats{}
	}
	return s.current.Stats()
}

// FinalContent folds all recorded decisions over the original content and
// returns the result. It does not mutate session state and is safe to call
// repeatedly. Returns ErrNoSession when no session is active.
func (s *Service) FinalContent() (Result, error) {
	if s.current == nil {
		return Result{}, ErrNoSession
	}
	return Apply(s.current.OriginalContent, s.current.Issues), nil
}

// Close wipes the persisted session slot and resets in-memory state. The
// in-memory reset happens unconditionally; a failed wipe is logged only.
func (s *Service) Close(ctx context.Context) {
	s.current = nil
	if err := s.store.ClearAll(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to clear session store")
	}
}

func (s *Service) adopt(sess Session) {
	s.current = &sess
	// Guard against a cache entry written by an older client.
	s.current.CurrentIndex = s.current.ClampIndex(s.current.CurrentIndex)
	for i := range s.current.Issues {
		iss := &s.current.Issues[i]
		if !iss.Status.Valid() {
			iss.Status = StatusPending
			iss.CustomReplacement = ""
		}
	}
}

// persist writes the active session to the store. Best effort: failures are
// logged and never gate the in-memory state transition.
func (s *Service) persist(ctx context.Context) {
	if s.current == nil {
		return
	}
	if err := s.store.SaveSession(ctx, *s.current); err != nil {
		s.logger.Warn().
			Err(err).
			Str("session_id", s.current.ID).
			Msg("failed to persist review session")
	}
}
