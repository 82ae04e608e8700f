// Package review implements the deferred-edit review engine: issue and
// session domain types, the session state machine, passage location, and
// the commit-time patch applier.
package review

import "time"

// Status represents the review decision recorded for a single issue.
type Status string

// Review decision states.
const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusCustom   Status = "custom"
)

// Valid returns true if the status is one of the known decision states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusCustom:
		return true
	}
	return false
}

// Issue is one AI-suggested edit extracted from a report, anchored to a
// verbatim passage in the source text.
//
// CustomReplacement is meaningful only when Status is StatusCustom; it is
// cleared whenever the issue leaves that state.
type Issue struct {
	Passage           string `json:"passage"`
	Issues            string `json:"issues"`
	Replacement       string `json:"replacement"`
	Explanation       string `json:"explanation"`
	Status            Status `json:"status"`
	CustomReplacement string `json:"custom_replacement,omitempty"`
}

// Decided returns true if the issue carries a decision that will be folded
// into the final content.
func (i Issue) Decided() bool {
	return i.Status == StatusAccepted || i.Status == StatusCustom
}

// EffectiveReplacement returns the text that will replace the passage at
// commit time: the custom replacement when one was recorded, otherwise the
// suggested replacement.
func (i Issue) EffectiveReplacement() string {
	if i.Status == StatusCustom && i.CustomReplacement != "" {
		return i.CustomReplacement
	}
	return i.Replacement
}

// Session is the reviewable unit of work for one manuscript file.
//
// OriginalContent is an immutable snapshot taken at session creation.
// WorkingContent is the preview buffer shown during review; edits are never
// applied to it mid-review, so it equals OriginalContent for the life of the
// session. The separation exists so a future live-preview mode can diverge
// the two without changing the persisted shape.
type Session struct {
	ID              string    `json:"id"`
	ProjectName     string    `json:"project_name"`
	FileName        string    `json:"file_name"`
	FilePath        string    `json:"file_path"`
	OriginalContent string    `json:"original_content"`
	WorkingContent  string    `json:"working_content"`
	Issues          []Issue   `json:"issues"`
	CurrentIndex    int       `json:"current_index"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Stats summarizes review progress. It is derived from the issue list on
// demand and never stored, so it cannot drift from the source of truth.
type Stats struct {
	Total    int `json:"total"`
	Accepted int `json:"accepted"`
	Custom   int `json:"custom"`
	Pending  int `json:"pending"`
}

// Stats scans the issue list and returns current progress counts.
func (s *Session) Stats() Stats {
	st := Stats{Total: len(s.Issues)}
	for _, iss := range s.Issues {
		switch iss.Status {
		case StatusAccepted:
			st.Accepted++
		case StatusCustom:
			st.Custom++
		default:
			st.Pending++
		}
	}
	return st
}

// CurrentIssue returns a pointer to the issue under the review cursor, or
// nil when the session has no issues.
func (s *Session) CurrentIssue() *Issue {
	if len(s.Issues) == 0 {
		return nil
	}
	return &s.Issues[s.CurrentIndex]
}

// ClampIndex constrains i to the valid cursor range for this session.
// With no issues the only valid cursor is 0.
func (s *Session) ClampIndex(i int) int {
	if i < 0 || len(s.Issues) == 0 {
		return 0
	}
	if i > len(s.Issues)-1 {
		return len(s.Issues) - 1
	}
	return i
}

// Touch bumps the modification timestamp.
func (s *Session) Touch(now time.Time) {
	s.UpdatedAt = now
}
