package review

import (
	"strings"

	"github.com/inkfold/redline/pkg/textrange"
)

// FindPassage locates the first exact occurrence of passage in content and
// returns its byte range. Matching is verbatim; there is no fuzzy or
// normalized search. Returns false when the passage is empty or absent.
//
// This is a query only. Callers use it to highlight the current issue, to
// disable accept/custom when the passage is gone, and to position scrolling.
func FindPassage(content, passage string) (textrange.Range, bool) {
	if passage == "" {
		return textrange.Range{}, false
	}

	i := strings.Index(content, passage)
	if i < 0 {
		return textrange.Range{}, false
	}

	return textrange.Range{Start: i, End: i + len(passage)}, true
}

// CurrentPassageRange locates the current issue's passage in the working
// buffer. Returns false when the session has no issues or the passage is
// not present (for example after an earlier accepted edit consumed it).
func (s *Session) CurrentPassageRange() (textrange.Range, bool) {
	iss := s.CurrentIssue()
	if iss == nil {
		return textrange.Range{}, false
	}
	return FindPassage(s.WorkingContent, iss.Passage)
}
