// Package report parses AI-generated edit reports into structured
// suggestions.
//
// A report is plain text containing zero or more suggestion blocks. Each
// block is introduced by a [PASSAGE] marker line and carries [ISSUES],
// [REPLACEMENT], and [EXPLANATION] sections. Marker matching is
// case-insensitive and ignores surrounding whitespace; section bodies run
// until the next marker and are trimmed of surrounding blank space. The
// block syntax is owned by this package; report generation is external.
package report

import (
	"bufio"
	"errors"
	"strings"
)

// Sentinel errors surfaced to callers attempting to start a review.
var (
	// ErrInvalidReport indicates the report lacks the structural markers
	// required to extract suggestions.
	ErrInvalidReport = errors.New("report does not contain readable issues")

	// ErrNoIssues indicates a structurally valid report with zero
	// complete suggestion blocks.
	ErrNoIssues = errors.New("no issues found in report")
)

// Suggestion is one extracted edit suggestion, in document order.
type Suggestion struct {
	Passage     string
	Issues      string
	Replacement string
	Explanation string
}

type section int

const (
	sectionNone section = iota
	sectionPassage
	sectionIssues
	sectionReplacement
	sectionExplanation
)

func markerOf(line string) (section, bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "[passage]":
		return sectionPassage, true
	case "[issues]":
		return sectionIssues, true
	case "[replacement]":
		return sectionReplacement, true
	case "[explanation]":
		return sectionExplanation, true
	}
	return sectionNone, false
}

// IsValid reports whether the text has the structural shape of an edit
// report: at least one passage marker and at least one replacement marker.
// It is a cheap pre-check; Parse applies the full per-block rules.
func IsValid(reportText string) bool {
	var hasPassage, hasReplacement bool

	scanner := bufio.NewScanner(strings.NewReader(reportText))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		switch sec, ok := markerOf(scanner.Text()); {
		case !ok:
		case sec == sectionPassage:
			hasPassage = true
		case sec == sectionReplacement:
			hasReplacement = true
		}
	}

	return hasPassage && hasReplacement
}

// Parse extracts all suggestion blocks from the report in document order.
// Returns ErrInvalidReport when the report lacks the required structure.
// Blocks with an empty passage or without a replacement section are
// skipped; a valid report may therefore yield an empty slice.
func Parse(reportText string) ([]Suggestion, error) {
	if !IsValid(reportText) {
		return nil, ErrInvalidReport
	}

	var (
		suggestions []Suggestion
		bodies      map[section]*strings.Builder
		seen        map[section]bool
		active      section
	)

	flush := func() {
		if bodies == nil {
			return
		}
		sug := Suggestion{
			Passage:     body(bodies, sectionPassage),
			Issues:      body(bodies, sectionIssues),
			Replacement: body(bodies, sectionReplacement),
			Explanation: body(bodies, sectionExplanation),
		}
		// A suggestion must anchor to a passage and carry a replacement
		// section. An empty replacement body is allowed: it deletes the
		// passage.
		if sug.Passage != "" && seen[sectionReplacement] {
			suggestions = append(suggestions, sug)
		}
		bodies = nil
		seen = nil
		active = sectionNone
	}

	scanner := bufio.NewScanner(strings.NewReader(reportText))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		sec, isMarker := markerOf(line)
		if isMarker {
			if sec == sectionPassage {
				flush()
				bodies = make(map[section]*strings.Builder)
				seen = make(map[section]bool)
			}
			if bodies != nil {
				seen[sec] = true
				active = sec
			}
			continue
		}

		if bodies == nil || active == sectionNone {
			continue // preamble text before the first block
		}

		b, ok := bodies[active]
		if !ok {
			b = &strings.Builder{}
			bodies[active] = b
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line)
	}

	if err := scanner.Err(); err != nil {
		return nil, ErrInvalidReport
	}

	flush()

	return suggestions, nil
}

func body(bodies map[section]*strings.Builder, sec section) string {
	b, ok := bodies[sec]
	if !ok {
		return ""
	}
	return strings.TrimSpace(b.String())
}
