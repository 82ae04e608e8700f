package review

import (
	"fmt"
	"strings"
)

// passagePreviewLen is the number of leading characters of a missing
// passage quoted in its error message.
const passagePreviewLen = 40

// Result is the outcome of folding review decisions into the original text.
// Content always carries whatever text was successfully produced, even when
// some edits could not be applied; Errors lists one human-readable message
// per unapplicable edit. Success is true only when Errors is empty.
type Result struct {
	Success bool     `json:"success"`
	Content string   `json:"content"`
	Errors  []string `json:"errors,omitempty"`
}

// Apply folds all accepted and custom decisions over the original content
// and returns the final text.
//
// Decisions are applied strictly in report order against a running buffer:
// each replacement targets the first verbatim occurrence of its passage in
// the content produced by the previous steps. This keeps later passages
// locatable after earlier edits shift surrounding text, as long as the
// passage itself was not consumed. A passage that is no longer present is
// reported in Errors and skipped; it is never retried against the original
// and the running buffer is left untouched by that step.
//
// Apply is a pure function: it never mutates its inputs and repeated calls
// with the same inputs return identical results.
func Apply(original string, issues []Issue) Result {
	var changes []Issue
	for _, iss := range issues {
		if iss.Decided() {
			changes = append(changes, iss)
		}
	}

	if len(changes) == 0 {
		return Result{Success: true, Content: original}
	}

	content := original
	var errs []string

	for _, iss := range changes {
		if !strings.Contains(content, iss.Passage) {
			errs = append(errs, fmt.Sprintf("Could not find: \"%s\"...", passagePreview(iss.Passage)))
			continue
		}
		content = strings.Replace(content, iss.Passage, iss.EffectiveReplacement(), 1)
	}

	return Result{
		Success: len(errs) == 0,
		Content: content,
		Errors:  errs,
	}
}

func passagePreview(passage string) string {
	runes := []rune(passage)
	if len(runes) <= passagePreviewLen {
		return passage
	}
	return string(runes[:passagePreviewLen])
}
