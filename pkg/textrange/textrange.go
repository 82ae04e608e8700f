// Package textrange provides byte-offset ranges into text buffers and
// helpers for translating offsets to human-readable positions.
package textrange

import "strings"

// Range is a half-open [Start, End) byte range into a text buffer.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Position is a 1-based line and column location in a text buffer.
// Column counts bytes from the start of the line.
type Position struct {
	Line   int
	Column int
}

// PositionOf translates a byte offset into a line/column position.
// Offsets are clamped to the buffer bounds.
func PositionOf(content string, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(content) {
		offset = len(content)
	}

	before := content[:offset]
	line := strings.Count(before, "\n") + 1
	col := offset - (strings.LastIndex(before, "\n") + 1) + 1

	return Position{Line: line, Column: col}
}
