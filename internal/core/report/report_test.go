package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `Here is my review of the chapter.

[PASSAGE]
The cat sat on the mat.
[ISSUES]
Flat verb choice.
[REPLACEMENT]
The cat napped on the mat.
[EXPLANATION]
"Napped" is more evocative.

[PASSAGE]
The dog ran fast.
[ISSUES]
Weak adverb.
[REPLACEMENT]
The dog sprinted.
[EXPLANATION]
Stronger verb removes the adverb.
`

func TestIsValid(t *testing.T) {
	tests := []struct {
		name   string
		report string
		want   bool
	}{
		{
			name:   "complete report",
			report: sampleReport,
			want:   true,
		},
		{
			name:   "empty report",
			report: "",
			want:   false,
		},
		{
			name:   "prose without markers",
			report: "This chapter is fine as written. No changes needed.",
			want:   false,
		},
		{
			name:   "passage marker without replacement",
			report: "[PASSAGE]\nThe cat sat on the mat.\n[ISSUES]\nFlat.",
			want:   false,
		},
		{
			name:   "markers are case-insensitive",
			report: "[passage]\ntext\n[Replacement]\nbetter text",
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.report))
		})
	}
}

func TestParse(t *testing.T) {
	suggestions, err := Parse(sampleReport)
	require.NoError(t, err)
	require.Len(t, suggestions, 2)

	assert.Equal(t, "The cat sat on the mat.", suggestions[0].Passage)
	assert.Equal(t, "Flat verb choice.", suggestions[0].Issues)
	assert.Equal(t, "The cat napped on the mat.", suggestions[0].Replacement)
	assert.Equal(t, `"Napped" is more evocative.`, suggestions[0].Explanation)

	assert.Equal(t, "The dog ran fast.", suggestions[1].Passage)
	assert.Equal(t, "The dog sprinted.", suggestions[1].Replacement)
}

func TestParse_InvalidReport(t *testing.T) {
	tests := []struct {
		name   string
		report string
	}{
		{name: "empty", report: ""},
		{name: "no markers", report: "Looks good to me."},
		{name: "only passage marker", report: "[PASSAGE]\nsome text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestions, err := Parse(tt.report)
			assert.ErrorIs(t, err, ErrInvalidReport)
			assert.Nil(t, suggestions)
		})
	}
}

func TestParse_MultilinePassage(t *testing.T) {
	rpt := "[PASSAGE]\nFirst line.\nSecond line.\n[REPLACEMENT]\nBoth lines, tightened."

	suggestions, err := Parse(rpt)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)

	assert.Equal(t, "First line.\nSecond line.", suggestions[0].Passage)
	assert.Empty(t, suggestions[0].Issues)
	assert.Empty(t, suggestions[0].Explanation)
}

func TestParse_SkipsIncompleteBlocks(t *testing.T) {
	rpt := `[PASSAGE]
[ISSUES]
Passage body is missing, block must be skipped.
[REPLACEMENT]
whatever

[PASSAGE]
A real passage.
[REPLACEMENT]
A real replacement.
`

	suggestions, err := Parse(rpt)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "A real passage.", suggestions[0].Passage)
}

func TestParse_EmptyReplacementDeletes(t *testing.T) {
	// A present-but-empty replacement section is a deletion edit.
	rpt := "[PASSAGE]\nRemove this sentence.\n[REPLACEMENT]\n[EXPLANATION]\nRedundant."

	suggestions, err := Parse(rpt)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Empty(t, suggestions[0].Replacement)
	assert.Equal(t, "Redundant.", suggestions[0].Explanation)
}

func TestParse_IgnoresPreamble(t *testing.T) {
	rpt := `Some preamble from the model that is not part of any block.

[PASSAGE]
Target text.
[REPLACEMENT]
Better text.`

	suggestions, err := Parse(rpt)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Target text.", suggestions[0].Passage)
	assert.Equal(t, "Better text.", suggestions[0].Replacement)
}
