package review

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manuscript = "The cat sat on the mat. The dog ran fast."

func TestApply_Identity(t *testing.T) {
	issues := []Issue{
		{Passage: "The cat sat on the mat.", Replacement: "x", Status: StatusPending},
		{Passage: "The dog ran fast.", Replacement: "y", Status: StatusPending},
	}

	result := Apply(manuscript, issues)

	assert.True(t, result.Success)
	assert.Equal(t, manuscript, result.Content)
	assert.Nil(t, result.Errors)
}

func TestApply_NoIssues(t *testing.T) {
	result := Apply(manuscript, nil)

	assert.True(t, result.Success)
	assert.Equal(t, manuscript, result.Content)
}

func TestApply_SingleAccepted(t *testing.T) {
	issues := []Issue{
		{
			Passage:     "The cat sat on the mat.",
			Replacement: "The cat napped on the mat.",
			Status:      StatusAccepted,
		},
	}

	result := Apply(manuscript, issues)

	assert.True(t, result.Success)
	assert.Equal(t, "The cat napped on the mat. The dog ran fast.", result.Content)
	assert.Nil(t, result.Errors)
}

func TestApply_PassageAbsent(t *testing.T) {
	issues := []Issue{
		{
			Passage:     "The bird flew away.",
			Replacement: "The bird soared away.",
			Status:      StatusAccepted,
		},
	}

	result := Apply(manuscript, issues)

	assert.False(t, result.Success)
	assert.Equal(t, manuscript, result.Content, "content must be unchanged")
	require.Len(t, result.Errors, 1)
	assert.Equal(t, `Could not find: "The bird flew away."...`, result.Errors[0])
}

func TestApply_LongPassagePreviewTruncated(t *testing.T) {
	passage := strings.Repeat("abcdefghij", 10) // 100 chars, not in content

	result := Apply(manuscript, []Issue{
		{Passage: passage, Replacement: "x", Status: StatusAccepted},
	})

	require.Len(t, result.Errors, 1)
	assert.Equal(t, `Could not find: "`+passage[:40]+`"...`, result.Errors[0])
}

func TestApply_CustomReplacementWins(t *testing.T) {
	issues := []Issue{
		{
			Passage:           "The dog ran fast.",
			Replacement:       "The dog sprinted.",
			Status:            StatusCustom,
			CustomReplacement: "The dog bolted.",
		},
	}

	result := Apply(manuscript, issues)

	assert.True(t, result.Success)
	assert.Equal(t, "The cat sat on the mat. The dog bolted.", result.Content)
}

func TestApply_EmptyCustomFallsBackToSuggested(t *testing.T) {
	issues := []Issue{
		{
			Passage:     "The dog ran fast.",
			Replacement: "The dog sprinted.",
			Status:      StatusCustom,
		},
	}

	result := Apply(manuscript, issues)

	assert.True(t, result.Success)
	assert.Equal(t, "The cat sat on the mat. The dog sprinted.", result.Content)
}

func TestApply_SequentialBaseline(t *testing.T) {
	// The second edit's passage is only locatable because each replacement
	// runs against the buffer produced by the previous one.
	issues := []Issue{
		{Passage: "cat", Replacement: "kitten", Status: StatusAccepted},
		{Passage: "kitten sat", Replacement: "kitten slept", Status: StatusAccepted},
	}

	result := Apply(manuscript, issues)

	assert.True(t, result.Success)
	assert.Equal(t, "The kitten slept on the mat. The dog ran fast.", result.Content)
}

func TestApply_OrderSensitivity(t *testing.T) {
	// Issue A's passage is a superset of issue B's. A applies first and
	// consumes B's text; B must be reported and skipped, never retried
	// against the original.
	issues := []Issue{
		{
			Passage:     "The cat sat on the mat.",
			Replacement: "The feline rested.",
			Status:      StatusAccepted,
		},
		{
			Passage:     "sat on the mat",
			Replacement: "sprawled on the rug",
			Status:      StatusAccepted,
		},
	}

	result := Apply(manuscript, issues)

	assert.False(t, result.Success)
	assert.Equal(t, "The feline rested. The dog ran fast.", result.Content,
		"the first edit must survive")
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "sat on the mat")
}

func TestApply_FirstOccurrenceWins(t *testing.T) {
	content := "tea for two and tea for me"

	result := Apply(content, []Issue{
		{Passage: "tea", Replacement: "coffee", Status: StatusAccepted},
	})

	assert.True(t, result.Success)
	assert.Equal(t, "coffee for two and tea for me", result.Content)
}

func TestApply_Idempotent(t *testing.T) {
	issues := []Issue{
		{Passage: "The cat sat on the mat.", Replacement: "New sentence.", Status: StatusAccepted},
		{Passage: "Not present anywhere.", Replacement: "x", Status: StatusAccepted},
	}

	first := Apply(manuscript, issues)
	second := Apply(manuscript, issues)

	assert.Equal(t, first, second)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	issues := []Issue{
		{Passage: "The cat sat on the mat.", Replacement: "Changed.", Status: StatusAccepted},
	}

	_ = Apply(manuscript, issues)

	assert.Equal(t, StatusAccepted, issues[0].Status)
	assert.Equal(t, "The cat sat on the mat.", issues[0].Passage)
}
