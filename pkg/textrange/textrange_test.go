package textrange

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionOf(t *testing.T) {
	content := "first line\nsecond line\nthird"

	tests := []struct {
		name   string
		offset int
		want   Position
	}{
		{"start of buffer", 0, Position{Line: 1, Column: 1}},
		{"mid first line", 6, Position{Line: 1, Column: 7}},
		{"start of second line", 11, Position{Line: 2, Column: 1}},
		{"mid second line", 18, Position{Line: 2, Column: 8}},
		{"third line", 23, Position{Line: 3, Column: 1}},
		{"negative clamps to start", -4, Position{Line: 1, Column: 1}},
		{"past end clamps to end", 999, Position{Line: 3, Column: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PositionOf(content, tt.offset))
		})
	}
}

func TestPositionOf_EmptyContent(t *testing.T) {
	assert.Equal(t, Position{Line: 1, Column: 1}, PositionOf("", 0))
}
