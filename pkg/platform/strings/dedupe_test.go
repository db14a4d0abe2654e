package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrimLower(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil slice",
			input:    nil,
			expected: nil,
		},
		{
			name:     "empty slice",
			input:    []string{},
			expected: []string{},
		},
		{
			name:     "trims and lowercases",
			input:    []string{"  0xABC  ", "0xdef  "},
			expected: []string{"0xabc", "0xdef"},
		},
		{
			name:     "removes duplicates preserving order",
			input:    []string{"0xabc", "0xDEF", "0xAbc", "0xdef"},
			expected: []string{"0xabc", "0xdef"},
		},
		{
			name:     "drops empty and whitespace-only entries",
			input:    []string{"0xabc", "", "   ", "0xdef"},
			expected: []string{"0xabc", "0xdef"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrimLower(tt.input))
		})
	}
}
