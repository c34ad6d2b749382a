package dsv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransposeRows(t *testing.T) {
	tests := []struct {
		name     string
		input    [][]string
		expected [][]string
	}{
		{
			name:     "rectangular",
			input:    [][]string{{"a", "b"}, {"1", "2"}},
			expected: [][]string{{"a", "1"}, {"b", "2"}},
		},
		{
			name:     "ragged pads with empty cells",
			input:    [][]string{{"a", "b", "c"}, {"1"}},
			expected: [][]string{{"a", "1"}, {"b", ""}, {"c", ""}},
		},
		{
			name:     "single row becomes single column",
			input:    [][]string{{"a", "b", "c"}},
			expected: [][]string{{"a"}, {"b"}, {"c"}},
		},
		{
			name:     "row count follows the longest row",
			input:    [][]string{{"a"}, {"1", "2", "3"}},
			expected: [][]string{{"a", "1"}, {"", "2"}, {"", "3"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, transposeRows(tt.input))
		})
	}
}
