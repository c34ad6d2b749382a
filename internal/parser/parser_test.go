package parser_test

import (
	"testing"

	"github.com/KimNorgaard/go-dsv/internal/parser"
	"github.com/stretchr/testify/require"
)

func TestParseRows(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sep      rune
		expected [][]string
	}{
		{
			name:     "single line",
			input:    "a,b,c",
			sep:      ',',
			expected: [][]string{{"a", "b", "c"}},
		},
		{
			name:     "two lines",
			input:    "a,b\n1,2",
			sep:      ',',
			expected: [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name:     "semicolon separator",
			input:    "a;b\n1;2",
			sep:      ';',
			expected: [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name:     "tab separator",
			input:    "a\tb\n1\t2",
			sep:      '\t',
			expected: [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name:     "quoted field containing separator",
			input:    "\"a,b\",c\n1,2",
			sep:      ',',
			expected: [][]string{{"a,b", "c"}, {"1", "2"}},
		},
		{
			name:     "quoted field containing line break",
			input:    "\"a\nb\",c",
			sep:      ',',
			expected: [][]string{{"a\nb", "c"}},
		},
		{
			name:     "escaped quotes decode to one quote",
			input:    `"he said ""hi"""`,
			sep:      ',',
			expected: [][]string{{`he said "hi"`}},
		},
		{
			name:     "empty fields between separators",
			input:    ",,,",
			sep:      ',',
			expected: [][]string{{"", "", "", ""}},
		},
		{
			name:     "crlf line break",
			input:    "a,b\r\n1,2",
			sep:      ',',
			expected: [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name:     "leading and trailing line breaks consumed",
			input:    "\n\na,b\n\n",
			sep:      ',',
			expected: [][]string{{"a", "b"}},
		},
		{
			name:     "blank lines between rows collapse",
			input:    "a\n\n\nb",
			sep:      ',',
			expected: [][]string{{"a"}, {"b"}},
		},
		{
			name:     "ragged rows tolerated",
			input:    "a,b,c\n1,2",
			sep:      ',',
			expected: [][]string{{"a", "b", "c"}, {"1", "2"}},
		},
		{
			name:     "line break only input yields one empty field",
			input:    "\n",
			sep:      ',',
			expected: [][]string{{""}},
		},
		{
			name:     "empty quoted field",
			input:    `"",a`,
			sep:      ',',
			expected: [][]string{{"", "a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, failure := parser.New(tt.input, tt.sep).Parse()
			require.Nil(t, failure, "parse failed: %+v", failure)
			require.Equal(t, tt.expected, rows)
		})
	}
}

func TestParseFailures(t *testing.T) {
	t.Run("unterminated quoted field", func(t *testing.T) {
		rows, failure := parser.New(`"a,b`, ',').Parse()
		require.Nil(t, rows)
		require.NotNil(t, failure)
		require.Equal(t, 4, failure.Offset, "failure should sit at the missing closing quote")
		require.Equal(t, []string{`'"'`}, failure.Expected)
	})

	t.Run("bare quote inside unquoted field", func(t *testing.T) {
		rows, failure := parser.New(`a"b`, ',').Parse()
		require.Nil(t, rows)
		require.NotNil(t, failure)
		require.Equal(t, 1, failure.Offset)
		require.Equal(t, []string{`','`, "end of input", "line break"}, failure.Expected)
	})

	t.Run("content after closing quote", func(t *testing.T) {
		rows, failure := parser.New(`"a"x`, ',').Parse()
		require.Nil(t, rows)
		require.NotNil(t, failure)
		require.Equal(t, 3, failure.Offset)
		require.Contains(t, failure.Expected, `','`)
		require.Contains(t, failure.Expected, "line break")
	})

	t.Run("furthest failure survives backtracking", func(t *testing.T) {
		// The quoted alternative reaches end of input before being
		// abandoned; the shallower failures of the unquoted alternative
		// must not displace it.
		rows, failure := parser.New("a,b\n\"x", ',').Parse()
		require.Nil(t, rows)
		require.NotNil(t, failure)
		require.Equal(t, 6, failure.Offset)
		require.Equal(t, []string{`'"'`}, failure.Expected)
	})
}
