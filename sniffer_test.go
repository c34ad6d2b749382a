package dsv_test

import (
	"testing"

	"github.com/KimNorgaard/go-dsv"
	"github.com/stretchr/testify/require"
)

func TestDetectSeparator(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected rune
	}{
		{"commas only", "a,b,c\n1,2,3", ','},
		{"semicolons only", "a;b;c\n1;2;3", ';'},
		{"tabs only", "a\tb\n1\t2", '\t'},
		{"majority wins", "a;b,c;d\n1;2;3", ';'},
		{"comma wins ties", "a,b;c", ','},
		{"semicolon wins tie against tab", "a;b\tc", ';'},
		{"quoted content still counts", "a\tb\n\"x,y,z,w\"\t2", ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sep, err := dsv.DetectSeparator(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, sep)
		})
	}
}

func TestDetectSeparator_None(t *testing.T) {
	_, err := dsv.DetectSeparator("no delimiters here")
	require.ErrorIs(t, err, dsv.ErrNoSeparator)
}
