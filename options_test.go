package dsv_test

import (
	"testing"

	"github.com/KimNorgaard/go-dsv"
	"github.com/stretchr/testify/require"
)

func TestSeparatorOption_Validation(t *testing.T) {
	invalid := []rune{0, '"', '\n', '\r', 0xFFFD}
	for _, r := range invalid {
		_, err := dsv.Convert("a,b", dsv.Separator(r))
		require.Error(t, err, "separator %q should be rejected", r)
		require.Contains(t, err.Error(), "invalid separator")
	}
}

func TestSeparatorOption_MultibyteRune(t *testing.T) {
	res, err := dsv.Convert("a¦b\n1¦2", dsv.Separator('¦'))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, res.Records[0].Keys())
	require.Equal(t, "1", res.Records[0].Value("a"))
}

func TestOptions_Combine(t *testing.T) {
	res, err := dsv.Convert("k;n\na;1\nb;2", dsv.Separator(';'), dsv.Hash(), dsv.ParseNumbers())
	require.NoError(t, err)
	require.Equal(t, dsv.KindHash, res.Kind)
	require.Equal(t, float64(1), res.Hash["a"].Value("n"))
	require.Equal(t, float64(2), res.Hash["b"].Value("n"))
}

func TestRawSkipsHeaderProcessing(t *testing.T) {
	// Raw mode returns the matrix untouched: no trimming, no quote
	// stripping, no uniquify.
	res, err := dsv.Convert(" x , x \n1,2", dsv.Raw())
	require.NoError(t, err)
	require.Equal(t, [][]string{{" x ", " x "}, {"1", "2"}}, res.Raw)
}
