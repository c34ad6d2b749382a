package dsv

import "strings"

// separatorCandidates are the separators detection chooses between, in
// priority order. An earlier candidate wins ties: a later one replaces
// the current best only on a strictly greater count.
var separatorCandidates = []rune{',', ';', '\t'}

// DetectSeparator picks the field separator for text by counting raw
// occurrences of each candidate anywhere in it, quoted content
// included. That is a deliberate heuristic, not an oversight: a quoted
// free-text field containing many commas can out-vote the true
// delimiter, so callers feeding prose-heavy input should supply the
// Separator option instead. Returns ErrNoSeparator when no candidate
// occurs at all.
func DetectSeparator(text string) (rune, error) {
	var best rune
	bestCount := 0
	for _, cand := range separatorCandidates {
		if n := strings.Count(text, string(cand)); n > bestCount {
			best, bestCount = cand, n
		}
	}
	if bestCount == 0 {
		return 0, ErrNoSeparator
	}
	return best, nil
}
