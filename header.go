package dsv

import (
	"fmt"
	"strings"
)

// cleanCell trims surrounding whitespace, then strips one matching pair
// of literal double quotes if both ends carry one. The grammar has
// already decoded quoting; this second pass exists for values that
// arrive with stray literal quotes, such as doubled-up quoting in the
// source.
func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return s
}

// headerKeys turns the header row into cleaned, unique column keys,
// preserving length and order.
func headerKeys(row []string) []string {
	keys := make([]string, len(row))
	for i, cell := range row {
		keys[i] = cleanCell(cell)
	}
	return uniquify(keys)
}

// uniquify renames duplicate header values right to left: of k equal
// values, the last occurrence keeps the bare value, the one before it
// becomes value__1, and so on up to value__(k-1) for the first.
// Non-repeated values are untouched.
func uniquify(keys []string) []string {
	total := make(map[string]int, len(keys))
	for _, k := range keys {
		total[k]++
	}
	seen := make(map[string]int, len(total))
	out := make([]string, len(keys))
	for i, k := range keys {
		seen[k]++
		if remaining := total[k] - seen[k]; remaining > 0 {
			out[i] = fmt.Sprintf("%s__%d", k, remaining)
		} else {
			out[i] = k
		}
	}
	return out
}
