package dsv

import "encoding/json"

// coerce turns cleaned field text into its typed value. JSON-literal
// decoding is attempted when ParseJSON is set, or when ParseNumbers is
// set and the text matches the number grammar. A decode that fails, or
// that yields a top-level string, falls back to the text unchanged:
// the recognized literal kinds are number, true, false, null, array
// and object.
func coerce(s string, o *options) any {
	if o.parseJSON || (o.parseNumbers && isNumeric(s)) {
		var v any
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			if _, isString := v.(string); !isString {
				return v
			}
		}
	}
	return s
}

// isNumeric reports whether s matches the strict decimal/exponential
// number grammar: an optional minus sign, an integer part without
// leading zeros, an optional fraction and an optional exponent. There
// is no leading plus, no hexadecimal form and no infinity or NaN; the
// empty string never matches.
func isNumeric(s string) bool {
	if len(s) == 0 {
		return false
	}
	i := 0
	if s[i] == '-' {
		if len(s) == 1 {
			return false
		}
		i++
	}

	var ok bool
	if i, ok = scanIntegerPart(s, i); !ok {
		return false
	}
	if i, ok = scanFractionPart(s, i); !ok {
		return false
	}
	if i, ok = scanExponentPart(s, i); !ok {
		return false
	}

	// Must consume the whole string.
	return i == len(s)
}

func scanDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

func scanIntegerPart(s string, i int) (int, bool) {
	start := i
	i = scanDigits(s, i)
	if i == start {
		return i, false // No digits found.
	}
	if i-start > 1 && s[start] == '0' {
		return i, false // Leading zeros are not allowed.
	}
	return i, true
}

func scanFractionPart(s string, i int) (int, bool) {
	if i >= len(s) || s[i] != '.' {
		return i, true
	}
	i++ // Consume '.'.
	start := i
	i = scanDigits(s, i)
	if i == start {
		return i, false // No digits after '.'.
	}
	return i, true
}

func scanExponentPart(s string, i int) (int, bool) {
	if i >= len(s) || (s[i] != 'e' && s[i] != 'E') {
		return i, true
	}
	i++ // Consume 'e' or 'E'.
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	i = scanDigits(s, i)
	if i == start {
		return i, false // No digits in exponent.
	}
	return i, true
}
