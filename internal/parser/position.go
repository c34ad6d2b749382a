package parser

import (
	"strings"
	"unicode/utf8"
)

// lineBreakChars are the characters treated as line terminators when
// locating an offset for diagnostics. The grammar itself only knows
// '\n' and '\r'; the Unicode line and paragraph separators are honored
// here so reported positions stay sane for inputs that use them.
const lineBreakChars = "\n\r  "

// LineCol converts a byte offset into a 1-based line and column.
// A "\r\n" pair counts as a single break; lone '\r', '\n', U+2028 and
// U+2029 each count as one. Columns count characters, not bytes.
func LineCol(input string, offset int) (line, col int) {
	line, col = 1, 1
	var prev rune
	for i, r := range input {
		if i >= offset {
			break
		}
		switch {
		case r == '\n' && prev == '\r':
			// Second half of a CRLF pair, already counted.
		case strings.ContainsRune(lineBreakChars, r):
			line++
			col = 1
		default:
			col++
		}
		prev = r
	}
	return line, col
}

// SourceLine returns the literal text of the line containing offset,
// found by locating the nearest line break before and after it.
func SourceLine(input string, offset int) string {
	if offset > len(input) {
		offset = len(input)
	}
	start := 0
	if i := strings.LastIndexAny(input[:offset], lineBreakChars); i >= 0 {
		_, size := utf8.DecodeRuneInString(input[i:])
		start = i + size
	}
	end := len(input)
	if i := strings.IndexAny(input[offset:], lineBreakChars); i >= 0 {
		end = offset + i
	}
	if start > end {
		// Offset sits inside a CRLF pair; the line it terminates is empty
		// past the break.
		return ""
	}
	return input[start:end]
}
