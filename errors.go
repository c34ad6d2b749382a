package dsv

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/KimNorgaard/go-dsv/internal/parser"
)

var (
	// ErrEmptyInput is returned by Convert when the input text has zero
	// length.
	ErrEmptyInput = errors.New("dsv: empty input")

	// ErrNoSeparator is returned when no explicit separator was given
	// and none of the candidate separators occurs in the input.
	ErrNoSeparator = errors.New("dsv: no separator detected")

	// ErrEmptyHeader is returned when the header row has no fields.
	// It is never returned in raw mode, where header processing is
	// skipped entirely.
	ErrEmptyHeader = errors.New("dsv: empty header row")
)

// FoundEOF is the sentinel used in SyntaxError.Found when the failure
// sits at the end of the input rather than on a character.
const FoundEOF = "end of input"

// A SyntaxError reports the single best failure location of a parse,
// following the furthest-failure strategy: the deepest offset any
// grammar alternative reached, with the union of expectations recorded
// there.
type SyntaxError struct {
	// Expected holds the deduplicated, sorted set of human-readable
	// expectations at the failure offset.
	Expected []string
	// Found is the quoted character at the failure offset, or FoundEOF.
	Found string
	// Offset is the byte offset of the failure in the input.
	Offset int
	// Line and Column are 1-based. A "\r\n" pair counts as one break.
	Line   int
	Column int
	// SourceLine is the literal text of the input line containing the
	// failure.
	SourceLine string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("dsv: syntax error at line %d, column %d: expected %s, found %s in line %q",
		e.Line, e.Column, joinExpected(e.Expected), e.Found, e.SourceLine)
}

func joinExpected(expected []string) string {
	switch len(expected) {
	case 0:
		return "nothing"
	case 1:
		return expected[0]
	}
	return strings.Join(expected[:len(expected)-1], ", ") + " or " + expected[len(expected)-1]
}

// newSyntaxError resolves a parser failure against the original input,
// filling in the found character, position and source line.
func newSyntaxError(input string, f *parser.Failure) *SyntaxError {
	found := FoundEOF
	if f.Offset < len(input) {
		r, _ := utf8.DecodeRuneInString(input[f.Offset:])
		found = strconv.QuoteRune(r)
	}
	line, col := parser.LineCol(input, f.Offset)
	return &SyntaxError{
		Expected:   f.Expected,
		Found:      found,
		Offset:     f.Offset,
		Line:       line,
		Column:     col,
		SourceLine: parser.SourceLine(input, f.Offset),
	}
}
