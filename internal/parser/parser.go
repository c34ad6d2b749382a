// Package parser implements the backtracking recursive descent grammar
// for delimited tabular text. Each production rule corresponds to a
// parse method on Parser.
//
// The grammar, parameterized by the separator SEP:
//
//	Document      = LineBreak* Line (LineBreak+ Line)* LineBreak* ;
//	Line          = Field (SEP Field)* ;
//	Field         = QuotedField | UnquotedField ;
//	QuotedField   = '"' (EscapedQuote | any char except bare '"')* '"' ;
//	EscapedQuote  = '""' ;                        -- decodes to one '"'
//	UnquotedField = (any char except SEP, '"', '\n', '\r')* ;
//	LineBreak     = '\n' | '\r' ;
//
// A quoted field may contain the separator and literal line breaks; an
// unquoted field may be empty. A failed QuotedField alternative restores
// the cursor before UnquotedField is tried.
//
// Diagnostics use a furthest-failure strategy: the parser tracks the
// greatest offset any alternative failed at, together with the set of
// expectations recorded at exactly that offset. A strictly greater
// failure offset discards the set; an equal offset accumulates. The
// tracker is never reset on backtrack, so the reported location is the
// deepest point genuinely reached, even by abandoned alternatives.
package parser

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Failure describes where the grammar gave up and what it would have
// accepted there. Offset is a byte offset into the input; Expected is
// deduplicated and sorted.
type Failure struct {
	Offset   int
	Expected []string
}

// Parser holds the state for one parse. A Parser must not be reused;
// construct a fresh one per input.
type Parser struct {
	input string
	pos   int
	sep   rune

	furthest int
	expected []string
}

// New creates a parser for input with the given field separator.
func New(input string, sep rune) *Parser {
	return &Parser{input: input, sep: sep}
}

// Parse parses the whole input and returns one row per line, each row
// holding the decoded field strings in order. The parse fails if the
// cursor does not reach the end of the input.
func (p *Parser) Parse() ([][]string, *Failure) {
	rows := p.parseDocument()
	if p.pos >= len(p.input) {
		return rows, nil
	}
	p.fail("end of input")
	return nil, &Failure{Offset: p.furthest, Expected: p.expectations()}
}

// parseDocument consumes leading and trailing runs of line breaks and
// collects the lines between them. It cannot fail on its own: a Line
// always matches at least one (possibly empty) field, so the document
// rule leaves any diagnostic to the end-of-input check in Parse.
func (p *Parser) parseDocument() [][]string {
	p.skipLineBreaks()
	rows := [][]string{p.parseLine()}
	for {
		if !p.lineBreaks() {
			break
		}
		if p.pos >= len(p.input) {
			// Trailing break run; does not open a new row.
			break
		}
		rows = append(rows, p.parseLine())
	}
	return rows
}

// parseLine parses Field (SEP Field)*. A line of nothing but
// separators is a valid row of empty fields.
func (p *Parser) parseLine() []string {
	fields := []string{p.parseField()}
	for p.matchSep() {
		fields = append(fields, p.parseField())
	}
	return fields
}

func (p *Parser) parseField() string {
	if s, ok := p.tryQuotedField(); ok {
		return s
	}
	return p.parseUnquotedField()
}

// tryQuotedField attempts the QuotedField alternative. On failure the
// cursor is restored to where the attempt began; the failure itself
// stays recorded in the furthest-failure tracker.
func (p *Parser) tryQuotedField() (string, bool) {
	start := p.pos
	if !p.lit('"') {
		return "", false
	}
	var b strings.Builder
	for {
		if strings.HasPrefix(p.input[p.pos:], `""`) {
			b.WriteByte('"')
			p.pos += 2
			continue
		}
		r, size := p.peek()
		if size == 0 {
			// Unterminated: the closing quote was expected here.
			p.fail(`'"'`)
			p.pos = start
			return "", false
		}
		if r == '"' {
			p.pos += size
			return b.String(), true
		}
		b.WriteRune(r)
		p.pos += size
	}
}

// parseUnquotedField consumes characters up to the next separator,
// quote, or line break. It always succeeds and may match nothing.
func (p *Parser) parseUnquotedField() string {
	start := p.pos
	for {
		r, size := p.peek()
		if size == 0 || r == p.sep || r == '"' || r == '\n' || r == '\r' {
			break
		}
		p.pos += size
	}
	return p.input[start:p.pos]
}

func (p *Parser) matchSep() bool {
	return p.lit(p.sep)
}

// lineBreaks matches LineBreak+.
func (p *Parser) lineBreaks() bool {
	if !p.matchLineBreak() {
		return false
	}
	p.skipLineBreaks()
	return true
}

func (p *Parser) skipLineBreaks() {
	for p.matchLineBreak() {
	}
}

func (p *Parser) matchLineBreak() bool {
	r, size := p.peek()
	if r == '\n' || r == '\r' {
		p.pos += size
		return true
	}
	p.fail("line break")
	return false
}

// lit matches a single literal rune, recording the expectation on
// failure.
func (p *Parser) lit(want rune) bool {
	r, size := p.peek()
	if size > 0 && r == want {
		p.pos += size
		return true
	}
	p.fail(strconv.QuoteRune(want))
	return false
}

func (p *Parser) peek() (rune, int) {
	if p.pos >= len(p.input) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(p.input[p.pos:])
}

// fail records an expectation at the current cursor position. Positions
// behind the furthest failure are ignored; a new furthest position
// discards everything recorded at shallower ones.
func (p *Parser) fail(want string) {
	if p.pos > p.furthest {
		p.furthest = p.pos
		p.expected = p.expected[:0]
	}
	if p.pos == p.furthest {
		p.expected = append(p.expected, want)
	}
}

func (p *Parser) expectations() []string {
	exp := slices.Clone(p.expected)
	slices.Sort(exp)
	return slices.Compact(exp)
}
