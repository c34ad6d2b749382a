package dsv

import (
	"fmt"
	"unicode/utf8"
)

type options struct {
	separator    rune
	hasSeparator bool
	parseNumbers bool
	parseJSON    bool
	transpose    bool
	hash         bool
	raw          bool
}

// Option configures a conversion.
type Option func(*options) error

// Separator returns an Option that sets an explicit field separator,
// bypassing detection. The separator may be any single character other
// than the quote and line break characters.
func Separator(r rune) Option {
	return func(o *options) error {
		if !validSeparator(r) {
			return fmt.Errorf("dsv: invalid separator %q", r)
		}
		o.separator = r
		o.hasSeparator = true
		return nil
	}
}

// ParseNumbers returns an Option that enables numeric coercion: a field
// whose cleaned text matches the number grammar is decoded to a number
// instead of being kept as a string.
func ParseNumbers() Option {
	return func(o *options) error {
		o.parseNumbers = true
		return nil
	}
}

// ParseJSON returns an Option that enables JSON-literal coercion: every
// field is offered to the JSON decoder, and fields holding a number,
// true, false, null, array or object in JSON text form are decoded.
// Fields that do not decode are kept as strings unchanged.
func ParseJSON() Option {
	return func(o *options) error {
		o.parseJSON = true
		return nil
	}
}

// Transpose returns an Option that pivots rows and columns before
// header extraction. Ragged rows are padded with empty cells rather
// than rejected.
func Transpose() Option {
	return func(o *options) error {
		o.transpose = true
		return nil
	}
}

// Hash returns an Option that switches the output to a mapping keyed by
// each row's first column instead of an ordered slice of records. A
// later row with an equal key overwrites the earlier entry.
func Hash() Option {
	return func(o *options) error {
		o.hash = true
		return nil
	}
}

// Raw returns an Option that short-circuits the conversion to the raw
// cell matrix, skipping header processing and record mapping entirely.
func Raw() Option {
	return func(o *options) error {
		o.raw = true
		return nil
	}
}

func validSeparator(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' &&
		r != utf8.RuneError && utf8.ValidRune(r)
}
