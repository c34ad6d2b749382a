package dsv

import (
	"github.com/KimNorgaard/go-dsv/internal/parser"
)

// Kind identifies which of the three output shapes a conversion
// produced.
type Kind int

const (
	// KindRecords is the default shape: an ordered slice of records.
	KindRecords Kind = iota
	// KindHash is the shape produced by the Hash option: a mapping from
	// each row's first column to the record built from the rest.
	KindHash
	// KindRaw is the shape produced by the Raw option: the parsed cell
	// matrix with no header or record processing.
	KindRaw
)

// Result is the outcome of a conversion. Exactly one of Records, Hash
// and Raw is populated, indicated by Kind.
type Result struct {
	Kind    Kind
	Records []Record
	Hash    map[string]Record
	Raw     [][]string
}

// Convert parses delimited tabular text into structured records.
//
// Unless a Separator option is given, the field separator is detected
// by counting candidate occurrences in the text (see DetectSeparator).
// The text is then parsed under a quoting-aware grammar; quoted fields
// may contain the separator, line breaks and doubled quotes. The first
// row becomes the column keys, cleaned and de-duplicated, and the
// remaining rows become records, with optional numeric and JSON-literal
// coercion. The Transpose, Hash and Raw options change the shape of the
// result; see each option for details.
//
// Convert is a pure function of its inputs: every call constructs its
// own parser state, so concurrent calls are safe.
//
// Errors are ErrEmptyInput, ErrNoSeparator, ErrEmptyHeader and
// *SyntaxError; a failed conversion produces no partial result.
func Convert(text string, opts ...Option) (*Result, error) {
	var o options
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	rows, err := parseRows(text, &o)
	if err != nil {
		return nil, err
	}

	if o.raw {
		return &Result{Kind: KindRaw, Raw: rows}, nil
	}

	header := rows[0]
	if len(header) == 0 {
		return nil, ErrEmptyHeader
	}
	keys := headerKeys(header)
	body := rows[1:]

	if o.hash {
		return &Result{Kind: KindHash, Hash: mapHash(keys, body, &o)}, nil
	}
	return &Result{Kind: KindRecords, Records: mapRecords(keys, body, &o)}, nil
}

// parseRows runs separator resolution, the grammar parser and the
// optional transpose, producing the raw cell matrix.
func parseRows(text string, o *options) ([][]string, error) {
	if len(text) == 0 {
		return nil, ErrEmptyInput
	}

	sep := o.separator
	if !o.hasSeparator {
		var err error
		sep, err = DetectSeparator(text)
		if err != nil {
			return nil, err
		}
	}

	rows, failure := parser.New(text, sep).Parse()
	if failure != nil {
		return nil, newSyntaxError(text, failure)
	}

	if o.transpose {
		rows = transposeRows(rows)
	}
	return rows, nil
}

// mapRecords builds one record per row, in input order. Rows shorter
// than the header are padded with empty cells; rows that decode to
// nothing but empty strings are kept.
func mapRecords(keys []string, rows [][]string, o *options) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec, _ := mapRow(keys, row, o, false)
		records = append(records, rec)
	}
	return records
}

// mapHash builds the keyed mapping: each row's first column is the
// extraction key and is not added as a field. A later row with an equal
// key overwrites the earlier entry.
func mapHash(keys []string, rows [][]string, o *options) map[string]Record {
	out := make(map[string]Record, len(rows))
	for _, row := range rows {
		rec, key := mapRow(keys, row, o, true)
		out[key] = rec
	}
	return out
}

func mapRow(keys []string, row []string, o *options, keyed bool) (Record, string) {
	var rec Record
	var extracted string
	for i, key := range keys {
		var cell string
		if i < len(row) {
			cell = row[i]
		}
		cleaned := cleanCell(cell)
		if keyed && i == 0 {
			extracted = cleaned
			continue
		}
		rec.set(key, coerce(cleaned, o))
	}
	return rec, extracted
}
