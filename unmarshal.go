package dsv

import (
	"github.com/KimNorgaard/go-dsv/internal/mapper"
)

// Unmarshal parses the delimited data and stores the result in the
// value pointed to by v.
//
// Two target shapes are supported:
//
//  1. *[][]string receives the raw cell matrix, exactly as Convert with
//     the Raw option would return it.
//
//  2. A pointer to a slice of structs receives one element per data
//     row, with the header row matched to struct fields. Fields are
//     matched by `dsv:"name"` tag or by field name, case-insensitively;
//     use `dsv:"-"` to ignore a field. Supported field types are
//     string, the integer and float kinds, bool, and pointers to any
//     of those. Empty cells leave the field at its zero value.
//
// Separator detection and the Separator, Transpose and other options
// behave as in Convert; the coercion options have no effect here, since
// field types come from the struct.
func Unmarshal(data []byte, v any, opts ...Option) error {
	var o options
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return err
		}
	}

	rows, err := parseRows(string(data), &o)
	if err != nil {
		return err
	}

	if target, ok := v.(*[][]string); ok {
		*target = rows
		return nil
	}

	header := rows[0]
	if len(header) == 0 {
		return ErrEmptyHeader
	}
	return mapper.Map(headerKeys(header), rows[1:], v)
}
