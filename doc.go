/*
Package dsv converts delimited tabular text (CSV and friends) into
structured records. It auto-detects the field separator, parses the
text under a quoting-aware grammar with furthest-failure diagnostics,
optionally pivots rows and columns, de-duplicates column headers, and
coerces field text into typed values.

The entry point is Convert, which takes the raw text and functional
options and returns one of three output shapes:

	// Default: an ordered slice of records, one per data row.
	res, err := dsv.Convert("name,age\nAlice,30\nBob,25")
	if err != nil {
		// handle error
	}
	for _, rec := range res.Records {
		name, _ := rec.Get("name")
		// ...
	}

	// Hash mode: a mapping keyed by each row's first column.
	res, err = dsv.Convert(input, dsv.Hash())

	// Raw mode: the parsed cell matrix, no header processing.
	res, err = dsv.Convert(input, dsv.Raw())

The separator is detected by counting candidate occurrences (comma,
semicolon, tab) in the input; pass dsv.Separator to override. With
dsv.ParseNumbers or dsv.ParseJSON, field text holding numbers or JSON
literals is decoded into typed values.

For decoding data rows directly into Go structs, Unmarshal matches
header names to `dsv:"..."` struct tags:

	type Person struct {
		Name string `dsv:"name"`
		Age  int    `dsv:"age"`
	}

	var people []Person
	err := dsv.Unmarshal(data, &people)

Parse failures are reported as *SyntaxError carrying the expectation
set, the found character, the byte offset, the 1-based line and column,
and the source line text. Conversion is all-or-nothing: a failed call
produces no partial output.

All functions are safe for concurrent use; each call owns its parser
state.
*/
package dsv
