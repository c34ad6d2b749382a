package dsv

// transposeRows pivots rows and columns with zip-to-longest semantics:
// the result has one row per column of the longest input row, and each
// result row holds every input row's cell at that index, with missing
// cells padded as empty strings. This is not a rectangular matrix
// transpose; ragged inputs are tolerated, not rejected.
func transposeRows(rows [][]string) [][]string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	out := make([][]string, width)
	for i := range out {
		col := make([]string, len(rows))
		for j, row := range rows {
			if i < len(row) {
				col[j] = row[i]
			}
		}
		out[i] = col
	}
	return out
}
