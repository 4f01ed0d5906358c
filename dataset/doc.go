// Package dataset loads numeric sequences from CSV files.
//
// Load a specific column:
//
//	data, err := dataset.LoadCSVColumn("data.csv", "value")
//
// Customize loading:
//
//	opts := dataset.DefaultCSVOptions()
//	opts.ValueColumn = "y"
//	opts.Delimiter = ';'
//	data, err := dataset.LoadCSVFromReader(reader, opts)
//
// Blank, NA, and unparsable cells are skipped; a file with no valid values
// is an error.
package dataset
