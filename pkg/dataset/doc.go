// Package dataset loads a delimited text file into an in-memory table and
// answers profiling queries over it.
//
// # Overview
//
// A Dataset is built once from a directory and a file name:
//
//	ds, err := dataset.New("data", "crime.csv")
//	if err != nil {
//	    // errors.IsType(err, errors.ErrorTypeInvalidDirectory), ...
//	    return err
//	}
//
// Construction either yields a fully loaded dataset or an error; there is no
// partially loaded state. The directory must exist and the file name must
// carry the configured extension (".csv" by default) before the file is
// opened. The file is decoded as ISO-8859-1 and split on commas unless
// Options say otherwise.
//
// # Queries
//
//   - Extract returns the loaded table
//   - FetchColumns returns the header names in file order
//   - DataDescription returns count, mean, std, min, quartiles and max for
//     each numeric column
//   - FetchCategorical returns the categorical or the numeric columns
//   - Partition returns both at once
//
// A column is numeric when every non-missing cell parses as a number;
// everything else, including mixed columns, is categorical.
//
// # Thread Safety
//
// A Dataset never changes after New returns and may be read from many
// goroutines.
package dataset
