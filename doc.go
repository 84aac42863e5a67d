// Package tabula loads a delimited text file into memory and profiles it:
// which columns are numeric, which are categorical, and what the numeric
// columns look like.
//
// # Quick Start
//
// Load a file and print its description:
//
//	import (
//	    "os"
//	    "github.com/ajitpratap0/tabula/pkg/dataset"
//	    "github.com/ajitpratap0/tabula/pkg/export"
//	)
//
//	ds, err := dataset.New("data", "crime.csv")
//	if err != nil {
//	    return err
//	}
//
//	// count, mean, std, min, 25%, 50%, 75%, max per numeric column
//	err = export.Text(os.Stdout, ds.DataDescription())
//
// # Key Packages
//
//	pkg/dataset  - Directory and extension checks, eager load, profiling queries
//	pkg/table    - Immutable in-memory columnar table
//	pkg/schema   - Missing-value detection and numeric/categorical inference
//	pkg/stats    - Descriptive statistics
//	pkg/charset  - Text encodings, ISO-8859-1 by default
//	pkg/export   - Text, JSON and Arrow IPC renderers
//	pkg/config   - YAML configuration
//	pkg/errors   - Structured error handling
//	pkg/logger   - Structured logging
//	pkg/metrics  - Prometheus load metrics
//
// # Errors
//
// Construction fails with one of three typed errors:
//
//   - errors.ErrorTypeInvalidDirectory: the directory does not exist
//   - errors.ErrorTypeInvalidFileExtension: the file name lacks the extension
//   - errors.ErrorTypeFileRead: the file cannot be opened, decoded or parsed
//
// Use errors.IsType to tell them apart.
//
// # Configuration
//
// The tabula command reads an optional YAML file:
//
//	dataset:
//	  dir: data
//	  file: crime.csv
//	  encoding: ISO-8859-1
//	  delimiter: ","
//	output:
//	  format: json
//	  orient: records
//
// TABULA_* environment variables and flags override the file. Environment
// variables are supported inside the file with ${VAR_NAME} syntax.
//
// # Development
//
//	go build ./cmd/tabula
//	./tabula describe --dir data --file crime.csv
//
// Run tests:
//
//	go test ./...          # Unit and integration tests
//	go test -short ./...   # Skip integration suites
package tabula
