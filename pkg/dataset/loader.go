package dataset

import (
	"bytes"
	"encoding/csv"
	stderrors "errors"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/ajitpratap0/tabula/pkg/charset"
	"github.com/ajitpratap0/tabula/pkg/errors"
	"github.com/ajitpratap0/tabula/pkg/schema"
	"github.com/ajitpratap0/tabula/pkg/table"
)

// loadResult is a fully parsed source file
type loadResult struct {
	table *table.Table
	bytes int64
}

// load reads, decodes and parses the file at path into a typed table.
// The file is closed before load returns.
func load(path string, opts Options) (*loadResult, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is built from validated caller input
	if err != nil {
		return nil, readFailure(err, path, "failed to open file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			opts.Logger.Warn("failed to close file", zap.String("path", path), zap.Error(cerr))
		}
	}()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, readFailure(err, path, "failed to read file")
	}

	data, err := charset.Decode(raw, opts.Encoding)
	if err != nil {
		return nil, readFailure(err, path, "failed to decode file").
			WithDetail("encoding", opts.Encoding)
	}

	header, cells, err := parse(data, opts.Delimiter)
	if err != nil {
		return nil, readFailure(err, path, "failed to parse file")
	}

	classifier := schema.NewClassifier(opts.MissingValues...)
	columns := make([]table.Column, len(header))
	for i, name := range header {
		col, err := classifier.BuildColumn(name, cells[i])
		if err != nil {
			return nil, readFailure(err, path, "failed to build column").WithDetail("column", name)
		}
		columns[i] = col
	}

	t, err := table.New(columns...)
	if err != nil {
		return nil, readFailure(err, path, "failed to assemble table")
	}

	return &loadResult{table: t, bytes: int64(len(raw))}, nil
}

// parse splits delimited text into a header and one cell slice per column.
// Rows shorter than the header are padded with empty (missing) cells; rows
// longer than the header are rejected.
func parse(data []byte, delim rune) (header []string, cells [][]string, err error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delim
	r.FieldsPerRecord = -1

	header, err = r.Read()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, nil, errors.New(errors.ErrorTypeData, "file has no header row")
		}
		return nil, nil, err
	}

	seen := make(map[string]int, len(header))
	for i, name := range header {
		if first, dup := seen[name]; dup {
			return nil, nil, errors.Newf(errors.ErrorTypeData, "duplicate column %q", name).
				WithDetail("first_position", first).
				WithDetail("position", i)
		}
		seen[name] = i
	}

	cells = make([][]string, len(header))
	for {
		record, err := r.Read()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		if len(record) > len(header) {
			line, _ := r.FieldPos(0)
			return nil, nil, &csv.ParseError{StartLine: line, Line: line, Column: 1, Err: csv.ErrFieldCount}
		}
		for i := range header {
			field := ""
			if i < len(record) {
				field = record[i]
			}
			cells[i] = append(cells[i], field)
		}
	}

	return header, cells, nil
}

// readFailure wraps err as a FileReadFailure, recording the source line for
// CSV syntax errors
func readFailure(err error, path, message string) *errors.Error {
	e := errors.Wrap(err, errors.ErrorTypeFileRead, message).WithDetail("file", path)

	var parseErr *csv.ParseError
	if stderrors.As(err, &parseErr) {
		e = e.WithDetail("line", parseErr.Line).WithDetail("column", parseErr.Column)
	}
	return e
}
