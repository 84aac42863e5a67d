package export

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/goccy/go-json"

	"github.com/ajitpratap0/tabula/pkg/table"
)

// Orient selects the JSON layout of a table
type Orient string

const (
	// Records writes an array with one object per row
	Records Orient = "records"
	// Columns writes an object mapping each column to its values
	Columns Orient = "columns"
)

// JSON writes t to w. Keys keep the table's column order; missing cells and
// non-finite numbers are written as null.
func JSON(w io.Writer, t *table.Table, orient Orient) error {
	bw := bufio.NewWriter(w)

	var err error
	switch orient {
	case Records, "":
		err = writeRecords(bw, t)
	case Columns:
		err = writeColumns(bw, t)
	default:
		return fmt.Errorf("unknown orient %q", orient)
	}
	if err != nil {
		return err
	}

	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}

func writeRecords(w *bufio.Writer, t *table.Table) error {
	keys, err := encodeKeys(t)
	if err != nil {
		return err
	}
	cols := t.Columns()

	w.WriteByte('[')
	for row := 0; row < t.NumRows(); row++ {
		if row > 0 {
			w.WriteByte(',')
		}
		w.WriteByte('{')
		for i, col := range cols {
			if i > 0 {
				w.WriteByte(',')
			}
			w.Write(keys[i])
			w.WriteByte(':')
			if err := writeValue(w, col.Value(row)); err != nil {
				return fmt.Errorf("row %d column %s: %w", row, col.Name(), err)
			}
		}
		w.WriteByte('}')
	}
	_, err = w.WriteString("]")
	return err
}

func writeColumns(w *bufio.Writer, t *table.Table) error {
	keys, err := encodeKeys(t)
	if err != nil {
		return err
	}

	w.WriteByte('{')
	for i, col := range t.Columns() {
		if i > 0 {
			w.WriteByte(',')
		}
		w.Write(keys[i])
		w.WriteString(":[")
		for row := 0; row < col.Len(); row++ {
			if row > 0 {
				w.WriteByte(',')
			}
			if err := writeValue(w, col.Value(row)); err != nil {
				return fmt.Errorf("row %d column %s: %w", row, col.Name(), err)
			}
		}
		w.WriteByte(']')
	}
	_, err = w.WriteString("}")
	return err
}

func encodeKeys(t *table.Table) ([][]byte, error) {
	keys := make([][]byte, t.NumColumns())
	for i, name := range t.ColumnNames() {
		b, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		keys[i] = b
	}
	return keys, nil
}

func writeValue(w *bufio.Writer, v interface{}) error {
	if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		v = nil
	}
	if v == nil {
		_, err := w.WriteString("null")
		return err
	}

	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Encode writes v as indented JSON. It is used for typed results such as
// statistics summaries.
func Encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
