// Package export renders tables as JSON, Apache Arrow IPC files and plain text.
package export

import (
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/ajitpratap0/tabula/pkg/table"
)

// ArrowSchema converts a table's columns to nullable Arrow fields
func ArrowSchema(t *table.Table) *arrow.Schema {
	fields := make([]arrow.Field, 0, t.NumColumns())
	for _, col := range t.Columns() {
		fields = append(fields, arrow.Field{
			Name:     col.Name(),
			Type:     arrowType(col.Kind()),
			Nullable: true,
		})
	}
	return arrow.NewSchema(fields, nil)
}

func arrowType(kind table.Kind) arrow.DataType {
	switch kind {
	case table.KindInt:
		return arrow.PrimitiveTypes.Int64
	case table.KindFloat:
		return arrow.PrimitiveTypes.Float64
	default:
		return arrow.BinaryTypes.String
	}
}

// ArrowRecord builds a single Arrow record holding every row of t.
// The caller must Release the record.
func ArrowRecord(t *table.Table, mem memory.Allocator) (arrow.Record, error) {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	builder := array.NewRecordBuilder(mem, ArrowSchema(t))
	defer builder.Release()

	for i, col := range t.Columns() {
		if err := appendColumn(builder.Field(i), col); err != nil {
			return nil, fmt.Errorf("failed to append column %s: %w", col.Name(), err)
		}
	}

	return builder.NewRecord(), nil
}

func appendColumn(b array.Builder, col table.Column) error {
	b.Reserve(col.Len())

	switch builder := b.(type) {
	case *array.Int64Builder:
		for i := 0; i < col.Len(); i++ {
			v, ok := col.Value(i).(int64)
			if !ok {
				builder.AppendNull()
				continue
			}
			builder.Append(v)
		}
	case *array.Float64Builder:
		for i := 0; i < col.Len(); i++ {
			v, ok := col.Value(i).(float64)
			if !ok {
				builder.AppendNull()
				continue
			}
			builder.Append(v)
		}
	case *array.StringBuilder:
		for i := 0; i < col.Len(); i++ {
			if col.IsNull(i) {
				builder.AppendNull()
				continue
			}
			builder.Append(col.String(i))
		}
	default:
		return fmt.Errorf("unsupported builder %T", b)
	}
	return nil
}

// WriteArrow writes t to w in the Arrow IPC file format as one record batch
func WriteArrow(w io.Writer, t *table.Table) error {
	mem := memory.NewGoAllocator()

	record, err := ArrowRecord(t, mem)
	if err != nil {
		return err
	}
	defer record.Release()

	fw, err := ipc.NewFileWriter(w, ipc.WithSchema(record.Schema()), ipc.WithAllocator(mem))
	if err != nil {
		return fmt.Errorf("failed to create Arrow writer: %w", err)
	}

	if err := fw.Write(record); err != nil {
		_ = fw.Close()
		return fmt.Errorf("failed to write record batch: %w", err)
	}

	if err := fw.Close(); err != nil {
		return fmt.Errorf("failed to close Arrow writer: %w", err)
	}
	return nil
}
