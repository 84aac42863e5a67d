// Package table provides the in-memory columnar table that datasets load into.
package table

import (
	"fmt"
	"strconv"
)

// Kind represents the data type of a column
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int64"
	case KindFloat:
		return "float64"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsNumeric reports whether values of this kind are numbers
func (k Kind) IsNumeric() bool {
	return k == KindInt || k == KindFloat
}

// Column is the read-only interface shared by all column types.
// Columns never change after construction.
type Column interface {
	Name() string
	Kind() Kind
	Len() int
	// IsNull reports whether row i is missing
	IsNull(i int) bool
	// NullCount is the number of missing rows
	NullCount() int
	// Value returns the typed value at row i, or nil when missing
	Value(i int) interface{}
	// String returns the text form of row i, "" when missing
	String(i int) string
	// slice returns a column holding rows [from, to)
	slice(from, to int) Column
}

// validity tracks missing rows; a nil mask means every row is present
type validity struct {
	valid []bool
	nulls int
}

func newValidity(valid []bool, n int) (validity, error) {
	if valid == nil {
		return validity{}, nil
	}
	if len(valid) != n {
		return validity{}, fmt.Errorf("validity mask has %d entries, expected %d", len(valid), n)
	}
	nulls := 0
	for _, ok := range valid {
		if !ok {
			nulls++
		}
	}
	return validity{valid: valid, nulls: nulls}, nil
}

func (v validity) IsNull(i int) bool {
	return v.valid != nil && !v.valid[i]
}

func (v validity) NullCount() int { return v.nulls }

func (v validity) slice(from, to int) validity {
	if v.valid == nil {
		return v
	}
	out, _ := newValidity(v.valid[from:to], to-from)
	return out
}

// StringColumn stores text values
type StringColumn struct {
	validity
	name   string
	values []string
}

// NewStringColumn creates a string column. valid may be nil when no row is missing.
func NewStringColumn(name string, values []string, valid []bool) (*StringColumn, error) {
	v, err := newValidity(valid, len(values))
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", name, err)
	}
	return &StringColumn{validity: v, name: name, values: values}, nil
}

func (c *StringColumn) Name() string { return c.name }
func (c *StringColumn) Kind() Kind   { return KindString }
func (c *StringColumn) Len() int     { return len(c.values) }

func (c *StringColumn) Value(i int) interface{} {
	if c.IsNull(i) {
		return nil
	}
	return c.values[i]
}

func (c *StringColumn) String(i int) string {
	if c.IsNull(i) {
		return ""
	}
	return c.values[i]
}

func (c *StringColumn) slice(from, to int) Column {
	return &StringColumn{validity: c.validity.slice(from, to), name: c.name, values: c.values[from:to]}
}

// Int64Column stores integer values
type Int64Column struct {
	validity
	name   string
	values []int64
}

// NewInt64Column creates an integer column. valid may be nil when no row is missing.
func NewInt64Column(name string, values []int64, valid []bool) (*Int64Column, error) {
	v, err := newValidity(valid, len(values))
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", name, err)
	}
	return &Int64Column{validity: v, name: name, values: values}, nil
}

func (c *Int64Column) Name() string { return c.name }
func (c *Int64Column) Kind() Kind   { return KindInt }
func (c *Int64Column) Len() int     { return len(c.values) }

func (c *Int64Column) Value(i int) interface{} {
	if c.IsNull(i) {
		return nil
	}
	return c.values[i]
}

// Int64 returns the raw value at row i; callers check IsNull first
func (c *Int64Column) Int64(i int) int64 { return c.values[i] }

func (c *Int64Column) String(i int) string {
	if c.IsNull(i) {
		return ""
	}
	return strconv.FormatInt(c.values[i], 10)
}

func (c *Int64Column) slice(from, to int) Column {
	return &Int64Column{validity: c.validity.slice(from, to), name: c.name, values: c.values[from:to]}
}

// Float64Column stores floating point values
type Float64Column struct {
	validity
	name   string
	values []float64
}

// NewFloat64Column creates a float column. valid may be nil when no row is missing.
func NewFloat64Column(name string, values []float64, valid []bool) (*Float64Column, error) {
	v, err := newValidity(valid, len(values))
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", name, err)
	}
	return &Float64Column{validity: v, name: name, values: values}, nil
}

func (c *Float64Column) Name() string { return c.name }
func (c *Float64Column) Kind() Kind   { return KindFloat }
func (c *Float64Column) Len() int     { return len(c.values) }

func (c *Float64Column) Value(i int) interface{} {
	if c.IsNull(i) {
		return nil
	}
	return c.values[i]
}

// Float64 returns the raw value at row i; callers check IsNull first
func (c *Float64Column) Float64(i int) float64 { return c.values[i] }

func (c *Float64Column) String(i int) string {
	if c.IsNull(i) {
		return ""
	}
	return strconv.FormatFloat(c.values[i], 'g', -1, 64)
}

func (c *Float64Column) slice(from, to int) Column {
	return &Float64Column{validity: c.validity.slice(from, to), name: c.name, values: c.values[from:to]}
}

// Floats returns the non-missing values of a numeric column as float64.
// ok is false for string columns.
func Floats(c Column) (values []float64, ok bool) {
	switch col := c.(type) {
	case *Float64Column:
		values = make([]float64, 0, col.Len()-col.NullCount())
		for i := 0; i < col.Len(); i++ {
			if !col.IsNull(i) {
				values = append(values, col.values[i])
			}
		}
		return values, true
	case *Int64Column:
		values = make([]float64, 0, col.Len()-col.NullCount())
		for i := 0; i < col.Len(); i++ {
			if !col.IsNull(i) {
				values = append(values, float64(col.values[i]))
			}
		}
		return values, true
	default:
		return nil, false
	}
}
