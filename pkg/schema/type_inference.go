// Package schema classifies raw text columns as numeric or categorical and
// converts them into typed table columns.
package schema

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ajitpratap0/tabula/pkg/table"
)

// DefaultMissingValues are the cell spellings treated as missing data
var DefaultMissingValues = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

// MissingSet is a set of cell spellings that denote a missing value
type MissingSet map[string]struct{}

// NewMissingSet creates a set from tokens. The empty string is always included.
func NewMissingSet(tokens ...string) MissingSet {
	set := make(MissingSet, len(tokens)+1)
	set[""] = struct{}{}
	for _, tok := range tokens {
		set[strings.TrimSpace(tok)] = struct{}{}
	}
	return set
}

// IsMissing reports whether cell is a missing value
func (m MissingSet) IsMissing(cell string) bool {
	_, ok := m[strings.TrimSpace(cell)]
	return ok
}

// ParseInt parses a base-10 integer cell
func ParseInt(cell string) (int64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
	return v, err == nil
}

// ParseFloat parses a decimal number cell. Exponents and inf/nan spellings are
// accepted; hex literals and underscore separators are not. Out of range
// values parse to ±Inf.
func ParseFloat(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" || strings.ContainsRune(s, '_') {
		return 0, false
	}
	digits := strings.TrimLeft(s, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return v, true
		}
		return 0, false
	}
	return v, true
}

// Classifier decides the kind of a column from its raw cells
type Classifier struct {
	missing MissingSet
}

// NewClassifier creates a classifier. With no tokens DefaultMissingValues is used.
func NewClassifier(missing ...string) *Classifier {
	if len(missing) == 0 {
		missing = DefaultMissingValues
	}
	return &Classifier{missing: NewMissingSet(missing...)}
}

// Missing returns the classifier's missing value set
func (c *Classifier) Missing() MissingSet { return c.missing }

// Classify returns KindInt when every non-missing cell is an integer, KindFloat
// when every non-missing cell is a number, and KindString otherwise. A column
// with no values at all is numeric.
func (c *Classifier) Classify(cells []string) table.Kind {
	kind := table.KindInt
	for _, cell := range cells {
		if c.missing.IsMissing(cell) {
			continue
		}
		if kind == table.KindInt {
			if _, ok := ParseInt(cell); ok {
				continue
			}
			kind = table.KindFloat
		}
		if _, ok := ParseFloat(cell); !ok {
			return table.KindString
		}
	}

	if kind == table.KindInt && c.countPresent(cells) == 0 {
		return table.KindFloat
	}
	return kind
}

func (c *Classifier) countPresent(cells []string) int {
	n := 0
	for _, cell := range cells {
		if !c.missing.IsMissing(cell) {
			n++
		}
	}
	return n
}

// BuildColumn classifies cells and converts them into a typed column
func (c *Classifier) BuildColumn(name string, cells []string) (table.Column, error) {
	kind := c.Classify(cells)

	var valid []bool
	markMissing := func(i int) {
		if valid == nil {
			valid = make([]bool, len(cells))
			for j := range valid {
				valid[j] = true
			}
		}
		valid[i] = false
	}

	switch kind {
	case table.KindInt:
		values := make([]int64, len(cells))
		for i, cell := range cells {
			if c.missing.IsMissing(cell) {
				markMissing(i)
				continue
			}
			values[i], _ = ParseInt(cell)
		}
		return table.NewInt64Column(name, values, valid)

	case table.KindFloat:
		values := make([]float64, len(cells))
		for i, cell := range cells {
			if c.missing.IsMissing(cell) {
				markMissing(i)
				continue
			}
			values[i], _ = ParseFloat(cell)
		}
		return table.NewFloat64Column(name, values, valid)

	default:
		for i, cell := range cells {
			if c.missing.IsMissing(cell) {
				markMissing(i)
			}
		}
		return table.NewStringColumn(name, cells, valid)
	}
}

// Partition splits a table's column names into categorical and numeric sets,
// each in table order
func Partition(t *table.Table) (categorical, numeric []string) {
	categorical = []string{}
	numeric = []string{}
	for _, col := range t.Columns() {
		if col.Kind().IsNumeric() {
			numeric = append(numeric, col.Name())
		} else {
			categorical = append(categorical, col.Name())
		}
	}
	return categorical, numeric
}
