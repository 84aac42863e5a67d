package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoresTable(t *testing.T) *Table {
	t.Helper()

	id, err := NewInt64Column("id", []int64{1, 2, 3}, nil)
	require.NoError(t, err)
	name, err := NewStringColumn("name", []string{"Alice", "Bob", "Carol"}, nil)
	require.NoError(t, err)
	score, err := NewFloat64Column("score", []float64{88.5, 91.0, 0}, []bool{true, true, false})
	require.NoError(t, err)

	tbl, err := New(id, name, score)
	require.NoError(t, err)
	return tbl
}

func TestNewTable(t *testing.T) {
	tbl := scoresTable(t)

	assert.Equal(t, 3, tbl.NumRows())
	assert.Equal(t, 3, tbl.NumColumns())
	assert.Equal(t, []string{"id", "name", "score"}, tbl.ColumnNames())

	score, ok := tbl.Column("score")
	require.True(t, ok)
	assert.Equal(t, KindFloat, score.Kind())
	assert.Equal(t, 1, score.NullCount())
	assert.True(t, score.IsNull(2))
	assert.Nil(t, score.Value(2))
	assert.Equal(t, "", score.String(2))
	assert.Equal(t, "91", score.String(1))
}

func TestNewTableRejectsDuplicateNames(t *testing.T) {
	a, _ := NewStringColumn("a", []string{"x"}, nil)
	b, _ := NewStringColumn("a", []string{"y"}, nil)

	_, err := New(a, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestNewTableRejectsRaggedColumns(t *testing.T) {
	a, _ := NewStringColumn("a", []string{"x", "y"}, nil)
	b, _ := NewInt64Column("b", []int64{1}, nil)

	_, err := New(a, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has 1 rows, expected 2")
}

func TestValidityMaskLength(t *testing.T) {
	_, err := NewFloat64Column("x", []float64{1, 2}, []bool{true})
	require.Error(t, err)
}

func TestSelect(t *testing.T) {
	tbl := scoresTable(t)

	sub, err := tbl.Select("score", "id")
	require.NoError(t, err)
	assert.Equal(t, []string{"score", "id"}, sub.ColumnNames())
	assert.Equal(t, tbl.NumRows(), sub.NumRows())

	empty, err := tbl.Select()
	require.NoError(t, err)
	assert.Equal(t, 0, empty.NumColumns())
	assert.Equal(t, 3, empty.NumRows())

	_, err = tbl.Select("missing")
	require.Error(t, err)
}

func TestFilter(t *testing.T) {
	tbl := scoresTable(t)

	numeric := tbl.Filter(func(c Column) bool { return c.Kind().IsNumeric() })
	assert.Equal(t, []string{"id", "score"}, numeric.ColumnNames())
	assert.Equal(t, 3, numeric.NumRows())

	_, ok := numeric.Column("name")
	assert.False(t, ok)
}

func TestHead(t *testing.T) {
	tbl := scoresTable(t)

	head := tbl.Head(2)
	assert.Equal(t, 2, head.NumRows())
	assert.Equal(t, []interface{}{int64(2), "Bob", 91.0}, head.Row(1))

	score, _ := head.Column("score")
	assert.Equal(t, 0, score.NullCount())

	assert.Same(t, tbl, tbl.Head(10))
	assert.Equal(t, 0, tbl.Head(-1).NumRows())
}

func TestRow(t *testing.T) {
	tbl := scoresTable(t)
	assert.Equal(t, []interface{}{int64(3), "Carol", nil}, tbl.Row(2))
}

func TestFloats(t *testing.T) {
	tbl := scoresTable(t)

	id, _ := tbl.Column("id")
	vals, ok := Floats(id)
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3}, vals)

	score, _ := tbl.Column("score")
	vals, ok = Floats(score)
	require.True(t, ok)
	assert.Equal(t, []float64{88.5, 91.0}, vals)

	name, _ := tbl.Column("name")
	_, ok = Floats(name)
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "int64", KindInt.String())
	assert.Equal(t, "float64", KindFloat.String())
	assert.True(t, KindInt.IsNumeric())
	assert.False(t, KindString.IsNumeric())
}
