package schema

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/tabula/pkg/table"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"88.5", 88.5, true},
		{" 91.0 ", 91, true},
		{"-3", -3, true},
		{"+2.5e3", 2500, true},
		{".5", 0.5, true},
		{"1e400", math.Inf(1), true},
		{"abc", 0, false},
		{"0x1F", 0, false},
		{"1_000", 0, false},
		{"", 0, false},
		{"12/01/2020", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseFloat(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}

	v, ok := ParseFloat("inf")
	require.True(t, ok)
	assert.True(t, math.IsInf(v, 1))
}

func TestParseInt(t *testing.T) {
	v, ok := ParseInt(" 42 ")
	require.True(t, ok)
	assert.Equal(t, int64(42), v)

	_, ok = ParseInt("4.2")
	assert.False(t, ok)
	_, ok = ParseInt("99999999999999999999")
	assert.False(t, ok)
}

func TestMissingSet(t *testing.T) {
	m := NewMissingSet("NA")

	assert.True(t, m.IsMissing(""))
	assert.True(t, m.IsMissing("   "))
	assert.True(t, m.IsMissing(" NA "))
	assert.False(t, m.IsMissing("null"))
}

func TestClassify(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name  string
		cells []string
		want  table.Kind
	}{
		{"integers", []string{"1", "2", "3"}, table.KindInt},
		{"floats", []string{"88.5", "91.0", ""}, table.KindFloat},
		{"int and float", []string{"1", "2.5"}, table.KindFloat},
		{"text", []string{"Alice", "Bob"}, table.KindString},
		{"mixed", []string{"1", "two", "3"}, table.KindString},
		{"dates as text", []string{"2015-08-28 10:20:00"}, table.KindString},
		{"missing tokens", []string{"NaN", "7", "NULL"}, table.KindInt},
		{"all missing", []string{"", "NA"}, table.KindFloat},
		{"empty", nil, table.KindFloat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.cells))
		})
	}
}

func TestBuildColumn(t *testing.T) {
	c := NewClassifier()

	col, err := c.BuildColumn("score", []string{"88.5", "91.0", ""})
	require.NoError(t, err)
	assert.Equal(t, table.KindFloat, col.Kind())
	assert.Equal(t, 1, col.NullCount())
	assert.Equal(t, 88.5, col.Value(0))
	assert.Nil(t, col.Value(2))

	col, err = c.BuildColumn("id", []string{"1", "NA", "3"})
	require.NoError(t, err)
	assert.Equal(t, table.KindInt, col.Kind())
	assert.Equal(t, int64(3), col.Value(2))
	assert.True(t, col.IsNull(1))

	col, err = c.BuildColumn("name", []string{"Alice", "", "Carol"})
	require.NoError(t, err)
	assert.Equal(t, table.KindString, col.Kind())
	assert.True(t, col.IsNull(1))
	assert.Equal(t, "Carol", col.String(2))
}

func TestPartition(t *testing.T) {
	c := NewClassifier()
	id, _ := c.BuildColumn("id", []string{"1", "2"})
	name, _ := c.BuildColumn("name", []string{"a", "b"})
	score, _ := c.BuildColumn("score", []string{"1.5", ""})

	tbl, err := table.New(id, name, score)
	require.NoError(t, err)

	categorical, numeric := Partition(tbl)
	assert.Equal(t, []string{"name"}, categorical)
	assert.Equal(t, []string{"id", "score"}, numeric)

	empty, err := table.New()
	require.NoError(t, err)
	categorical, numeric = Partition(empty)
	assert.Empty(t, categorical)
	assert.Empty(t, numeric)
}
