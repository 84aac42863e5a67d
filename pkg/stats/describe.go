// Package stats computes descriptive statistics over numeric table columns.
package stats

import (
	"math"
	"sort"

	mstats "github.com/montanaflynn/stats"

	"github.com/ajitpratap0/tabula/pkg/table"
)

// StatisticColumn is the name of the label column in a description table
const StatisticColumn = "statistic"

// Labels are the descriptive statistics, in the order they appear as rows
var Labels = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

// Summary holds the descriptive statistics of one numeric column.
// Statistics that are undefined for the column's values are NaN.
type Summary struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Values returns the statistics in Labels order
func (s Summary) Values() []float64 {
	return []float64{float64(s.Count), s.Mean, s.Std, s.Min, s.Q1, s.Median, s.Q3, s.Max}
}

// Description is the set of summaries for every numeric column of a table
type Description struct {
	Summaries []Summary `json:"summaries"`
}

// Summary looks up the statistics for a column
func (d Description) Summary(column string) (Summary, bool) {
	for _, s := range d.Summaries {
		if s.Column == column {
			return s, true
		}
	}
	return Summary{}, false
}

// Summarize computes the statistics of a numeric column. Missing rows are
// excluded. ok is false for non-numeric columns.
func Summarize(col table.Column) (Summary, bool) {
	values, ok := table.Floats(col)
	if !ok {
		return Summary{}, false
	}
	s := Summarize64(values)
	s.Column = col.Name()
	return s, true
}

// Summarize64 computes the statistics of values. values is not modified.
func Summarize64(values []float64) Summary {
	nan := math.NaN()
	s := Summary{
		Count: len(values),
		Mean:  nan, Std: nan, Min: nan, Q1: nan, Median: nan, Q3: nan, Max: nan,
	}
	if s.Count == 0 {
		return s
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	s.Mean = Mean(values)
	s.Std = Std(values)
	s.Min = orNaN(mstats.Min(values))
	s.Max = orNaN(mstats.Max(values))
	s.Q1 = Quantile(sorted, 0.25)
	s.Median = Quantile(sorted, 0.5)
	s.Q3 = Quantile(sorted, 0.75)
	return s
}

// Describe summarizes every numeric column of t, in table order
func Describe(t *table.Table) Description {
	d := Description{Summaries: []Summary{}}
	for _, col := range t.Columns() {
		if s, ok := Summarize(col); ok {
			d.Summaries = append(d.Summaries, s)
		}
	}
	return d
}

// Table renders the description with one row per statistic and one float
// column per summarized column. NaN statistics become missing cells. The
// label column is StatisticColumn, suffixed with "_" while it clashes with a
// summarized column.
func (d Description) Table() *table.Table {
	labelName := StatisticColumn
	for {
		if _, clash := d.Summary(labelName); !clash {
			break
		}
		labelName += "_"
	}

	labels, _ := table.NewStringColumn(labelName, append([]string(nil), Labels...), nil)
	cols := []table.Column{labels}

	for _, s := range d.Summaries {
		values := s.Values()
		var valid []bool
		for i, v := range values {
			if !math.IsNaN(v) {
				continue
			}
			if valid == nil {
				valid = make([]bool, len(values))
				for j := range valid {
					valid[j] = true
				}
			}
			valid[i] = false
			values[i] = 0
		}
		col, _ := table.NewFloat64Column(s.Column, values, valid)
		cols = append(cols, col)
	}

	t, _ := table.New(cols...)
	return t
}

// Mean returns the arithmetic mean, NaN for no values
func Mean(values []float64) float64 {
	return orNaN(mstats.Mean(values))
}

// Std returns the sample standard deviation (n-1 denominator), NaN for
// fewer than two values
func Std(values []float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}
	return orNaN(mstats.StandardDeviationSample(values))
}

func orNaN(v float64, err error) float64 {
	if err != nil {
		return math.NaN()
	}
	return v
}

// Quantile returns the q-th quantile of sorted values using linear
// interpolation between the closest ranks, at position q*(n-1). sorted must
// be ascending.
func Quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 || q < 0 || q > 1 || math.IsNaN(q) {
		return math.NaN()
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
