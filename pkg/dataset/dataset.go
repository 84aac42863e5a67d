package dataset

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ajitpratap0/tabula/pkg/errors"
	"github.com/ajitpratap0/tabula/pkg/metrics"
	"github.com/ajitpratap0/tabula/pkg/schema"
	"github.com/ajitpratap0/tabula/pkg/stats"
	"github.com/ajitpratap0/tabula/pkg/table"
)

// Dataset is a delimited file loaded eagerly into memory. It is read-only
// after construction and safe for concurrent use.
type Dataset struct {
	path      string
	encoding  string
	delimiter rune
	table     *table.Table
}

// Partition holds the categorical and numeric columns of a dataset
type Partition struct {
	Categorical *table.Table
	Numeric     *table.Table
}

// New loads filename from dir with DefaultOptions
func New(dir, filename string) (*Dataset, error) {
	return NewWithOptions(dir, filename, DefaultOptions())
}

// NewWithOptions validates dir and filename, then loads the file.
//
// The directory must exist and the file name must end with opts.Extension;
// otherwise an ErrorTypeInvalidDirectory or ErrorTypeInvalidFileExtension
// error is returned before the file is touched. Any failure to open, decode
// or parse the file is returned as ErrorTypeFileRead. No dataset is returned
// alongside an error.
func NewWithOptions(dir, filename string, opts Options) (*Dataset, error) {
	timer := metrics.NewTimer()

	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	log := opts.Logger.With(zap.String("dir", dir), zap.String("file", filename))

	fail := func(err *errors.Error) (*Dataset, error) {
		log.Error("dataset load failed", zap.String("error_type", string(err.Type)), zap.Error(err))
		opts.Metrics.ObserveFailure(string(err.Type), timer.Elapsed())
		return nil, err
	}

	if err := validateDirectory(dir); err != nil {
		return fail(err)
	}
	if err := validateExtension(filename, opts.Extension); err != nil {
		return fail(err)
	}

	path := filepath.Join(dir, filename)
	log.Debug("loading dataset",
		zap.String("path", path),
		zap.String("encoding", opts.Encoding),
		zap.String("delimiter", string(opts.Delimiter)))

	res, err := load(path, opts)
	if err != nil {
		var e *errors.Error
		if !errors.As(err, &e) {
			e = errors.Wrap(err, errors.ErrorTypeFileRead, "failed to load file")
		}
		return fail(e)
	}

	took := timer.Elapsed()
	opts.Metrics.ObserveLoad(res.table.NumRows(), res.bytes, took)
	log.Info("dataset loaded",
		zap.String("path", path),
		zap.Int("rows", res.table.NumRows()),
		zap.Int("columns", res.table.NumColumns()),
		zap.Int64("bytes", res.bytes),
		zap.Duration("took", took))

	return &Dataset{
		path:      path,
		encoding:  opts.Encoding,
		delimiter: opts.Delimiter,
		table:     res.table,
	}, nil
}

func validateDirectory(dir string) *errors.Error {
	info, err := os.Stat(dir)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeInvalidDirectory, "the root dir path does not exist").
			WithDetail("dir", dir)
	}
	if !info.IsDir() {
		return errors.New(errors.ErrorTypeInvalidDirectory, "the root dir path is not a directory").
			WithDetail("dir", dir)
	}
	return nil
}

func validateExtension(filename, ext string) *errors.Error {
	if !strings.HasSuffix(filename, ext) {
		return errors.Newf(errors.ErrorTypeInvalidFileExtension, "the file is not in %s format", strings.TrimPrefix(ext, ".")).
			WithDetail("file", filename).
			WithDetail("extension", ext)
	}
	return nil
}

// Path returns the path of the source file
func (d *Dataset) Path() string { return d.path }

// Encoding returns the text encoding the file was decoded with
func (d *Dataset) Encoding() string { return d.encoding }

// Delimiter returns the field separator the file was parsed with
func (d *Dataset) Delimiter() rune { return d.delimiter }

// Extract returns the loaded table. Every call returns the same table.
func (d *Dataset) Extract() *table.Table {
	return d.table
}

// FetchColumns returns the header names in file order
func (d *Dataset) FetchColumns() []string {
	return d.table.ColumnNames()
}

// DataDescription returns the descriptive statistics table: one row per
// statistic and one column per numeric column. The first column is the
// label column (stats.StatisticColumn, "statistic" unless a numeric column
// already has that name); it holds the statistic names and is not part of
// the numeric partition, so callers iterating data columns skip index 0.
func (d *Dataset) DataDescription() *table.Table {
	return d.Describe().Table()
}

// Describe returns the descriptive statistics of every numeric column
func (d *Dataset) Describe() stats.Description {
	return stats.Describe(d.table)
}

// FetchCategorical returns the categorical columns when categorical is true
// and the numeric columns otherwise. Column order and all rows are kept.
func (d *Dataset) FetchCategorical(categorical bool) *table.Table {
	return d.table.Filter(func(c table.Column) bool {
		return c.Kind().IsNumeric() != categorical
	})
}

// Partition returns the categorical and numeric columns together
func (d *Dataset) Partition() Partition {
	return Partition{
		Categorical: d.FetchCategorical(true),
		Numeric:     d.FetchCategorical(false),
	}
}

// CategoricalColumns returns the names of the categorical columns
func (d *Dataset) CategoricalColumns() []string {
	categorical, _ := schema.Partition(d.table)
	return categorical
}

// NumericColumns returns the names of the numeric columns
func (d *Dataset) NumericColumns() []string {
	_, numeric := schema.Partition(d.table)
	return numeric
}
