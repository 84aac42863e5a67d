package dataset

import (
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/ajitpratap0/tabula/pkg/charset"
	"github.com/ajitpratap0/tabula/pkg/config"
	"github.com/ajitpratap0/tabula/pkg/errors"
	"github.com/ajitpratap0/tabula/pkg/metrics"
	"github.com/ajitpratap0/tabula/pkg/schema"
)

// DefaultExtension is the file name suffix a source file must carry
const DefaultExtension = ".csv"

// Options controls how a dataset file is validated, decoded and parsed
type Options struct {
	// Encoding is the text encoding of the file, ISO-8859-1 by default
	Encoding string
	// Delimiter is the field separator, ',' by default
	Delimiter rune
	// Extension is the required file name suffix, ".csv" by default
	Extension string
	// MissingValues are the cell spellings read as missing;
	// nil selects schema.DefaultMissingValues
	MissingValues []string
	// Logger receives load diagnostics; nil disables logging
	Logger *zap.Logger
	// Metrics records load outcomes; nil disables metrics
	Metrics *metrics.Collector
}

// DefaultOptions returns the options used by New
func DefaultOptions() Options {
	return Options{
		Encoding:  charset.Default,
		Delimiter: ',',
		Extension: DefaultExtension,
	}
}

// OptionsFromConfig converts the dataset section of a configuration
func OptionsFromConfig(cfg config.DatasetConfig) (Options, error) {
	if err := cfg.Validate(); err != nil {
		return Options{}, err
	}
	delim, err := cfg.DelimiterRune()
	if err != nil {
		return Options{}, err
	}

	opts := DefaultOptions()
	opts.Encoding = cfg.Encoding
	opts.Delimiter = delim
	opts.Extension = cfg.Extension
	if cfg.MissingValues != nil {
		opts.MissingValues = make([]string, len(cfg.MissingValues))
		copy(opts.MissingValues, cfg.MissingValues)
	}
	return opts, nil
}

// withDefaults fills zero fields and validates the result
func (o Options) withDefaults() (Options, error) {
	def := DefaultOptions()
	if o.Encoding == "" {
		o.Encoding = def.Encoding
	}
	if o.Delimiter == 0 {
		o.Delimiter = def.Delimiter
	}
	if o.Extension == "" {
		o.Extension = def.Extension
	}
	if o.MissingValues == nil {
		o.MissingValues = schema.DefaultMissingValues
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	if !validDelimiter(o.Delimiter) {
		return o, errors.Newf(errors.ErrorTypeConfig, "invalid delimiter %q", o.Delimiter).
			WithDetail("delimiter", string(o.Delimiter))
	}
	if _, err := charset.Lookup(o.Encoding); err != nil {
		return o, errors.Wrap(err, errors.ErrorTypeConfig, "invalid encoding").
			WithDetail("encoding", o.Encoding)
	}
	return o, nil
}

func validDelimiter(r rune) bool {
	return r != '"' && r != '\r' && r != '\n' && r != utf8.RuneError && utf8.ValidRune(r)
}
