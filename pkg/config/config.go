// Package config provides the configuration for tabula.
//
// The configuration is organized into logical sections:
//   - Dataset: where the source file lives and how it is decoded and parsed
//   - Logging: zap logger level and encoding
//   - Output: how query results are rendered by the CLI
//
// Example usage:
//
//	cfg := config.Default()
//	cfg.Dataset.Dir = "data"
//	cfg.Dataset.File = "crime.csv"
//
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config

import (
	"strings"
	"unicode/utf8"

	"github.com/ajitpratap0/tabula/pkg/charset"
	"github.com/ajitpratap0/tabula/pkg/errors"
	"github.com/ajitpratap0/tabula/pkg/logger"
	"github.com/ajitpratap0/tabula/pkg/schema"
)

// Output formats
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatArrow = "arrow"
)

// JSON orientations
const (
	OrientRecords = "records"
	OrientColumns = "columns"
)

// Config is the top-level configuration structure
type Config struct {
	// Dataset settings for locating, decoding and parsing the source file
	Dataset DatasetConfig `yaml:"dataset" json:"dataset"`

	// Logging settings for the zap logger
	Logging LoggingConfig `yaml:"logging" json:"logging"`

	// Output settings for rendering results
	Output OutputConfig `yaml:"output" json:"output"`
}

// DatasetConfig describes the delimited source file
type DatasetConfig struct {
	// Dir is the directory holding the source file; it must exist
	Dir string `yaml:"dir" json:"dir"`
	// File is the source file name, relative to Dir
	File string `yaml:"file" json:"file"`
	// Encoding is the text encoding of the file (IANA or WHATWG name)
	Encoding string `yaml:"encoding" json:"encoding"`
	// Delimiter is the single-character field separator
	Delimiter string `yaml:"delimiter" json:"delimiter"`
	// Extension is the required file name suffix
	Extension string `yaml:"extension" json:"extension"`
	// MissingValues are the cell spellings treated as missing
	MissingValues []string `yaml:"missing_values" json:"missing_values"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level       string `yaml:"level" json:"level"`
	Encoding    string `yaml:"encoding" json:"encoding"`
	Development bool   `yaml:"development" json:"development"`
}

// OutputConfig contains result rendering settings
type OutputConfig struct {
	// Format is one of text, json or arrow
	Format string `yaml:"format" json:"format"`
	// Orient is the JSON layout, records or columns
	Orient string `yaml:"orient" json:"orient"`
	// Path is the output file; empty means stdout. A .gz suffix compresses.
	Path string `yaml:"path" json:"path"`
	// Limit caps the rows printed by extract; 0 prints all rows
	Limit int `yaml:"limit" json:"limit"`
}

// Default returns a configuration with defaults applied
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Encoding:      charset.Default,
			Delimiter:     ",",
			Extension:     ".csv",
			MissingValues: append([]string(nil), schema.DefaultMissingValues...),
		},
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
		},
		Output: OutputConfig{
			Format: FormatText,
			Orient: OrientRecords,
		},
	}
}

// Validate validates the configuration for correctness.
// Dir and File are not required here; they are checked when a dataset is opened.
func (c *Config) Validate() error {
	if err := c.Dataset.Validate(); err != nil {
		return err
	}

	switch c.Output.Format {
	case FormatText, FormatJSON, FormatArrow:
	default:
		return errors.Newf(errors.ErrorTypeConfig, "unknown output format %q", c.Output.Format).
			WithDetail("field", "output.format")
	}

	switch c.Output.Orient {
	case OrientRecords, OrientColumns:
	default:
		return errors.Newf(errors.ErrorTypeConfig, "unknown JSON orient %q", c.Output.Orient).
			WithDetail("field", "output.orient")
	}

	if c.Output.Limit < 0 {
		return errors.New(errors.ErrorTypeConfig, "limit cannot be negative").
			WithDetail("field", "output.limit")
	}
	return nil
}

// Validate checks the dataset parsing settings
func (d *DatasetConfig) Validate() error {
	if _, err := d.DelimiterRune(); err != nil {
		return err
	}
	if !strings.HasPrefix(d.Extension, ".") || len(d.Extension) < 2 {
		return errors.Newf(errors.ErrorTypeConfig, "extension %q must start with '.'", d.Extension).
			WithDetail("field", "dataset.extension")
	}
	if _, err := charset.Lookup(d.Encoding); err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "invalid encoding").
			WithDetail("field", "dataset.encoding")
	}
	return nil
}

// DelimiterRune returns the delimiter as a rune. "\t" and "tab" name a tab.
func (d *DatasetConfig) DelimiterRune() (rune, error) {
	delim := d.Delimiter
	switch strings.ToLower(delim) {
	case `\t`, "tab":
		return '\t', nil
	}

	r, size := utf8.DecodeRuneInString(delim)
	if size == 0 || size != len(delim) || r == utf8.RuneError {
		return 0, errors.Newf(errors.ErrorTypeConfig, "delimiter %q must be a single character", delim).
			WithDetail("field", "dataset.delimiter")
	}
	if r == '"' || r == '\r' || r == '\n' {
		return 0, errors.Newf(errors.ErrorTypeConfig, "delimiter %q is not allowed", delim).
			WithDetail("field", "dataset.delimiter")
	}
	return r, nil
}

// LoggerConfig converts the logging section for the logger package
func (l LoggingConfig) LoggerConfig() logger.Config {
	return logger.Config{
		Level:       l.Level,
		Encoding:    l.Encoding,
		Development: l.Development,
	}
}
