package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ajitpratap0/tabula/pkg/config"
	"github.com/ajitpratap0/tabula/pkg/dataset"
	"github.com/ajitpratap0/tabula/pkg/errors"
	"github.com/ajitpratap0/tabula/pkg/export"
	"github.com/ajitpratap0/tabula/pkg/logger"
	"github.com/ajitpratap0/tabula/pkg/metrics"
)

var version = "0.1.0"

const envPrefix = "TABULA"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	a := newApp()
	root := newRootCommand(a)

	err := root.Execute()
	if werr := a.writeMetrics(); werr != nil {
		logger.Warn("failed to write metrics", zap.Error(werr))
	}
	if err != nil {
		logger.Fatal("tabula failed",
			zap.String("error_type", string(errors.TypeOf(err))),
			zap.Error(err))
	}
	_ = logger.Sync()
}

// app carries the state shared by all commands of one invocation
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	reg     *prometheus.Registry
	metrics *metrics.Collector
}

func newApp() *app {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	reg := prometheus.NewRegistry()
	return &app{
		v:       v,
		cfg:     config.Default(),
		reg:     reg,
		metrics: metrics.NewCollector(reg),
	}
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "tabula",
		Short: "Tabula - tabular dataset loader and profiler",
		Long: `Tabula loads a delimited text file into memory, infers which columns are
numeric and which are categorical, and reports descriptive statistics.

Settings come from flags, TABULA_* environment variables and an optional
YAML file, in that order of precedence.

Example:
  tabula describe --dir data --file crime.csv --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Path to a YAML configuration file")
	flags.String("dir", "", "Directory holding the dataset file (default: current directory)")
	flags.String("file", "", "Dataset file name, relative to --dir")
	flags.String("encoding", "", "Text encoding of the file (default: ISO-8859-1)")
	flags.String("delimiter", "", `Field separator, a single character or "tab" (default: ",")`)
	flags.String("extension", "", `Required file name suffix (default: ".csv")`)
	flags.StringSlice("missing", nil, "Cell values read as missing; replaces the default list")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("format", "", "Output format: text, json or arrow")
	flags.String("orient", "", "JSON layout: records or columns")
	flags.StringP("output", "o", "", "Output file; empty writes to stdout, a .gz suffix compresses")
	flags.Int("limit", 0, "Maximum number of rows to print; 0 prints all")
	flags.String("metrics-file", "", "Write load metrics in Prometheus text format to this file")

	root.AddCommand(
		newVersionCommand(),
		newColumnsCommand(a),
		newDescribeCommand(a),
		newPartitionCommand(a),
		newExtractCommand(a),
		newExportCommand(a),
		newConfigCommand(a),
	)
	return root
}

// configure layers the YAML file, environment and flags onto the defaults
func (a *app) configure(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to bind flags")
	}

	cfg := config.Default()
	if path := a.v.GetString("config"); path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	overlay := func(key string, dst *string) {
		if a.v.IsSet(key) {
			*dst = a.v.GetString(key)
		}
	}
	overlay("dir", &cfg.Dataset.Dir)
	overlay("file", &cfg.Dataset.File)
	overlay("encoding", &cfg.Dataset.Encoding)
	overlay("delimiter", &cfg.Dataset.Delimiter)
	overlay("extension", &cfg.Dataset.Extension)
	overlay("log-level", &cfg.Logging.Level)
	overlay("format", &cfg.Output.Format)
	overlay("orient", &cfg.Output.Orient)
	overlay("output", &cfg.Output.Path)
	if a.v.IsSet("missing") {
		cfg.Dataset.MissingValues = a.v.GetStringSlice("missing")
	}
	if a.v.IsSet("limit") {
		cfg.Output.Limit = a.v.GetInt("limit")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging.LoggerConfig()); err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to build logger").
			WithDetail("field", "logging")
	}
	cmd.SetContext(context.WithValue(cmd.Context(), logger.CommandKey, cmd.Name()))

	a.cfg = cfg
	return nil
}

// open loads the configured dataset
func (a *app) open(cmd *cobra.Command) (*dataset.Dataset, error) {
	if a.cfg.Dataset.File == "" {
		return nil, errors.New(errors.ErrorTypeConfig, "no dataset file given; set --file or dataset.file").
			WithDetail("field", "dataset.file")
	}
	dir := a.cfg.Dataset.Dir
	if dir == "" {
		dir = "."
	}

	opts, err := dataset.OptionsFromConfig(a.cfg.Dataset)
	if err != nil {
		return nil, err
	}
	ctx := context.WithValue(cmd.Context(), logger.DatasetKey, filepath.Join(dir, a.cfg.Dataset.File))
	cmd.SetContext(ctx)
	opts.Logger = logger.WithContext(ctx)
	opts.Metrics = a.metrics

	return dataset.NewWithOptions(dir, a.cfg.Dataset.File, opts)
}

// output opens the configured destination, falling back to the command's stdout
func (a *app) output(cmd *cobra.Command) (io.WriteCloser, error) {
	w, err := export.CreateOr(a.cfg.Output.Path, cmd.OutOrStdout())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeInternal, "failed to open output").
			WithDetail("path", a.cfg.Output.Path)
	}
	return w, nil
}

func (a *app) writeMetrics() error {
	path := a.v.GetString("metrics-file")
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, a.reg)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		// version needs neither configuration nor a dataset
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Tabula v%s\n", version)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
