package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/tabula/pkg/config"
	"github.com/ajitpratap0/tabula/pkg/dataset"
	"github.com/ajitpratap0/tabula/pkg/errors"
	"github.com/ajitpratap0/tabula/pkg/export"
	"github.com/ajitpratap0/tabula/pkg/logger"
	"github.com/ajitpratap0/tabula/pkg/table"
)

// partitionNames is the JSON shape of "partition --both"
type partitionNames struct {
	Categorical []string `json:"categorical"`
	Numeric     []string `json:"numeric"`
}

// withDataset opens the dataset and the output, runs fn, and closes the output
func (a *app) withDataset(cmd *cobra.Command, fn func(w io.Writer, ds *dataset.Dataset) error) error {
	ds, err := a.open(cmd)
	if err != nil {
		return err
	}

	w, err := a.output(cmd)
	if err != nil {
		return err
	}
	if err := fn(w, ds); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, errors.ErrorTypeInternal, "failed to close output")
	}

	logger.WithContext(cmd.Context()).Debug("command completed", zap.String("path", ds.Path()))
	return nil
}

// render writes t in the configured format, honoring the row limit
func (a *app) render(w io.Writer, t *table.Table) error {
	if a.cfg.Output.Limit > 0 {
		t = t.Head(a.cfg.Output.Limit)
	}

	switch a.cfg.Output.Format {
	case config.FormatJSON:
		return export.JSON(w, t, export.Orient(a.cfg.Output.Orient))
	case config.FormatArrow:
		return export.WriteArrow(w, t)
	default:
		return export.Text(w, t)
	}
}

// names writes a list of column names in the configured format
func (a *app) names(w io.Writer, v interface{}, lines []string) error {
	switch a.cfg.Output.Format {
	case config.FormatJSON:
		return export.Encode(w, v)
	case config.FormatArrow:
		return errors.New(errors.ErrorTypeValidation, "column names cannot be written as arrow").
			WithDetail("format", a.cfg.Output.Format)
	default:
		return export.Lines(w, lines)
	}
}

func newColumnsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "List the column names in file order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDataset(cmd, func(w io.Writer, ds *dataset.Dataset) error {
				cols := ds.FetchColumns()
				return a.names(w, cols, cols)
			})
		},
	}
}

func newDescribeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print descriptive statistics of the numeric columns",
		Long: `Print count, mean, std, min, 25%, 50%, 75% and max for every numeric
column. Rows are statistics and columns are the numeric columns.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDataset(cmd, func(w io.Writer, ds *dataset.Dataset) error {
				return a.render(w, ds.DataDescription())
			})
		},
	}
}

func newPartitionCommand(a *app) *cobra.Command {
	var categorical, numeric, both bool

	cmd := &cobra.Command{
		Use:   "partition",
		Short: "Print the categorical or the numeric columns",
		Long: `Print the numeric columns, or the categorical columns with --categorical.
With --both only the column names of each side are printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDataset(cmd, func(w io.Writer, ds *dataset.Dataset) error {
				if both {
					p := partitionNames{
						Categorical: ds.CategoricalColumns(),
						Numeric:     ds.NumericColumns(),
					}
					lines := make([]string, 0, len(p.Categorical)+len(p.Numeric)+3)
					lines = append(lines, "categorical:")
					lines = append(lines, indent(p.Categorical)...)
					lines = append(lines, "numeric:")
					lines = append(lines, indent(p.Numeric)...)
					return a.names(w, p, lines)
				}
				return a.render(w, ds.FetchCategorical(categorical))
			})
		},
	}

	cmd.Flags().BoolVar(&categorical, "categorical", false, "Print the categorical columns")
	cmd.Flags().BoolVar(&numeric, "numeric", false, "Print the numeric columns (default)")
	cmd.Flags().BoolVar(&both, "both", false, "Print the names of both partitions")
	cmd.MarkFlagsMutuallyExclusive("categorical", "numeric", "both")
	return cmd
}

func indent(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = "  " + n
	}
	return out
}

func newExtractCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "extract",
		Short: "Print the loaded table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDataset(cmd, func(w io.Writer, ds *dataset.Dataset) error {
				return a.render(w, ds.Extract())
			})
		},
	}
}

func newExportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the loaded table to a JSON or Arrow IPC file",
		Long: `Write the loaded table to --output as JSON (--orient records|columns) or
as an Arrow IPC file. A .gz output path is gzip compressed.

Example:
  tabula export --file crime.csv --format arrow --output crime.arrow`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Output.Path == "" {
				return errors.New(errors.ErrorTypeValidation, "export requires --output").
					WithDetail("field", "output.path")
			}
			if a.cfg.Output.Format == config.FormatText {
				return errors.New(errors.ErrorTypeValidation, "export supports json and arrow formats").
					WithDetail("format", a.cfg.Output.Format)
			}
			return a.withDataset(cmd, func(w io.Writer, ds *dataset.Dataset) error {
				return a.render(w, ds.Extract())
			})
		},
	}
}

func newConfigCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Write the effective configuration as YAML",
		Long: `Write the configuration that results from the YAML file, TABULA_*
environment variables and flags to --output, ready to be passed back with
--config.

Example:
  tabula config --dir data --file crime.csv --delimiter ";" --output tabula.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Output.Path
			if path == "" {
				return errors.New(errors.ErrorTypeValidation, "config requires --output").
					WithDetail("field", "output.path")
			}

			cfg := *a.cfg
			cfg.Output.Path = ""
			if err := config.Save(path, &cfg); err != nil {
				return errors.Wrap(err, errors.ErrorTypeInternal, "failed to write configuration").
					WithDetail("path", path)
			}

			logger.WithContext(cmd.Context()).Info("configuration written", zap.String("path", path))
			return nil
		},
	}
}
