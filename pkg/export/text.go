package export

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ajitpratap0/tabula/pkg/table"
)

// MissingText is printed for missing cells
const MissingText = "NaN"

// Text writes t as an aligned plain text table with a header line
func Text(w io.Writer, t *table.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	cols := t.Columns()
	cells := make([]string, len(cols))

	for i, col := range cols {
		cells[i] = col.Name()
	}
	if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t"); err != nil {
		return err
	}

	for row := 0; row < t.NumRows(); row++ {
		for i, col := range cols {
			if col.IsNull(row) {
				cells[i] = MissingText
			} else {
				cells[i] = col.String(row)
			}
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t"); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// Lines writes one value per line
func Lines(w io.Writer, values []string) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}
