// Package export renders forward rate tables as aligned text, JSON
// documents, or XLSX workbooks.
package export

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/meenmo/fwdcurve/grid"
	"github.com/meenmo/fwdcurve/utils"
)

// WriteText renders the whole table as aligned columns, one as-of date
// per row, rates shown as percentages.
func WriteText(w io.Writer, t *grid.Table) error {
	return WriteTextHead(w, t, t.NumRows())
}

// WriteTextHead renders the header and at most rows leading rows.
func WriteTextHead(w io.Writer, t *grid.Table, rows int) error {
	if rows > t.NumRows() {
		rows = t.NumRows()
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "date\t%s\n", strings.Join(t.Tenors(), "\t")); err != nil {
		return fmt.Errorf("WriteTextHead: %w", err)
	}

	dates := t.Dates()
	for i := 0; i < rows; i++ {
		cells := make([]string, 0, t.NumCols()+1)
		cells = append(cells, utils.FormatDate(dates[i]))
		for j := 0; j < t.NumCols(); j++ {
			cells = append(cells, formatPercent(t.At(i, j)))
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return fmt.Errorf("WriteTextHead: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("WriteTextHead: %w", err)
	}
	return nil
}

func formatPercent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}
