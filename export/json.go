package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/meenmo/fwdcurve/grid"
	"github.com/meenmo/fwdcurve/utils"
)

type jsonTable struct {
	Tenors []string  `json:"tenors"`
	Rows   []jsonRow `json:"rows"`
}

type jsonRow struct {
	Date     string    `json:"date"`
	Forwards []float64 `json:"forwards"`
}

// WriteJSON renders the table as one JSON document with explicit tenor
// and date axes. Row order follows the as-of axis, cell order the tenor
// axis.
func WriteJSON(w io.Writer, t *grid.Table) error {
	doc := jsonTable{
		Tenors: t.Tenors(),
		Rows:   make([]jsonRow, t.NumRows()),
	}
	for i, d := range t.Dates() {
		doc.Rows[i] = jsonRow{Date: utils.FormatDate(d), Forwards: t.Row(i)}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("WriteJSON: %w", err)
	}
	return nil
}
