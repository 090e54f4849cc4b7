package grid

import (
	"fmt"
	"time"
)

// Table is a fixed-shape forward-rate result: one row per as-of date,
// one column per tenor, positionally indexed. Built once, never mutated.
type Table struct {
	dates  []time.Time
	tenors []string
	rates  [][]float64
}

// NewTable assembles a table from parallel axes. Every rates row must
// carry one cell per tenor.
func NewTable(dates []time.Time, tenors []string, rates [][]float64) (*Table, error) {
	if len(rates) != len(dates) {
		return nil, fmt.Errorf("NewTable: %d dates but %d rate rows", len(dates), len(rates))
	}
	for i, row := range rates {
		if len(row) != len(tenors) {
			return nil, fmt.Errorf("NewTable: row %d has %d cells, want %d", i, len(row), len(tenors))
		}
	}
	return &Table{dates: dates, tenors: tenors, rates: rates}, nil
}

// Dates returns the as-of axis in chronological order.
func (t *Table) Dates() []time.Time { return t.dates }

// Tenors returns the column labels in curve order.
func (t *Table) Tenors() []string { return t.tenors }

// NumRows returns the number of as-of dates.
func (t *Table) NumRows() int { return len(t.dates) }

// NumCols returns the number of tenor columns.
func (t *Table) NumCols() int { return len(t.tenors) }

// At returns the forward rate at a row (date index) and column (tenor index).
func (t *Table) At(row, col int) float64 { return t.rates[row][col] }

// Row returns one as-of date's forward rates across all tenors.
func (t *Table) Row(i int) []float64 { return t.rates[i] }
