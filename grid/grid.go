// Package grid builds forward-rate tables: for a sequence of monthly
// as-of dates and every tenor on the observed curve, the implied forward
// rate for that tenor starting at that date.
package grid

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/meenmo/fwdcurve/curve"
	"github.com/meenmo/fwdcurve/forward"
	"github.com/meenmo/fwdcurve/utils"
)

// DefaultNumMonths is the as-of horizon used when Input.NumMonths is zero.
const DefaultNumMonths = 60

// asOfStepDays is the fixed spacing of the as-of axis. Thirty days per
// step, not calendar months.
const asOfStepDays = 30

// ErrNilCurve is returned when a grid is requested without a curve.
var ErrNilCurve = errors.New("nil yield curve")

// Input carries one forward-grid request.
type Input struct {
	// Curve is the observed spot curve. Required.
	Curve *curve.YieldCurve

	// NumMonths is the number of as-of rows. Zero means DefaultNumMonths.
	NumMonths int

	// StartDate anchors the as-of axis. Zero means the current date.
	StartDate time.Time
}

// Builder computes forward-rate tables.
type Builder struct {
	log *slog.Logger
}

// NewBuilder returns a Builder logging through logger; nil falls back to
// the default logger.
func NewBuilder(logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{log: logger}
}

// Build produces the forward-rate table for one request.
//
// The dense monthly curve is built first, once. Then for each as-of index
// i and tenor of Y years, the forward period runs t1 = i/12 to
// t2 = t1 + Y, both rates are read off the dense curve's interpolant, and
// the forward rate follows. Any error aborts the build; no partial table
// is returned.
func (b *Builder) Build(in Input) (*Table, error) {
	if in.Curve == nil {
		return nil, ErrNilCurve
	}
	if in.NumMonths < 0 {
		return nil, fmt.Errorf("Build: num months must not be negative, got %d", in.NumMonths)
	}
	numMonths := in.NumMonths
	if numMonths == 0 {
		numMonths = DefaultNumMonths
	}
	start := in.StartDate
	if start.IsZero() {
		start = utils.DateOnly(time.Now())
	}

	dense, err := BuildDenseCurve(in.Curve)
	if err != nil {
		return nil, err
	}
	b.log.Debug("dense curve built",
		"months", dense.NumMonths(),
		"max_tenor_years", in.Curve.MaxTenorYears())

	points := in.Curve.Points()
	dates := asOfDates(start, numMonths)
	rates := make([][]float64, numMonths)
	for i := range dates {
		t1 := float64(i) / 12
		r1 := dense.RateAt(t1)

		row := make([]float64, len(points))
		for j, p := range points {
			t2 := t1 + p.Years
			r2 := dense.RateAt(t2)
			fwd, err := forward.Rate(r1, r2, t1, t2)
			if err != nil {
				return nil, err
			}
			row[j] = fwd
		}
		rates[i] = row
	}
	b.log.Debug("forward grid built", "rows", numMonths, "tenors", len(points))

	return &Table{dates: dates, tenors: in.Curve.Labels(), rates: rates}, nil
}

// asOfDates generates the date axis: numMonths dates stepping a fixed
// 30 days from start.
func asOfDates(start time.Time, numMonths int) []time.Time {
	dates := make([]time.Time, numMonths)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, asOfStepDays*i)
	}
	return dates
}
