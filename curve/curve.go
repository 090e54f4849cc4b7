// Package curve fits cubic interpolants through sparse spot-yield
// observations and evaluates them at arbitrary maturities, including
// maturities outside the observed range.
package curve

import (
	"fmt"
	"sort"
)

// YieldPoint is a single observed spot yield.
type YieldPoint struct {
	// Label is the tenor name, e.g. "3M" or "10Y".
	Label string
	// Years is the tenor length in years (0.25 == 3 months).
	Years float64
	// Rate is the annualized spot rate as a decimal (0.045 == 4.5%).
	Rate float64
}

// YieldCurve is an immutable, ascending-tenor set of spot yields with a
// cubic interpolant fitted through (Years, Rate) at construction, so a
// built curve is safe for concurrent reads.
type YieldCurve struct {
	points []YieldPoint
	spline *CubicSpline
}

// BuildYieldCurve validates, sorts, and fits a curve through the points.
// At least four points are required; duplicate tenor years are rejected.
// Tenor years are not checked for positivity here: a nonsensical zero-year
// tenor surfaces later as a degenerate forward interval.
func BuildYieldCurve(points []YieldPoint) (*YieldCurve, error) {
	if len(points) < minSplinePoints {
		return nil, &InsufficientPointsError{Count: len(points)}
	}

	pts := make([]YieldPoint, len(points))
	copy(pts, points)
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].Years < pts[j].Years })

	seen := make(map[string]struct{}, len(pts))
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		if _, dup := seen[p.Label]; dup {
			return nil, fmt.Errorf("BuildYieldCurve: duplicate tenor label %q", p.Label)
		}
		seen[p.Label] = struct{}{}
		xs[i] = p.Years
		ys[i] = p.Rate
	}

	spline, err := NewCubicSpline(xs, ys)
	if err != nil {
		return nil, err
	}
	return &YieldCurve{points: pts, spline: spline}, nil
}

// BuildYieldCurveFromTable resolves a label->rate table through the tenor
// vocabulary (tenorYears entries take precedence over the defaults) and
// builds the curve.
func BuildYieldCurveFromTable(yields map[string]float64, tenorYears map[string]float64) (*YieldCurve, error) {
	points := make([]YieldPoint, 0, len(yields))
	for label, rate := range yields {
		years, err := TenorYears(label, tenorYears)
		if err != nil {
			return nil, err
		}
		points = append(points, YieldPoint{Label: label, Years: years, Rate: rate})
	}
	return BuildYieldCurve(points)
}

// Points returns the observations, sorted by tenor ascending.
func (c *YieldCurve) Points() []YieldPoint { return c.points }

// Labels returns the tenor labels in curve order.
func (c *YieldCurve) Labels() []string {
	labels := make([]string, len(c.points))
	for i, p := range c.points {
		labels[i] = p.Label
	}
	return labels
}

// MaxTenorYears returns the longest observed tenor.
func (c *YieldCurve) MaxTenorYears() float64 {
	return c.points[len(c.points)-1].Years
}

// RateAt reads the fitted curve directly at a maturity in years.
// Maturities outside the observed range extrapolate.
func (c *YieldCurve) RateAt(years float64) float64 {
	return c.spline.At(years)
}
