package grid

import (
	"github.com/meenmo/fwdcurve/curve"
	"github.com/meenmo/fwdcurve/utils"
)

// DenseCurve is the monthly re-sampling of a sparse yield curve: one rate
// per integer month from month 1 through the longest observed tenor, with
// a second cubic fitted over the monthly points. Forward computations read
// this fitted monthly curve, not the sparse curve directly.
type DenseCurve struct {
	years  []float64
	rates  []float64
	spline *curve.CubicSpline
}

// BuildDenseCurve re-samples the curve at every integer month through its
// longest tenor and fits the monthly interpolant. Rates are pinned to 12
// decimals to keep stored curves reproducible.
func BuildDenseCurve(c *curve.YieldCurve) (*DenseCurve, error) {
	if c == nil {
		return nil, ErrNilCurve
	}

	n := int(c.MaxTenorYears() * 12)
	years := make([]float64, n)
	rates := make([]float64, n)
	for i := 1; i <= n; i++ {
		t := float64(i) / 12
		years[i-1] = t
		rates[i-1] = utils.RoundTo(c.RateAt(t), 12)
	}

	spline, err := curve.NewCubicSpline(years, rates)
	if err != nil {
		return nil, err
	}
	return &DenseCurve{years: years, rates: rates, spline: spline}, nil
}

// NumMonths returns the number of monthly samples.
func (d *DenseCurve) NumMonths() int { return len(d.rates) }

// MaxYears returns the last sampled maturity.
func (d *DenseCurve) MaxYears() float64 { return d.years[len(d.years)-1] }

// Rate returns the sampled rate at a 1-based month index in [1, NumMonths].
func (d *DenseCurve) Rate(month int) float64 { return d.rates[month-1] }

// RateAt evaluates the monthly interpolant at a maturity in years.
// Maturities outside the sampled range extrapolate.
func (d *DenseCurve) RateAt(years float64) float64 { return d.spline.At(years) }
