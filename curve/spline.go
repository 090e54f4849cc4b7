package curve

import (
	"fmt"
	"sort"
)

// minSplinePoints is the fewest knots a cubic fit is defined over.
const minSplinePoints = 4

// CubicSpline is a piecewise cubic interpolant with not-a-knot boundary
// conditions, the convention of the usual scientific interpolation
// routines. Evaluation outside the knot range extends the boundary
// segment's polynomial rather than clamping or failing.
type CubicSpline struct {
	xs []float64
	ys []float64

	// Per-segment coefficients of y_i + b*t + c*t^2 + d*t^3, t = x - x_i.
	b, c, d []float64
}

// NewCubicSpline fits a cubic through the points. Inputs are copied and
// may arrive unsorted; duplicate x values are rejected.
func NewCubicSpline(xs, ys []float64) (*CubicSpline, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("NewCubicSpline: %d x values against %d y values", len(xs), len(ys))
	}
	if len(xs) < minSplinePoints {
		return nil, &InsufficientPointsError{Count: len(xs)}
	}

	type xy struct{ x, y float64 }
	pts := make([]xy, len(xs))
	for i := range xs {
		pts[i] = xy{xs[i], ys[i]}
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].x < pts[j].x })

	sx := make([]float64, len(pts))
	sy := make([]float64, len(pts))
	for i, p := range pts {
		if i > 0 && p.x == pts[i-1].x {
			return nil, &DuplicateXError{X: p.x}
		}
		sx[i] = p.x
		sy[i] = p.y
	}
	return fitSpline(sx, sy), nil
}

// Interpolate fits a cubic through the points and evaluates it at x.
// Each call is independent; for repeated evaluation over one point set,
// build a CubicSpline once instead.
func Interpolate(xs, ys []float64, x float64) (float64, error) {
	s, err := NewCubicSpline(xs, ys)
	if err != nil {
		return 0, err
	}
	return s.At(x), nil
}

// At evaluates the spline at x. Knot arguments return the knot value
// exactly; arguments outside the knot range extrapolate.
func (s *CubicSpline) At(x float64) float64 {
	idx := sort.SearchFloat64s(s.xs, x)
	if idx < len(s.xs) && s.xs[idx] == x {
		return s.ys[idx]
	}

	var i int
	switch {
	case idx == 0:
		i = 0
	case idx >= len(s.xs):
		i = len(s.xs) - 2
	default:
		i = idx - 1
	}
	t := x - s.xs[i]
	return s.ys[i] + t*(s.b[i]+t*(s.c[i]+t*s.d[i]))
}

// Len returns the number of knots.
func (s *CubicSpline) Len() int { return len(s.xs) }

// MinX returns the first knot.
func (s *CubicSpline) MinX() float64 { return s.xs[0] }

// MaxX returns the last knot.
func (s *CubicSpline) MaxX() float64 { return s.xs[len(s.xs)-1] }

// fitSpline computes segment coefficients from sorted, deduplicated knots.
func fitSpline(xs, ys []float64) *CubicSpline {
	n := len(xs)
	m := notAKnotSecondDerivs(xs, ys)

	b := make([]float64, n-1)
	c := make([]float64, n-1)
	d := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h := xs[i+1] - xs[i]
		b[i] = (ys[i+1]-ys[i])/h - h*(2*m[i]+m[i+1])/6
		c[i] = m[i] / 2
		d[i] = (m[i+1] - m[i]) / (6 * h)
	}
	return &CubicSpline{xs: xs, ys: ys, b: b, c: c, d: d}
}

// notAKnotSecondDerivs solves for the spline's second derivatives at the
// knots. Third-derivative continuity at the first and last interior knots
// closes the system, so the two boundary values follow from the interior
// solution.
func notAKnotSecondDerivs(xs, ys []float64) []float64 {
	n := len(xs)
	h := make([]float64, n-1)
	for i := range h {
		h[i] = xs[i+1] - xs[i]
	}
	divdiff := func(i int) float64 {
		return 6 * ((ys[i+1]-ys[i])/h[i] - (ys[i]-ys[i-1])/h[i-1])
	}

	// Tridiagonal system over the interior unknowns m[1..n-2], with the
	// first and last rows folded through the not-a-knot relations.
	k := n - 2
	sub := make([]float64, k)
	diag := make([]float64, k)
	sup := make([]float64, k)
	rhs := make([]float64, k)

	diag[0] = h[0] + 2*h[1]
	sup[0] = h[1] - h[0]
	rhs[0] = divdiff(1) * h[1] / (h[0] + h[1])

	for j := 1; j < k-1; j++ {
		i := j + 1
		sub[j] = h[i-1]
		diag[j] = 2 * (h[i-1] + h[i])
		sup[j] = h[i]
		rhs[j] = divdiff(i)
	}

	last := n - 2
	sub[k-1] = h[last-1] - h[last]
	diag[k-1] = 2*h[last-1] + h[last]
	rhs[k-1] = divdiff(last) * h[last-1] / (h[last-1] + h[last])

	solveTridiagonal(sub, diag, sup, rhs)

	m := make([]float64, n)
	copy(m[1:n-1], rhs)
	m[0] = m[1] - h[0]*(m[2]-m[1])/h[1]
	m[n-1] = m[n-2] + h[n-2]*(m[n-2]-m[n-3])/h[n-3]
	return m
}

// solveTridiagonal solves in place, leaving the solution in rhs.
// sub[0] and sup[len-1] are unused. The assembled system is diagonally
// dominant for any strictly increasing knot set, so no pivoting is needed.
func solveTridiagonal(sub, diag, sup, rhs []float64) {
	n := len(diag)
	for i := 1; i < n; i++ {
		w := sub[i] / diag[i-1]
		diag[i] -= w * sup[i-1]
		rhs[i] -= w * rhs[i-1]
	}
	rhs[n-1] /= diag[n-1]
	for i := n - 2; i >= 0; i-- {
		rhs[i] = (rhs[i] - sup[i]*rhs[i+1]) / diag[i]
	}
}
