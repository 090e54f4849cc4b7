// Package forward derives implied forward rates from pairs of spot
// observations under annual compounding.
package forward

import (
	"fmt"
	"math"
)

// DegenerateIntervalError reports a forward interval whose start and end
// times coincide, leaving the rate undefined.
type DegenerateIntervalError struct {
	T float64
}

func (e *DegenerateIntervalError) Error() string {
	return fmt.Sprintf("degenerate forward interval at t=%v years", e.T)
}

// Rate computes the forward rate implied between times t1 and t2 (in
// years) by spot rates r1 and r2 under annual compounding:
//
//	((1+r2)^t2 / (1+r1)^t1)^(1/(t2-t1)) - 1
//
// Rates are decimals (0.025 == 2.5%). On a flat curve the forward equals
// the spot rate. The times must differ; equal times are rejected rather
// than dividing by zero.
func Rate(r1, r2, t1, t2 float64) (float64, error) {
	if t1 == t2 {
		return 0, &DegenerateIntervalError{T: t1}
	}
	growth := math.Pow(1+r2, t2) / math.Pow(1+r1, t1)
	return math.Pow(growth, 1/(t2-t1)) - 1, nil
}
