package curve

import "fmt"

// InsufficientPointsError reports a fit attempted with fewer points than
// cubic interpolation is defined over.
type InsufficientPointsError struct {
	Count int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("cubic interpolation needs at least %d points, got %d", minSplinePoints, e.Count)
}

// DuplicateXError reports two input points sharing the same maturity.
type DuplicateXError struct {
	X float64
}

func (e *DuplicateXError) Error() string {
	return fmt.Sprintf("duplicate maturity %v years", e.X)
}
