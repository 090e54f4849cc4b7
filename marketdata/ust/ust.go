// Package ust bundles a benchmark Treasury yield snapshot for demos,
// development, and fixtures.
package ust

// Source supplies a spot-yield table keyed by tenor label.
type Source interface {
	Yields() map[string]float64
}

// StaticSource is a map-backed Source for development and testing.
type StaticSource struct {
	yields map[string]float64
}

// NewStaticSource wraps a yield table in a Source.
func NewStaticSource(yields map[string]float64) *StaticSource {
	return &StaticSource{yields: yields}
}

// Yields returns a copy of the table so callers cannot mutate the source.
func (s *StaticSource) Yields() map[string]float64 {
	out := make(map[string]float64, len(s.yields))
	for label, rate := range s.yields {
		out[label] = rate
	}
	return out
}

// DefaultSource builds a Source backed by the bundled snapshot.
func DefaultSource() Source {
	return NewStaticSource(BenchmarkYields)
}
