package stability

import (
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Result maps metric names to score tables. Every table has two rows:
// row 0 repeats the swept cluster counts and row 1 holds the scores, with
// one column per (fold, k) pair in fold enumeration order.
type Result map[string]*mat.Dense

// Metrics returns the metric names present in the result, sorted.
func (r Result) Metrics() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Table returns the score table for the named metric.
func (r Result) Table(name string) (*mat.Dense, bool) {
	t, ok := r[name]
	return t, ok
}

// Ks returns the cluster count row of the named metric table, or nil if
// the metric is not present.
func (r Result) Ks(name string) []float64 {
	t, ok := r[name]
	if !ok {
		return nil
	}

	return mat.Row(nil, 0, t)
}

// Scores returns the score row of the named metric table, or nil if the
// metric is not present.
func (r Result) Scores(name string) []float64 {
	t, ok := r[name]
	if !ok {
		return nil
	}

	return mat.Row(nil, 1, t)
}
