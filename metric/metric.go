package metric

import (
	"gonum.org/v1/gonum/mat"
)

// Metric scores the agreement of two partitions of the same observations.
type Metric interface {
	// Score compares two equally long label slices. data holds the scored
	// observations in rows and k is the requested cluster count; metrics
	// that only read the labels ignore both.
	Score(a, b []int, data *mat.Dense, k int) (float64, error)

	// String names the metric. The name keys result tables, so metrics
	// used together must not collide.
	String() string
}

func checkLabels(a, b []int) error {
	if len(a) != len(b) {
		return &ErrLabelLength{A: len(a), B: len(b)}
	}
	if len(a) == 0 {
		return ErrEmptyLabels
	}
	return nil
}

// crossTab cross-tabulates two label slices; clusters are indexed by first
// appearance. Returns the contingency counts with the row and column
// marginals.
func crossTab(a, b []int) (table [][]float64, rowSums, colSums []float64) {
	ra := make(map[int]int)
	rb := make(map[int]int)
	for _, l := range a {
		if _, ok := ra[l]; !ok {
			ra[l] = len(ra)
		}
	}
	for _, l := range b {
		if _, ok := rb[l]; !ok {
			rb[l] = len(rb)
		}
	}

	table = make([][]float64, len(ra))
	for i := range table {
		table[i] = make([]float64, len(rb))
	}
	rowSums = make([]float64, len(ra))
	colSums = make([]float64, len(rb))

	for i := range a {
		ri, ci := ra[a[i]], rb[b[i]]
		table[ri][ci]++
		rowSums[ri]++
		colSums[ci]++
	}

	return table, rowSums, colSums
}
