package metric

import (
	"gonum.org/v1/gonum/mat"
)

// ARI is the adjusted Rand index (Hubert and Arabie 1985). It is 1 for
// identical partitions, close to 0 for independent ones and can go
// negative for systematic disagreement.
type ARI struct{}

// Compile-time check
var _ Metric = ARI{}

func (ARI) String() string { return "ARI" }

// Score compares the two labelings; data and k are unused.
func (ARI) Score(a, b []int, _ *mat.Dense, _ int) (float64, error) {
	if err := checkLabels(a, b); err != nil {
		return 0, err
	}

	table, rowSums, colSums := crossTab(a, b)

	var sumIJ, sumA, sumB float64
	for _, row := range table {
		for _, c := range row {
			sumIJ += comb2(c)
		}
	}
	for _, s := range rowSums {
		sumA += comb2(s)
	}
	for _, s := range colSums {
		sumB += comb2(s)
	}

	total := comb2(float64(len(a)))

	// Both sides trivial (all singletons or one cluster) agree by
	// convention.
	if sumA == sumB && (sumA == 0 || sumA == total) {
		return 1, nil
	}

	expected := sumA * sumB / total
	maxIndex := (sumA + sumB) / 2

	return (sumIJ - expected) / (maxIndex - expected), nil
}

func comb2(x float64) float64 {
	return x * (x - 1) / 2
}
