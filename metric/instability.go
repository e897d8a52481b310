package metric

import (
	"gonum.org/v1/gonum/mat"

	"github.com/clustkit/stability/internal/assign"
)

// Instability is the misassignment distance of Lange et al. 2004: the
// fraction of observations the two partitions place differently under the
// best cluster relabeling, normalized by the misassignment rate a random
// labeling achieves against the reference b. Zero means perfectly stable;
// values around 1 are what chance produces, which makes scores comparable
// across k.
type Instability struct{}

// Compile-time check
var _ Metric = Instability{}

func (Instability) String() string { return "instability" }

// Score compares labeling a against reference b; data and k are unused.
func (Instability) Score(a, b []int, _ *mat.Dense, _ int) (float64, error) {
	if err := checkLabels(a, b); err != nil {
		return 0, err
	}

	table, rowSums, colSums := crossTab(a, b)
	n := float64(len(a))

	// Square gain matrix for the assignment solver; missing clusters pad
	// with zero rows or columns.
	size := max(len(rowSums), len(colSums))
	gain := make([][]float64, size)
	for i := range gain {
		gain[i] = make([]float64, size)
		if i < len(table) {
			copy(gain[i], table[i])
		}
	}

	var matched float64
	for i, j := range assign.Maximize(gain) {
		if i < len(rowSums) && j < len(colSums) {
			matched += gain[i][j]
		}
	}

	disagree := 1 - matched/n

	// Expected disagreement of a uniformly random labeling against b.
	var baseline float64 = 1
	for _, s := range colSums {
		p := s / n
		baseline -= p * p
	}

	if baseline <= 0 {
		// A single reference cluster leaves nothing to destabilize.
		return 0, nil
	}

	return disagree / baseline, nil
}
