package metric

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// AMI is the adjusted mutual information (Vinh et al. 2010) with
// arithmetic mean normalization. It is 1 for identical partitions and
// close to 0 for independent ones.
type AMI struct{}

// Compile-time check
var _ Metric = AMI{}

func (AMI) String() string { return "AMI" }

// Score compares the two labelings; data and k are unused.
func (AMI) Score(a, b []int, _ *mat.Dense, _ int) (float64, error) {
	if err := checkLabels(a, b); err != nil {
		return 0, err
	}

	table, rowSums, colSums := crossTab(a, b)

	// One cluster on both sides carries no information to adjust.
	if len(rowSums) == 1 && len(colSums) == 1 {
		return 1, nil
	}

	n := float64(len(a))
	mi := mutualInfo(table, rowSums, colSums, n)
	emi := expectedMutualInfo(rowSums, colSums, n)
	normalizer := 0.5 * (entropy(rowSums, n) + entropy(colSums, n))

	// Keep the sign of near-zero denominators, as the adjustment can push
	// them to either side of zero.
	const eps = 2.220446049250313e-16
	denom := normalizer - emi
	if denom < 0 {
		denom = math.Min(denom, -eps)
	} else {
		denom = math.Max(denom, eps)
	}

	return (mi - emi) / denom, nil
}

func mutualInfo(table [][]float64, rowSums, colSums []float64, n float64) float64 {
	var mi float64
	for i, row := range table {
		for j, nij := range row {
			if nij > 0 {
				mi += nij / n * math.Log(n*nij/(rowSums[i]*colSums[j]))
			}
		}
	}
	return mi
}

func entropy(sums []float64, n float64) float64 {
	var h float64
	for _, s := range sums {
		if s > 0 {
			p := s / n
			h -= p * math.Log(p)
		}
	}
	return h
}

// expectedMutualInfo is the expectation of mutualInfo over the
// hypergeometric distribution of contingency tables with fixed marginals.
func expectedMutualInfo(rowSums, colSums []float64, n float64) float64 {
	var emi float64
	for _, ai := range rowSums {
		for _, bj := range colSums {
			lo := math.Max(1, ai+bj-n)
			hi := math.Min(ai, bj)
			for nij := lo; nij <= hi; nij++ {
				term := nij / n * math.Log(n*nij/(ai*bj))
				logProb := lgamma(ai+1) + lgamma(bj+1) + lgamma(n-ai+1) + lgamma(n-bj+1) -
					lgamma(n+1) - lgamma(nij+1) - lgamma(ai-nij+1) - lgamma(bj-nij+1) -
					lgamma(n-ai-bj+nij+1)
				emi += term * math.Exp(logProb)
			}
		}
	}
	return emi
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}
