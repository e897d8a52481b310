// Package assign solves the linear assignment problem for small square
// cost matrices.
//
// It backs the label matching inside the instability metric, where two
// k-cluster partitions must be aligned under the best permutation before
// their disagreement is counted.
package assign

import (
	"math"
)

// Minimize finds the perfect matching of rows to columns with the smallest
// total cost, using the Hungarian algorithm with potentials in O(n^3).
// cost must be square; entry assignment[i] is the column matched to row i.
func Minimize(cost [][]float64) []int {
	n := len(cost)
	if n == 0 {
		return nil
	}

	// 1-indexed potentials and matching, column 0 is the virtual source.
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1)
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0

		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := math.Inf(1)
			j1 := 0

			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}

				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Augment along the alternating path
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	assignment := make([]int, n)
	for j := 1; j <= n; j++ {
		assignment[p[j]-1] = j - 1
	}

	return assignment
}

// Maximize finds the perfect matching with the largest total gain by
// minimizing the negated matrix.
func Maximize(gain [][]float64) []int {
	n := len(gain)
	neg := make([][]float64, n)
	for i, row := range gain {
		neg[i] = make([]float64, n)
		for j, g := range row {
			neg[i][j] = -g
		}
	}
	return Minimize(neg)
}
