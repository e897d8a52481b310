package cluster

import (
	"fmt"
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// linkageCriterion selects the Lance-Williams update rule.
type linkageCriterion int

const (
	linkageWard linkageCriterion = iota
	linkageComplete
)

// merge records one agglomeration step; from is folded into into.
type merge struct {
	into int
	from int
}

// Ward clusters observations with agglomerative minimum-variance linkage.
//
// The full merge sequence is computed once per training matrix and cut at
// each requested k, so sweeping k over one matrix costs a single
// agglomeration.
type Ward struct {
	connectivity [][]int
	models       map[int]*linkageModel
	lastData     *mat.Dense
	merges       []merge
}

// Compile-time check
var _ Method = (*Ward)(nil)

// NewWard creates an unstructured Ward method.
func NewWard() *Ward {
	return NewStructuredWard(nil)
}

// NewStructuredWard creates a Ward method whose merges are restricted to a
// neighborhood graph. Entry i lists the neighbors of observation i and the
// relation is applied symmetrically. When the graph is exhausted before k
// clusters remain, the closest pair across components is merged.
func NewStructuredWard(connectivity [][]int) *Ward {
	return &Ward{
		connectivity: connectivity,
		models:       make(map[int]*linkageModel),
	}
}

// Train cuts the merge sequence of data at k clusters.
func (c *Ward) Train(data *mat.Dense, k int, full bool) error {
	if err := c.checkTrain(data, k); err != nil {
		return err
	}

	if c.lastData != data {
		c.merges = mergeSequence(data, SqEuclidean, linkageWard, c.connectivity)
		c.lastData = data
	}

	n, _ := data.Dims()
	labels := cutLabels(n, c.merges, k)

	if !full {
		clear(c.models)
	}
	c.models[k] = &linkageModel{
		centroids: buildCentroids(data, labels, k),
		labels:    labels,
	}

	return nil
}

// Predict labels each row of data with the nearest trained cluster
// centroid.
func (c *Ward) Predict(data *mat.Dense, k int) ([]int, error) {
	model, ok := c.models[k]
	if !ok {
		return nil, &ErrNotTrained{K: k}
	}

	return model.centroids.predict(data, SqEuclidean)
}

// Labels returns the partition of the training observations for k.
func (c *Ward) Labels(k int) ([]int, bool) {
	model, ok := c.models[k]
	if !ok {
		return nil, false
	}
	return slices.Clone(model.labels), true
}

// Clone returns an untrained Ward with the same configuration.
func (c *Ward) Clone() Method {
	return NewStructuredWard(c.connectivity)
}

func (c *Ward) checkTrain(data *mat.Dense, k int) error {
	n, _ := data.Dims()

	switch {
	case k < 1:
		return ErrInvalidK
	case n == 0:
		return ErrEmptyData
	case n < k:
		return &ErrTooFewPoints{K: k, Points: n}
	}

	if c.connectivity == nil {
		return nil
	}
	if len(c.connectivity) != n {
		return &ErrConnectivitySize{Expected: n, Actual: len(c.connectivity)}
	}
	for i, adj := range c.connectivity {
		for _, j := range adj {
			if j < 0 || j >= n {
				return fmt.Errorf("connectivity[%d] references %d: %w", i, j, ErrConnectivityEntry)
			}
		}
	}

	return nil
}

// CompleteLinkageOptions represents the options for configuring
// CompleteLinkage.
type CompleteLinkageOptions struct {
	// DistanceType selects the linkage distance.
	DistanceType DistanceType
}

var DefaultCompleteLinkageOptions = CompleteLinkageOptions{
	DistanceType: DistanceTypeCorrelation,
}

// CompleteLinkage clusters observations with agglomerative
// farthest-neighbor linkage.
type CompleteLinkage struct {
	opts     CompleteLinkageOptions
	distFunc DistanceFunc
	models   map[int]*linkageModel
	lastData *mat.Dense
	merges   []merge
}

// Compile-time check
var _ Method = (*CompleteLinkage)(nil)

// NewCompleteLinkage creates a new CompleteLinkage method.
func NewCompleteLinkage(opts CompleteLinkageOptions) (*CompleteLinkage, error) {
	distFunc, err := NewDistanceFunc(opts.DistanceType)
	if err != nil {
		return nil, err
	}

	return &CompleteLinkage{
		opts:     opts,
		distFunc: distFunc,
		models:   make(map[int]*linkageModel),
	}, nil
}

// Train cuts the merge sequence of data at k clusters.
func (c *CompleteLinkage) Train(data *mat.Dense, k int, full bool) error {
	n, _ := data.Dims()

	switch {
	case k < 1:
		return ErrInvalidK
	case n == 0:
		return ErrEmptyData
	case n < k:
		return &ErrTooFewPoints{K: k, Points: n}
	}

	if c.lastData != data {
		c.merges = mergeSequence(data, c.distFunc, linkageComplete, nil)
		c.lastData = data
	}

	labels := cutLabels(n, c.merges, k)

	if !full {
		clear(c.models)
	}
	c.models[k] = &linkageModel{
		centroids: buildCentroids(data, labels, k),
		labels:    labels,
	}

	return nil
}

// Predict labels each row of data with the nearest trained cluster
// centroid under the configured distance.
func (c *CompleteLinkage) Predict(data *mat.Dense, k int) ([]int, error) {
	model, ok := c.models[k]
	if !ok {
		return nil, &ErrNotTrained{K: k}
	}

	return model.centroids.predict(data, c.distFunc)
}

// Labels returns the partition of the training observations for k.
func (c *CompleteLinkage) Labels(k int) ([]int, bool) {
	model, ok := c.models[k]
	if !ok {
		return nil, false
	}
	return slices.Clone(model.labels), true
}

// Clone returns an untrained CompleteLinkage with the same configuration.
func (c *CompleteLinkage) Clone() Method {
	clone, _ := NewCompleteLinkage(c.opts)
	return clone
}

// linkageModel is one cut of the merge sequence.
type linkageModel struct {
	centroids *centroidModel
	labels    []int
}

// mergeSequence agglomerates all observations down to a single cluster and
// records the merge order. Distances between merged clusters follow the
// Lance-Williams recurrence of the criterion. A non-nil neighbor graph
// restricts candidate pairs until no connected pair remains.
func mergeSequence(data *mat.Dense, distFunc DistanceFunc, criterion linkageCriterion, connectivity [][]int) []merge {
	n, _ := data.Dims()

	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := distFunc(data.RawRowView(i), data.RawRowView(j))
			if math.IsNaN(d) {
				// Degenerate pairs (constant observations under
				// correlation) merge last.
				d = math.Inf(1)
			}
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	active := make([]bool, n)
	size := make([]int, n)
	for i := range active {
		active[i] = true
		size[i] = 1
	}

	var neighbors []*roaring.Bitmap
	if connectivity != nil {
		neighbors = make([]*roaring.Bitmap, n)
		for i := range neighbors {
			neighbors[i] = roaring.New()
		}
		for i, adj := range connectivity {
			for _, j := range adj {
				if j == i {
					continue
				}
				neighbors[i].Add(uint32(j))
				neighbors[j].Add(uint32(i))
			}
		}
	}

	merges := make([]merge, 0, n-1)

	for len(merges) < n-1 {
		bi, bj := closestPair(dist, active, neighbors)
		if bi < 0 {
			// Connectivity exhausted across components; bridge the
			// closest pair regardless.
			bi, bj = closestPair(dist, active, nil)
		}

		for l := 0; l < n; l++ {
			if !active[l] || l == bi || l == bj {
				continue
			}

			var d float64
			switch criterion {
			case linkageWard:
				si, sj, sl := float64(size[bi]), float64(size[bj]), float64(size[l])
				d = ((si+sl)*dist[bi][l] + (sj+sl)*dist[bj][l] - sl*dist[bi][bj]) / (si + sj + sl)
			case linkageComplete:
				d = math.Max(dist[bi][l], dist[bj][l])
			}

			dist[bi][l] = d
			dist[l][bi] = d
		}

		size[bi] += size[bj]
		active[bj] = false

		if neighbors != nil {
			neighbors[bi].Or(neighbors[bj])
			neighbors[bi].Remove(uint32(bi))
			neighbors[bi].Remove(uint32(bj))

			// Re-point stale references to the merged cluster
			for l := 0; l < n; l++ {
				if !active[l] || l == bi {
					continue
				}
				if neighbors[l].Contains(uint32(bj)) {
					neighbors[l].Remove(uint32(bj))
					neighbors[l].Add(uint32(bi))
				}
			}
		}

		merges = append(merges, merge{into: bi, from: bj})
	}

	return merges
}

// closestPair scans active cluster pairs for the minimal distance. With a
// neighbor graph only connected pairs qualify; (-1, -1) means none left.
func closestPair(dist [][]float64, active []bool, neighbors []*roaring.Bitmap) (int, int) {
	n := len(active)
	bi, bj := -1, -1
	best := math.Inf(1)

	for i := 0; i < n; i++ {
		if !active[i] {
			continue
		}
		for j := i + 1; j < n; j++ {
			if !active[j] {
				continue
			}
			if neighbors != nil && !neighbors[i].Contains(uint32(j)) {
				continue
			}
			if d := dist[i][j]; bi < 0 || d < best {
				best = d
				bi, bj = i, j
			}
		}
	}

	return bi, bj
}

// cutLabels replays the first n-k merges and labels observations by
// cluster, numbered in order of first appearance.
func cutLabels(n int, merges []merge, k int) []int {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}

	for _, m := range merges[:n-k] {
		parent[find(m.from)] = find(m.into)
	}

	labelOf := make(map[int]int, k)
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		root := find(i)
		label, ok := labelOf[root]
		if !ok {
			label = len(labelOf)
			labelOf[root] = label
		}
		labels[i] = label
	}

	return labels
}

// buildCentroids averages the member observations of each cluster.
func buildCentroids(data *mat.Dense, labels []int, k int) *centroidModel {
	n, dim := data.Dims()

	model := &centroidModel{k: k, dim: dim, data: make([]float64, k*dim)}
	counts := make([]int, k)

	for i := 0; i < n; i++ {
		floats.Add(model.centroid(labels[i]), data.RawRowView(i))
		counts[labels[i]]++
	}
	for j := 0; j < k; j++ {
		if counts[j] > 0 {
			floats.Scale(1/float64(counts[j]), model.centroid(j))
		}
	}

	return model
}
