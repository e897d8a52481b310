package cluster

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// KMeansOptions represents the options for configuring KMeans.
type KMeansOptions struct {
	// MaxIterations bounds the Lloyd iterations of one fit.
	MaxIterations int

	// PlusPlus selects k-means++ seeding instead of uniform random picks.
	PlusPlus bool

	// RandomSeed fixes the initialization sequence. Nil draws a seed per
	// instance.
	RandomSeed *int64
}

var DefaultKMeansOptions = KMeansOptions{
	MaxIterations: 300,
	PlusPlus:      true,
}

// KMeans clusters observations with Lloyd's algorithm.
type KMeans struct {
	opts   KMeansOptions
	rng    *rand.Rand
	models map[int]*centroidModel
}

// Compile-time check
var _ Method = (*KMeans)(nil)

// NewKMeans creates a new KMeans method.
func NewKMeans(opts KMeansOptions) *KMeans {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultKMeansOptions.MaxIterations
	}

	return &KMeans{
		opts:   opts,
		models: make(map[int]*centroidModel),
	}
}

// Train fits k centroids on data.
func (c *KMeans) Train(data *mat.Dense, k int, full bool) error {
	n, _ := data.Dims()

	switch {
	case k < 1:
		return ErrInvalidK
	case n == 0:
		return ErrEmptyData
	case n < k:
		return &ErrTooFewPoints{K: k, Points: n}
	}

	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(drawSeed(c.opts.RandomSeed)))
	}

	model, _ := lloyd(data, k, c.opts.MaxIterations, c.opts.PlusPlus, c.rng)

	if !full {
		clear(c.models)
	}
	c.models[k] = model

	return nil
}

// Predict labels each row of data with its nearest trained centroid.
func (c *KMeans) Predict(data *mat.Dense, k int) ([]int, error) {
	model, ok := c.models[k]
	if !ok {
		return nil, &ErrNotTrained{K: k}
	}

	return model.predict(data, SqEuclidean)
}

// Clone returns an untrained KMeans with the same configuration.
func (c *KMeans) Clone() Method {
	return NewKMeans(c.opts)
}

func drawSeed(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return rand.Int63()
}

// centroidModel is the flattened k x dim centroid table shared by the
// centroid-based predictors.
type centroidModel struct {
	k    int
	dim  int
	data []float64
}

func (m *centroidModel) centroid(j int) []float64 {
	return m.data[j*m.dim : (j+1)*m.dim]
}

// nearest finds the closest centroid for an observation. NaN distances
// never win, so degenerate observations fall back to centroid 0.
func (m *centroidModel) nearest(vec []float64, distFunc DistanceFunc) int {
	best := 0
	minDist := distFunc(vec, m.centroid(0))

	for j := 1; j < m.k; j++ {
		if d := distFunc(vec, m.centroid(j)); d < minDist {
			minDist = d
			best = j
		}
	}

	return best
}

func (m *centroidModel) predict(data *mat.Dense, distFunc DistanceFunc) ([]int, error) {
	n, dim := data.Dims()
	if dim != m.dim {
		return nil, &ErrDimensionMismatch{Expected: m.dim, Actual: dim}
	}
	if n == 0 {
		return nil, ErrEmptyData
	}

	labels := make([]int, n)
	for i := 0; i < n; i++ {
		labels[i] = m.nearest(data.RawRowView(i), distFunc)
	}

	return labels, nil
}

// lloyd trains k centroids from data rows using Lloyd's algorithm and
// returns the fitted centroids with the final assignments.
func lloyd(data *mat.Dense, k, maxIter int, plusPlus bool, rng *rand.Rand) (*centroidModel, []int) {
	n, dim := data.Dims()

	centroids := make([]float64, k*dim)
	if plusPlus {
		seedPlusPlus(data, centroids, k, rng)
	} else {
		// Initialize centroids from random data points
		perm := rng.Perm(n)
		for i := 0; i < k; i++ {
			copy(centroids[i*dim:(i+1)*dim], data.RawRowView(perm[i]))
		}
	}

	model := &centroidModel{k: k, dim: dim, data: centroids}

	assignments := make([]int, n)
	for i := range assignments {
		assignments[i] = -1
	}
	counts := make([]int, k)
	sums := make([]float64, k*dim)

	for iter := 0; iter < maxIter; iter++ {
		changed := false

		// Assignment step
		for i := 0; i < n; i++ {
			best := model.nearest(data.RawRowView(i), SqEuclidean)
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}

		if !changed {
			break
		}

		// Update step
		clear(sums)
		clear(counts)

		for i := 0; i < n; i++ {
			c := assignments[i]
			floats.Add(sums[c*dim:(c+1)*dim], data.RawRowView(i))
			counts[c]++
		}

		for j := 0; j < k; j++ {
			if counts[j] > 0 {
				copy(model.centroid(j), sums[j*dim:(j+1)*dim])
				floats.Scale(1/float64(counts[j]), model.centroid(j))
			} else {
				// Re-initialize empty cluster with a random point
				copy(model.centroid(j), data.RawRowView(rng.Intn(n)))
			}
		}
	}

	return model, assignments
}

// seedPlusPlus picks initial centroids with D^2 weighting.
func seedPlusPlus(data *mat.Dense, centroids []float64, k int, rng *rand.Rand) {
	n, dim := data.Dims()

	copy(centroids[:dim], data.RawRowView(rng.Intn(n)))

	d2 := make([]float64, n)
	for i := range d2 {
		d2[i] = math.MaxFloat64
	}

	for j := 1; j < k; j++ {
		prev := centroids[(j-1)*dim : j*dim]

		var total float64
		for i := 0; i < n; i++ {
			if d := SqEuclidean(data.RawRowView(i), prev); d < d2[i] {
				d2[i] = d
			}
			total += d2[i]
		}

		// All mass on already-chosen points degenerates to a uniform pick.
		next := rng.Intn(n)
		if total > 0 {
			target := rng.Float64() * total
			var cum float64
			for i := 0; i < n; i++ {
				cum += d2[i]
				if cum >= target {
					next = i
					break
				}
			}
		}

		copy(centroids[j*dim:(j+1)*dim], data.RawRowView(next))
	}
}
