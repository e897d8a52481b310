package cluster

import (
	"math"
	"math/rand"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// GMMOptions represents the options for configuring GMM.
type GMMOptions struct {
	// MaxIterations bounds the EM iterations of one fit.
	MaxIterations int

	// Tolerance stops EM once the log-likelihood delta falls below it.
	Tolerance float64

	// CovarianceFloor keeps per-dimension variances away from zero.
	CovarianceFloor float64

	// RandomSeed fixes the initialization sequence. Nil draws a seed per
	// instance.
	RandomSeed *int64
}

var DefaultGMMOptions = GMMOptions{
	MaxIterations:   100,
	Tolerance:       1e-4,
	CovarianceFloor: 1e-6,
}

// GMM clusters observations with a diagonal-covariance Gaussian mixture
// fitted by expectation maximization. Initialization runs a short k-means
// pass, so fits are deterministic under a fixed RandomSeed.
type GMM struct {
	opts   GMMOptions
	rng    *rand.Rand
	models map[int]*gmmModel
}

// Compile-time check
var _ Method = (*GMM)(nil)

// NewGMM creates a new GMM method.
func NewGMM(opts GMMOptions) *GMM {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultGMMOptions.MaxIterations
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultGMMOptions.Tolerance
	}
	if opts.CovarianceFloor <= 0 {
		opts.CovarianceFloor = DefaultGMMOptions.CovarianceFloor
	}

	return &GMM{
		opts:   opts,
		models: make(map[int]*gmmModel),
	}
}

// Train fits a k-component mixture on data.
func (g *GMM) Train(data *mat.Dense, k int, full bool) error {
	n, _ := data.Dims()

	switch {
	case k < 1:
		return ErrInvalidK
	case n == 0:
		return ErrEmptyData
	case n < k:
		return &ErrTooFewPoints{K: k, Points: n}
	}

	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(drawSeed(g.opts.RandomSeed)))
	}

	model := g.initModel(data, k)

	fn := float64(n)
	resp := make([]float64, n*k)
	logRow := make([]float64, k)
	nj := make([]float64, k)
	globalVar := columnVariances(data)

	prevLL := math.Inf(-1)

	for iter := 0; iter < g.opts.MaxIterations; iter++ {
		// E-step
		var ll float64
		for i := 0; i < n; i++ {
			row := data.RawRowView(i)
			for j := 0; j < k; j++ {
				logRow[j] = model.logProb(row, j)
			}
			lse := floats.LogSumExp(logRow)
			ll += lse
			for j := 0; j < k; j++ {
				resp[i*k+j] = math.Exp(logRow[j] - lse)
			}
		}

		if math.Abs(ll-prevLL) < g.opts.Tolerance {
			break
		}
		prevLL = ll

		// M-step: responsibilities -> weights and means
		clear(nj)
		clear(model.means)
		for i := 0; i < n; i++ {
			row := data.RawRowView(i)
			for j := 0; j < k; j++ {
				r := resp[i*k+j]
				nj[j] += r
				floats.AddScaled(model.mean(j), r, row)
			}
		}

		for j := 0; j < k; j++ {
			if nj[j] < 1e-10 {
				// Collapsed component: restart it on a random observation
				copy(model.mean(j), data.RawRowView(g.rng.Intn(n)))
				model.weights[j] = 1 / fn
				continue
			}
			floats.Scale(1/nj[j], model.mean(j))
			model.weights[j] = nj[j] / fn
		}
		normalize(model.weights)

		// M-step: responsibilities -> variances
		clear(model.variances)
		for i := 0; i < n; i++ {
			row := data.RawRowView(i)
			for j := 0; j < k; j++ {
				if nj[j] < 1e-10 {
					continue
				}
				r := resp[i*k+j]
				mu := model.mean(j)
				va := model.variance(j)
				for d := range row {
					diff := row[d] - mu[d]
					va[d] += r * diff * diff
				}
			}
		}

		for j := 0; j < k; j++ {
			va := model.variance(j)
			if nj[j] < 1e-10 {
				copy(va, globalVar)
			} else {
				floats.Scale(1/nj[j], va)
			}
			model.floor(va, g.opts.CovarianceFloor)
		}
	}

	if !full {
		clear(g.models)
	}
	g.models[k] = model

	return nil
}

// Predict labels each row of data with its most probable component.
func (g *GMM) Predict(data *mat.Dense, k int) ([]int, error) {
	model, ok := g.models[k]
	if !ok {
		return nil, &ErrNotTrained{K: k}
	}

	n, dim := data.Dims()
	if dim != model.dim {
		return nil, &ErrDimensionMismatch{Expected: model.dim, Actual: dim}
	}
	if n == 0 {
		return nil, ErrEmptyData
	}

	labels := make([]int, n)
	for i := 0; i < n; i++ {
		row := data.RawRowView(i)

		best := 0
		maxLP := model.logProb(row, 0)
		for j := 1; j < k; j++ {
			if lp := model.logProb(row, j); lp > maxLP {
				maxLP = lp
				best = j
			}
		}

		labels[i] = best
	}

	return labels, nil
}

// Clone returns an untrained GMM with the same configuration.
func (g *GMM) Clone() Method {
	return NewGMM(g.opts)
}

// initModel bootstraps the mixture from a short hard k-means assignment.
func (g *GMM) initModel(data *mat.Dense, k int) *gmmModel {
	n, dim := data.Dims()
	fn := float64(n)

	centroids, assignments := lloyd(data, k, 50, true, g.rng)
	globalVar := columnVariances(data)

	model := &gmmModel{
		k:         k,
		dim:       dim,
		weights:   make([]float64, k),
		means:     slices.Clone(centroids.data),
		variances: make([]float64, k*dim),
	}

	counts := make([]float64, k)
	for i, a := range assignments {
		counts[a]++
		row := data.RawRowView(i)
		mu := model.mean(a)
		va := model.variance(a)
		for d := range row {
			diff := row[d] - mu[d]
			va[d] += diff * diff
		}
	}

	for j := 0; j < k; j++ {
		va := model.variance(j)
		if counts[j] > 0 {
			model.weights[j] = counts[j] / fn
			floats.Scale(1/counts[j], va)
		} else {
			model.weights[j] = 1 / fn
			copy(va, globalVar)
		}
		model.floor(va, g.opts.CovarianceFloor)
	}
	normalize(model.weights)

	return model
}

// gmmModel is a diagonal-covariance mixture, means and variances flattened
// k x dim like centroidModel.
type gmmModel struct {
	k         int
	dim       int
	weights   []float64
	means     []float64
	variances []float64
}

func (m *gmmModel) mean(j int) []float64 {
	return m.means[j*m.dim : (j+1)*m.dim]
}

func (m *gmmModel) variance(j int) []float64 {
	return m.variances[j*m.dim : (j+1)*m.dim]
}

var log2Pi = math.Log(2 * math.Pi)

// logProb is the weighted log density of component j at vec.
func (m *gmmModel) logProb(vec []float64, j int) float64 {
	mu := m.mean(j)
	va := m.variance(j)

	s := math.Log(m.weights[j])
	for d := range vec {
		diff := vec[d] - mu[d]
		s -= 0.5 * (log2Pi + math.Log(va[d]) + diff*diff/va[d])
	}

	return s
}

func (m *gmmModel) floor(va []float64, floor float64) {
	for d := range va {
		if va[d] < floor {
			va[d] = floor
		}
	}
}

func normalize(ws []float64) {
	if sum := floats.Sum(ws); sum > 0 {
		floats.Scale(1/sum, ws)
	}
}

// columnVariances is the per-dimension variance over all observations.
func columnVariances(data *mat.Dense) []float64 {
	n, dim := data.Dims()
	out := make([]float64, dim)
	if n < 2 {
		return out
	}

	col := make([]float64, n)
	for d := 0; d < dim; d++ {
		mat.Col(col, d, data)
		out[d] = stat.Variance(col, nil)
	}

	return out
}
