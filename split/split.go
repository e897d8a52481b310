package split

import (
	"iter"
	"math"
	"math/rand"
	"slices"

	"github.com/clustkit/stability/dataset"
)

// Pair is one train/test assignment of annotation values.
type Pair struct {
	Train []dataset.Value
	Test  []dataset.Value
}

// Splitter enumerates train/test pairs for one annotation space.
//
// Implementations must yield the same sequence on every Pairs call, since
// the driver may re-enumerate when crossing several splitters.
type Splitter interface {
	Pairs() iter.Seq[Pair]
}

type fixed struct {
	pairs []Pair
}

// Fixed returns a splitter that yields the given pairs as-is.
func Fixed(pairs ...Pair) Splitter {
	return &fixed{pairs: slices.Clone(pairs)}
}

func (s *fixed) Pairs() iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for _, p := range s.pairs {
			if !yield(p) {
				return
			}
		}
	}
}

type kfold struct {
	values []dataset.Value
	folds  int
}

// KFold returns a splitter that partitions values into folds contiguous
// chunks and yields one pair per chunk, testing the chunk against the
// remaining values. The first len(values) mod folds chunks are one value
// larger.
func KFold(values []dataset.Value, folds int) (Splitter, error) {
	if len(values) == 0 {
		return nil, ErrNoValues
	}
	if folds < 2 || folds > len(values) {
		return nil, &ErrFoldCount{Folds: folds, Values: len(values)}
	}

	return &kfold{values: slices.Clone(values), folds: folds}, nil
}

// LeaveOneOut returns a splitter that yields one pair per value, testing
// each value against all others.
func LeaveOneOut(values []dataset.Value) (Splitter, error) {
	return KFold(values, len(values))
}

func (s *kfold) Pairs() iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		n := len(s.values)
		size := n / s.folds
		extra := n % s.folds

		start := 0
		for i := 0; i < s.folds; i++ {
			end := start + size
			if i < extra {
				end++
			}

			test := slices.Clone(s.values[start:end])
			train := make([]dataset.Value, 0, n-len(test))
			train = append(train, s.values[:start]...)
			train = append(train, s.values[end:]...)

			if !yield(Pair{Train: train, Test: test}) {
				return
			}

			start = end
		}
	}
}

// RandomOptions represents the options for configuring Random.
type RandomOptions struct {
	// Iterations is the number of shuffled pairs to yield.
	Iterations int

	// TrainFraction is the share of values assigned to the train side,
	// in (0, 1). The train side always keeps at least one value and
	// leaves at least one for the test side.
	TrainFraction float64

	// RandomSeed fixes the shuffle sequence. Nil draws a seed at
	// construction, which still replays across Pairs calls.
	RandomSeed *int64
}

var DefaultRandomOptions = RandomOptions{
	Iterations:    10,
	TrainFraction: 0.5,
}

type random struct {
	values []dataset.Value
	opts   RandomOptions
	seed   int64
}

// Random returns a splitter that yields repeated shuffled train/test
// assignments of the given values.
func Random(values []dataset.Value, opts RandomOptions) (Splitter, error) {
	if len(values) < 2 {
		return nil, ErrNoValues
	}
	if opts.Iterations < 1 {
		return nil, ErrInvalidIterations
	}
	if opts.TrainFraction <= 0 || opts.TrainFraction >= 1 {
		return nil, &ErrTrainFraction{Fraction: opts.TrainFraction}
	}

	seed := rand.Int63()
	if opts.RandomSeed != nil {
		seed = *opts.RandomSeed
	}

	return &random{values: slices.Clone(values), opts: opts, seed: seed}, nil
}

func (s *random) Pairs() iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		rng := rand.New(rand.NewSource(s.seed))

		n := len(s.values)
		nTrain := int(math.Round(s.opts.TrainFraction * float64(n)))
		nTrain = max(1, min(n-1, nTrain))

		for i := 0; i < s.opts.Iterations; i++ {
			perm := rng.Perm(n)

			train := make([]dataset.Value, nTrain)
			test := make([]dataset.Value, n-nTrain)
			for j, p := range perm {
				if j < nTrain {
					train[j] = s.values[p]
				} else {
					test[j-nTrain] = s.values[p]
				}
			}

			if !yield(Pair{Train: train, Test: test}) {
				return
			}
		}
	}
}
