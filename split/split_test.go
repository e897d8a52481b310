package split

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clustkit/stability/dataset"
)

func collect(s Splitter) []Pair {
	return slices.Collect(s.Pairs())
}

func keys(vs []dataset.Value) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Key()
	}
	slices.Sort(out)
	return out
}

func TestFixed(t *testing.T) {
	p := Pair{Train: dataset.Ints(0, 1), Test: dataset.Ints(2, 3)}
	s := Fixed(p)

	pairs := collect(s)
	require.Len(t, pairs, 1)
	assert.Equal(t, keys(p.Train), keys(pairs[0].Train))
	assert.Equal(t, keys(p.Test), keys(pairs[0].Test))
}

func TestKFold(t *testing.T) {
	t.Run("EvenChunks", func(t *testing.T) {
		s, err := KFold(dataset.Ints(0, 1, 2, 3), 2)
		require.NoError(t, err)

		pairs := collect(s)
		require.Len(t, pairs, 2)

		assert.Equal(t, []string{"i:0", "i:1"}, keys(pairs[0].Test))
		assert.Equal(t, []string{"i:2", "i:3"}, keys(pairs[0].Train))
		assert.Equal(t, []string{"i:2", "i:3"}, keys(pairs[1].Test))
		assert.Equal(t, []string{"i:0", "i:1"}, keys(pairs[1].Train))
	})

	t.Run("UnevenChunks", func(t *testing.T) {
		s, err := KFold(dataset.Ints(0, 1, 2, 3, 4), 3)
		require.NoError(t, err)

		pairs := collect(s)
		require.Len(t, pairs, 3)

		// The leading chunks absorb the remainder.
		assert.Len(t, pairs[0].Test, 2)
		assert.Len(t, pairs[1].Test, 2)
		assert.Len(t, pairs[2].Test, 1)

		for _, p := range pairs {
			assert.Len(t, append(keys(p.Train), keys(p.Test)...), 5)
		}
	})

	t.Run("Replays", func(t *testing.T) {
		s, err := KFold(dataset.Ints(0, 1, 2, 3), 2)
		require.NoError(t, err)

		assert.Equal(t, collect(s), collect(s))
	})

	t.Run("BadFoldCount", func(t *testing.T) {
		_, err := KFold(dataset.Ints(0, 1, 2), 4)

		var fc *ErrFoldCount
		require.ErrorAs(t, err, &fc)
		assert.Equal(t, 4, fc.Folds)
		assert.Equal(t, 3, fc.Values)

		_, err = KFold(dataset.Ints(0, 1, 2), 1)
		require.Error(t, err)
	})

	t.Run("NoValues", func(t *testing.T) {
		_, err := KFold(nil, 2)
		require.ErrorIs(t, err, ErrNoValues)
	})
}

func TestLeaveOneOut(t *testing.T) {
	s, err := LeaveOneOut(dataset.Strings("a", "b", "c"))
	require.NoError(t, err)

	pairs := collect(s)
	require.Len(t, pairs, 3)

	for i, p := range pairs {
		assert.Len(t, p.Test, 1, "pair %d", i)
		assert.Len(t, p.Train, 2, "pair %d", i)
	}

	assert.Equal(t, []string{"s:a"}, keys(pairs[0].Test))
	assert.Equal(t, []string{"s:c"}, keys(pairs[2].Test))
}

func TestRandom(t *testing.T) {
	seed := int64(42)

	t.Run("SizesAndCoverage", func(t *testing.T) {
		s, err := Random(dataset.Ints(0, 1, 2, 3, 4), RandomOptions{
			Iterations:    4,
			TrainFraction: 0.6,
			RandomSeed:    &seed,
		})
		require.NoError(t, err)

		pairs := collect(s)
		require.Len(t, pairs, 4)

		for _, p := range pairs {
			assert.Len(t, p.Train, 3)
			assert.Len(t, p.Test, 2)

			all := append(keys(p.Train), keys(p.Test)...)
			slices.Sort(all)
			assert.Equal(t, []string{"i:0", "i:1", "i:2", "i:3", "i:4"}, all)
		}
	})

	t.Run("Replays", func(t *testing.T) {
		s, err := Random(dataset.Ints(0, 1, 2, 3), RandomOptions{
			Iterations:    3,
			TrainFraction: 0.5,
			RandomSeed:    &seed,
		})
		require.NoError(t, err)

		assert.Equal(t, collect(s), collect(s))
	})

	t.Run("FractionKeepsBothSides", func(t *testing.T) {
		s, err := Random(dataset.Ints(0, 1, 2), RandomOptions{
			Iterations:    1,
			TrainFraction: 0.99,
			RandomSeed:    &seed,
		})
		require.NoError(t, err)

		pairs := collect(s)
		require.Len(t, pairs, 1)
		assert.Len(t, pairs[0].Train, 2)
		assert.Len(t, pairs[0].Test, 1)
	})

	t.Run("Validation", func(t *testing.T) {
		_, err := Random(dataset.Ints(0), DefaultRandomOptions)
		require.ErrorIs(t, err, ErrNoValues)

		_, err = Random(dataset.Ints(0, 1), RandomOptions{Iterations: 0, TrainFraction: 0.5})
		require.ErrorIs(t, err, ErrInvalidIterations)

		_, err = Random(dataset.Ints(0, 1), RandomOptions{Iterations: 1, TrainFraction: 1.5})

		var tf *ErrTrainFraction
		require.ErrorAs(t, err, &tf)
		assert.Equal(t, 1.5, tf.Fraction)
	})
}
