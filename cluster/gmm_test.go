package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestGMM(t *testing.T) {
	seed := int64(1)

	t.Run("SeparatesBlobs", func(t *testing.T) {
		g := NewGMM(GMMOptions{RandomSeed: &seed})
		data := blobData()

		require.NoError(t, g.Train(data, 2, true))

		labels, err := g.Predict(data, 2)
		require.NoError(t, err)
		assertBlobSplit(t, labels)
	})

	t.Run("PredictNewObservations", func(t *testing.T) {
		g := NewGMM(GMMOptions{RandomSeed: &seed})
		data := blobData()

		require.NoError(t, g.Train(data, 2, true))

		train, err := g.Predict(data, 2)
		require.NoError(t, err)

		probe := mat.NewDense(2, 2, []float64{
			0.05, 0.05,
			5.05, 5.05,
		})
		labels, err := g.Predict(probe, 2)
		require.NoError(t, err)
		assert.Equal(t, train[0], labels[0])
		assert.Equal(t, train[3], labels[1])
	})

	t.Run("DeterministicWithSeed", func(t *testing.T) {
		data := blobData()

		a := NewGMM(GMMOptions{RandomSeed: &seed})
		require.NoError(t, a.Train(data, 2, true))
		la, err := a.Predict(data, 2)
		require.NoError(t, err)

		b := NewGMM(GMMOptions{RandomSeed: &seed})
		require.NoError(t, b.Train(data, 2, true))
		lb, err := b.Predict(data, 2)
		require.NoError(t, err)

		assert.Equal(t, la, lb)
	})

	t.Run("SweepRetainsModels", func(t *testing.T) {
		g := NewGMM(GMMOptions{RandomSeed: &seed})
		data := blobData()

		require.NoError(t, g.Train(data, 2, true))
		require.NoError(t, g.Train(data, 3, true))

		_, err := g.Predict(data, 2)
		assert.NoError(t, err)
		_, err = g.Predict(data, 3)
		assert.NoError(t, err)
	})

	t.Run("CloneIsUntrained", func(t *testing.T) {
		g := NewGMM(GMMOptions{RandomSeed: &seed})
		data := blobData()

		require.NoError(t, g.Train(data, 2, true))

		clone := g.Clone()
		_, err := clone.Predict(data, 2)

		var nt *ErrNotTrained
		require.ErrorAs(t, err, &nt)
	})

	t.Run("Validation", func(t *testing.T) {
		g := NewGMM(DefaultGMMOptions)
		data := blobData()

		require.ErrorIs(t, g.Train(data, 0, true), ErrInvalidK)

		err := g.Train(data, 10, true)

		var tf *ErrTooFewPoints
		require.ErrorAs(t, err, &tf)
		assert.Equal(t, 10, tf.K)
	})

	t.Run("PredictDimensionMismatch", func(t *testing.T) {
		g := NewGMM(GMMOptions{RandomSeed: &seed})

		require.NoError(t, g.Train(blobData(), 2, true))

		_, err := g.Predict(mat.NewDense(1, 3, []float64{1, 2, 3}), 2)

		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 2, dm.Expected)
	})
}
