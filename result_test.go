package stability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestResult(t *testing.T) {
	r := Result{
		"ARI": mat.NewDense(2, 2, []float64{2, 3, 0.5, 0.25}),
		"AMI": mat.NewDense(2, 2, []float64{2, 3, 0.4, 0.2}),
	}

	t.Run("Metrics", func(t *testing.T) {
		assert.Equal(t, []string{"AMI", "ARI"}, r.Metrics())
	})

	t.Run("Table", func(t *testing.T) {
		table, ok := r.Table("ARI")
		require.True(t, ok)

		rows, cols := table.Dims()
		assert.Equal(t, 2, rows)
		assert.Equal(t, 2, cols)

		_, ok = r.Table("nope")
		assert.False(t, ok)
	})

	t.Run("Rows", func(t *testing.T) {
		assert.Equal(t, []float64{2, 3}, r.Ks("ARI"))
		assert.Equal(t, []float64{0.5, 0.25}, r.Scores("ARI"))

		assert.Nil(t, r.Ks("nope"))
		assert.Nil(t, r.Scores("nope"))
	})
}
