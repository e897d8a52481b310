package integration_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/clustkit/stability"
	"github.com/clustkit/stability/cluster"
	"github.com/clustkit/stability/dataset"
	"github.com/clustkit/stability/metric"
	"github.com/clustkit/stability/split"
	"github.com/clustkit/stability/testutil"
)

// chain builds a path-graph connectivity over n samples.
func chain(n int) [][]int {
	adj := make([][]int, n)
	for i := range adj {
		if i > 0 {
			adj[i] = append(adj[i], i-1)
		}
		if i < n-1 {
			adj[i] = append(adj[i], i+1)
		}
	}

	return adj
}

// TestE2E_MethodsRecoverPlantedStructure sweeps every clustering method
// over noiseless planted data. Both halves of every fold see the same two
// feature blocks, so all agreement scores must be perfect regardless of
// method seeding.
func TestE2E_MethodsRecoverPlantedStructure(t *testing.T) {
	ds, subjects, _ := testutil.PlantedDataset(4, 2, 3, 2, 0, 1)

	splitter, err := split.KFold(subjects, 2)
	require.NoError(t, err)

	complete, err := cluster.NewCompleteLinkage(cluster.CompleteLinkageOptions{
		DistanceType: cluster.DistanceTypeSqEuclidean,
	})
	require.NoError(t, err)

	methods := map[string]cluster.Method{
		"KMeans":         cluster.NewKMeans(cluster.DefaultKMeansOptions),
		"GMM":            cluster.NewGMM(cluster.DefaultGMMOptions),
		"Ward":           cluster.NewWard(),
		"StructuredWard": cluster.NewStructuredWard(chain(6)),
		"CompleteLink":   complete,
	}

	for name, method := range methods {
		t.Run(name, func(t *testing.T) {
			result, err := stability.Run(context.Background(), ds, method, []int{2, 3},
				stability.WithSplitters(splitter),
				stability.WithMetrics(metric.ARI{}, metric.AMI{}, metric.Instability{}),
			)
			require.NoError(t, err)

			require.Equal(t, []string{"AMI", "ARI", "instability"}, result.Metrics())
			require.Len(t, result.Scores("ARI"), 4)

			for _, s := range result.Scores("ARI") {
				assert.InDelta(t, 1.0, s, 1e-9)
			}
			for _, s := range result.Scores("AMI") {
				assert.InDelta(t, 1.0, s, 1e-9)
			}
			for _, s := range result.Scores("instability") {
				assert.InDelta(t, 0.0, s, 1e-9)
			}
		})
	}
}

// TestE2E_NoisyWard checks recovery with jittered responses. Ward linkage
// is deterministic, and the noise stays far below the group separation.
func TestE2E_NoisyWard(t *testing.T) {
	ds, subjects, planted := testutil.PlantedDataset(4, 2, 3, 2, 0.05, 42)

	splitter, err := split.KFold(subjects, 2)
	require.NoError(t, err)

	result, err := stability.Run(context.Background(), ds, cluster.NewWard(), []int{2},
		stability.WithSplitters(splitter),
		stability.WithMetrics(metric.ARI{}),
	)
	require.NoError(t, err)

	for _, s := range result.Scores("ARI") {
		assert.InDelta(t, 1.0, s, 1e-12)
	}

	// The full-data partition matches the planted one as well.
	w := cluster.NewWard()
	full := mat.DenseCopyOf(ds.Matrix().T())
	require.NoError(t, w.Train(full, 2, true))

	labels, ok := w.Labels(2)
	require.True(t, ok)
	assert.True(t, testutil.SamePartition(planted, labels))
}

// TestE2E_FullPipeline runs the whole surface at once: concurrent folds,
// a group-mean transform, ground truth scoring and a metrics collector.
func TestE2E_FullPipeline(t *testing.T) {
	ds, subjects, planted := testutil.PlantedDataset(8, 2, 3, 2, 0, 7)
	require.NoError(t, ds.UnitAnnotations().Set("targets", dataset.Ints(0, 0, 0, 0, 1, 1, 1, 1)))

	splitter, err := split.KFold(subjects, 2)
	require.NoError(t, err)

	collector := &stability.BasicCollector{}

	result, err := stability.Run(context.Background(), ds, cluster.NewKMeans(cluster.DefaultKMeansOptions), []int{2},
		stability.WithSplitters(splitter),
		stability.WithTransform(stability.MeanGroups("targets")),
		stability.WithGroundTruth(planted),
		stability.WithWorkers(4),
		stability.WithCollector(collector),
	)
	require.NoError(t, err)

	require.Equal(t, []string{"AMI", "AMI_gt", "ARI", "ARI_gt"}, result.Metrics())

	for _, name := range result.Metrics() {
		scores := result.Scores(name)
		require.Len(t, scores, 2)

		for _, s := range scores {
			assert.InDelta(t, 1.0, s, 1e-9, "metric %s", name)
		}
	}

	stats := collector.GetStats()
	assert.Equal(t, int64(2), stats.FoldCount)
	assert.Equal(t, int64(0), stats.FoldErrors)
	assert.Equal(t, int64(1), stats.RunCount)
}
