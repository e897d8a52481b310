package stability

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/clustkit/stability/cluster"
	"github.com/clustkit/stability/dataset"
	"github.com/clustkit/stability/split"
)

// runFold executes one train/test fold over the full cluster count sweep
// and returns its score tables keyed by metric name.
func runFold(ctx context.Context, ds *dataset.Dataset, prototype cluster.Method, ks []int, fold []split.Pair, o *options) (map[string]*mat.Dense, error) {
	sel, err := foldMasks(ds, o.spaces, fold)
	if err != nil {
		return nil, err
	}

	trainDS, err := ds.Slice(sel.unitTrain, sel.featTrain)
	if err != nil {
		return nil, fmt.Errorf("train partition: %w", err)
	}

	testDS, err := ds.Slice(sel.unitTest, sel.featTest)
	if err != nil {
		return nil, fmt.Errorf("test partition: %w", err)
	}

	transform := o.transform
	if transform == nil {
		transform = identity
	}

	trainM, testM, err := transform(trainDS, testDS)
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}

	// The feature axis is what gets clustered, so both halves are
	// transposed and units become dimensions.
	trainT := mat.DenseCopyOf(trainM.T())
	testT := mat.DenseCopyOf(testM.T())

	samples, _ := testT.Dims()
	if o.groundTruth != nil && len(o.groundTruth) != samples {
		return nil, &ErrGroundTruth{Expected: samples, Actual: len(o.groundTruth)}
	}

	// Two independent instances so the trained models of one half never
	// leak into the other.
	cmTrain := prototype.Clone()
	cmTest := prototype.Clone()

	newTable := func() *mat.Dense {
		t := mat.NewDense(2, len(ks), nil)
		for i, k := range ks {
			t.Set(0, i, float64(k))
		}

		return t
	}

	tables := make(map[string]*mat.Dense, len(o.metrics))
	for _, m := range o.metrics {
		tables[m.String()] = newTable()
		if o.groundTruth != nil {
			tables[m.String()+"_gt"] = newTable()
		}
	}

	for i, k := range ks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := cmTrain.Train(trainT, k, true); err != nil {
			return nil, fmt.Errorf("train half, k=%d: %w", k, err)
		}

		if err := cmTest.Train(testT, k, true); err != nil {
			return nil, fmt.Errorf("test half, k=%d: %w", k, err)
		}

		predicted, err := cmTrain.Predict(testT, k)
		if err != nil {
			return nil, fmt.Errorf("predict, k=%d: %w", k, err)
		}

		self, err := cmTest.Predict(testT, k)
		if err != nil {
			return nil, fmt.Errorf("self labels, k=%d: %w", k, err)
		}

		for _, m := range o.metrics {
			score, err := m.Score(predicted, self, testT, k)
			if err != nil {
				return nil, fmt.Errorf("metric %s, k=%d: %w", m, k, err)
			}

			tables[m.String()].Set(1, i, score)

			if o.groundTruth == nil {
				continue
			}

			score, err = m.Score(predicted, o.groundTruth, testT, k)
			if err != nil {
				return nil, fmt.Errorf("metric %s_gt, k=%d: %w", m, k, err)
			}

			tables[m.String()+"_gt"].Set(1, i, score)
		}
	}

	return tables, nil
}
