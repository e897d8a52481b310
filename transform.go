package stability

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/clustkit/stability/dataset"
)

// Transform reshapes the train and test sub-datasets of one fold into the
// matrices handed to the clustering method. Implementations must not
// mutate their inputs.
type Transform func(train, test *dataset.Dataset) (*mat.Dense, *mat.Dense, error)

// identity passes both data matrices through unchanged.
func identity(train, test *dataset.Dataset) (*mat.Dense, *mat.Dense, error) {
	return train.Matrix(), test.Matrix(), nil
}

// MeanGroups returns a transform that averages all units sharing a value
// of the given unit annotation. Groups are ordered by first appearance,
// so train and test halves drawn from the same annotation scheme produce
// comparable rows.
func MeanGroups(attr string) Transform {
	return func(train, test *dataset.Dataset) (*mat.Dense, *mat.Dense, error) {
		trainM, err := meanGroups(train, attr)
		if err != nil {
			return nil, nil, err
		}

		testM, err := meanGroups(test, attr)
		if err != nil {
			return nil, nil, err
		}

		return trainM, testM, nil
	}
}

func meanGroups(ds *dataset.Dataset, attr string) (*mat.Dense, error) {
	values, ok := ds.UnitAnnotations().Get(attr)
	if !ok {
		return nil, &ErrAnnotationNotFound{
			Space:     UnitSpace(attr),
			Available: ds.UnitAnnotations().Names(),
		}
	}

	var (
		data     = ds.Matrix()
		features = ds.Features()
		index    = make(map[string]int)
		sums     [][]float64
		counts   []float64
	)

	for i, v := range values {
		g, ok := index[v.Key()]
		if !ok {
			g = len(sums)
			index[v.Key()] = g
			sums = append(sums, make([]float64, features))
			counts = append(counts, 0)
		}

		floats.Add(sums[g], data.RawRowView(i))
		counts[g]++
	}

	out := mat.NewDense(len(sums), features, nil)
	for g, sum := range sums {
		floats.Scale(1/counts[g], sum)
		out.SetRow(g, sum)
	}

	return out, nil
}
