package testutil

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/clustkit/stability/dataset"
)

// separation is the response-level gap between adjacent feature groups.
// It dwarfs the configurable noise so planted structure stays recoverable.
const separation = 10.0

// Planted generates a units x (groups*featuresPerGroup) matrix whose
// features split into contiguous groups with distinct response profiles,
// plus the planted feature labels. Features of group g respond at level
// g*separation on every unit, jittered by uniform noise in [0, noise).
func Planted(units, featuresPerGroup, groups int, noise float64, seed int64) (*mat.Dense, []int) {
	rng := rand.New(rand.NewSource(seed))

	features := groups * featuresPerGroup
	data := mat.NewDense(units, features, nil)
	labels := make([]int, features)

	for j := 0; j < features; j++ {
		g := j / featuresPerGroup
		labels[j] = g

		for i := 0; i < units; i++ {
			data.Set(i, j, float64(g)*separation+noise*rng.Float64())
		}
	}

	return data, labels
}

// PlantedDataset wraps Planted in a Dataset whose units carry a
// "subjects" annotation assigning them to subjects round-robin. It
// returns the dataset, the distinct subject values for splitting, and the
// planted feature labels.
func PlantedDataset(units, subjects, featuresPerGroup, groups int, noise float64, seed int64) (*dataset.Dataset, []dataset.Value, []int) {
	data, labels := Planted(units, featuresPerGroup, groups, noise, seed)

	ds, err := dataset.New(data)
	if err != nil {
		panic(err)
	}

	values := make([]dataset.Value, units)
	for i := range values {
		values[i] = dataset.Int(int64(i % subjects))
	}

	if err := ds.UnitAnnotations().Set("subjects", values); err != nil {
		panic(err)
	}

	distinct := make([]dataset.Value, subjects)
	for s := range distinct {
		distinct[s] = dataset.Int(int64(s))
	}

	return ds, distinct, labels
}

// SamePartition reports whether two labelings induce the same partition
// of their positions, ignoring label names.
func SamePartition(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	ab := make(map[int]int)
	ba := make(map[int]int)

	for i := range a {
		if m, ok := ab[a[i]]; ok && m != b[i] {
			return false
		}
		if m, ok := ba[b[i]]; ok && m != a[i] {
			return false
		}

		ab[a[i]] = b[i]
		ba[b[i]] = a[i]
	}

	return true
}
