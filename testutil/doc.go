// Package testutil provides testing utilities for the stability module.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating datasets with planted feature
// structure and for comparing labelings up to cluster renaming.
//
// # Planted Structure
//
//	data, labels := testutil.Planted(4, 3, 2, 0.05, seed)
//
// # Annotated Datasets
//
//	ds, subjects, labels := testutil.PlantedDataset(4, 2, 3, 2, 0, seed)
//
// # Partition Comparison
//
//	testutil.SamePartition([]int{0, 0, 1}, []int{1, 1, 0}) // true
package testutil
