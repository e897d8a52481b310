// Package stability estimates how reproducible a clustering solution is
// by cross-validation.
//
// A dataset is repeatedly split into a train and a test half along
// annotated axes. For every fold and every candidate cluster count, two
// independent instances of a clustering method are trained, one per
// half. The train instance then predicts labels for the test data, and
// the agreement between those predictions and the test half's own
// labeling is scored. Stable solutions survive the transfer between
// halves, so scores ranked over cluster counts separate granularities
// that reflect structure from those that fit noise.
//
// # Quick Start
//
// Annotate a dataset, pick a splitter and a method, and run the sweep:
//
//	ds, _ := dataset.New(data)
//	ds.UnitAnnotations().Set("subjects", dataset.Ints(0, 0, 1, 1))
//
//	splitter, _ := split.KFold(dataset.Ints(0, 1), 2)
//
//	result, err := stability.Run(ctx, ds, cluster.NewKMeans(cluster.DefaultKMeansOptions), []int{2, 3, 4},
//	    stability.WithSplitters(splitter),
//	)
//
//	scores := result.Scores("ARI")  // one column per (fold, k) pair
//
// Splitters compose: passing several crosses their folds, with one
// annotation space per splitter:
//
//	stability.WithSplitters(bySubject, bySession),
//	stability.WithSpaces(
//	    stability.UnitSpace("subjects"),
//	    stability.UnitSpace("session"),
//	)
//
// # Scoring
//
// Each metric produces a two-row table per run: row 0 repeats the swept
// cluster counts and row 1 the scores, one column per (fold, k) pair in
// fold enumeration order. With ground truth labels configured, every
// metric is additionally scored against them under the "<name>_gt" key.
//
// # Key Features
//
//   - Cross-validation folds from composable splitters (k-fold,
//     leave-one-out, random subsampling) over unit or feature spaces
//   - Pluggable clustering methods: k-means, Gaussian mixture, Ward and
//     complete linkage with optional connectivity constraints
//   - Pluggable agreement metrics: adjusted Rand index, adjusted mutual
//     information, Hungarian-matched instability
//   - Concurrent fold processing with a deterministic result layout
//   - Structured logging and pluggable run metrics collection
package stability
