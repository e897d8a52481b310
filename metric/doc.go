// Package metric provides partition agreement scores for the stability
// driver.
//
// A Metric compares two labelings of the same observations. The driver
// passes the prediction derived from the train half first and the
// reference labeling second, so asymmetric scores treat argument b as the
// reference.
//
// # Scores
//
//   - ARI: adjusted Rand index (Hubert and Arabie 1985), chance-corrected,
//     1 for identical partitions
//   - AMI: adjusted mutual information (Vinh et al. 2010), arithmetic
//     normalization, 1 for identical partitions
//   - Instability: normalized misassignment rate (Lange et al. 2004),
//     0 for identical partitions, around 1 for random ones
//
// Scores key the driver's result tables through String(), so every metric
// in one run needs a distinct name.
package metric
