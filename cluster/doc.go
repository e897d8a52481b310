// Package cluster provides trainable clustering methods for the stability
// driver.
//
// All methods work on gonum matrices with observations in rows and implement
// the Method contract: Train fits a model for one k, Predict labels new
// observations with a trained model, and Clone derives a fresh untrained
// instance with the same configuration. A single instance can hold models
// for several values of k at once, which is how the driver sweeps a k range
// over one training matrix.
//
// # Methods
//
//   - KMeans: Lloyd's algorithm, random or k-means++ initialization
//   - GMM: diagonal-covariance Gaussian mixture fitted with EM
//   - Ward: agglomerative minimum-variance linkage, optionally restricted
//     to a connectivity graph
//   - CompleteLinkage: agglomerative farthest-neighbor linkage, correlation
//     distance by default
//
// # Prediction
//
// Agglomerative methods have no native out-of-sample rule, so Predict maps
// each observation to the nearest centroid of the trained partition under
// the method's distance.
package cluster
