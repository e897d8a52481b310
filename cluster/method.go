package cluster

import (
	"gonum.org/v1/gonum/mat"
)

// Method is the contract for trainable clustering algorithms.
//
// Implementations keep one model per trained k, so a sweep can call Train
// repeatedly on the same instance and Predict against any k trained so far.
// Clone must be callable concurrently on an untrained prototype.
type Method interface {
	// Train fits a model for k clusters on data, observations in rows.
	// When full is true the instance retains the models of every k trained
	// so far; when false it keeps only the last one.
	Train(data *mat.Dense, k int, full bool) error

	// Predict labels each row of data with a cluster in [0, k) using the
	// model trained for k.
	Predict(data *mat.Dense, k int) ([]int, error)

	// Clone returns an untrained instance with the same configuration.
	Clone() Method
}
