package cluster

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrEmptyData is returned when there are no observations to cluster.
	ErrEmptyData = errors.New("no observations to cluster")

	// ErrConnectivityEntry is returned when a connectivity graph references
	// an observation outside the training matrix.
	ErrConnectivityEntry = errors.New("connectivity entry out of range")
)

// ErrNotTrained indicates a Predict call for a k that was never trained.
type ErrNotTrained struct {
	K int
}

func (e *ErrNotTrained) Error() string {
	return fmt.Sprintf("no trained model for k=%d", e.K)
}

// ErrTooFewPoints indicates more clusters than observations.
type ErrTooFewPoints struct {
	K      int
	Points int
}

func (e *ErrTooFewPoints) Error() string {
	return fmt.Sprintf("cannot fit %d clusters with %d observations", e.K, e.Points)
}

// ErrDimensionMismatch indicates a Predict matrix whose feature count does
// not match the trained model.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDistanceType indicates an unsupported distance type.
type ErrInvalidDistanceType struct {
	DistanceType DistanceType
}

func (e *ErrInvalidDistanceType) Error() string {
	return fmt.Sprintf("invalid distance type: %d", e.DistanceType)
}

// ErrConnectivitySize indicates a connectivity graph built for a different
// number of observations.
type ErrConnectivitySize struct {
	Expected int
	Actual   int
}

func (e *ErrConnectivitySize) Error() string {
	return fmt.Sprintf("connectivity size mismatch: expected %d observations, got %d", e.Expected, e.Actual)
}
