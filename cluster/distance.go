package cluster

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DistanceFunc represents a function for calculating the distance between
// two observations. Callers are responsible for equal lengths.
type DistanceFunc func(a, b []float64) float64

// DistanceType represents the type of distance used for comparing
// observations.
type DistanceType int

const (
	// DistanceTypeSqEuclidean is the squared Euclidean distance (default).
	DistanceTypeSqEuclidean DistanceType = iota
	// DistanceTypeEuclidean is the Euclidean distance.
	DistanceTypeEuclidean
	// DistanceTypeCorrelation is the Pearson correlation distance 1 - r.
	DistanceTypeCorrelation
)

// String returns a string representation of the DistanceType.
func (dt DistanceType) String() string {
	switch dt {
	case DistanceTypeSqEuclidean:
		return "SqEuclidean"
	case DistanceTypeEuclidean:
		return "Euclidean"
	case DistanceTypeCorrelation:
		return "Correlation"
	default:
		return fmt.Sprintf("Unknown(%d)", int(dt))
	}
}

// NewDistanceFunc returns a distance function based on the specified
// distance type.
func NewDistanceFunc(distanceType DistanceType) (DistanceFunc, error) {
	switch distanceType {
	case DistanceTypeSqEuclidean:
		return SqEuclidean, nil
	case DistanceTypeEuclidean:
		return Euclidean, nil
	case DistanceTypeCorrelation:
		return Correlation, nil
	default:
		return nil, &ErrInvalidDistanceType{DistanceType: distanceType}
	}
}

// SqEuclidean calculates the squared Euclidean distance between two
// observations.
func SqEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Euclidean calculates the Euclidean distance between two observations.
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// Correlation calculates the Pearson correlation distance 1 - r between two
// observations. The result is NaN when either observation is constant.
func Correlation(a, b []float64) float64 {
	return 1 - stat.Correlation(a, b, nil)
}
