package split

import (
	"errors"
	"fmt"
)

var (
	// ErrNoValues is returned when there are too few values to split.
	ErrNoValues = errors.New("not enough values to split")

	// ErrInvalidIterations is returned when the iteration count is not positive.
	ErrInvalidIterations = errors.New("iterations must be positive")
)

// ErrFoldCount indicates a fold count outside [2, len(values)].
type ErrFoldCount struct {
	Folds  int
	Values int
}

func (e *ErrFoldCount) Error() string {
	return fmt.Sprintf("cannot make %d folds from %d values", e.Folds, e.Values)
}

// ErrTrainFraction indicates a train fraction outside (0, 1).
type ErrTrainFraction struct {
	Fraction float64
}

func (e *ErrTrainFraction) Error() string {
	return fmt.Sprintf("train fraction must be in (0, 1), got %v", e.Fraction)
}
