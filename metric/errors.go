package metric

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyLabels is returned when there are no labels to score.
	ErrEmptyLabels = errors.New("no labels to score")
)

// ErrLabelLength indicates two label slices of different lengths.
type ErrLabelLength struct {
	A int
	B int
}

func (e *ErrLabelLength) Error() string {
	return fmt.Sprintf("label length mismatch: got %d and %d", e.A, e.B)
}
