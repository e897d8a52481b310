package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix is returned when a dataset is built from a nil matrix.
	ErrNilMatrix = errors.New("nil data matrix")

	// ErrEmptySelection is returned when slicing selects no rows or no columns.
	ErrEmptySelection = errors.New("selection is empty")
)

// ErrLengthMismatch indicates an annotation array that does not cover its axis.
type ErrLengthMismatch struct {
	Attr     string
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("annotation %q: length mismatch: expected %d, got %d", e.Attr, e.Expected, e.Actual)
}

// ErrMaskSize indicates a mask built for a different axis length.
type ErrMaskSize struct {
	Expected int
	Actual   int
}

func (e *ErrMaskSize) Error() string {
	return fmt.Sprintf("mask size mismatch: expected %d, got %d", e.Expected, e.Actual)
}
