package stability

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilData is returned when Run is given no dataset.
	ErrNilData = errors.New("nil dataset")

	// ErrNilMethod is returned when Run is given no clustering method.
	ErrNilMethod = errors.New("nil clustering method")

	// ErrEmptySweep is returned when Run is given no cluster counts.
	ErrEmptySweep = errors.New("empty cluster count sweep")

	// ErrNoSplitters is returned when no splitters are configured.
	ErrNoSplitters = errors.New("no splitters configured")

	// ErrNoFolds is returned when the configured splitters yield no folds.
	ErrNoFolds = errors.New("splitters yield no folds")

	// ErrUnknownAxis guards the axis switches; reaching it is a bug.
	ErrUnknownAxis = errors.New("unknown dataset axis")
)

// ErrCountMismatch indicates splitter and space counts that differ.
type ErrCountMismatch struct {
	Splitters int
	Spaces    int
}

// Error implements the error interface.
func (e *ErrCountMismatch) Error() string {
	return fmt.Sprintf("got %d splitters for %d spaces", e.Splitters, e.Spaces)
}

// ErrSpace indicates a malformed space.
type ErrSpace struct {
	Space Space
}

// Error implements the error interface.
func (e *ErrSpace) Error() string {
	return fmt.Sprintf("malformed space %q", e.Space.String())
}

// ErrAnnotationNotFound indicates a space attribute that is not annotated
// on its axis.
type ErrAnnotationNotFound struct {
	Space     Space
	Available []string
}

// Error implements the error interface.
func (e *ErrAnnotationNotFound) Error() string {
	return fmt.Sprintf("annotation %q not present on %s axis (have: %s)",
		e.Space.Attr, e.Space.Axis, strings.Join(e.Available, ", "))
}

// ErrGroundTruth indicates ground truth labels that do not cover the
// clustered test samples.
type ErrGroundTruth struct {
	Expected int
	Actual   int
}

// Error implements the error interface.
func (e *ErrGroundTruth) Error() string {
	return fmt.Sprintf("ground truth length mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrFoldKey indicates a fold whose metric keys differ from those of
// fold 0.
type ErrFoldKey struct {
	Fold int
	Key  string
}

// Error implements the error interface.
func (e *ErrFoldKey) Error() string {
	return fmt.Sprintf("fold %d has no metric key %q", e.Fold, e.Key)
}
