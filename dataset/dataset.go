package dataset

import (
	"gonum.org/v1/gonum/mat"
)

// Dataset couples a units x features data matrix with typed annotations on
// both axes. Rows are units (the objects being observed), columns are the
// features measured per unit.
//
// A Dataset is read-only once built and safe to share across goroutines.
type Dataset struct {
	data     *mat.Dense
	units    *Annotations
	features *Annotations
}

// New creates a dataset around a units x features matrix. The matrix is
// used as-is, not copied.
func New(data *mat.Dense) (*Dataset, error) {
	if data == nil {
		return nil, ErrNilMatrix
	}

	rows, cols := data.Dims()

	return &Dataset{
		data:     data,
		units:    NewAnnotations(rows),
		features: NewAnnotations(cols),
	}, nil
}

// Units returns the number of units (rows).
func (d *Dataset) Units() int {
	r, _ := d.data.Dims()
	return r
}

// Features returns the number of features (columns).
func (d *Dataset) Features() int {
	_, c := d.data.Dims()
	return c
}

// Matrix returns the underlying data matrix.
func (d *Dataset) Matrix() *mat.Dense {
	return d.data
}

// UnitAnnotations returns the annotations on the unit axis.
func (d *Dataset) UnitAnnotations() *Annotations {
	return d.units
}

// FeatureAnnotations returns the annotations on the feature axis.
func (d *Dataset) FeatureAnnotations() *Annotations {
	return d.features
}

// Slice returns the sub-dataset selected by a unit mask and a feature mask.
// A nil mask keeps the full axis. Annotations are carried over to the
// selected positions.
func (d *Dataset) Slice(unitMask, featureMask *Mask) (*Dataset, error) {
	rows, cols := d.data.Dims()

	ui, err := axisIndices(unitMask, rows)
	if err != nil {
		return nil, err
	}
	fi, err := axisIndices(featureMask, cols)
	if err != nil {
		return nil, err
	}

	if len(ui) == 0 || len(fi) == 0 {
		return nil, ErrEmptySelection
	}

	out := mat.NewDense(len(ui), len(fi), nil)
	for r, srcRow := range ui {
		for c, srcCol := range fi {
			out.Set(r, c, d.data.At(srcRow, srcCol))
		}
	}

	return &Dataset{
		data:     out,
		units:    d.units.selectPositions(ui),
		features: d.features.selectPositions(fi),
	}, nil
}

func axisIndices(m *Mask, axisLen int) ([]int, error) {
	if m == nil {
		idx := make([]int, axisLen)
		for i := range idx {
			idx[i] = i
		}
		return idx, nil
	}
	if m.Len() != axisLen {
		return nil, &ErrMaskSize{Expected: axisLen, Actual: m.Len()}
	}
	return m.Indices(), nil
}
