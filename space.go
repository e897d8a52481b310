package stability

import (
	"fmt"
)

// Axis identifies a dataset axis.
type Axis uint8

const (
	// AxisUnits is the unit (row) axis.
	AxisUnits Axis = iota
	// AxisFeatures is the feature (column) axis.
	AxisFeatures
)

// String returns a string representation of the Axis.
func (a Axis) String() string {
	switch a {
	case AxisUnits:
		return "units"
	case AxisFeatures:
		return "features"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(a))
	}
}

// Space names the annotation attribute one splitter partitions over,
// together with the axis that carries it.
type Space struct {
	Axis Axis
	Attr string
}

// UnitSpace returns a Space on the unit axis.
func UnitSpace(attr string) Space {
	return Space{Axis: AxisUnits, Attr: attr}
}

// FeatureSpace returns a Space on the feature axis.
func FeatureSpace(attr string) Space {
	return Space{Axis: AxisFeatures, Attr: attr}
}

// String returns "axis.attr".
func (s Space) String() string {
	return s.Axis.String() + "." + s.Attr
}

func (s Space) valid() bool {
	return (s.Axis == AxisUnits || s.Axis == AxisFeatures) && s.Attr != ""
}
