package dataset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Mask is a selection of positions on one dataset axis, backed by a 32-bit
// Roaring Bitmap. It wraps the official roaring implementation.
//
// A Mask carries the length of the axis it was built for so that slicing can
// reject masks that belong to a different axis.
type Mask struct {
	n  int
	rb *roaring.Bitmap
}

// NewMask creates a new empty mask for an axis of length n.
func NewMask(n int) *Mask {
	return &Mask{
		n:  n,
		rb: roaring.New(),
	}
}

// FullMask creates a mask selecting every position of an axis of length n.
func FullMask(n int) *Mask {
	m := NewMask(n)
	if n > 0 {
		m.rb.AddRange(0, uint64(n))
	}
	return m
}

// Len returns the length of the axis the mask selects from.
func (m *Mask) Len() int {
	return m.n
}

// Add adds a position to the mask.
func (m *Mask) Add(i int) {
	m.rb.Add(uint32(i))
}

// Contains checks if a position is in the mask.
func (m *Mask) Contains(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}
	return m.rb.Contains(uint32(i))
}

// IsEmpty returns true if the mask selects no positions.
func (m *Mask) IsEmpty() bool {
	return m.rb.IsEmpty()
}

// Cardinality returns the number of selected positions.
func (m *Mask) Cardinality() int {
	return int(m.rb.GetCardinality())
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	return &Mask{
		n:  m.n,
		rb: m.rb.Clone(),
	}
}

// And intersects the mask with another mask on the same axis.
func (m *Mask) And(other *Mask) {
	m.rb.And(other.rb)
}

// Or unions the mask with another mask on the same axis.
func (m *Mask) Or(other *Mask) {
	m.rb.Or(other.rb)
}

// Intersects reports whether the two masks share at least one position.
func (m *Mask) Intersects(other *Mask) bool {
	return m.rb.Intersects(other.rb)
}

// Indices returns the selected positions in ascending order.
func (m *Mask) Indices() []int {
	out := make([]int, 0, m.rb.GetCardinality())
	it := m.rb.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// Iterator returns an iterator over the selected positions in ascending order.
func (m *Mask) Iterator() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := m.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}
