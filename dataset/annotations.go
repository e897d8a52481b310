package dataset

import (
	"slices"
)

// Annotations holds per-position attribute arrays for one dataset axis.
//
// Each attribute maps every axis position to a Value, and every attribute is
// indexed into posting masks at Set time, so membership lookups never scan.
// After construction an Annotations is read-only and safe for concurrent use.
type Annotations struct {
	n     int
	attrs map[string][]Value

	// Inverted index for fast membership
	// Structure: attr -> valueKey -> mask of positions
	inverted map[string]map[string]*Mask
}

// NewAnnotations creates an empty annotation set for an axis of length n.
func NewAnnotations(n int) *Annotations {
	return &Annotations{
		n:        n,
		attrs:    make(map[string][]Value),
		inverted: make(map[string]map[string]*Mask),
	}
}

// Len returns the length of the annotated axis.
func (a *Annotations) Len() int {
	return a.n
}

// Set registers an attribute array for the axis. The array must hold exactly
// one value per axis position. Setting an existing attribute replaces it.
func (a *Annotations) Set(attr string, values []Value) error {
	if len(values) != a.n {
		return &ErrLengthMismatch{Attr: attr, Expected: a.n, Actual: len(values)}
	}

	stored := slices.Clone(values)

	postings := make(map[string]*Mask)
	for i, v := range stored {
		key := v.Key()
		m, ok := postings[key]
		if !ok {
			m = NewMask(a.n)
			postings[key] = m
		}
		m.Add(i)
	}

	a.attrs[attr] = stored
	a.inverted[attr] = postings

	return nil
}

// Get returns the attribute array for attr.
func (a *Annotations) Get(attr string) ([]Value, bool) {
	vs, ok := a.attrs[attr]
	return vs, ok
}

// Has reports whether the attribute exists.
func (a *Annotations) Has(attr string) bool {
	_, ok := a.attrs[attr]
	return ok
}

// Names returns the registered attribute names in sorted order.
func (a *Annotations) Names() []string {
	names := make([]string, 0, len(a.attrs))
	for name := range a.attrs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Membership returns the mask of positions whose attr value is in values.
// The second return is false when the attribute does not exist.
//
// Values absent from the attribute contribute no positions, so the result
// may be empty even for an existing attribute.
func (a *Annotations) Membership(attr string, values []Value) (*Mask, bool) {
	postings, ok := a.inverted[attr]
	if !ok {
		return nil, false
	}

	out := NewMask(a.n)
	for _, v := range values {
		if m, ok := postings[v.Key()]; ok {
			out.Or(m)
		}
	}

	return out, true
}

// selectPositions builds the annotation set for a sliced axis, keeping the
// values at the given source positions in order.
func (a *Annotations) selectPositions(idx []int) *Annotations {
	out := NewAnnotations(len(idx))
	for attr, values := range a.attrs {
		sub := make([]Value, len(idx))
		for i, src := range idx {
			sub[i] = values[src]
		}
		// Lengths match by construction.
		_ = out.Set(attr, sub)
	}
	return out
}
