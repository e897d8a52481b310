// Package dataset provides the annotated data matrix consumed by the
// stability driver.
//
// A Dataset couples a gonum *mat.Dense (units x features) with typed
// annotations on both axes. Annotations are per-position attribute arrays
// (for example a "subjects" label per unit) and back the membership masks
// used to carve cross-validation partitions out of the matrix.
//
// # Architecture
//
//	Matrix:      *mat.Dense                        - units x features samples
//	Annotations: map[attr][]Value                  - one value per axis position
//	Inverted:    map[attr]map[value.Key()]*Mask    - O(1) membership lookup
//
// # Membership
//
// Membership(attr, values) resolves to a single Mask by ORing the posting
// masks of the requested values. Masks on the same axis combine with AND,
// which is how multi-space partitioning narrows a fold down to its final
// train and test selections.
//
// # Memory Efficiency
//
//   - String interning via unique.Handle[string] (Go 1.23+)
//   - Roaring Bitmaps for compressed posting masks
//   - Value.Key() deduplication in the inverted index
package dataset
