package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestValueKey(t *testing.T) {
	tests := []struct {
		name string
		a    Value
		b    Value
		same bool
	}{
		{name: "equal ints", a: Int(5), b: Int(5), same: true},
		{name: "different ints", a: Int(5), b: Int(6), same: false},
		{name: "equal strings", a: String("subj1"), b: String("subj1"), same: true},
		{name: "different strings", a: String("subj1"), b: String("subj2"), same: false},
		{name: "int vs string", a: Int(1), b: String("1"), same: false},
		{name: "equal floats", a: Float(2.5), b: Float(2.5), same: true},
		{name: "bools", a: Bool(true), b: Bool(false), same: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.same, tt.a.Key() == tt.b.Key())
			assert.Equal(t, tt.same, tt.a.Equal(tt.b))
		})
	}
}

func TestValueHelpers(t *testing.T) {
	vs := Ints(3, 1, 2)
	require.Len(t, vs, 3)

	i, ok := vs[0].AsInt64()
	require.True(t, ok)
	assert.Equal(t, int64(3), i)

	_, ok = vs[0].AsString()
	assert.False(t, ok)

	s, ok := String("a").AsString()
	require.True(t, ok)
	assert.Equal(t, "a", s)
}

func TestMask(t *testing.T) {
	t.Run("FullAndIndices", func(t *testing.T) {
		m := FullMask(4)
		assert.Equal(t, 4, m.Len())
		assert.Equal(t, 4, m.Cardinality())
		assert.Equal(t, []int{0, 1, 2, 3}, m.Indices())
	})

	t.Run("AndOr", func(t *testing.T) {
		a := NewMask(6)
		a.Add(0)
		a.Add(2)
		a.Add(4)

		b := NewMask(6)
		b.Add(2)
		b.Add(3)
		b.Add(4)

		u := a.Clone()
		u.Or(b)
		assert.Equal(t, []int{0, 2, 3, 4}, u.Indices())

		a.And(b)
		assert.Equal(t, []int{2, 4}, a.Indices())
	})

	t.Run("Intersects", func(t *testing.T) {
		a := NewMask(4)
		a.Add(1)

		b := NewMask(4)
		b.Add(2)

		assert.False(t, a.Intersects(b))

		b.Add(1)
		assert.True(t, a.Intersects(b))
	})

	t.Run("Iterator", func(t *testing.T) {
		m := NewMask(5)
		m.Add(3)
		m.Add(1)

		var got []int
		for i := range m.Iterator() {
			got = append(got, i)
		}
		assert.Equal(t, []int{1, 3}, got)
	})

	t.Run("CloneIsIndependent", func(t *testing.T) {
		a := NewMask(4)
		a.Add(1)

		b := a.Clone()
		b.Add(2)

		assert.False(t, a.Contains(2))
		assert.True(t, b.Contains(2))
	})
}

func TestAnnotations(t *testing.T) {
	t.Run("SetAndGet", func(t *testing.T) {
		a := NewAnnotations(4)
		require.NoError(t, a.Set("subjects", Ints(0, 0, 1, 1)))

		vs, ok := a.Get("subjects")
		require.True(t, ok)
		assert.Len(t, vs, 4)
		assert.True(t, a.Has("subjects"))
		assert.False(t, a.Has("conditions"))
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		a := NewAnnotations(4)
		err := a.Set("subjects", Ints(0, 1))
		require.Error(t, err)

		var lm *ErrLengthMismatch
		require.ErrorAs(t, err, &lm)
		assert.Equal(t, 4, lm.Expected)
		assert.Equal(t, 2, lm.Actual)
	})

	t.Run("Membership", func(t *testing.T) {
		a := NewAnnotations(6)
		require.NoError(t, a.Set("subjects", Ints(0, 0, 1, 1, 2, 2)))

		m, ok := a.Membership("subjects", Ints(0, 2))
		require.True(t, ok)
		assert.Equal(t, []int{0, 1, 4, 5}, m.Indices())
	})

	t.Run("MembershipUnknownAttr", func(t *testing.T) {
		a := NewAnnotations(2)

		_, ok := a.Membership("missing", Ints(0))
		assert.False(t, ok)
	})

	t.Run("MembershipUnknownValue", func(t *testing.T) {
		a := NewAnnotations(3)
		require.NoError(t, a.Set("subjects", Ints(0, 1, 2)))

		m, ok := a.Membership("subjects", Ints(9))
		require.True(t, ok)
		assert.True(t, m.IsEmpty())
	})

	t.Run("Names", func(t *testing.T) {
		a := NewAnnotations(2)
		require.NoError(t, a.Set("b", Ints(0, 1)))
		require.NoError(t, a.Set("a", Ints(0, 1)))

		assert.Equal(t, []string{"a", "b"}, a.Names())
	})
}

func TestDataset(t *testing.T) {
	newDataset := func(t *testing.T) *Dataset {
		t.Helper()

		// 4 units x 3 features
		m := mat.NewDense(4, 3, []float64{
			1, 2, 3,
			4, 5, 6,
			7, 8, 9,
			10, 11, 12,
		})

		ds, err := New(m)
		require.NoError(t, err)
		require.NoError(t, ds.UnitAnnotations().Set("subjects", Ints(0, 0, 1, 1)))
		require.NoError(t, ds.FeatureAnnotations().Set("rois", Strings("a", "b", "b")))

		return ds
	}

	t.Run("New", func(t *testing.T) {
		ds := newDataset(t)
		assert.Equal(t, 4, ds.Units())
		assert.Equal(t, 3, ds.Features())
	})

	t.Run("NewNil", func(t *testing.T) {
		_, err := New(nil)
		require.ErrorIs(t, err, ErrNilMatrix)
	})

	t.Run("SliceUnits", func(t *testing.T) {
		ds := newDataset(t)

		m, ok := ds.UnitAnnotations().Membership("subjects", Ints(1))
		require.True(t, ok)

		sub, err := ds.Slice(m, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, sub.Units())
		assert.Equal(t, 3, sub.Features())
		assert.Equal(t, 7.0, sub.Matrix().At(0, 0))
		assert.Equal(t, 12.0, sub.Matrix().At(1, 2))

		vs, ok := sub.UnitAnnotations().Get("subjects")
		require.True(t, ok)
		assert.True(t, vs[0].Equal(Int(1)))
		assert.True(t, vs[1].Equal(Int(1)))
	})

	t.Run("SliceBothAxes", func(t *testing.T) {
		ds := newDataset(t)

		um := NewMask(4)
		um.Add(0)
		um.Add(2)

		fm, ok := ds.FeatureAnnotations().Membership("rois", Strings("b"))
		require.True(t, ok)

		sub, err := ds.Slice(um, fm)
		require.NoError(t, err)
		assert.Equal(t, 2, sub.Units())
		assert.Equal(t, 2, sub.Features())
		assert.Equal(t, 2.0, sub.Matrix().At(0, 0))
		assert.Equal(t, 9.0, sub.Matrix().At(1, 1))

		vs, ok := sub.FeatureAnnotations().Get("rois")
		require.True(t, ok)
		assert.True(t, vs[0].Equal(String("b")))
	})

	t.Run("SliceEmpty", func(t *testing.T) {
		ds := newDataset(t)

		_, err := ds.Slice(NewMask(4), nil)
		require.ErrorIs(t, err, ErrEmptySelection)
	})

	t.Run("SliceWrongMaskSize", func(t *testing.T) {
		ds := newDataset(t)

		_, err := ds.Slice(NewMask(5), nil)

		var ms *ErrMaskSize
		require.ErrorAs(t, err, &ms)
		assert.Equal(t, 4, ms.Expected)
		assert.Equal(t, 5, ms.Actual)
	})
}
