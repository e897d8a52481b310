package dataset

import (
	"math"
	"strconv"
	"unique"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a float value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindBool represents a boolean value.
	KindBool
)

// Value is a small typed value used for axis annotations and split labels.
//
// The representation is designed to make membership checks fast and
// predictable: no reflection and no fmt-based stringification.
type Value struct {
	Kind Kind
	I64  int64
	F64  float64
	s    unique.Handle[string] // Private interned string
	B    bool
}

// Int returns an int64 Value.
func Int(v int64) Value { return Value{Kind: KindInt, I64: v} }

// Float returns a float64 Value.
func Float(v float64) Value { return Value{Kind: KindFloat, F64: v} }

// String returns a string Value.
func String(v string) Value { return Value{Kind: KindString, s: unique.Make(v)} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{Kind: KindBool, B: v} }

// Ints returns a Value slice from int64 literals.
func Ints(vs ...int64) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = Int(v)
	}
	return out
}

// Floats returns a Value slice from float64 literals.
func Floats(vs ...float64) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = Float(v)
	}
	return out
}

// Strings returns a Value slice from string literals.
func Strings(vs ...string) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = String(v)
	}
	return out
}

// AsInt64 returns the int64 value if Kind is KindInt.
func (v Value) AsInt64() (int64, bool) {
	if v.Kind != KindInt {
		return 0, false
	}
	return v.I64, true
}

// AsFloat64 returns the float64 value if Kind is KindFloat.
func (v Value) AsFloat64() (float64, bool) {
	if v.Kind != KindFloat {
		return 0, false
	}
	return v.F64, true
}

// AsString returns the string value if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.s.Value(), true
}

// AsBool returns the boolean value if Kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.B, true
}

// Key returns a stable string representation for use in maps.
//
// It is intended for internal indexing (inverted membership masks) and is
// the identity under which annotation values are grouped and compared.
func (v Value) Key() string {
	switch v.Kind {
	case KindInt:
		return "i:" + strconv.FormatInt(v.I64, 10)
	case KindFloat:
		return "f:" + strconv.FormatUint(math.Float64bits(v.F64), 16)
	case KindString:
		return "s:" + v.s.Value()
	case KindBool:
		if v.B {
			return "b:1"
		}
		return "b:0"
	default:
		return "invalid"
	}
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindInt:
		return v.I64 == o.I64
	case KindFloat:
		return math.Float64bits(v.F64) == math.Float64bits(o.F64)
	case KindString:
		return v.s == o.s
	case KindBool:
		return v.B == o.B
	default:
		return true
	}
}
