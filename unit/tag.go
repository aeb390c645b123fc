package unit

import (
	"fmt"
	"strings"
)

// Tag identifies a unit: one dimension vector inside one system. Tags
// are interned by vector value, so structurally equal combinator
// expressions (Mul(A,B) and Mul(B,A)) resolve to the same *Tag. All
// compatibility checks still compare vectors, never pointers.
//
// Tags are immutable once interned and safe for concurrent use.
type Tag struct {
	sys *System
	vec Vector
}

// System returns the unit system the tag belongs to.
func (t *Tag) System() *System {
	return t.sys
}

// Vector returns a copy of the tag's dimension vector.
func (t *Tag) Vector() Vector {
	return Vector{comps: append([]int8(nil), t.vec.comps...)}
}

// Scale returns the tag's power-of-ten exponent.
func (t *Tag) Scale() int8 {
	return t.vec.Scale()
}

// Compatible reports full vector equality, scale included. Addition
// and subtraction require it.
func (t *Tag) Compatible(o *Tag) bool {
	return t.sys == o.sys && t.vec.Equal(o.vec)
}

// SameDimension reports non-scale vector equality. Conversion
// requires it.
func (t *Tag) SameDimension(o *Tag) bool {
	return t.sys == o.sys && t.vec.SameDimension(o.vec)
}

// Mul returns the tag whose vector is the component-wise sum of the
// operands' vectors.
func (t *Tag) Mul(o *Tag) (*Tag, error) {
	if t.sys != o.sys {
		return nil, newSystemError(ErrCodeSystemMismatch,
			fmt.Sprintf("cannot combine tags from systems %q and %q", t.sys.name, o.sys.name))
	}

	vec, err := t.vec.Add(o.vec, t.sys.bounds, t.sys.dims)
	if err != nil {
		return nil, err
	}

	return t.sys.intern(vec), nil
}

// Div returns the tag whose vector is the component-wise difference
// of the operands' vectors.
func (t *Tag) Div(o *Tag) (*Tag, error) {
	if t.sys != o.sys {
		return nil, newSystemError(ErrCodeSystemMismatch,
			fmt.Sprintf("cannot combine tags from systems %q and %q", t.sys.name, o.sys.name))
	}

	vec, err := t.vec.Sub(o.vec, t.sys.bounds, t.sys.dims)
	if err != nil {
		return nil, err
	}

	return t.sys.intern(vec), nil
}

// TenTo returns the tag scaled by 10^n, leaving every physical
// dimension untouched.
func (t *Tag) TenTo(n int8) (*Tag, error) {
	vec, err := t.vec.ScaleOffset(n, t.sys.bounds)
	if err != nil {
		return nil, err
	}

	return t.sys.intern(vec), nil
}

// String renders the tag from its vector, e.g. "10^3·kg·m·s^-2".
// The unitless tag renders as "1".
func (t *Tag) String() string {
	var parts []string

	if s := t.vec.Scale(); s != 0 {
		parts = append(parts, fmt.Sprintf("10^%d", s))
	}

	for i := 0; i < t.vec.Len(); i++ {
		switch e := t.vec.Dim(i); e {
		case 0:
		case 1:
			parts = append(parts, t.sys.dims[i])
		default:
			parts = append(parts, fmt.Sprintf("%s^%d", t.sys.dims[i], e))
		}
	}

	if len(parts) == 0 {
		return "1"
	}

	return strings.Join(parts, "·")
}

// MustTag unwraps a tag construction, panicking on error. Intended
// for static catalogs where an out-of-range expression is a
// programming error that should fail at process start.
func MustTag(t *Tag, err error) *Tag {
	if err != nil {
		panic(err)
	}

	return t
}
