// Package unit implements a generic power-of-ten unit algebra: bounded
// dimension vectors, interned unit tags composed through Mul/Div/TenTo
// combinators, and a generic Quantity wrapper whose arithmetic and
// scale conversions are checked when each tag or quantity is
// constructed.
//
// The package is system-agnostic. A System is generated from an
// ordered list of base-dimension names and an inclusive exponent
// range; the si package is one such instantiation.
package unit

import (
	"fmt"
	"strings"
)

// Bounds is the inclusive exponent range every vector component must
// stay inside.
type Bounds struct {
	Low  int8
	High int8
}

// Contains reports whether n lies inside the range.
func (b Bounds) Contains(n int) bool {
	return n >= int(b.Low) && n <= int(b.High)
}

// Vector is a dimension vector: one scale component (the power-of-ten
// exponent) followed by one component per base dimension. Components
// are bounded by the owning system's Bounds; the zero components slice
// only appears in zero-valued Errors.
type Vector struct {
	comps []int8 // comps[0] is the scale exponent
}

// newVector builds an all-zero vector for dims base dimensions.
func newVector(dims int) Vector {
	return Vector{comps: make([]int8, dims+1)}
}

// Scale returns the power-of-ten exponent component.
func (v Vector) Scale() int8 {
	return v.comps[0]
}

// Dim returns the exponent of base dimension i.
func (v Vector) Dim(i int) int8 {
	return v.comps[i+1]
}

// Len returns the number of base dimensions (excluding the scale slot).
func (v Vector) Len() int {
	return len(v.comps) - 1
}

// Equal reports exact component-wise equality, scale included.
func (v Vector) Equal(o Vector) bool {
	if len(v.comps) != len(o.comps) {
		return false
	}
	for i := range v.comps {
		if v.comps[i] != o.comps[i] {
			return false
		}
	}

	return true
}

// SameDimension reports equality of all non-scale components. Two
// vectors with the same dimension but different scales are exactly
// the convertible pairs.
func (v Vector) SameDimension(o Vector) bool {
	if len(v.comps) != len(o.comps) {
		return false
	}
	for i := 1; i < len(v.comps); i++ {
		if v.comps[i] != o.comps[i] {
			return false
		}
	}

	return true
}

// Add returns the component-wise sum, failing if any component would
// leave bounds. names provides the per-slot labels for error reports.
func (v Vector) Add(o Vector, bounds Bounds, names []string) (Vector, error) {
	return v.combine(o, 1, bounds, names)
}

// Sub returns the component-wise difference under the same rules as Add.
func (v Vector) Sub(o Vector, bounds Bounds, names []string) (Vector, error) {
	return v.combine(o, -1, bounds, names)
}

func (v Vector) combine(o Vector, sign int, bounds Bounds, names []string) (Vector, error) {
	out := Vector{comps: make([]int8, len(v.comps))}
	for i := range v.comps {
		n := int(v.comps[i]) + sign*int(o.comps[i])
		if !bounds.Contains(n) {
			return Vector{}, newExponentRangeError(componentName(i, names), n, bounds)
		}
		out.comps[i] = int8(n)
	}

	return out, nil
}

// ScaleOffset returns a copy with n added to the scale component only.
func (v Vector) ScaleOffset(n int8, bounds Bounds) (Vector, error) {
	s := int(v.comps[0]) + int(n)
	if !bounds.Contains(s) {
		return Vector{}, newExponentRangeError("scale", s, bounds)
	}

	out := Vector{comps: append([]int8(nil), v.comps...)}
	out.comps[0] = int8(s)

	return out, nil
}

// key returns the intern-table key: the raw component bytes.
func (v Vector) key() string {
	b := make([]byte, len(v.comps))
	for i, c := range v.comps {
		b[i] = byte(c)
	}

	return string(b)
}

// String renders the vector as ⟨scale d1 ... dk⟩.
func (v Vector) String() string {
	if len(v.comps) == 0 {
		return "⟨⟩"
	}

	parts := make([]string, len(v.comps))
	for i, c := range v.comps {
		parts[i] = fmt.Sprintf("%d", c)
	}

	return "⟨" + strings.Join(parts, " ") + "⟩"
}

func componentName(slot int, names []string) string {
	if slot == 0 {
		return "scale"
	}
	if slot-1 < len(names) {
		return names[slot-1]
	}

	return fmt.Sprintf("dim%d", slot-1)
}
