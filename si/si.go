// Package si instantiates the unit generator for the International
// System of Units: eight physical base dimensions plus the all-zero
// unitless tag, with exponents bounded to [-30, 30] (the quecto to
// quetta prefix range).
//
// Every name exported here is a combinator expression over the base
// tags; the package hand-authors no vectors.
package si

import (
	"github.com/conneroisu/unitful/unit"
)

// System is the SI instantiation of the generator.
var System = unit.MustSystem(unit.NewSystem(
	"SI",
	[]string{"s", "m", "kg", "A", "K", "mol", "cd", "rad"},
	-30, 30,
))

// Base tags. Unitless carries the all-zero vector, so any tag divided
// by itself collapses to it.
var (
	Unitless = System.Unitless()
	Second   = base("s")
	Meter    = base("m")
	Kilogram = base("kg")
	Ampere   = base("A")
	Kelvin   = base("K")
	Mole     = base("mol")
	Candela  = base("cd")
	Radian   = base("rad")
)

func base(dimension string) *unit.Tag {
	return unit.MustTag(System.Base(dimension))
}

// mul and div are catalog-construction shorthands. The catalog is
// static, so a range failure here is a programming error and panics
// at process start.
func mul(a, b *unit.Tag) *unit.Tag {
	return unit.MustTag(a.Mul(b))
}

func div(a, b *unit.Tag) *unit.Tag {
	return unit.MustTag(a.Div(b))
}
