package si

import "github.com/conneroisu/unitful/unit"

// Prefix combinators: each is Mul(U, TenTo(n)) for the prefix's
// exponent. They panic if the scale would leave [-30, 30], e.g.
// Milli(Quecto(Meter)); a static catalog should never build that.

func Quecto(t *unit.Tag) *unit.Tag { return prefixed(t, -30) }
func Ronto(t *unit.Tag) *unit.Tag  { return prefixed(t, -27) }
func Yocto(t *unit.Tag) *unit.Tag  { return prefixed(t, -24) }
func Zepto(t *unit.Tag) *unit.Tag  { return prefixed(t, -21) }
func Atto(t *unit.Tag) *unit.Tag   { return prefixed(t, -18) }
func Femto(t *unit.Tag) *unit.Tag  { return prefixed(t, -15) }
func Pico(t *unit.Tag) *unit.Tag   { return prefixed(t, -12) }
func Nano(t *unit.Tag) *unit.Tag   { return prefixed(t, -9) }
func Micro(t *unit.Tag) *unit.Tag  { return prefixed(t, -6) }
func Milli(t *unit.Tag) *unit.Tag  { return prefixed(t, -3) }
func Centi(t *unit.Tag) *unit.Tag  { return prefixed(t, -2) }
func Deci(t *unit.Tag) *unit.Tag   { return prefixed(t, -1) }
func Deka(t *unit.Tag) *unit.Tag   { return prefixed(t, 1) }
func Hecto(t *unit.Tag) *unit.Tag  { return prefixed(t, 2) }
func Kilo(t *unit.Tag) *unit.Tag   { return prefixed(t, 3) }
func Mega(t *unit.Tag) *unit.Tag   { return prefixed(t, 6) }
func Giga(t *unit.Tag) *unit.Tag   { return prefixed(t, 9) }
func Tera(t *unit.Tag) *unit.Tag   { return prefixed(t, 12) }
func Peta(t *unit.Tag) *unit.Tag   { return prefixed(t, 15) }
func Exa(t *unit.Tag) *unit.Tag    { return prefixed(t, 18) }
func Zetta(t *unit.Tag) *unit.Tag  { return prefixed(t, 21) }
func Yotta(t *unit.Tag) *unit.Tag  { return prefixed(t, 24) }
func Ronna(t *unit.Tag) *unit.Tag  { return prefixed(t, 27) }
func Quetta(t *unit.Tag) *unit.Tag { return prefixed(t, 30) }

func prefixed(t *unit.Tag, n int8) *unit.Tag {
	return unit.MustTag(t.TenTo(n))
}
