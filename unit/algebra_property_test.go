//go:build property

package unit

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// buildTag reaches an arbitrary in-range vector purely through the
// combinators: repeated Mul/Div by base tags, then a TenTo offset.
func buildTag(sys *System, scale int8, exps []int8) *Tag {
	tag := sys.Unitless()
	for i, e := range exps {
		base := MustTag(sys.Base(sys.Dimensions()[i]))
		for j := e; j > 0; j-- {
			tag = MustTag(tag.Mul(base))
		}
		for j := e; j < 0; j++ {
			tag = MustTag(tag.Div(base))
		}
	}

	return MustTag(tag.TenTo(scale))
}

func propSystem() *System {
	return MustSystem(NewSystem("prop", []string{"a", "b", "c"}, -30, 30))
}

func TestVectorAlgebraProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	sys := propSystem()

	smallExp := gen.Int8Range(-5, 5)
	exps := gen.SliceOfN(3, smallExp)

	properties.Property("sub(add(v1,v2), v2) == v1", prop.ForAll(
		func(s1 int8, e1 []int8, s2 int8, e2 []int8) bool {
			v1 := buildTag(sys, s1, e1).Vector()
			v2 := buildTag(sys, s2, e2).Vector()

			sum, err := v1.Add(v2, sys.Bounds(), sys.Dimensions())
			if err != nil {
				return false
			}
			back, err := sum.Sub(v2, sys.Bounds(), sys.Dimensions())
			if err != nil {
				return false
			}

			return back.Equal(v1)
		},
		smallExp, exps, smallExp, exps,
	))

	properties.Property("vector(Mul(A,B)) == add(vector(A), vector(B))", prop.ForAll(
		func(s1 int8, e1 []int8, s2 int8, e2 []int8) bool {
			a := buildTag(sys, s1, e1)
			b := buildTag(sys, s2, e2)

			ab, err := a.Mul(b)
			if err != nil {
				return false
			}
			want, err := a.Vector().Add(b.Vector(), sys.Bounds(), sys.Dimensions())
			if err != nil {
				return false
			}

			return ab.Vector().Equal(want)
		},
		smallExp, exps, smallExp, exps,
	))

	properties.Property("vector(Div(A,B)) == sub(vector(A), vector(B))", prop.ForAll(
		func(s1 int8, e1 []int8, s2 int8, e2 []int8) bool {
			a := buildTag(sys, s1, e1)
			b := buildTag(sys, s2, e2)

			ab, err := a.Div(b)
			if err != nil {
				return false
			}
			want, err := a.Vector().Sub(b.Vector(), sys.Bounds(), sys.Dimensions())
			if err != nil {
				return false
			}

			return ab.Vector().Equal(want)
		},
		smallExp, exps, smallExp, exps,
	))

	properties.Property("Mul(A,B) and Mul(B,A) intern to one tag", prop.ForAll(
		func(s1 int8, e1 []int8, s2 int8, e2 []int8) bool {
			a := buildTag(sys, s1, e1)
			b := buildTag(sys, s2, e2)

			ab, err1 := a.Mul(b)
			ba, err2 := b.Mul(a)
			if err1 != nil || err2 != nil {
				return err1 != nil && err2 != nil
			}

			return ab == ba && ab.Compatible(ba)
		},
		smallExp, exps, smallExp, exps,
	))

	properties.TestingRun(t)
}

func TestConversionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(2468)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	sys := propSystem()

	properties.Property("scale round-trip restores the scalar", prop.ForAll(
		func(value float64, from, to int8) bool {
			src := buildTag(sys, from, []int8{1, 0, 0})
			dst := buildTag(sys, to, []int8{1, 0, 0})

			q := New(value, src)
			there, err := q.Convert(dst)
			if err != nil {
				return false
			}
			back, err := there.Convert(src)
			if err != nil {
				return false
			}

			if value == 0 {
				return back.Value() == 0
			}

			return math.Abs(back.Value()-value) <= math.Abs(value)*1e-12
		},
		gen.Float64Range(-1e6, 1e6), gen.Int8Range(-10, 10), gen.Int8Range(-10, 10),
	))

	properties.Property("TenTo succeeds exactly inside the range", prop.ForAll(
		func(n int8) bool {
			_, err := sys.TenTo(n)
			inRange := n >= -30 && n <= 30
			if inRange {
				return err == nil
			}

			return IsExponentRange(err)
		},
		gen.Int8Range(-40, 40),
	))

	properties.TestingRun(t)
}
