package unit

import (
	"fmt"
	"sync"
)

// System is a generated unit system: a fixed, ordered set of base
// dimensions, an exponent range, and the intern table all of the
// system's tags live in. Base tags carry a single 1 in their own
// dimension slot; every other tag is reached through the Mul/Div/
// TenTo combinators.
type System struct {
	name   string
	dims   []string
	bounds Bounds

	mu       sync.RWMutex
	interned map[string]*Tag

	unitless *Tag
	base     map[string]*Tag
}

// NewSystem generates a unit system from an ordered list of base
// dimension names and an inclusive exponent range. Names must be
// non-empty and unique; the range must contain zero and one.
func NewSystem(name string, dimensions []string, low, high int8) (*System, error) {
	if name == "" {
		return nil, newSystemError(ErrCodeInvalidSystem, "system name must not be empty")
	}
	if len(dimensions) == 0 {
		return nil, newSystemError(ErrCodeInvalidSystem, "system needs at least one base dimension")
	}
	if low > 0 || high < 1 {
		return nil, newSystemError(ErrCodeInvalidSystem,
			fmt.Sprintf("exponent range [%d, %d] must contain 0 and 1", low, high))
	}

	seen := make(map[string]struct{}, len(dimensions))
	for _, d := range dimensions {
		if d == "" {
			return nil, newSystemError(ErrCodeInvalidSystem, "base dimension name must not be empty")
		}
		if _, dup := seen[d]; dup {
			return nil, newSystemError(ErrCodeInvalidSystem, "duplicate base dimension: "+d)
		}
		seen[d] = struct{}{}
	}

	s := &System{
		name:     name,
		dims:     append([]string(nil), dimensions...),
		bounds:   Bounds{Low: low, High: high},
		interned: make(map[string]*Tag),
		base:     make(map[string]*Tag, len(dimensions)),
	}

	s.unitless = s.intern(newVector(len(dimensions)))
	for i, d := range dimensions {
		vec := newVector(len(dimensions))
		vec.comps[i+1] = 1
		s.base[d] = s.intern(vec)
	}

	return s, nil
}

// MustSystem unwraps a system construction, panicking on error.
func MustSystem(s *System, err error) *System {
	if err != nil {
		panic(err)
	}

	return s
}

// Name returns the system name.
func (s *System) Name() string {
	return s.name
}

// Dimensions returns the ordered base dimension names.
func (s *System) Dimensions() []string {
	return append([]string(nil), s.dims...)
}

// Bounds returns the system's exponent range.
func (s *System) Bounds() Bounds {
	return s.bounds
}

// Unitless returns the all-zero tag. Dividing any tag by itself
// resolves to this tag.
func (s *System) Unitless() *Tag {
	return s.unitless
}

// Base returns the tag for one named base dimension.
func (s *System) Base(dimension string) (*Tag, error) {
	t, ok := s.base[dimension]
	if !ok {
		return nil, newSystemError(ErrCodeUnknownDimension,
			fmt.Sprintf("system %q has no base dimension %q", s.name, dimension))
	}

	return t, nil
}

// TenTo returns the pure decimal multiplier tag 10^n: all physical
// dimensions zero, scale n.
func (s *System) TenTo(n int8) (*Tag, error) {
	return s.unitless.TenTo(n)
}

// Mul composes two tags; equivalent to a.Mul(b).
func (s *System) Mul(a, b *Tag) (*Tag, error) {
	return a.Mul(b)
}

// Div composes two tags; equivalent to a.Div(b).
func (s *System) Div(a, b *Tag) (*Tag, error) {
	return a.Div(b)
}

// intern returns the canonical tag for vec, creating it on first use.
// Callers must only pass vectors already validated against bounds.
func (s *System) intern(vec Vector) *Tag {
	key := vec.key()

	s.mu.RLock()
	t, ok := s.interned[key]
	s.mu.RUnlock()
	if ok {
		return t
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.interned[key]; ok {
		return t
	}

	t = &Tag{sys: s, vec: vec}
	s.interned[key] = t

	return t
}
