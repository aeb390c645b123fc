// Package registry holds the named catalog the CLI resolves units
// from: unit names and symbols mapped to interned tags, plus the
// prefix table used to resolve prefixed symbols like "mm" or "kW".
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/conneroisu/unitful/unit"
)

// UnitInfo holds metadata about a registered unit.
type UnitInfo struct {
	Name        string
	Symbol      string
	Tag         *unit.Tag
	Description string
	System      string
}

// PrefixInfo describes one decimal prefix.
type PrefixInfo struct {
	Name     string
	Symbol   string
	Exponent int8
}

// UnitRegistry manages all registered units and prefixes.
type UnitRegistry struct {
	mu       sync.RWMutex
	byName   map[string]*UnitInfo
	bySymbol map[string]*UnitInfo
	prefixes []PrefixInfo
}

// NewUnitRegistry creates an empty unit registry.
func NewUnitRegistry() *UnitRegistry {
	return &UnitRegistry{
		byName:   make(map[string]*UnitInfo),
		bySymbol: make(map[string]*UnitInfo),
	}
}

// Register adds a unit to the registry. Names and symbols must be
// unique; a collision is a catalog bug and is reported, not resolved.
func (r *UnitRegistry) Register(info *UnitInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[info.Name]; exists {
		return fmt.Errorf("unit name already registered: %s", info.Name)
	}
	if _, exists := r.bySymbol[info.Symbol]; exists {
		return fmt.Errorf("unit symbol already registered: %s", info.Symbol)
	}

	r.byName[info.Name] = info
	r.bySymbol[info.Symbol] = info

	return nil
}

// RegisterPrefix adds a decimal prefix usable in Resolve. Prefixes
// are kept sorted longest-symbol-first so "da" wins over "d" when
// both match.
func (r *UnitRegistry) RegisterPrefix(p PrefixInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prefixes = append(r.prefixes, p)
	sort.SliceStable(r.prefixes, func(i, j int) bool {
		return len(r.prefixes[i].Symbol) > len(r.prefixes[j].Symbol)
	})
}

// Get retrieves a unit by name or symbol.
func (r *UnitRegistry) Get(nameOrSymbol string) (*UnitInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if info, ok := r.byName[nameOrSymbol]; ok {
		return info, true
	}
	info, ok := r.bySymbol[nameOrSymbol]

	return info, ok
}

// GetAll returns all registered units sorted by name.
func (r *UnitRegistry) GetAll() []*UnitInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*UnitInfo, 0, len(r.byName))
	for _, info := range r.byName {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Prefixes returns the registered prefixes, longest symbol first.
func (r *UnitRegistry) Prefixes() []PrefixInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]PrefixInfo(nil), r.prefixes...)
}

// Count returns the number of registered units.
func (r *UnitRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byName)
}

// Resolve maps a name or symbol to a tag. An exact match wins; failing
// that, a registered prefix symbol followed by a registered unit
// symbol resolves to the prefixed tag ("mm" -> milli + meter). This is
// table lookup, not expression parsing: compound spellings like "m/s"
// stay unsupported.
func (r *UnitRegistry) Resolve(symbol string) (*unit.Tag, error) {
	if info, ok := r.Get(symbol); ok {
		return info.Tag, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.prefixes {
		rest, ok := strings.CutPrefix(symbol, p.Symbol)
		if !ok || rest == "" {
			continue
		}
		info, ok := r.bySymbol[rest]
		if !ok {
			continue
		}

		tag, err := info.Tag.TenTo(p.Exponent)
		if err != nil {
			return nil, fmt.Errorf("resolving %q: %w", symbol, err)
		}

		return tag, nil
	}

	return nil, fmt.Errorf("unknown unit: %q", symbol)
}
