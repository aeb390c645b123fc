package si

import (
	"github.com/conneroisu/unitful/internal/registry"
	"github.com/conneroisu/unitful/unit"
)

type catalogEntry struct {
	name        string
	symbol      string
	tag         *unit.Tag
	description string
}

var catalog = []catalogEntry{
	{"unitless", "1", Unitless, "dimensionless quantity"},
	{"second", "s", Second, "time"},
	{"meter", "m", Meter, "length"},
	{"kilogram", "kg", Kilogram, "mass"},
	{"ampere", "A", Ampere, "electric current"},
	{"kelvin", "K", Kelvin, "thermodynamic temperature"},
	{"mole", "mol", Mole, "amount of substance"},
	{"candela", "cd", Candela, "luminous intensity"},
	{"radian", "rad", Radian, "plane angle"},
	{"hertz", "Hz", Hertz, "frequency"},
	{"newton", "N", Newton, "force"},
	{"pascal", "Pa", Pascal, "pressure"},
	{"joule", "J", Joule, "energy"},
	{"watt", "W", Watt, "power"},
	{"coulomb", "C", Coulomb, "electric charge"},
	{"volt", "V", Volt, "electric potential"},
	{"farad", "F", Farad, "capacitance"},
	{"ohm", "Ohm", Ohm, "electric resistance"},
	{"siemens", "S", Siemens, "electric conductance"},
	{"weber", "Wb", Weber, "magnetic flux"},
	{"tesla", "T", Tesla, "magnetic flux density"},
	{"henry", "H", Henry, "inductance"},
	{"gray", "Gy", Gray, "absorbed dose"},
}

var prefixes = []registry.PrefixInfo{
	{Name: "quecto", Symbol: "q", Exponent: -30},
	{Name: "ronto", Symbol: "r", Exponent: -27},
	{Name: "yocto", Symbol: "y", Exponent: -24},
	{Name: "zepto", Symbol: "z", Exponent: -21},
	{Name: "atto", Symbol: "a", Exponent: -18},
	{Name: "femto", Symbol: "f", Exponent: -15},
	{Name: "pico", Symbol: "p", Exponent: -12},
	{Name: "nano", Symbol: "n", Exponent: -9},
	{Name: "micro", Symbol: "u", Exponent: -6},
	{Name: "milli", Symbol: "m", Exponent: -3},
	{Name: "centi", Symbol: "c", Exponent: -2},
	{Name: "deci", Symbol: "d", Exponent: -1},
	{Name: "deka", Symbol: "da", Exponent: 1},
	{Name: "hecto", Symbol: "h", Exponent: 2},
	{Name: "kilo", Symbol: "k", Exponent: 3},
	{Name: "mega", Symbol: "M", Exponent: 6},
	{Name: "giga", Symbol: "G", Exponent: 9},
	{Name: "tera", Symbol: "T", Exponent: 12},
	{Name: "peta", Symbol: "P", Exponent: 15},
	{Name: "exa", Symbol: "E", Exponent: 18},
	{Name: "zetta", Symbol: "Z", Exponent: 21},
	{Name: "yotta", Symbol: "Y", Exponent: 24},
	{Name: "ronna", Symbol: "R", Exponent: 27},
	{Name: "quetta", Symbol: "Q", Exponent: 30},
}

// Register installs the SI catalog and prefix table into a registry.
func Register(reg *registry.UnitRegistry) error {
	for _, e := range catalog {
		err := reg.Register(&registry.UnitInfo{
			Name:        e.name,
			Symbol:      e.symbol,
			Tag:         e.tag,
			Description: e.description,
			System:      System.Name(),
		})
		if err != nil {
			return err
		}
	}

	for _, p := range prefixes {
		reg.RegisterPrefix(p)
	}

	return nil
}
