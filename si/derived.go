package si

// Derived units, each a combinator expression over the base tags.
var (
	Hertz   = div(Unitless, Second)
	Newton  = mul(Kilogram, div(Meter, mul(Second, Second)))
	Pascal  = div(Newton, mul(Meter, Meter))
	Joule   = mul(Meter, Newton)
	Watt    = div(Joule, Second)
	Coulomb = mul(Second, Ampere)
	Volt    = div(Watt, Ampere)
	Farad   = div(Coulomb, Volt)
	Ohm     = div(Volt, Ampere)
	Siemens = div(Ampere, Volt)
	Weber   = div(Joule, Ampere)
	Tesla   = div(mul(Volt, Second), mul(Meter, Meter))
	Henry   = div(mul(Volt, Second), Ampere)
	Gray    = div(Joule, Kilogram)
)
