// Package units provides the closed set of supported units of measure and
// the conversions between them.
//
// Units are partitioned into two families, [Temperature] and [Volume].
// A conversion is defined only between units of the same family, with the
// exception of the identity conversion which is always defined.
package units

import "fmt"

// A Family is a set of units that may be converted between each other.
type Family uint8

const (
	NoFamily Family = iota
	Temperature
	Volume
)

func (f Family) String() string {
	switch f {
	case Temperature:
		return "temperature"
	case Volume:
		return "volume"
	}
	return "none"
}

// Units returns the units of f in canonical order.
func (f Family) Units() []Unit {
	var uu []Unit
	for _, u := range All() {
		if u.Family() == f {
			uu = append(uu, u)
		}
	}
	return uu
}

// A Unit is one of the ten supported units of measure.
// The zero value is not a valid Unit.
type Unit uint8

const (
	Kelvin Unit = iota + 1
	Celsius
	Fahrenheit
	Rankine
	Liters
	Tablespoons
	CubicInches
	Cups
	CubicFeet
	Gallons

	numUnits = int(Gallons) + 1
)

var names = [numUnits]string{
	Kelvin:      "KELVIN",
	Celsius:     "CELSIUS",
	Fahrenheit:  "FAHRENHEIT",
	Rankine:     "RANKINE",
	Liters:      "LITERS",
	Tablespoons: "TABLESPOONS",
	CubicInches: "CUBIC-INCHES",
	Cups:        "CUPS",
	CubicFeet:   "CUBIC-FEET",
	Gallons:     "GALLONS",
}

// All returns every valid Unit, temperatures first.
func All() []Unit {
	uu := make([]Unit, 0, numUnits-1)
	for u := Kelvin; u <= Gallons; u++ {
		uu = append(uu, u)
	}
	return uu
}

// Valid reports whether u is one of the supported units.
func (u Unit) Valid() bool {
	return u >= Kelvin && u <= Gallons
}

// Family returns the family u belongs to, or [NoFamily] if u is not valid.
func (u Unit) Family() Family {
	switch {
	case u >= Kelvin && u <= Rankine:
		return Temperature
	case u >= Liters && u <= Gallons:
		return Volume
	}
	return NoFamily
}

// String returns the canonical upper-case name of u, i.e. "CUBIC-FEET".
func (u Unit) String() string {
	if !u.Valid() {
		return "UNKNOWN"
	}
	return names[u]
}

// MarshalText implements [encoding.TextMarshaler].
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("invalid unit %d", uint8(u))
	}
	return []byte(names[u]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [Parse].
func (u *Unit) UnmarshalText(b []byte) (err error) {
	*u, err = Parse(string(b))
	return
}
