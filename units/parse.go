package units

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownUnit  = errors.New("unknown unit")
	ErrIncompatible = errors.New("incompatible units")
)

// ParseError is returned by [Parse] when the input does not name a unit.
// Input holds the string as it was given, before any case folding.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnknownUnit, e.Input)
}

func (e *ParseError) Unwrap() error {
	return ErrUnknownUnit
}

// ConversionError is returned by [Check] for units of different families.
type ConversionError struct {
	From, To Unit
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: %s (%s) to %s (%s)", ErrIncompatible, e.From, e.From.Family(), e.To, e.To.Family())
}

func (e *ConversionError) Unwrap() error {
	return ErrIncompatible
}

// asciiUpper upper-cases only the ASCII letters of s, so that non-ASCII
// look-alikes such as "ı" or "ſ" never match a unit name.
func asciiUpper(s string) string {
	return strings.Map(func(r rune) rune {
		if 'a' <= r && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, s)
}

// Parse returns the Unit named by s, ignoring ASCII case. The cubic units
// also accept their names without the hyphen, i.e. "cubicfeet".
func Parse(s string) (Unit, error) {
	switch asciiUpper(s) {
	case "KELVIN":
		return Kelvin, nil
	case "CELSIUS":
		return Celsius, nil
	case "FAHRENHEIT":
		return Fahrenheit, nil
	case "RANKINE":
		return Rankine, nil
	case "LITERS":
		return Liters, nil
	case "TABLESPOONS":
		return Tablespoons, nil
	case "CUBIC-INCHES", "CUBICINCHES":
		return CubicInches, nil
	case "CUPS":
		return Cups, nil
	case "CUBIC-FEET", "CUBICFEET":
		return CubicFeet, nil
	case "GALLONS":
		return Gallons, nil
	}
	return 0, &ParseError{Input: s}
}

// MustParse is like [Parse] but panics if s is not a unit.
func MustParse(s string) Unit {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}
