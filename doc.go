// Package uomgrade grades answers to unit of measure conversion problems.
//
// A problem is given as four strings: the input unit, the target unit, a
// control value in the input unit and the answer in the target unit. The
// control value is converted to the target unit with [units.Convert] and
// compared to the answer using [tolerance.Single]. The result is one of
// [Correct], [Incorrect] or [Invalid]:
//
//	uomgrade.Evaluate("celsius", "kelvin", "70", "343.15") // Correct
//	uomgrade.Evaluate("celsius", "kelvin", "70", "999")    // Incorrect
//	uomgrade.Evaluate("bogus", "kelvin", "70", "343.15")   // Invalid
//
// The supported units are Kelvin, Celsius, Fahrenheit and Rankine for
// temperature, and Liters, Tablespoons, Cubic-Inches, Cups, Cubic-Feet and
// Gallons for volume. Conversions between the two families are undefined
// and grade as [Invalid].
//
// Full documentation is available at:
// https://pkg.go.dev/github.com/lone-faerie/uomgrade
package uomgrade
