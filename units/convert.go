package units

// A Func converts a value from one unit to another.
type Func func(float64) float64

func identity(n float64) float64 { return n }

var table = newTable()

func newTable() *[numUnits][numUnits]Func {
	t := &[numUnits][numUnits]Func{
		Kelvin: {
			Celsius:    kelvinCelsius,
			Fahrenheit: kelvinFahrenheit,
			Rankine:    kelvinRankine,
		},
		Celsius: {
			Kelvin:     celsiusKelvin,
			Fahrenheit: celsiusFahrenheit,
			Rankine:    celsiusRankine,
		},
		Fahrenheit: {
			Kelvin:  fahrenheitKelvin,
			Celsius: fahrenheitCelsius,
			Rankine: fahrenheitRankine,
		},
		Rankine: {
			Kelvin:     rankineKelvin,
			Celsius:    rankineCelsius,
			Fahrenheit: rankineFahrenheit,
		},
	}
	for _, from := range Volume.Units() {
		for _, to := range Volume.Units() {
			if from != to {
				t[from][to] = scale(volumeFactors[from][to])
			}
		}
	}
	return t
}

// Lookup returns the function converting from one unit to another. The
// identity function is returned when from == to. Lookup returns false if
// either unit is invalid or the units belong to different families.
func Lookup(from, to Unit) (Func, bool) {
	if !from.Valid() || !to.Valid() {
		return nil, false
	}
	if from == to {
		return identity, true
	}
	f := table[from][to]
	return f, f != nil
}

// Convert converts v from one unit to another. If from == to, v is returned
// unchanged. Convert returns false if the conversion is undefined, which is
// the case for units of different families.
func Convert(from, to Unit, v float64) (float64, bool) {
	f, ok := Lookup(from, to)
	if !ok {
		return 0, false
	}
	return f(v), true
}

// Check returns a [*ConversionError] if there is no conversion between from
// and to, or nil if there is one.
func Check(from, to Unit) error {
	if _, ok := Lookup(from, to); !ok {
		return &ConversionError{From: from, To: to}
	}
	return nil
}
