package units

// volumeFactors holds the multiplier for every ordered pair of volume units.
// The factors are fixed table values and are not exact inverses of each
// other, so a round trip only recovers the input approximately.
var volumeFactors = [numUnits][numUnits]float64{
	Liters: {
		Tablespoons: 67.628,
		CubicInches: 61.023,
		Cups:        4.226,
		CubicFeet:   0.0353,
		Gallons:     0.2641,
	},
	Tablespoons: {
		Liters:      0.0147,
		CubicInches: 0.902,
		Cups:        0.062,
		CubicFeet:   0.00052219,
		Gallons:     0.00390625,
	},
	CubicInches: {
		Liters:      0.0163,
		Tablespoons: 1.10823,
		Cups:        0.06926,
		CubicFeet:   0.000578704,
		Gallons:     0.004329,
	},
	Cups: {
		Liters:      0.236588,
		CubicInches: 14.4375,
		Tablespoons: 16.0,
		CubicFeet:   0.00835,
		Gallons:     0.0625,
	},
	CubicFeet: {
		Liters:      28.3168,
		CubicInches: 1728.0,
		Tablespoons: 1915.01,
		Cups:        119.688,
		Gallons:     7.48052,
	},
	Gallons: {
		Liters:      3.785,
		CubicInches: 231.0,
		Tablespoons: 256.0,
		CubicFeet:   0.133,
		Cups:        16.0,
	},
}

// Factor returns the multiplier used to convert from one volume unit to
// another. It returns false if either unit is not a volume or from == to.
func Factor(from, to Unit) (float64, bool) {
	if from == to || from.Family() != Volume || to.Family() != Volume {
		return 0, false
	}
	return volumeFactors[from][to], true
}

func scale(factor float64) Func {
	return func(n float64) float64 { return n * factor }
}
