package units

const (
	absoluteZero     = 273.15 // 0°C in Kelvin
	freezing         = 32.0   // 0°C in Fahrenheit
	rankineZero      = 459.67 // 0°F in Rankine
	rankineFreezing  = 491.67 // 0°C in Rankine
	rankinePerKelvin = 1.8
)

// The ratios 9/5 and 5/9 are applied as a multiplication followed by a
// division. The explicit float64 conversions prevent the compiler from fusing
// a multiply and add, so results are identical on every architecture.

func kelvinCelsius(n float64) float64    { return n - absoluteZero }
func kelvinFahrenheit(n float64) float64 { return float64((n-absoluteZero)*9/5) + freezing }
func kelvinRankine(n float64) float64    { return n * rankinePerKelvin }

func celsiusKelvin(n float64) float64     { return n + absoluteZero }
func celsiusFahrenheit(n float64) float64 { return float64(n*9/5) + freezing }
func celsiusRankine(n float64) float64    { return float64(n*9/5) + rankineFreezing }

func fahrenheitKelvin(n float64) float64  { return float64((n-freezing)*5/9) + absoluteZero }
func fahrenheitCelsius(n float64) float64 { return (n - freezing) * 5 / 9 }
func fahrenheitRankine(n float64) float64 { return n + rankineZero }

func rankineKelvin(n float64) float64     { return n * 5 / 9 }
func rankineCelsius(n float64) float64    { return float64(n*5/9) - absoluteZero }
func rankineFahrenheit(n float64) float64 { return n - rankineZero }
