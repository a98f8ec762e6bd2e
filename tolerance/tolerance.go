// Package tolerance decides whether two floating-point values are equal
// enough to be considered the same answer.
package tolerance

import (
	"fmt"
	"math"
)

// A Profile is the margin allowed between two values. Values are close if
// their absolute difference is within Epsilon, or if they are no more than
// ULPs representable float64 values apart.
type Profile struct {
	Epsilon float64 `yaml:"epsilon" json:"epsilon"`
	ULPs    int64   `yaml:"ulps" json:"ulps"`
}

var (
	// Single is the profile for comparing the result of one conversion.
	Single = Profile{Epsilon: 0.005, ULPs: 2}
	// RoundTrip is the profile for comparing a value converted to another
	// unit and back. Two lossy conversions compound their error.
	RoundTrip = Profile{Epsilon: 0.1, ULPs: 2}
)

func (p Profile) String() string {
	return fmt.Sprintf("epsilon=%g ulps=%d", p.Epsilon, p.ULPs)
}

// Close reports whether a and b are within p of each other.
// NaN is not close to any value, including itself.
func (p Profile) Close(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if a == b {
		return true
	}
	if math.Abs(a-b) <= p.Epsilon {
		return true
	}
	return ULPs(a, b) <= p.ULPs
}

// Close reports whether a and b are within p of each other.
func Close(a, b float64, p Profile) bool {
	return p.Close(a, b)
}

// ULPs returns the number of representable float64 values between a and b.
// Values of opposite sign are always far apart, so ULPs(0, -0) saturates at
// [math.MaxInt64] even though 0 == -0.
func ULPs(a, b float64) int64 {
	d := int64(math.Float64bits(a)) - int64(math.Float64bits(b))
	if d < 0 {
		if d == math.MinInt64 {
			return math.MaxInt64
		}
		d = -d
	}
	return d
}

// Decimal reports whether a and b are equal once truncated to the given
// number of decimal places.
func Decimal(a, b float64, places int) bool {
	factor := math.Pow(10, float64(places))
	return math.Trunc(a*factor) == math.Trunc(b*factor)
}
