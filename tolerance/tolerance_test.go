package tolerance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lone-faerie/uomgrade/tolerance"
)

func TestClose(t *testing.T) {
	var tests = []struct {
		name    string
		a, b    float64
		profile tolerance.Profile
		want    bool
	}{
		{"equal", 343.15, 343.15, tolerance.Single, true},
		{"within epsilon", 21.111111, 21.11, tolerance.Single, true},
		{"at epsilon", 1.0, 1.005, tolerance.Profile{Epsilon: 0.0050000001}, true},
		{"outside epsilon", 21.12, 21.11, tolerance.Single, false},
		{"round trip within", 2.49904625, 2.5, tolerance.RoundTrip, true},
		{"round trip within single", 2.49904625, 2.5, tolerance.Single, true},
		{"round trip outside", 2.35, 2.5, tolerance.RoundTrip, false},
		{"incorrect", 343.15, 999, tolerance.Single, false},
		{"zero signs", 0, math.Copysign(0, -1), tolerance.Profile{}, true},
		{"infinity", math.Inf(1), math.Inf(1), tolerance.Single, true},
		{"opposite infinity", math.Inf(1), math.Inf(-1), tolerance.RoundTrip, false},
		{"nan", math.NaN(), math.NaN(), tolerance.RoundTrip, false},
		{"nan and number", math.NaN(), 1, tolerance.RoundTrip, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tolerance.Close(tt.a, tt.b, tt.profile))
			assert.Equal(t, tt.want, tolerance.Close(tt.b, tt.a, tt.profile), "not symmetric")
		})
	}
}

func TestCloseULPs(t *testing.T) {
	p := tolerance.Profile{ULPs: 2}
	big := 1e300
	next := math.Nextafter(big, math.Inf(1))
	next2 := math.Nextafter(next, math.Inf(1))
	next3 := math.Nextafter(next2, math.Inf(1))

	assert.True(t, p.Close(big, next))
	assert.True(t, p.Close(big, next2))
	assert.False(t, p.Close(big, next3))
	assert.True(t, tolerance.Single.Close(big, next2))
}

func TestULPs(t *testing.T) {
	assert.Equal(t, int64(0), tolerance.ULPs(1, 1))
	assert.Equal(t, int64(1), tolerance.ULPs(1, math.Nextafter(1, 2)))
	assert.Equal(t, int64(1), tolerance.ULPs(math.Nextafter(1, 2), 1))
	assert.Equal(t, int64(math.MaxInt64), tolerance.ULPs(0, math.Copysign(0, -1)))
	assert.Greater(t, tolerance.ULPs(1, -1), int64(1<<60))
}

func TestDecimal(t *testing.T) {
	assert.True(t, tolerance.Decimal(21.1111, 21.11, 2))
	assert.True(t, tolerance.Decimal(294.26111, 294.26, 2))
	assert.True(t, tolerance.Decimal(529.67, 529.67, 3))
	assert.False(t, tolerance.Decimal(21.1111, 21.12, 2))
	assert.True(t, tolerance.Decimal(21.1111, 21.12, 1))
}

func TestProfileString(t *testing.T) {
	assert.Equal(t, "epsilon=0.005 ulps=2", tolerance.Single.String())
	assert.Equal(t, "epsilon=0.1 ulps=2", tolerance.RoundTrip.String())
}
