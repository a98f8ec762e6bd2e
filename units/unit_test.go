package units_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lone-faerie/uomgrade/units"
)

func TestParse(t *testing.T) {
	var tests = []struct {
		in   string
		want units.Unit
	}{
		{"kelvin", units.Kelvin},
		{"CELSIUS", units.Celsius},
		{"Fahrenheit", units.Fahrenheit},
		{"rAnKiNe", units.Rankine},
		{"liters", units.Liters},
		{"tablespoons", units.Tablespoons},
		{"cubic-inches", units.CubicInches},
		{"CUBICINCHES", units.CubicInches},
		{"cups", units.Cups},
		{"cubic-feet", units.CubicFeet},
		{"cubicfeet", units.CubicFeet},
		{"gallons", units.Gallons},
	}
	for _, tt := range tests {
		got, err := units.Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseCaseInsensitive(t *testing.T) {
	for _, u := range units.All() {
		lower, err := units.Parse(u.String())
		require.NoError(t, err)
		assert.Equal(t, u, lower)
	}
	assert.Equal(t, units.MustParse("celsius"), units.MustParse("CELSIUS"))
	assert.Equal(t, units.MustParse("cubic-inches"), units.MustParse("CUBICINCHES"))
}

func TestParseError(t *testing.T) {
	for _, in := range []string{"", "bogus", "Kelvins", "cubic inches", "cubic_feet", " kelvin", "kelvın", "celſius"} {
		_, err := units.Parse(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, units.ErrUnknownUnit), in)

		var perr *units.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, in, perr.Input)
	}
}

func TestParseErrorKeepsInput(t *testing.T) {
	_, err := units.Parse("BoGuS")
	assert.EqualError(t, err, `unknown unit "BoGuS"`)
}

func TestFamily(t *testing.T) {
	assert.Equal(t, []units.Unit{units.Kelvin, units.Celsius, units.Fahrenheit, units.Rankine}, units.Temperature.Units())
	assert.Equal(t, []units.Unit{units.Liters, units.Tablespoons, units.CubicInches, units.Cups, units.CubicFeet, units.Gallons}, units.Volume.Units())
	assert.Len(t, units.All(), 10)
	assert.Equal(t, units.NoFamily, units.Unit(0).Family())
	assert.Equal(t, units.NoFamily, units.Unit(42).Family())
	assert.False(t, units.Unit(0).Valid())
}

func TestUnitText(t *testing.T) {
	for _, u := range units.All() {
		b, err := u.MarshalText()
		require.NoError(t, err)

		var got units.Unit
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, u, got)
	}
	_, err := units.Unit(0).MarshalText()
	assert.EqualError(t, err, "invalid unit 0")
	assert.False(t, errors.Is(err, units.ErrUnknownUnit))
	_, err = units.Unit(42).MarshalText()
	assert.EqualError(t, err, "invalid unit 42")
}
