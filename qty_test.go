package qty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho/qty"
	"github.com/jacoelho/qty/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input       string
		scalar      float64
		numerator   []string
		denominator []string
		units       string
	}{
		{"1 m", 1, []string{"<meter>"}, []string{"<1>"}, "m"},
		{"2.5 kg*m/s^2", 2.5, []string{"<kilogram>", "<meter>"}, []string{"<second>", "<second>"}, "kg*m/s2"},
		{"m", 1, []string{"<meter>"}, []string{"<1>"}, "m"},
		{"10 mm", 10, []string{"<milli>", "<meter>"}, []string{"<1>"}, "mm"},
		{"-3e2 cm", -300, []string{"<centi>", "<meter>"}, []string{"<1>"}, "cm"},
		{"42", 42, []string{"<1>"}, []string{"<1>"}, ""},
		{"3 1/m", 3, []string{"<1>"}, []string{"<meter>"}, "1/m"},
		{"1 m^-1", 1, []string{"<1>"}, []string{"<meter>"}, "1/m"},
		{"1 kg m m", 1, []string{"<kilogram>", "<meter>", "<meter>"}, []string{"<1>"}, "kg*m2"},
		{"4 m**3", 4, []string{"<meter>", "<meter>", "<meter>"}, []string{"<1>"}, "m3"},
		{"37 tempC", 37, []string{"<temp-C>"}, []string{"<1>"}, "tempC"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			q, err := qty.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.scalar, q.Scalar())
			assert.Equal(t, tt.numerator, q.Numerator())
			assert.Equal(t, tt.denominator, q.Denominator())
			assert.Equal(t, tt.units, q.Units())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		code  errors.ErrorCode
	}{
		{"", errors.ErrParse},
		{"   ", errors.ErrParse},
		{"1 furlongz", errors.ErrParse},
		{"1 m/", errors.ErrParse},
		{"-300 tempC", errors.ErrTemperature},
		{"1 tempC*tempC", errors.ErrTemperature},
		{"1 m/tempC", errors.ErrTemperature},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := qty.Parse(tt.input)
			if !errors.Is(err, tt.code) {
				t.Fatalf("Parse(%q) error = %v, want code %s", tt.input, err, tt.code)
			}
		})
	}
}

func TestTryParse(t *testing.T) {
	q, err := qty.TryParse("1 bogus")
	require.NoError(t, err)
	assert.Nil(t, q)

	q, err = qty.TryParse("-500 tempF")
	assert.Nil(t, q)
	assert.True(t, errors.Is(err, errors.ErrTemperature))

	q, err = qty.TryParse("5 m")
	require.NoError(t, err)
	assert.Equal(t, "5 m", q.String())
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { qty.MustParse("1 bogus") })
	assert.NotPanics(t, func() { qty.MustParse("1 m") })
}

func TestNewIgnoresScalarInUnits(t *testing.T) {
	q, err := qty.New(7, "10 km/h")
	require.NoError(t, err)
	assert.Equal(t, 7.0, q.Scalar())
	assert.Equal(t, "km/h", q.Units())
}

func TestFromFloat(t *testing.T) {
	q := qty.FromFloat(2.5)
	assert.True(t, q.IsUnitless())
	assert.True(t, q.IsBase())
	assert.Equal(t, "2.5", q.String())
}

func TestFromTerms(t *testing.T) {
	q, err := qty.FromTerms(3, []string{"<kilo>", "<meter>"}, []string{"<hour>"})
	require.NoError(t, err)
	assert.Equal(t, "3 km/h", q.String())

	_, err = qty.FromTerms(1, []string{"<kilo>"}, nil)
	assert.True(t, errors.Is(err, errors.ErrParse))

	_, err = qty.FromTerms(1, []string{"<furlongz>"}, nil)
	assert.True(t, errors.Is(err, errors.ErrParse))
}

func TestAccessorsReturnCopies(t *testing.T) {
	q := qty.MustParse("1 kg*m")
	num := q.Numerator()
	num[0] = "<second>"
	assert.Equal(t, []string{"<kilogram>", "<meter>"}, q.Numerator())
}

func TestEquivalentSpellings(t *testing.T) {
	for _, input := range []string{"1 kg*m/s^2", "1 kg m/s2", "1 kg*m/s**2", "1 N"} {
		q := qty.MustParse(input)
		assert.Equal(t, qty.MustParse("1 N").Signature(), q.Signature(), input)
		assert.InDelta(t, 1.0, q.BaseScalar(), 1e-12, input)
	}
}

func TestAliasRoundTrip(t *testing.T) {
	names, err := qty.UnitNames("")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	for _, name := range names {
		unit, err := qty.FromTerms(1, []string{"<" + name + ">"}, nil)
		require.NoError(t, err, name)
		aliases, err := qty.Aliases(unit.Units())
		require.NoError(t, err, name)

		for _, alias := range aliases {
			q, err := qty.Parse("1 " + alias)
			require.NoError(t, err, "alias %q of %s", alias, name)
			require.Len(t, q.Numerator(), 1, "alias %q of %s", alias, name)

			back, err := qty.Aliases(alias)
			require.NoError(t, err, alias)
			assert.Contains(t, back, alias)
		}
	}
}
