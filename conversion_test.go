package qty_test

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/jacoelho/qty"
	"github.com/jacoelho/qty/errors"
)

func TestTo(t *testing.T) {
	tests := []struct {
		input string
		units string
		want  float64
	}{
		{"1 m", "cm", 100},
		{"1 km", "m", 1000},
		{"12 in", "ft", 1},
		{"1 mi", "km", 1.609344},
		{"36 km/h", "m/s", 10},
		{"1 kWh", "J", 3.6e6},
		{"1 atm", "Pa", 101325},
		{"1 KiB", "B", 1024},
		{"8 bit", "byte", 1},
		{"180 deg", "rad", math.Pi},
		{"1 dozen", "each", 12},
		{"1 gross", "each", 144},
		{"1 sqft", "m^2", 0.09290304},
		{"2 m*m", "cm^2", 20000},
	}

	for _, tt := range tests {
		t.Run(tt.input+" to "+tt.units, func(t *testing.T) {
			q, err := qty.MustParse(tt.input).To(tt.units)
			require.NoError(t, err)
			if !scalar.EqualWithinAbsOrRel(q.Scalar(), tt.want, 1e-9, 1e-9) {
				t.Fatalf("To(%q) = %v, want %v", tt.units, q.Scalar(), tt.want)
			}
		})
	}
}

func TestToIncompatible(t *testing.T) {
	_, err := qty.MustParse("1 m").To("kg")
	if !errors.Is(err, errors.ErrIncompatibleUnits) {
		t.Fatalf("To error = %v, want incompatible units", err)
	}

	_, err = qty.MustParse("1 m").To("furlongz")
	if !errors.Is(err, errors.ErrParse) {
		t.Fatalf("To error = %v, want parse error", err)
	}
}

func TestToSameUnitsReturnsReceiver(t *testing.T) {
	q := qty.MustParse("5 km")
	out, err := q.To("km")
	require.NoError(t, err)
	assert.Same(t, q, out)
}

func TestToIsMemoized(t *testing.T) {
	q := qty.MustParse("5 km")
	first, err := q.To("mi")
	require.NoError(t, err)
	second, err := q.To("mi")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestToInverseUnits(t *testing.T) {
	q, err := qty.MustParse("10 m/s").To("s/m")
	require.NoError(t, err)
	assert.InDelta(t, 0.1, q.Scalar(), 1e-12)
	assert.Equal(t, "s/m", q.Units())

	hz, err := qty.MustParse("2 s").To("Hz")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, hz.Scalar(), 1e-12)
}

func TestToUnitsOf(t *testing.T) {
	target := qty.MustParse("3 ft")
	q, err := qty.MustParse("1 yd").ToUnitsOf(target)
	require.NoError(t, err)
	assert.InDelta(t, 3, q.Scalar(), 1e-12)
	assert.Equal(t, "ft", q.Units())

	// pt is both a point and a pint alias; units are matched by key.
	length, err := qty.FromTerms(1, []string{"<point>"}, nil)
	require.NoError(t, err)
	volume, err := qty.FromTerms(1, []string{"<pint>"}, nil)
	require.NoError(t, err)
	_, err = length.ToUnitsOf(volume)
	assert.True(t, errors.Is(err, errors.ErrIncompatibleUnits))
}

func TestToBase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 km", "1000 m"},
		{"1 N", "1 kg*m/s2"},
		{"2 Hz", "2 1/s"},
		{"1 m", "1 m"},
		{"0 tempC", "273.15 tempK"},
		{"10 degC", "10 degK"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			q, err := qty.MustParse(tt.input).ToBase()
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.String())
		})
	}
}

func TestToFloat(t *testing.T) {
	v, err := qty.MustParse("5").ToFloat()
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	ratio, err := qty.MustParse("1 m").Div(qty.MustParse("50 cm"))
	require.NoError(t, err)
	v, err = ratio.ToFloat()
	require.NoError(t, err)
	assert.InDelta(t, 2, v, 1e-12)

	_, err = qty.MustParse("5 m").ToFloat()
	assert.True(t, errors.Is(err, errors.ErrNotUnitless))
}

func TestToPrec(t *testing.T) {
	tests := []struct {
		input string
		prec  string
		want  string
	}{
		{"5.17 ft", "0.05 ft", "5.15 ft"},
		{"6.3782 m", "cm", "6.38 m"},
		{"6.3782 m", "dm", "6.4 m"},
		{"6.3782 m", "m", "6 m"},
		{"5.5", "1", "6"},
	}

	for _, tt := range tests {
		t.Run(tt.input+" to "+tt.prec, func(t *testing.T) {
			q, err := qty.MustParse(tt.input).ToPrec(qty.MustParse(tt.prec))
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.String())
		})
	}
}

func TestToPrecErrors(t *testing.T) {
	_, err := qty.MustParse("5 m").ToPrec(qty.MustParse("1 kg"))
	assert.True(t, errors.Is(err, errors.ErrIncompatibleUnits))

	_, err = qty.MustParse("5").ToPrec(qty.MustParse("1 m"))
	assert.True(t, errors.Is(err, errors.ErrIncompatibleUnits))

	_, err = qty.MustParse("5 m").ToPrec(qty.MustParse("0 m"))
	assert.True(t, errors.Is(err, errors.ErrDivideByZero))
}

func TestConversionRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"m", "ft"},
		{"kg", "lb"},
		{"km/h", "mph"},
		{"J", "BTU"},
		{"tempC", "tempF"},
		{"degC", "degF"},
	}
	for _, pair := range pairs {
		f := func(v int16) bool {
			q, err := qty.New(float64(v), pair[0])
			if err != nil {
				return errors.Is(err, errors.ErrTemperature)
			}
			there, err := q.To(pair[1])
			if err != nil {
				return false
			}
			back, err := there.To(pair[0])
			if err != nil {
				return false
			}
			return scalar.EqualWithinAbsOrRel(back.Scalar(), q.Scalar(), 1e-6, 1e-9)
		}
		if err := quick.Check(f, nil); err != nil {
			t.Fatalf("%s <-> %s: %v", pair[0], pair[1], err)
		}
	}
}
