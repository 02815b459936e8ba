package qty

import (
	"strings"

	"github.com/jacoelho/qty/errors"
	"github.com/jacoelho/qty/internal/units"
)

// Flavor classifies how a quantity takes part in temperature arithmetic.
type Flavor uint8

const (
	// Linear quantities convert by ratio.
	Linear Flavor = iota
	// DegreeTemperature is a temperature difference such as degC.
	DegreeTemperature
	// AbsoluteTemperature is a temperature reading such as tempC.
	AbsoluteTemperature
)

// String returns a stable label for the flavor.
func (f Flavor) String() string {
	switch f {
	case DegreeTemperature:
		return "degree"
	case AbsoluteTemperature:
		return "temperature"
	default:
		return "linear"
	}
}

// degreeOf maps each absolute temperature key to the degree of its scale.
var degreeOf = map[string]string{
	"<temp-K>": "<kelvin>",
	"<temp-C>": "<celsius>",
	"<temp-F>": "<fahrenheit>",
	"<temp-R>": "<rankine>",
}

func isTemperatureKey(key string) bool {
	return strings.HasPrefix(key, "<temp-")
}

func isDegreeKey(key string) bool {
	switch key {
	case "<kelvin>", "<celsius>", "<fahrenheit>", "<rankine>":
		return true
	}
	return false
}

func classify(numerator, denominator []string) Flavor {
	if len(numerator) != 1 || !isUnity(denominator) {
		return Linear
	}
	switch {
	case isTemperatureKey(numerator[0]):
		return AbsoluteTemperature
	case isDegreeKey(numerator[0]):
		return DegreeTemperature
	default:
		return Linear
	}
}

// IsTemperature reports whether q is an absolute temperature.
func (q *Quantity) IsTemperature() bool {
	return q.flavor == AbsoluteTemperature
}

// IsDegrees reports whether q is a temperature degree or an absolute
// temperature.
func (q *Quantity) IsDegrees() bool {
	return q.flavor != Linear
}

// toTempK converts an absolute reading on the scale of key to kelvin.
func toTempK(scalar float64, key string) float64 {
	switch key {
	case "<temp-C>":
		return scalar + 273.15
	case "<temp-F>":
		return (scalar + 459.67) * 5 / 9
	case "<temp-R>":
		return scalar * 5 / 9
	default:
		return scalar
	}
}

// fromTempK converts kelvin to an absolute reading on the scale of key.
func fromTempK(kelvin float64, key string) float64 {
	switch key {
	case "<temp-C>":
		return kelvin - 273.15
	case "<temp-F>":
		return kelvin*9/5 - 459.67
	case "<temp-R>":
		return kelvin * 9 / 5
	default:
		return kelvin
	}
}

// degreesK returns the zero-relative kelvin difference equivalent to q. An
// absolute temperature is read on its own scale without the offset.
func degreesK(q *Quantity) float64 {
	if q.flavor != AbsoluteTemperature {
		return q.baseScalar
	}
	switch q.numerator[0] {
	case "<temp-F>", "<temp-R>":
		return q.scalar * 5 / 9
	default:
		return q.scalar
	}
}

// fromDegreesK expresses a kelvin difference in the degree named by key.
func fromDegreesK(kelvin float64, key string) float64 {
	switch key {
	case "<fahrenheit>", "<rankine>":
		return kelvin * 9 / 5
	default:
		return kelvin
	}
}

// addTempDegrees adds a degree-compatible quantity to an absolute temperature.
func addTempDegrees(temp, deg *Quantity) (*Quantity, error) {
	delta, err := deg.toKeys([]string{degreeOf[temp.numerator[0]]}, []string{units.Unity})
	if err != nil {
		return nil, err
	}
	return newQuantity(temp.scalar+delta.scalar, temp.numerator, temp.denominator)
}

// subtractTempDegrees subtracts a degree-compatible quantity from an absolute
// temperature. The result stays absolute.
func subtractTempDegrees(temp, deg *Quantity) (*Quantity, error) {
	delta, err := deg.toKeys([]string{degreeOf[temp.numerator[0]]}, []string{units.Unity})
	if err != nil {
		return nil, err
	}
	return newQuantity(temp.scalar-delta.scalar, temp.numerator, temp.denominator)
}

// subtractTemperatures returns the difference of two absolute temperatures
// as a degree on the scale of lhs.
func subtractTemperatures(lhs, rhs *Quantity) (*Quantity, error) {
	converted, err := rhs.ToUnitsOf(lhs)
	if err != nil {
		return nil, err
	}
	return newQuantity(lhs.scalar-converted.scalar, []string{degreeOf[lhs.numerator[0]]}, []string{units.Unity})
}

func errAddTemperatures() error {
	return errors.Newf(errors.ErrTemperature, "cannot add two temperatures")
}

func errSubtractFromDegree() error {
	return errors.Newf(errors.ErrTemperature, "cannot subtract a temperature from a differential degree unit")
}

func errMultiplyTemperature() error {
	return errors.Newf(errors.ErrTemperature, "cannot multiply by temperatures")
}

func errDivideTemperature() error {
	return errors.Newf(errors.ErrTemperature, "cannot divide with temperatures")
}
