package qty

import (
	"strings"

	"github.com/jacoelho/qty/internal/num"
)

// Units returns the unit part of q, such as "kg*m/s2". Unitless quantities
// render as the empty string and a unity numerator as "1".
func (q *Quantity) Units() string {
	return q.units
}

// String renders q as scalar and units, such as "2.5 kg*m/s2".
func (q *Quantity) String() string {
	return strings.TrimSpace(num.FormatFloat(q.scalar) + " " + q.units)
}

// Format converts q to units, when not empty, and rounds the scalar to
// decimals, when not negative.
func (q *Quantity) Format(units string, decimals int) (string, error) {
	out := q
	if units != "" {
		converted, err := q.To(units)
		if err != nil {
			return "", err
		}
		out = converted
	}
	scalar := out.scalar
	if decimals >= 0 {
		scalar = num.Round(scalar, decimals)
	}
	return strings.TrimSpace(num.FormatFloat(scalar) + " " + out.units), nil
}
