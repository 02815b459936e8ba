package qty

import "gonum.org/v1/gonum/floats"

// Converter converts plain values between two fixed unit expressions. Linear
// pairs precompute a single ratio; temperature pairs convert each value in
// full. A Converter is safe for concurrent use.
type Converter struct {
	src      *Quantity
	dst      *Quantity
	ratio    float64
	identity bool
	linear   bool
}

// NewConverter returns a converter from src units to dst units.
func NewConverter(src, dst string) (*Converter, error) {
	from, err := Parse(src)
	if err != nil {
		return nil, err
	}
	to, err := Parse(dst)
	if err != nil {
		return nil, err
	}
	same, err := from.Eq(to)
	if err != nil {
		return nil, err
	}
	c := &Converter{src: from, dst: to, identity: same}
	if !same && !from.IsTemperature() && !to.IsTemperature() {
		c.linear = true
		c.ratio = from.baseScalar / to.baseScalar
	}
	return c, nil
}

// Convert converts one value.
func (c *Converter) Convert(value float64) (float64, error) {
	switch {
	case c.identity:
		return value, nil
	case c.linear:
		return value * c.ratio, nil
	}
	q, err := newQuantity(value, c.src.numerator, c.src.denominator)
	if err != nil {
		return 0, err
	}
	out, err := q.ToUnitsOf(c.dst)
	if err != nil {
		return 0, err
	}
	return out.scalar, nil
}

// ConvertSlice converts values into a new slice.
func (c *Converter) ConvertSlice(values []float64) ([]float64, error) {
	out := make([]float64, len(values))
	switch {
	case c.identity:
		copy(out, values)
		return out, nil
	case c.linear:
		floats.ScaleTo(out, c.ratio, values)
		return out, nil
	}
	for i, v := range values {
		converted, err := c.Convert(v)
		if err != nil {
			return nil, err
		}
		out[i] = converted
	}
	return out, nil
}
