package qty

import (
	"github.com/jacoelho/qty/errors"
	"github.com/jacoelho/qty/internal/num"
)

// ToBase returns q expressed in base units. A quantity already in base units
// is returned as is; absolute temperatures go to tempK.
func (q *Quantity) ToBase() (*Quantity, error) {
	if q.isBase {
		return q, nil
	}
	if q.flavor == AbsoluteTemperature {
		return newQuantity(q.baseScalar, []string{"<temp-K>"}, nil)
	}
	form := defaultEngine().base(q.numerator, q.denominator)
	return newQuantity(q.baseScalar, form.numerator, form.denominator)
}

// To converts q to the units of an expression such as "km/h". A scalar in
// units is ignored. Inverse units convert through the reciprocal.
// Conversions are memoized per receiver by units.
func (q *Quantity) To(units string) (*Quantity, error) {
	if cached, ok := q.conversions.Load(units); ok {
		return cached, nil
	}
	numerator, denominator, err := defaultEngine().parser.ParseUnits(units)
	if err != nil {
		return nil, err
	}
	out, err := q.toKeys(numerator, denominator)
	if err != nil {
		return nil, err
	}
	out, _ = q.conversions.LoadOrStore(units, out)
	return out, nil
}

// ToUnitsOf converts q to the units of other. The scalar of other is ignored.
func (q *Quantity) ToUnitsOf(other *Quantity) (*Quantity, error) {
	if other.canonical == q.canonical {
		return q, nil
	}
	key := "\x00" + other.canonical
	if cached, ok := q.conversions.Load(key); ok {
		return cached, nil
	}
	out, err := q.toKeys(other.numerator, other.denominator)
	if err != nil {
		return nil, err
	}
	out, _ = q.conversions.LoadOrStore(key, out)
	return out, nil
}

func (q *Quantity) toKeys(numerator, denominator []string) (*Quantity, error) {
	target, err := newQuantity(1, numerator, denominator)
	if err != nil {
		return nil, err
	}
	if target.canonical == q.canonical {
		return q, nil
	}
	if !q.Compatible(target) {
		if !q.IsInverse(target) {
			return nil, errors.Incompatible(q.units, target.units)
		}
		inv, err := q.Inverse()
		if err != nil {
			return nil, err
		}
		return inv.toKeys(target.numerator, target.denominator)
	}

	var scalar float64
	switch target.flavor {
	case AbsoluteTemperature:
		scalar = fromTempK(q.baseScalar, target.numerator[0])
	case DegreeTemperature:
		scalar = fromDegreesK(degreesK(q), target.numerator[0])
	default:
		if scalar, err = num.DivSafe(q.baseScalar, target.baseScalar); err != nil {
			return nil, errors.New(errors.ErrDivideByZero, "divide by zero", target.units)
		}
	}
	return newQuantity(scalar, target.numerator, target.denominator)
}

// ToFloat returns the scalar of a unitless quantity.
func (q *Quantity) ToFloat() (float64, error) {
	if !q.IsUnitless() {
		return 0, errors.New(errors.ErrNotUnitless, "cannot convert to float unless unitless", q.String())
	}
	return q.scalar, nil
}

// ToPrec rounds q to the nearest multiple of prec, expressed in the units of
// q. For example 5.17 ft rounded to 0.05 ft is 5.15 ft.
func (q *Quantity) ToPrec(prec *Quantity) (*Quantity, error) {
	step := prec
	switch {
	case !q.IsUnitless():
		converted, err := prec.ToUnitsOf(q)
		if err != nil {
			return nil, err
		}
		step = converted
	case !prec.IsUnitless():
		return nil, errors.Incompatible(q.units, prec.units)
	}
	if step.scalar == 0 {
		return nil, errors.Newf(errors.ErrDivideByZero, "divide by zero")
	}
	rounded := num.MulSafe(num.RoundHalfUp(q.scalar/step.scalar), step.scalar)
	return newQuantity(rounded, q.numerator, q.denominator)
}
