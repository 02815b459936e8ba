package qty

import (
	"slices"

	"github.com/jacoelho/qty/errors"
	"github.com/jacoelho/qty/internal/num"
	"github.com/jacoelho/qty/internal/signature"
	"github.com/jacoelho/qty/internal/terms"
)

// Add returns q + other in the units of q. Adding a degree to an absolute
// temperature keeps the temperature's scale; two temperatures cannot be
// added.
func (q *Quantity) Add(other *Quantity) (*Quantity, error) {
	if !q.Compatible(other) {
		return nil, errors.Incompatible(q.units, other.units)
	}
	switch {
	case q.IsTemperature() && other.IsTemperature():
		return nil, errAddTemperatures()
	case q.IsTemperature():
		return addTempDegrees(q, other)
	case other.IsTemperature():
		return addTempDegrees(other, q)
	}
	converted, err := other.ToUnitsOf(q)
	if err != nil {
		return nil, err
	}
	return newQuantity(q.scalar+converted.scalar, q.numerator, q.denominator)
}

// Sub returns q - other in the units of q. The difference of two absolute
// temperatures is a degree.
func (q *Quantity) Sub(other *Quantity) (*Quantity, error) {
	if !q.Compatible(other) {
		return nil, errors.Incompatible(q.units, other.units)
	}
	switch {
	case q.IsTemperature() && other.IsTemperature():
		return subtractTemperatures(q, other)
	case q.IsTemperature():
		return subtractTempDegrees(q, other)
	case other.IsTemperature():
		return nil, errSubtractFromDegree()
	}
	converted, err := other.ToUnitsOf(q)
	if err != nil {
		return nil, err
	}
	return newQuantity(q.scalar-converted.scalar, q.numerator, q.denominator)
}

// Mul returns q * other. Units shared by both operands cancel; a compatible
// right operand is first converted to the units of q so that m*km yields m2.
func (q *Quantity) Mul(other *Quantity) (*Quantity, error) {
	if (q.IsTemperature() || other.IsTemperature()) && !(q.IsUnitless() || other.IsUnitless()) {
		return nil, errMultiplyTemperature()
	}
	op2, err := q.alignOperand(other)
	if err != nil {
		return nil, err
	}
	res := terms.Cancel(defaultEngine().table,
		slices.Concat(q.numerator, op2.numerator),
		slices.Concat(q.denominator, op2.denominator))
	return newQuantity(num.MulSafe(q.scalar, op2.scalar, res.Scale), res.Numerator, res.Denominator)
}

// MulScalar returns q scaled by factor.
func (q *Quantity) MulScalar(factor float64) (*Quantity, error) {
	return newQuantity(num.MulSafe(q.scalar, factor), q.numerator, q.denominator)
}

// Div returns q / other. Only unitless divisors may divide an absolute
// temperature, and no quantity may be divided by one.
func (q *Quantity) Div(other *Quantity) (*Quantity, error) {
	if other.scalar == 0 {
		return nil, errDivideByZero()
	}
	if other.IsTemperature() || (q.IsTemperature() && !other.IsUnitless()) {
		return nil, errDivideTemperature()
	}
	op2, err := q.alignOperand(other)
	if err != nil {
		return nil, err
	}
	res := terms.Cancel(defaultEngine().table,
		slices.Concat(q.numerator, op2.denominator),
		slices.Concat(q.denominator, op2.numerator))
	scalar := q.scalar / op2.scalar
	if res.Scale != 1 {
		scalar = num.MulSafe(scalar, res.Scale)
	}
	return newQuantity(scalar, res.Numerator, res.Denominator)
}

// DivScalar returns q divided by divisor.
func (q *Quantity) DivScalar(divisor float64) (*Quantity, error) {
	if divisor == 0 {
		return nil, errDivideByZero()
	}
	return newQuantity(q.scalar/divisor, q.numerator, q.denominator)
}

// Inverse returns 1/q.
func (q *Quantity) Inverse() (*Quantity, error) {
	if q.IsTemperature() {
		return nil, errDivideTemperature()
	}
	if q.scalar == 0 {
		return nil, errDivideByZero()
	}
	return newQuantity(1/q.scalar, q.denominator, q.numerator)
}

// alignOperand converts other to the units of q when both share a
// signature. Temperatures never cancel against each other, so degrees keep
// their own units.
func (q *Quantity) alignOperand(other *Quantity) (*Quantity, error) {
	if !q.Compatible(other) || q.signature == signature.Temperature {
		return other, nil
	}
	return other.ToUnitsOf(q)
}

func errDivideByZero() error {
	return errors.Newf(errors.ErrDivideByZero, "divide by zero")
}
