// Package qty parses, converts and computes with physical quantities.
//
// A Quantity is a scalar with numerator and denominator unit lists. Units are
// drawn from a fixed table covering SI and common customary units, with
// metric and binary prefixes. Quantities are immutable; every operation
// returns a new value.
package qty

import (
	"slices"
	"strings"

	"github.com/jacoelho/qty/errors"
	"github.com/jacoelho/qty/internal/cache"
	"github.com/jacoelho/qty/internal/num"
	"github.com/jacoelho/qty/internal/signature"
	"github.com/jacoelho/qty/internal/units"
)

// Quantity is an immutable physical quantity. It is safe for concurrent use.
type Quantity struct {
	scalar      float64
	numerator   []string
	denominator []string
	flavor      Flavor
	baseScalar  float64
	signature   int64
	isBase      bool
	canonical   string
	units       string
	conversions *cache.Map[string, *Quantity]
}

// Parse parses an expression such as "2.5 kg*m/s^2" or "37 degC".
func Parse(text string) (*Quantity, error) {
	expr, err := defaultEngine().parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return newQuantity(expr.Scalar, expr.Numerator, expr.Denominator)
}

// MustParse is like Parse but panics on error.
func MustParse(text string) *Quantity {
	q, err := Parse(text)
	if err != nil {
		panic("qty: " + err.Error())
	}
	return q
}

// TryParse is like Parse but returns a nil Quantity and no error when text
// is not a recognizable quantity. Other failures, such as a temperature
// below absolute zero, are still returned.
func TryParse(text string) (*Quantity, error) {
	q, err := Parse(text)
	if errors.Is(err, errors.ErrParse) {
		return nil, nil
	}
	return q, err
}

// New returns value expressed in units. Any scalar inside units is ignored.
func New(value float64, units string) (*Quantity, error) {
	numerator, denominator, err := defaultEngine().parser.ParseUnits(units)
	if err != nil {
		return nil, err
	}
	return newQuantity(value, numerator, denominator)
}

// FromFloat returns a unitless quantity.
func FromFloat(value float64) *Quantity {
	q, err := newQuantity(value, nil, nil)
	if err != nil {
		panic("qty: " + err.Error())
	}
	return q
}

// FromTerms builds a quantity from canonical unit keys such as "<kilo>" and
// "<meter>". A prefix key must be followed by a unit key.
func FromTerms(scalar float64, numerator, denominator []string) (*Quantity, error) {
	table := defaultEngine().table
	for _, keys := range [][]string{numerator, denominator} {
		for i := 0; i < len(keys); i++ {
			key := keys[i]
			if !table.Has(key) {
				return nil, errors.New(errors.ErrParse, "unit not recognized", key)
			}
			if !table.IsPrefix(key) {
				continue
			}
			if i+1 == len(keys) || !table.Has(keys[i+1]) || table.IsPrefix(keys[i+1]) {
				return nil, errors.New(errors.ErrParse, "prefix without unit", key)
			}
			i++
		}
	}
	return newQuantity(scalar, slices.Clone(numerator), slices.Clone(denominator))
}

// newQuantity validates the temperature rules and computes every derived
// value. numerator and denominator must not be modified afterwards.
func newQuantity(scalar float64, numerator, denominator []string) (*Quantity, error) {
	e := defaultEngine()
	numerator = normalizeKeys(numerator)
	denominator = normalizeKeys(denominator)

	if slices.ContainsFunc(denominator, isTemperatureKey) {
		return nil, errDivideTemperature()
	}
	if slices.ContainsFunc(numerator, isTemperatureKey) {
		if len(numerator) > 1 {
			return nil, errMultiplyTemperature()
		}
		if !isUnity(denominator) {
			return nil, errDivideTemperature()
		}
	}

	q := &Quantity{
		scalar:      scalar,
		numerator:   numerator,
		denominator: denominator,
		flavor:      classify(numerator, denominator),
		canonical:   canonicalKey(numerator, denominator),
		conversions: cache.New[string, *Quantity](),
	}
	q.isBase = q.checkBase(e.table)

	switch {
	case q.isBase:
		q.baseScalar = scalar
		q.signature = signature.Of(e.table, numerator, denominator)
	case q.flavor == AbsoluteTemperature:
		q.baseScalar = toTempK(scalar, numerator[0])
		q.signature = signature.Temperature
	default:
		form := e.base(numerator, denominator)
		q.baseScalar = num.MulSafe(form.factor, scalar)
		q.signature = form.signature
	}

	if q.flavor == AbsoluteTemperature && q.baseScalar < 0 {
		return nil, errors.Newf(errors.ErrTemperature, "temperatures must not be less than absolute zero")
	}
	q.units = q.renderUnits(e)
	return q, nil
}

// normalizeKeys drops unity from multi-key lists and maps an empty list to
// unity.
func normalizeKeys(keys []string) []string {
	if len(keys) > 1 {
		keys = slices.DeleteFunc(slices.Clone(keys), func(k string) bool { return k == units.Unity })
	}
	return orUnity(keys)
}

func (q *Quantity) checkBase(table *units.Table) bool {
	if q.flavor != Linear && (q.numerator[0] == "<kelvin>" || q.numerator[0] == "<temp-K>") {
		return true
	}
	for _, keys := range [][]string{q.numerator, q.denominator} {
		for _, k := range keys {
			if k != units.Unity && !table.IsBaseUnit(k) {
				return false
			}
		}
	}
	return true
}

func (q *Quantity) renderUnits(e *engine) string {
	numIsUnity, denIsUnity := isUnity(q.numerator), isUnity(q.denominator)
	if numIsUnity && denIsUnity {
		return ""
	}
	var b strings.Builder
	b.WriteString(e.stringify(q.numerator))
	if !denIsUnity {
		b.WriteByte('/')
		b.WriteString(e.stringify(q.denominator))
	}
	return b.String()
}

// Scalar returns the numeric value in the quantity's own units.
func (q *Quantity) Scalar() float64 { return q.scalar }

// BaseScalar returns the numeric value in base units. Absolute temperatures
// report kelvin.
func (q *Quantity) BaseScalar() float64 { return q.baseScalar }

// Signature returns the dimensional signature.
func (q *Quantity) Signature() int64 { return q.signature }

// Numerator returns a copy of the numerator unit keys.
func (q *Quantity) Numerator() []string { return slices.Clone(q.numerator) }

// Denominator returns a copy of the denominator unit keys.
func (q *Quantity) Denominator() []string { return slices.Clone(q.denominator) }

// Flavor reports whether the quantity is linear, a temperature degree or an
// absolute temperature.
func (q *Quantity) Flavor() Flavor { return q.flavor }
