package qty

import (
	"github.com/jacoelho/qty/errors"
	"github.com/jacoelho/qty/internal/signature"
)

// Compatible reports whether q and other share a dimensional signature.
func (q *Quantity) Compatible(other *Quantity) bool {
	return other != nil && q.signature == other.signature
}

// IsInverse reports whether other has the reciprocal dimension of q.
func (q *Quantity) IsInverse(other *Quantity) bool {
	return other != nil && signature.Reciprocal(q.signature) == other.signature
}

// IsUnitless reports whether q carries no units at all. Dimensionless units
// such as radians or each still count as units.
func (q *Quantity) IsUnitless() bool {
	return isUnity(q.numerator) && isUnity(q.denominator)
}

// IsBase reports whether q is expressed in base units.
func (q *Quantity) IsBase() bool {
	return q.isBase
}

// CompareTo compares base scalars. It returns -1, 0 or +1, or an error when
// the quantities are not compatible.
func (q *Quantity) CompareTo(other *Quantity) (int, error) {
	if !q.Compatible(other) {
		right := ""
		if other != nil {
			right = other.units
		}
		return 0, errors.Incompatible(q.units, right)
	}
	switch {
	case q.baseScalar < other.baseScalar:
		return -1, nil
	case q.baseScalar > other.baseScalar:
		return 1, nil
	default:
		return 0, nil
	}
}

// Eq reports whether q and other have equal base scalars.
func (q *Quantity) Eq(other *Quantity) (bool, error) {
	c, err := q.CompareTo(other)
	return err == nil && c == 0, err
}

// Lt reports whether q is less than other.
func (q *Quantity) Lt(other *Quantity) (bool, error) {
	c, err := q.CompareTo(other)
	return err == nil && c < 0, err
}

// Lte reports whether q is less than or equal to other.
func (q *Quantity) Lte(other *Quantity) (bool, error) {
	c, err := q.CompareTo(other)
	return err == nil && c <= 0, err
}

// Gt reports whether q is greater than other.
func (q *Quantity) Gt(other *Quantity) (bool, error) {
	c, err := q.CompareTo(other)
	return err == nil && c > 0, err
}

// Gte reports whether q is greater than or equal to other.
func (q *Quantity) Gte(other *Quantity) (bool, error) {
	c, err := q.CompareTo(other)
	return err == nil && c >= 0, err
}

// Same reports whether q and other have equal scalars and identical units,
// so 100 cm is not the same as 1 m.
func (q *Quantity) Same(other *Quantity) bool {
	return other != nil && q.scalar == other.scalar && q.units == other.units
}
