package num

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// ErrDivideByZero is returned by DivSafe for a zero denominator.
var ErrDivideByZero = errors.New("divide by zero")

// Fractional counts the decimal digits after the point by scaling v by ten
// until it is a whole number. Non-finite values report zero digits.
func Fractional(v float64) int {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	count := 0
	for math.Mod(v, 1) != 0 {
		v *= 10
		count++
		if math.IsInf(v, 0) {
			break
		}
	}
	return count
}

// MulSafe multiplies values and rounds the product to the total number of
// decimal digits carried by the factors, so 0.1*0.1 yields 0.01.
func MulSafe(values ...float64) float64 {
	result := 1.0
	decimals := 0
	for _, v := range values {
		decimals += Fractional(v)
		result *= v
	}
	if decimals == 0 {
		return result
	}
	return Round(result, decimals)
}

// DivSafe divides num by den, scaling den to a whole number first so that
// short decimal literals divide exactly.
func DivSafe(num, den float64) (float64, error) {
	if den == 0 {
		return 0, ErrDivideByZero
	}
	factor := math.Pow(10, float64(Fractional(den)))
	inv := factor / (factor * den)
	return MulSafe(num, inv), nil
}

// Round rounds v to the given number of decimals. Non-finite values pass
// through unchanged.
func Round(v float64, decimals int) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return scalar.Round(v, decimals)
}

// RoundHalfUp rounds v to the nearest integer, resolving halves towards +Inf.
func RoundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
