// Package signature folds base-unit exponents into an integer fingerprint of
// physical dimension.
package signature

import (
	"slices"

	"github.com/jacoelho/qty/internal/units"
)

// Dimensions lists the kinds that contribute to a signature, in weight order.
var Dimensions = [...]string{
	"length", "time", "temperature", "mass", "current",
	"substance", "luminosity", "currency", "information", "angle",
}

// Temperature is the signature shared by temperatures and temperature degrees.
const Temperature int64 = 400

// Vector counts the dimension exponents of base-unit keys. Keys whose kind is
// not a dimension, such as counting units, do not contribute.
func Vector(table *units.Table, numerator, denominator []string) [len(Dimensions)]int {
	var v [len(Dimensions)]int
	for _, key := range numerator {
		if i := dimensionIndex(table.Kind(key)); i >= 0 {
			v[i]++
		}
	}
	for _, key := range denominator {
		if i := dimensionIndex(table.Kind(key)); i >= 0 {
			v[i]--
		}
	}
	return v
}

// Fold weights slot i by 20^i and sums.
func Fold(v [len(Dimensions)]int) int64 {
	var sig, weight int64 = 0, 1
	for _, n := range v {
		sig += int64(n) * weight
		weight *= 20
	}
	return sig
}

// Of returns the signature of base-unit keys.
func Of(table *units.Table, numerator, denominator []string) int64 {
	return Fold(Vector(table, numerator, denominator))
}

// Reciprocal returns the signature of the inverse dimension.
func Reciprocal(sig int64) int64 {
	return -sig
}

func dimensionIndex(kind string) int {
	return slices.Index(Dimensions[:], kind)
}
