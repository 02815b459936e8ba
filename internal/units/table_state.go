package units

import (
	"regexp"
	"sync"
)

// Resolved is a unit expressed in base units.
type Resolved struct {
	Scalar      float64
	Numerator   []string
	Denominator []string
}

// Table is an immutable unit table with its derived indexes.
type Table struct {
	defs          []Definition
	byKey         map[string]int
	prefixValues  map[string]float64
	prefixAliases map[string]string
	unitAliases   map[string]string
	output        map[string]string
	resolved      map[string]Resolved
	base          map[string]struct{}
	token         *regexp.Regexp
	whole         *regexp.Regexp
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := Build(definitions)
	if err != nil {
		panic("units: " + err.Error())
	}
	return t
})

// Default returns the table built from the built-in definitions. It panics
// when the built-in definitions are invalid.
func Default() *Table {
	return defaultTable()
}
