package qty

import (
	"cmp"
	"slices"
	"strings"

	"github.com/jacoelho/qty/errors"
	"github.com/jacoelho/qty/internal/signature"
	"github.com/jacoelho/qty/internal/units"
	"github.com/jacoelho/qty/internal/xiter"
)

// Kind names the physical kind of q, such as "length" or "energy". It is
// empty when the dimension has no well-known name.
func (q *Quantity) Kind() string {
	kind, _ := signature.KindOf(q.signature)
	return kind
}

// Kinds lists the well-known kind names.
func Kinds() []string {
	return signature.Kinds()
}

// UnitNames lists the unit names of kind, sorted case-insensitively. An empty
// kind lists every unit.
func UnitNames(kind string) ([]string, error) {
	if kind != "" && !signature.IsKind(kind) {
		return nil, errors.New(errors.ErrUnknownKind, "kind not recognized", kind)
	}
	keys := defaultEngine().table.UnitKeysOfKind(kind)
	names := xiter.Collect(xiter.Map(xiter.Slice(keys), units.StripKey))
	slices.SortStableFunc(names, func(a, b string) int {
		return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return names, nil
}

// Aliases lists every alias of the unit named by unit, display name first.
func Aliases(unit string) ([]string, error) {
	aliases, ok := defaultEngine().table.AliasesOf(unit)
	if !ok {
		return nil, errors.New(errors.ErrUnknownKind, "unit not recognized", unit)
	}
	return aliases, nil
}
