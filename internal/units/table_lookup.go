package units

import (
	"regexp"
	"slices"
	"strings"
)

// Has reports whether key names a definition.
func (t *Table) Has(key string) bool {
	_, ok := t.byKey[key]
	return ok
}

// Definition returns a copy of the definition stored under key.
func (t *Table) Definition(key string) (Definition, bool) {
	idx, ok := t.byKey[key]
	if !ok {
		return Definition{}, false
	}
	return t.defs[idx].clone(), true
}

// IsPrefix reports whether key names a prefix.
func (t *Table) IsPrefix(key string) bool {
	_, ok := t.prefixValues[key]
	return ok
}

// PrefixValue returns the multiplier of a prefix key.
func (t *Table) PrefixValue(key string) (float64, bool) {
	v, ok := t.prefixValues[key]
	return v, ok
}

// PrefixKey maps a prefix alias to its key.
func (t *Table) PrefixKey(alias string) (string, bool) {
	key, ok := t.prefixAliases[alias]
	return key, ok
}

// UnitKey maps a unit alias to its key.
func (t *Table) UnitKey(alias string) (string, bool) {
	key, ok := t.unitAliases[alias]
	return key, ok
}

// Lookup returns a unit resolved to base units. Prefixes are not units.
func (t *Table) Lookup(key string) (Resolved, bool) {
	r, ok := t.resolved[key]
	if !ok {
		return Resolved{}, false
	}
	return Resolved{
		Scalar:      r.Scalar,
		Numerator:   slices.Clone(r.Numerator),
		Denominator: slices.Clone(r.Denominator),
	}, true
}

// OutputName returns the display name of key, its first alias.
func (t *Table) OutputName(key string) string {
	return t.output[key]
}

// IsBaseUnit reports whether key is one of BaseUnits.
func (t *Table) IsBaseUnit(key string) bool {
	_, ok := t.base[key]
	return ok
}

// Kind returns the declared kind of key.
func (t *Table) Kind(key string) string {
	idx, ok := t.byKey[key]
	if !ok {
		return ""
	}
	return t.defs[idx].Kind
}

// UnitKeysOfKind returns unit keys in table order. An empty kind selects
// every unit except prefixes and unity.
func (t *Table) UnitKeysOfKind(kind string) []string {
	var keys []string
	for _, def := range t.defs {
		if def.IsPrefix() || def.Key == Unity {
			continue
		}
		if kind == "" || def.Kind == kind {
			keys = append(keys, def.Key)
		}
	}
	return keys
}

// AliasesOf returns every alias of the unit named by alias.
func (t *Table) AliasesOf(alias string) ([]string, bool) {
	key, ok := t.unitAliases[alias]
	if !ok {
		return nil, false
	}
	return slices.Clone(t.defs[t.byKey[key]].Aliases), true
}

// TokenMatcher matches one optionally prefixed unit alias.
func (t *Table) TokenMatcher() *regexp.Regexp {
	return t.token
}

// MatchesPhrase reports whether s consists only of unit tokens separated by
// whitespace or '*'.
func (t *Table) MatchesPhrase(s string) bool {
	return t.whole.MatchString(s)
}

// StripKey removes the angle brackets around a unit key.
func StripKey(key string) string {
	return strings.TrimSuffix(strings.TrimPrefix(key, "<"), ">")
}
