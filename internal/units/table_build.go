package units

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	qtyerrors "github.com/jacoelho/qty/errors"
	"github.com/jacoelho/qty/internal/num"
)

// Build validates defs and derives the lookup indexes. Every numerator and
// denominator reference must name a non-prefix definition, and every unit
// must resolve to base units without cycles.
func Build(defs []Definition) (*Table, error) {
	t := &Table{
		byKey:         make(map[string]int, len(defs)),
		prefixValues:  make(map[string]float64),
		prefixAliases: make(map[string]string),
		unitAliases:   make(map[string]string),
		output:        make(map[string]string, len(defs)),
		resolved:      make(map[string]Resolved, len(defs)),
		base:          make(map[string]struct{}, len(BaseUnits)),
	}

	for _, def := range defs {
		if def.Key == "" {
			return nil, qtyerrors.Newf(qtyerrors.ErrConfiguration, "unit definition without key")
		}
		if _, exists := t.byKey[def.Key]; exists {
			return nil, qtyerrors.Newf(qtyerrors.ErrConfiguration, "%s: duplicate unit definition", def.Key)
		}
		if len(def.Aliases) == 0 {
			return nil, qtyerrors.Newf(qtyerrors.ErrConfiguration, "%s: invalid unit definition: no aliases", def.Key)
		}
		t.byKey[def.Key] = len(t.defs)
		t.defs = append(t.defs, def.clone())
	}
	for _, key := range BaseUnits {
		if _, ok := t.byKey[key]; !ok {
			return nil, qtyerrors.Newf(qtyerrors.ErrConfiguration, "base unit %s is not defined", key)
		}
		t.base[key] = struct{}{}
	}

	for _, def := range t.defs {
		if def.IsPrefix() {
			t.prefixValues[def.Key] = def.Scalar
			for _, alias := range def.Aliases {
				t.prefixAliases[alias] = def.Key
			}
		} else {
			if err := t.validate(def); err != nil {
				return nil, err
			}
			for _, alias := range def.Aliases {
				t.unitAliases[alias] = def.Key
			}
		}
		t.output[def.Key] = def.Aliases[0]
	}

	for _, def := range t.defs {
		if def.IsPrefix() {
			continue
		}
		if _, err := t.resolve(def.Key, nil); err != nil {
			return nil, err
		}
	}

	var err error
	if t.token, t.whole, err = compileMatchers(t.prefixAliases, t.unitAliases); err != nil {
		return nil, qtyerrors.Newf(qtyerrors.ErrConfiguration, "compile unit matcher: %v", err)
	}
	return t, nil
}

func (t *Table) validate(def Definition) error {
	check := func(side string, refs []string) error {
		for _, ref := range refs {
			idx, ok := t.byKey[ref]
			if !ok {
				return qtyerrors.Newf(qtyerrors.ErrConfiguration,
					"%s: invalid unit definition: unit %s in '%s' is not recognized", def.Key, ref, side)
			}
			if t.defs[idx].IsPrefix() {
				return qtyerrors.Newf(qtyerrors.ErrConfiguration,
					"%s: invalid unit definition: prefix %s in '%s'", def.Key, ref, side)
			}
		}
		return nil
	}
	if err := check("numerator", def.Numerator); err != nil {
		return err
	}
	return check("denominator", def.Denominator)
}

// resolve expands key into base units. visiting holds the keys on the
// current expansion path.
func (t *Table) resolve(key string, visiting []string) (Resolved, error) {
	if r, ok := t.resolved[key]; ok {
		return r, nil
	}
	if key == Unity {
		r := Resolved{Scalar: 1}
		t.resolved[key] = r
		return r, nil
	}
	def := t.defs[t.byKey[key]]
	if _, ok := t.base[key]; ok {
		r := Resolved{Scalar: def.Scalar, Numerator: []string{key}}
		t.resolved[key] = r
		return r, nil
	}
	if slices.Contains(visiting, key) {
		return Resolved{}, qtyerrors.Newf(qtyerrors.ErrConfiguration,
			"%s: invalid unit definition: cyclic reference through %s", key, strings.Join(visiting, " -> "))
	}
	visiting = append(visiting, key)

	factors := []float64{def.Scalar}
	var numerator, denominator []string
	for _, ref := range def.Numerator {
		r, err := t.resolve(ref, visiting)
		if err != nil {
			return Resolved{}, err
		}
		factors = append(factors, r.Scalar)
		numerator = append(numerator, r.Numerator...)
		denominator = append(denominator, r.Denominator...)
	}
	scalar := num.MulSafe(factors...)
	for _, ref := range def.Denominator {
		r, err := t.resolve(ref, visiting)
		if err != nil {
			return Resolved{}, err
		}
		scalar /= r.Scalar
		numerator = append(numerator, r.Denominator...)
		denominator = append(denominator, r.Numerator...)
	}

	r := Resolved{Scalar: scalar, Numerator: numerator, Denominator: denominator}
	t.resolved[key] = r
	return r, nil
}

// compileMatchers builds the token matcher (prefix)??(unit)(?:\b|$) and the
// whole-phrase matcher that accepts a sequence of tokens separated by
// whitespace or '*'. Alternatives are ordered longest first.
func compileMatchers(prefixes, units map[string]string) (*regexp.Regexp, *regexp.Regexp, error) {
	token := "(" + alternation(prefixes) + ")??(" + alternation(units) + ")(?:\\b|$)"
	tokenRE, err := regexp.Compile(token)
	if err != nil {
		return nil, nil, err
	}
	wholeRE, err := regexp.Compile("^\\s*(" + token + "[\\s\\*]*)+$")
	if err != nil {
		return nil, nil, err
	}
	return tokenRE, wholeRE, nil
}

func alternation(aliases map[string]string) string {
	keys := make([]string, 0, len(aliases))
	for alias := range aliases {
		keys = append(keys, alias)
	}
	slices.SortStableFunc(keys, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	for i, key := range keys {
		keys[i] = regexp.QuoteMeta(key)
	}
	return strings.Join(keys, "|")
}
