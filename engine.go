package qty

import (
	"strconv"
	"strings"
	"sync"

	"github.com/jacoelho/qty/internal/cache"
	"github.com/jacoelho/qty/internal/num"
	"github.com/jacoelho/qty/internal/parser"
	"github.com/jacoelho/qty/internal/signature"
	"github.com/jacoelho/qty/internal/units"
)

// engine holds the unit table and the process-wide memoization shared by
// every Quantity. It is safe for concurrent use.
type engine struct {
	table   *units.Table
	parser  *parser.Parser
	bases   *cache.Map[string, baseForm]
	display *cache.Map[string, string]
}

// baseForm is a unit list expressed in base units with scalar factor.
type baseForm struct {
	factor      float64
	numerator   []string
	denominator []string
	signature   int64
}

var defaultEngine = sync.OnceValue(func() *engine {
	table := units.Default()
	return &engine{
		table:   table,
		parser:  parser.New(table),
		bases:   cache.New[string, baseForm](),
		display: cache.New[string, string](),
	}
})

// canonicalKey identifies a numerator and denominator pair by key identity.
func canonicalKey(numerator, denominator []string) string {
	return strings.Join(numerator, " ") + "/" + strings.Join(denominator, " ")
}

// base resolves numerator and denominator keys into base units. Prefix
// factors in the numerator are folded with MulSafe.
func (e *engine) base(numerator, denominator []string) baseForm {
	key := canonicalKey(numerator, denominator)
	if form, ok := e.bases.Load(key); ok {
		return form
	}

	factor := 1.0
	var top, bottom []string
	for _, k := range numerator {
		if v, ok := e.table.PrefixValue(k); ok {
			factor = num.MulSafe(factor, v)
			continue
		}
		if r, ok := e.table.Lookup(k); ok {
			factor *= r.Scalar
			top = append(top, r.Numerator...)
			bottom = append(bottom, r.Denominator...)
		}
	}
	for _, k := range denominator {
		if v, ok := e.table.PrefixValue(k); ok {
			factor /= v
			continue
		}
		if r, ok := e.table.Lookup(k); ok {
			factor /= r.Scalar
			top = append(top, r.Denominator...)
			bottom = append(bottom, r.Numerator...)
		}
	}

	form := baseForm{
		factor:      factor,
		numerator:   orUnity(top),
		denominator: orUnity(bottom),
		signature:   signature.Of(e.table, top, bottom),
	}
	form, _ = e.bases.LoadOrStore(key, form)
	return form
}

// stringify renders a unit list for display, collapsing repeated names into
// name plus count.
func (e *engine) stringify(keys []string) string {
	cacheKey := strings.Join(keys, " ")
	if s, ok := e.display.Load(cacheKey); ok {
		return s
	}

	var s string
	if isUnity(keys) {
		s = "1"
	} else {
		var names []string
		counts := make(map[string]int)
		for i := 0; i < len(keys); i++ {
			name := e.table.OutputName(keys[i])
			if e.table.IsPrefix(keys[i]) && i+1 < len(keys) {
				name += e.table.OutputName(keys[i+1])
				i++
			}
			if counts[name] == 0 {
				names = append(names, name)
			}
			counts[name]++
		}
		for i, name := range names {
			if n := counts[name]; n > 1 {
				names[i] = name + strconv.Itoa(n)
			}
		}
		s = strings.Join(names, "*")
	}
	s, _ = e.display.LoadOrStore(cacheKey, s)
	return s
}

func isUnity(keys []string) bool {
	return len(keys) == 1 && keys[0] == units.Unity
}

func orUnity(keys []string) []string {
	if len(keys) == 0 {
		return []string{units.Unity}
	}
	return keys
}
