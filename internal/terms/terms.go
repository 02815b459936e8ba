// Package terms cancels unit terms across a numerator and a denominator.
package terms

import (
	"github.com/jacoelho/qty/internal/num"
	"github.com/jacoelho/qty/internal/units"
)

// Term is a unit key with its optional prefix key.
type Term struct {
	Prefix string
	Unit   string
}

// Result is the outcome of a cancellation. Scale carries the prefix ratio
// left over when terms of the same unit with different prefixes cancel.
type Result struct {
	Numerator   []string
	Denominator []string
	Scale       float64
}

// Split groups a flat key list into terms. Unity keys are dropped.
func Split(table *units.Table, keys []string) []Term {
	out := make([]Term, 0, len(keys))
	for i := 0; i < len(keys); i++ {
		key := keys[i]
		if key == units.Unity {
			continue
		}
		if table.IsPrefix(key) && i+1 < len(keys) {
			out = append(out, Term{Prefix: key, Unit: keys[i+1]})
			i++
			continue
		}
		out = append(out, Term{Unit: key})
	}
	return out
}

// Flatten writes terms back as a flat key list.
func Flatten(terms []Term) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if t.Prefix != "" {
			out = append(out, t.Prefix)
		}
		out = append(out, t.Unit)
	}
	return out
}

type tally struct {
	term  Term
	count int
}

// Cancel nets identical terms of numerator against denominator in order of
// first appearance, then cancels remaining terms of the same unit that differ
// only by prefix. Empty sides become unity.
func Cancel(table *units.Table, numerator, denominator []string) Result {
	var tallies []tally
	index := make(map[Term]int)
	count := func(keys []string, delta int) {
		for _, t := range Split(table, keys) {
			i, ok := index[t]
			if !ok {
				i = len(tallies)
				index[t] = i
				tallies = append(tallies, tally{term: t})
			}
			tallies[i].count += delta
		}
	}
	count(numerator, 1)
	count(denominator, -1)

	scale := 1.0
	for i := range tallies {
		for j := range tallies {
			up, down := &tallies[i], &tallies[j]
			if up.count <= 0 || down.count >= 0 || up.term.Unit != down.term.Unit {
				continue
			}
			n := min(up.count, -down.count)
			ratio := prefixRatio(table, up.term.Prefix, down.term.Prefix)
			for range n {
				scale = num.MulSafe(scale, ratio)
			}
			up.count -= n
			down.count += n
		}
	}

	var top, bottom []Term
	for _, t := range tallies {
		for range t.count {
			top = append(top, t.term)
		}
		for range -t.count {
			bottom = append(bottom, t.term)
		}
	}
	return Result{Numerator: orUnity(Flatten(top)), Denominator: orUnity(Flatten(bottom)), Scale: scale}
}

func prefixRatio(table *units.Table, numerator, denominator string) float64 {
	ratio, err := num.DivSafe(prefixValue(table, numerator), prefixValue(table, denominator))
	if err != nil {
		return 1
	}
	return ratio
}

func prefixValue(table *units.Table, key string) float64 {
	if key == "" {
		return 1
	}
	if v, ok := table.PrefixValue(key); ok {
		return v
	}
	return 1
}

func orUnity(keys []string) []string {
	if len(keys) == 0 {
		return []string{units.Unity}
	}
	return keys
}
