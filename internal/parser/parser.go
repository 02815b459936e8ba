// Package parser turns quantity expressions such as "2.5 kg*m/s^2" into a
// scalar and normalized numerator and denominator unit keys.
package parser

import (
	"regexp"
	"slices"
	"strings"

	qtyerrors "github.com/jacoelho/qty/errors"
	"github.com/jacoelho/qty/internal/cache"
	"github.com/jacoelho/qty/internal/num"
	"github.com/jacoelho/qty/internal/units"
)

// quantityPattern captures (signed scalar)(numerator phrase)(/denominator phrase).
var quantityPattern = regexp.MustCompile(
	`^([+-]?\s*(?:\d+(?:\.\d+)?|\.\d+)(?:[Ee][+-]?\d+)?)?\s*([^/]*)(?:/(.+))?$`)

// Expression is a parsed quantity. Empty sides hold the unity key.
type Expression struct {
	Scalar      float64
	Numerator   []string
	Denominator []string
}

// Parser parses expressions against one unit table. It is safe for
// concurrent use.
type Parser struct {
	table   *units.Table
	phrases *cache.Map[string, []string]
}

// New returns a parser over table.
func New(table *units.Table) *Parser {
	return &Parser{table: table, phrases: cache.New[string, []string]()}
}

// Table returns the unit table the parser resolves aliases against.
func (p *Parser) Table() *units.Table {
	return p.table
}

// Parse parses text. A missing scalar defaults to 1 and missing unit phrases
// default to unity.
func (p *Parser) Parse(text string) (Expression, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Expression{}, qtyerrors.New(qtyerrors.ErrParse, "empty quantity", text)
	}
	groups := quantityPattern.FindStringSubmatch(text)
	if groups == nil {
		return Expression{}, qtyerrors.New(qtyerrors.ErrParse, "quantity not recognized", text)
	}

	expr := Expression{Scalar: 1}
	if groups[1] != "" {
		value, perr := num.ParseScalar(groups[1])
		if perr != nil {
			return Expression{}, qtyerrors.New(qtyerrors.ErrParse, "invalid scalar: "+perr.Error(), text)
		}
		expr.Scalar = value
	}

	top, bottom, err := p.expandPowers(groups[2], groups[3])
	if err != nil {
		return Expression{}, err
	}
	if expr.Numerator, err = p.phraseKeys(top); err != nil {
		return Expression{}, err
	}
	if expr.Denominator, err = p.phraseKeys(bottom); err != nil {
		return Expression{}, err
	}
	return expr, nil
}

// ParseUnits parses a unit phrase such as "kg*m/s^2" and returns its
// numerator and denominator keys. A leading scalar is ignored.
func (p *Parser) ParseUnits(text string) (numerator, denominator []string, err error) {
	expr, err := p.Parse(text)
	if err != nil {
		return nil, nil, err
	}
	return expr.Numerator, expr.Denominator, nil
}

// expandPowers rewrites every unit^n term as n space-separated copies of the
// unit. Negative numerator powers move their copies to the denominator.
func (p *Parser) expandPowers(top, bottom string) (string, string, error) {
	for {
		m, ok := findPower(top, true)
		if !ok {
			break
		}
		if m.exp == 0 && !p.table.MatchesPhrase(m.base) {
			return "", "", qtyerrors.New(qtyerrors.ErrParse, "unit not recognized", m.base)
		}
		copies := strings.Repeat(m.base+" ", abs(m.exp))
		if m.exp >= 0 {
			top = top[:m.start] + copies + top[m.end:]
			continue
		}
		top = top[:m.start] + top[m.end:]
		if bottom == "" {
			bottom = copies
		} else {
			bottom = bottom + " " + copies
		}
	}
	for {
		m, ok := findPower(bottom, false)
		if !ok {
			break
		}
		if m.exp == 0 && !p.table.MatchesPhrase(m.base) {
			return "", "", qtyerrors.New(qtyerrors.ErrParse, "unit not recognized", m.base)
		}
		bottom = bottom[:m.start] + strings.Repeat(m.base+" ", m.exp) + bottom[m.end:]
	}
	return top, bottom, nil
}

// phraseKeys tokenizes a unit phrase into canonical keys. Results are cached
// by phrase text.
func (p *Parser) phraseKeys(phrase string) ([]string, error) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return []string{units.Unity}, nil
	}
	keys, err := p.phrases.LoadOrCompute(phrase, func() ([]string, error) {
		return p.tokenize(phrase)
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(keys), nil
}

func (p *Parser) tokenize(phrase string) ([]string, error) {
	if !p.table.MatchesPhrase(phrase) {
		return nil, qtyerrors.New(qtyerrors.ErrParse, "unit not recognized", phrase)
	}
	var keys []string
	for _, match := range p.table.TokenMatcher().FindAllStringSubmatch(phrase, -1) {
		if prefix, ok := p.table.PrefixKey(match[1]); ok {
			keys = append(keys, prefix)
		}
		unit, ok := p.table.UnitKey(match[2])
		if !ok {
			return nil, qtyerrors.New(qtyerrors.ErrParse, "unit not recognized", match[2])
		}
		keys = append(keys, unit)
	}
	if len(keys) == 0 {
		return nil, qtyerrors.New(qtyerrors.ErrParse, "unit not recognized", phrase)
	}
	return keys, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
