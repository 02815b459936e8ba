package parser

import (
	"reflect"
	"testing"

	qtyerrors "github.com/jacoelho/qty/errors"
	"github.com/jacoelho/qty/internal/units"
)

func newParser() *Parser {
	return New(units.Default())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		scalar      float64
		numerator   []string
		denominator []string
	}{
		{name: "scalar only", input: "5", scalar: 5, numerator: []string{"<1>"}, denominator: []string{"<1>"}},
		{name: "unit only", input: "GPa", scalar: 1, numerator: []string{"<giga>", "<pascal>"}, denominator: []string{"<1>"}},
		{name: "signed spaced scalar", input: "-  2.5 m", scalar: -2.5, numerator: []string{"<meter>"}, denominator: []string{"<1>"}},
		{name: "fraction scalar", input: ".5 kg", scalar: 0.5, numerator: []string{"<kilogram>"}, denominator: []string{"<1>"}},
		{name: "scientific", input: "1.5e3 s", scalar: 1500, numerator: []string{"<second>"}, denominator: []string{"<1>"}},
		{name: "no space", input: "10kg", scalar: 10, numerator: []string{"<kilogram>"}, denominator: []string{"<1>"}},
		{
			name:        "compound",
			input:       "5.6 kg*m/s^2",
			scalar:      5.6,
			numerator:   []string{"<kilogram>", "<meter>"},
			denominator: []string{"<second>", "<second>"},
		},
		{
			name:        "negative exponent",
			input:       "5.6 kg*m*s^-2",
			scalar:      5.6,
			numerator:   []string{"<kilogram>", "<meter>"},
			denominator: []string{"<second>", "<second>"},
		},
		{
			name:        "negative exponent joins denominator",
			input:       "1 kg^-1/s",
			scalar:      1,
			numerator:   []string{"<1>"},
			denominator: []string{"<second>", "<kilogram>"},
		},
		{name: "double star power", input: "1 m**3", scalar: 1, numerator: []string{"<meter>", "<meter>", "<meter>"}, denominator: []string{"<1>"}},
		{name: "bare power", input: "1 m2", scalar: 1, numerator: []string{"<meter>", "<meter>"}, denominator: []string{"<1>"}},
		{name: "zero power", input: "1 m^0", scalar: 1, numerator: []string{"<1>"}, denominator: []string{"<1>"}},
		{name: "prefixed", input: "2.2 kPa", scalar: 2.2, numerator: []string{"<kilo>", "<pascal>"}, denominator: []string{"<1>"}},
		{name: "digit inside alias", input: "1 cmH2O", scalar: 1, numerator: []string{"<cmh2o>"}, denominator: []string{"<1>"}},
		{name: "unity denominator", input: "3 1/m", scalar: 3, numerator: []string{"<1>"}, denominator: []string{"<meter>"}},
		{name: "longest alias", input: "1 min", scalar: 1, numerator: []string{"<minute>"}, denominator: []string{"<1>"}},
		{name: "temperature", input: "37 degC", scalar: 37, numerator: []string{"<celsius>"}, denominator: []string{"<1>"}},
		{name: "micro sign", input: "1 µm", scalar: 1, numerator: []string{"<micro>", "<meter>"}, denominator: []string{"<1>"}},
		{name: "space separated", input: "1 kg m", scalar: 1, numerator: []string{"<kilogram>", "<meter>"}, denominator: []string{"<1>"}},
	}
	p := newParser()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			expr, err := p.Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tc.input, err)
			}
			if expr.Scalar != tc.scalar {
				t.Fatalf("scalar = %v, want %v", expr.Scalar, tc.scalar)
			}
			if !reflect.DeepEqual(expr.Numerator, tc.numerator) {
				t.Fatalf("numerator = %v, want %v", expr.Numerator, tc.numerator)
			}
			if !reflect.DeepEqual(expr.Denominator, tc.denominator) {
				t.Fatalf("denominator = %v, want %v", expr.Denominator, tc.denominator)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: "   "},
		{name: "unknown unit", input: "aa"},
		{name: "dangling dash", input: "m-"},
		{name: "power out of range", input: "1 m^5"},
		{name: "zero power of unknown", input: "1 foo^0"},
		{name: "trailing slash", input: "1 m/"},
		{name: "two slashes", input: "1 m/s/s"},
		{name: "dot without digits", input: "5. m"},
		{name: "unsigned denominator power", input: "1 m/s^-2"},
	}
	p := newParser()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.Parse(tc.input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error", tc.input)
			}
			if !qtyerrors.Is(err, qtyerrors.ErrParse) {
				t.Fatalf("Parse(%q) error = %v, want %s", tc.input, err, qtyerrors.ErrParse)
			}
		})
	}
}

func TestParseEquivalentSpellings(t *testing.T) {
	p := newParser()
	spellings := []string{"1 m^2", "1 m2", "1 m**2", "1 m*m", "1 m m"}
	want, err := p.Parse(spellings[0])
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", spellings[0], err)
	}
	for _, s := range spellings[1:] {
		got, err := p.Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", s, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Parse(%q) = %+v, want %+v", s, got, want)
		}
	}
}

func TestParseCachesPhrases(t *testing.T) {
	p := newParser()
	first, err := p.Parse("1 kg*m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first.Numerator[0] = "<mutated>"
	second, err := p.Parse("2 kg*m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Numerator[0] != "<kilogram>" {
		t.Fatalf("cached phrase was mutated: %v", second.Numerator)
	}
	if p.phrases.Len() != 1 {
		t.Fatalf("phrase cache size = %d, want 1", p.phrases.Len())
	}
}

func TestParseUnitsIgnoresScalar(t *testing.T) {
	p := newParser()
	numerator, denominator, err := p.ParseUnits("12 km/h")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(numerator, []string{"<kilo>", "<meter>"}) {
		t.Fatalf("numerator = %v", numerator)
	}
	if !reflect.DeepEqual(denominator, []string{"<hour>"}) {
		t.Fatalf("denominator = %v", denominator)
	}
}

func TestFindPower(t *testing.T) {
	tests := []struct {
		input  string
		signed bool
		want   powerMatch
		ok     bool
	}{
		{input: "m^2", signed: true, want: powerMatch{start: 0, end: 3, base: "m", exp: 2}, ok: true},
		{input: "kg*s^-2", signed: true, want: powerMatch{start: 3, end: 7, base: "s", exp: -2}, ok: true},
		{input: "m**3", signed: true, want: powerMatch{start: 0, end: 4, base: "m", exp: 3}, ok: true},
		{input: "m3", signed: true, want: powerMatch{start: 0, end: 2, base: "m", exp: 3}, ok: true},
		{input: "s^-2", signed: false, want: powerMatch{start: 0, end: 4, base: "s^-", exp: 2}, ok: true},
		{input: "cmH2O", signed: true, ok: false},
		{input: "m5", signed: true, ok: false},
		{input: "kg m", signed: true, ok: false},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := findPower(tc.input, tc.signed)
			if ok != tc.ok {
				t.Fatalf("findPower(%q) ok = %v, want %v", tc.input, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("findPower(%q) = %+v, want %+v", tc.input, got, tc.want)
			}
		})
	}
}
