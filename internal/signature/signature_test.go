package signature

import (
	"testing"
	"testing/quick"

	"github.com/jacoelho/qty/internal/units"
)

func TestOf(t *testing.T) {
	tbl := units.Default()
	tests := []struct {
		name        string
		numerator   []string
		denominator []string
		want        int64
		kind        string
	}{
		{name: "length", numerator: []string{"<meter>"}, want: 1, kind: "length"},
		{name: "force", numerator: []string{"<kilogram>", "<meter>"}, denominator: []string{"<second>", "<second>"}, want: 7961, kind: "force"},
		{name: "energy", numerator: []string{"<meter>", "<meter>", "<kilogram>"}, denominator: []string{"<second>", "<second>"}, want: 7962, kind: "energy"},
		{name: "frequency", denominator: []string{"<second>"}, want: -20, kind: "frequency"},
		{name: "temperature", numerator: []string{"<temp-K>"}, want: Temperature, kind: "temperature"},
		{name: "degree", numerator: []string{"<kelvin>"}, want: Temperature, kind: "temperature"},
		{name: "angle", numerator: []string{"<radian>"}, want: 512000000000, kind: "angle"},
		{name: "counting", numerator: []string{"<each>"}, want: 0, kind: "unitless"},
		{name: "unity", want: 0, kind: "unitless"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Of(tbl, tc.numerator, tc.denominator)
			if got != tc.want {
				t.Fatalf("Of() = %d, want %d", got, tc.want)
			}
			kind, ok := KindOf(got)
			if !ok || kind != tc.kind {
				t.Fatalf("KindOf(%d) = %q, %v, want %q", got, kind, ok, tc.kind)
			}
		})
	}
}

func TestReciprocalNegatesVector(t *testing.T) {
	f := func(raw [len(Dimensions)]int8) bool {
		var v, neg [len(Dimensions)]int
		for i, n := range raw {
			v[i] = int(n % 10)
			neg[i] = -v[i]
		}
		return Reciprocal(Fold(v)) == Fold(neg)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatalf("reciprocal property failed: %v", err)
	}
}

func TestFoldDistinguishesSmallVectors(t *testing.T) {
	f := func(a, b [len(Dimensions)]int8) bool {
		var va, vb [len(Dimensions)]int
		for i := range a {
			va[i] = int(a[i] % 10)
			vb[i] = int(b[i] % 10)
		}
		return (Fold(va) == Fold(vb)) == (va == vb)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatalf("fold injectivity failed: %v", err)
	}
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 46 {
		t.Fatalf("len(Kinds()) = %d, want 46", len(kinds))
	}
	if kinds[0] != "elastance" {
		t.Fatalf("Kinds()[0] = %q, want elastance", kinds[0])
	}
	seen := make(map[string]bool, len(kinds))
	for _, kind := range kinds {
		if seen[kind] {
			t.Fatalf("duplicate kind %q", kind)
		}
		seen[kind] = true
	}
	if !IsKind("magnetism") || IsKind("counting") {
		t.Fatalf("IsKind mismatch")
	}
}
