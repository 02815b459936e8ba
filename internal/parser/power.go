package parser

// powerMatch is one unit^n occurrence: s[start:end] is the whole term.
type powerMatch struct {
	start int
	end   int
	base  string
	exp   int
}

// findPower returns the leftmost term of the form base, optional "^" or "**",
// then a digit 0-4 that is not followed by an ASCII letter. The base is the
// shortest run of bytes other than ' ', '*' and digits that completes a
// match. signed permits a '-' before the digit.
func findPower(s string, signed bool) (powerMatch, bool) {
	for start := 0; start < len(s); start++ {
		for end := start + 1; end <= len(s) && isBaseByte(s[end-1]); end++ {
			if stop, exp, ok := matchExponent(s, end, signed); ok {
				return powerMatch{start: start, end: stop, base: s[start:end], exp: exp}, true
			}
		}
	}
	return powerMatch{}, false
}

// matchExponent tries the power operators in order "^", "**", none, and for
// each an optional '-' before the digit.
func matchExponent(s string, pos int, signed bool) (int, int, bool) {
	ops := make([]int, 0, 3)
	if pos < len(s) && s[pos] == '^' {
		ops = append(ops, pos+1)
	}
	if pos+1 < len(s) && s[pos] == '*' && s[pos+1] == '*' {
		ops = append(ops, pos+2)
	}
	ops = append(ops, pos)

	for _, at := range ops {
		if signed && at < len(s) && s[at] == '-' {
			if d, ok := exponentDigit(s, at+1); ok {
				return at + 2, -d, true
			}
		}
		if d, ok := exponentDigit(s, at); ok {
			return at + 1, d, true
		}
	}
	return 0, 0, false
}

func exponentDigit(s string, at int) (int, bool) {
	if at >= len(s) || s[at] < '0' || s[at] > '4' {
		return 0, false
	}
	if at+1 < len(s) && isASCIILetter(s[at+1]) {
		return 0, false
	}
	return int(s[at] - '0'), true
}

func isBaseByte(b byte) bool {
	return b != ' ' && b != '*' && (b < '0' || b > '9')
}

func isASCIILetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
