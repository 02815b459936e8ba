package num

import (
	"errors"
	"strconv"
)

// ParseScalar parses the numeric prefix of a quantity expression.
// Whitespace between the sign and the digits is ignored. Values outside the
// float64 range saturate to ±Inf.
func ParseScalar(s string) (float64, *ParseError) {
	s = stripSpace(s)
	if len(s) == 0 {
		return 0, &ParseError{Kind: ParseEmpty}
	}
	if err := validateScalarLexical(s); err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
		return 0, &ParseError{Kind: ParseBadChar}
	}
	return f, nil
}

// validateScalarLexical accepts sign? (digits (. digits)? | . digits) ([Ee] sign? digits)?.
func validateScalarLexical(value string) *ParseError {
	i := 0
	if value[i] == '+' || value[i] == '-' {
		i++
		if i == len(value) {
			return &ParseError{Kind: ParseNoDigits}
		}
	}
	startDigits := 0
	for i < len(value) && isDigit(value[i]) {
		i++
		startDigits++
	}
	if i < len(value) && value[i] == '.' {
		i++
		fracDigits := 0
		for i < len(value) && isDigit(value[i]) {
			i++
			fracDigits++
		}
		if fracDigits == 0 {
			return &ParseError{Kind: ParseNoDigits}
		}
	} else if startDigits == 0 {
		return &ParseError{Kind: ParseNoDigits}
	}
	if i < len(value) && (value[i] == 'e' || value[i] == 'E') {
		i++
		if i < len(value) && (value[i] == '+' || value[i] == '-') {
			i++
		}
		expDigits := 0
		for i < len(value) && isDigit(value[i]) {
			i++
			expDigits++
		}
		if expDigits == 0 {
			return &ParseError{Kind: ParseBadExponent}
		}
	}
	if i != len(value) {
		return &ParseError{Kind: ParseBadChar}
	}
	return nil
}
