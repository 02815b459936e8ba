package num

// ParseError represents a scalar parse failure.
type ParseError struct {
	Kind ParseErrKind
}

// Error returns the formatted error message.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return e.Kind.String()
}

// ParseErrKind identifies a parse failure category.
type ParseErrKind uint8

const (
	ParseInvalid ParseErrKind = iota
	ParseEmpty
	ParseBadChar
	ParseNoDigits
	ParseBadExponent
)

// String returns a stable label for the parse error kind.
func (k ParseErrKind) String() string {
	switch k {
	case ParseEmpty:
		return "empty"
	case ParseBadChar:
		return "bad character"
	case ParseNoDigits:
		return "no digits"
	case ParseBadExponent:
		return "bad exponent"
	default:
		return "invalid"
	}
}
