package instruction

import "fmt"

// Kind classifies a parse failure. The string value doubles as the stable
// status code surfaced to callers.
type Kind string

const (
	// KindMalformedInstruction indicates a missing or invalid leading keyword,
	// or a missing/misordered FROM/TO route.
	KindMalformedInstruction Kind = "MALFORMED_INSTRUCTION"
	// KindInvalidAmount indicates the amount token is not a positive integer.
	KindInvalidAmount Kind = "INVALID_AMOUNT"
	// KindUnsupportedCurrency indicates the currency is not in the allow-list.
	KindUnsupportedCurrency Kind = "UNSUPPORTED_CURRENCY"
	// KindInvalidInstructionFormat indicates an incomplete route or an account
	// identifier with disallowed characters.
	KindInvalidInstructionFormat Kind = "INVALID_INSTRUCTION_FORMAT"
	// KindSameAccount indicates debit and credit identifiers are identical.
	KindSameAccount Kind = "SAME_ACCOUNT"
	// KindInvalidDateFormat indicates the ON date does not denote a valid
	// calendar date.
	KindInvalidDateFormat Kind = "INVALID_DATE_FORMAT"
)

// ParseError is a classified instruction parse failure.
type ParseError struct {
	Kind    Kind
	Message string
}

// Error returns the formatted parse error string.
func (e ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewParseError creates a parse error with kind and message.
func NewParseError(kind Kind, message string) error {
	return ParseError{Kind: kind, Message: message}
}
