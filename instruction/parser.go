package instruction

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts a raw instruction string into its structured form, or fails
// with a ParseError classifying the first violated rule.
//
// The grammar is keyword-positional: FROM, TO, and ON are located anywhere in
// the token sequence rather than at fixed slots, but for a DEBIT instruction
// FROM must occur before TO, and for a CREDIT instruction TO must occur before
// FROM. Regardless of ordering, the account after FROM is always the debit
// side and the account after TO is always the credit side.
func Parse(raw string) (Parsed, error) {
	tokens := strings.Fields(raw)

	typ, err := parseType(tokens)
	if err != nil {
		return Parsed{}, err
	}

	amount, err := parseAmount(tokens)
	if err != nil {
		return Parsed{}, err
	}

	currency, err := parseCurrency(tokens)
	if err != nil {
		return Parsed{}, err
	}

	fromIndex := indexOfKeyword(tokens, keywordFrom)
	toIndex := indexOfKeyword(tokens, keywordTo)

	if fromIndex < 0 || toIndex < 0 {
		return Parsed{}, NewParseError(KindMalformedInstruction, "instruction must contain both FROM and TO route keywords")
	}

	if typ == TypeDebit && fromIndex > toIndex {
		return Parsed{}, NewParseError(KindMalformedInstruction, "DEBIT instructions must state FROM before TO")
	}

	if typ == TypeCredit && toIndex > fromIndex {
		return Parsed{}, NewParseError(KindMalformedInstruction, "CREDIT instructions must state TO before FROM")
	}

	debitAccount := accountAt(tokens, fromIndex)
	creditAccount := accountAt(tokens, toIndex)

	for _, id := range []string{debitAccount, creditAccount} {
		if id != "" && !identifierPattern.MatchString(id) {
			return Parsed{}, NewParseError(KindInvalidInstructionFormat, "account identifier "+id+" contains disallowed characters")
		}
	}

	if debitAccount == "" || creditAccount == "" {
		return Parsed{}, NewParseError(KindInvalidInstructionFormat, "instruction route is incomplete")
	}

	if debitAccount == creditAccount {
		return Parsed{}, NewParseError(KindSameAccount, "debit and credit accounts must differ")
	}

	executeBy, err := parseExecuteBy(tokens)
	if err != nil {
		return Parsed{}, err
	}

	return Parsed{
		Type:          typ,
		Amount:        amount,
		Currency:      currency,
		DebitAccount:  debitAccount,
		CreditAccount: creditAccount,
		ExecuteBy:     executeBy,
	}, nil
}

func parseType(tokens []string) (Type, error) {
	if len(tokens) == 0 {
		return "", NewParseError(KindMalformedInstruction, "instruction is empty")
	}

	switch Type(strings.ToUpper(tokens[0])) {
	case TypeDebit:
		return TypeDebit, nil
	case TypeCredit:
		return TypeCredit, nil
	default:
		return "", NewParseError(KindMalformedInstruction, "instruction must start with DEBIT or CREDIT")
	}
}

func parseAmount(tokens []string) (decimal.Decimal, error) {
	if len(tokens) < 2 {
		return decimal.Zero, NewParseError(KindInvalidAmount, "instruction is missing an amount")
	}

	amount, err := decimal.NewFromString(tokens[1])
	if err != nil {
		return decimal.Zero, NewParseError(KindInvalidAmount, "amount "+tokens[1]+" is not a number")
	}

	if !amount.IsInteger() || !amount.IsPositive() {
		return decimal.Zero, NewParseError(KindInvalidAmount, "amount must be a positive integer")
	}

	return amount, nil
}

func parseCurrency(tokens []string) (string, error) {
	if len(tokens) < 3 {
		return "", NewParseError(KindUnsupportedCurrency, "instruction is missing a currency")
	}

	currency := strings.ToUpper(tokens[2])
	if !SupportedCurrency(currency) {
		return "", NewParseError(KindUnsupportedCurrency, "currency "+currency+" is not supported")
	}

	return currency, nil
}

func parseExecuteBy(tokens []string) (*Date, error) {
	onIndex := indexOfKeyword(tokens, keywordOn)
	if onIndex < 0 {
		return nil, nil
	}

	if onIndex+1 >= len(tokens) {
		return nil, NewParseError(KindInvalidDateFormat, "ON must be followed by a YYYY-MM-DD date")
	}

	date, err := ParseDate(tokens[onIndex+1])
	if err != nil {
		return nil, NewParseError(KindInvalidDateFormat, err.Error())
	}

	return &date, nil
}

// accountAt resolves the identifier of the route leg starting at the keyword
// position, requiring the literal ACCOUNT keyword in between. A malformed leg
// resolves to the empty string rather than failing immediately, so that the
// completeness check reports it with the right classification.
func accountAt(tokens []string, keywordIndex int) string {
	if keywordIndex+2 >= len(tokens) {
		return ""
	}

	if !strings.EqualFold(tokens[keywordIndex+1], keywordAccount) {
		return ""
	}

	return tokens[keywordIndex+2]
}

// indexOfKeyword returns the position of the first case-insensitive match, or
// -1 when the keyword is absent.
func indexOfKeyword(tokens []string, keyword string) int {
	for i, token := range tokens {
		if strings.EqualFold(token, keyword) {
			return i
		}
	}

	return -1
}
