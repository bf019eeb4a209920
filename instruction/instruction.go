package instruction

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// Type represents the direction of a payment instruction.
type Type string

const (
	// TypeDebit identifies instructions that lead with the debit side.
	TypeDebit Type = "DEBIT"
	// TypeCredit identifies instructions that lead with the credit side.
	TypeCredit Type = "CREDIT"
)

// Grammar keywords. Matching is case-insensitive; account identifiers are not.
const (
	keywordFrom    = "FROM"
	keywordTo      = "TO"
	keywordAccount = "ACCOUNT"
	keywordOn      = "ON"
)

// supportedCurrencies is the fixed allow-list of settlement currencies.
var supportedCurrencies = map[string]struct{}{
	"USD": {},
	"NGN": {},
	"GBP": {},
	"GHS": {},
}

// SupportedCurrency reports whether code (upper-cased) is a settlement
// currency this engine accepts.
func SupportedCurrency(code string) bool {
	_, ok := supportedCurrencies[code]

	return ok
}

// identifierPattern is the allowed account-identifier character set.
var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Parsed is the structured form of a valid payment instruction. It is
// constructed exactly once per request and never mutated afterwards.
type Parsed struct {
	Type          Type            `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	DebitAccount  string          `json:"debit_account"`
	CreditAccount string          `json:"credit_account"`
	ExecuteBy     *Date           `json:"execute_by"`
}
