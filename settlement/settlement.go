package settlement

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerline/instruction-engine/instruction"
)

// Status represents the terminal state of an evaluated instruction.
type Status string

const (
	// StatusPending marks an instruction scheduled for a future date.
	StatusPending Status = "pending"
	// StatusFailed marks an instruction rejected by a business-rule check.
	StatusFailed Status = "failed"
	// StatusSuccessful marks an instruction that settled.
	StatusSuccessful Status = "successful"
)

// Outcome status codes for evaluator decisions. Parser failures carry the
// instruction.Kind value as their code instead.
const (
	// CodeTransactionPending identifies instructions deferred to a later date.
	CodeTransactionPending = "TRANSACTION_PENDING"
	// CodeAccountNotFound identifies instructions referencing unknown accounts.
	CodeAccountNotFound = "ACCOUNT_NOT_FOUND"
	// CodeCurrencyMismatch identifies instructions whose currency does not
	// match both accounts.
	CodeCurrencyMismatch = "CURRENCY_MISMATCH"
	// CodeInsufficientFunds identifies instructions the debit account cannot cover.
	CodeInsufficientFunds = "INSUFFICIENT_FUNDS"
	// CodeTransactionSuccessful identifies settled instructions.
	CodeTransactionSuccessful = "TRANSACTION_SUCCESSFUL"
)

// Account is a candidate balance supplied with the request. It is never
// persisted and never mutated; settled outcomes carry derived copies with
// BalanceBefore populated.
type Account struct {
	ID            string           `json:"id"`
	Balance       decimal.Decimal  `json:"balance"`
	BalanceBefore *decimal.Decimal `json:"balance_before,omitempty"`
	Currency      string           `json:"currency"`
}

// Outcome is the terminal decision record for one instruction. The parsed
// instruction fields are flattened into it for caller convenience. Accounts
// holds 0, 1, or 2 entries depending on how far evaluation progressed,
// preserving request order.
type Outcome struct {
	Type          instruction.Type  `json:"type,omitempty"`
	Amount        decimal.Decimal   `json:"amount"`
	Currency      string            `json:"currency,omitempty"`
	DebitAccount  string            `json:"debit_account,omitempty"`
	CreditAccount string            `json:"credit_account,omitempty"`
	ExecuteBy     *instruction.Date `json:"execute_by"`
	Status        Status            `json:"status"`
	StatusReason  string            `json:"status_reason"`
	StatusCode    string            `json:"status_code"`
	Accounts      []Account         `json:"accounts"`
}
