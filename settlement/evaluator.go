package settlement

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/instruction-engine/instruction"
)

// Evaluator runs the instruction state machine. The zero-cost construction
// via New keeps the wall clock injectable for the schedule check.
type Evaluator struct {
	now func() time.Time
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithNow overrides the wall clock used by the schedule check.
func WithNow(now func() time.Time) Option {
	return func(e *Evaluator) {
		e.now = now
	}
}

// New creates an Evaluator.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{now: time.Now}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// EvaluateInstruction parses a raw instruction and evaluates it against the
// supplied accounts. Parse failures are folded into a failed Outcome carrying
// the classification as status code; the returned error is reserved for
// systemic failures that cannot be represented as an Outcome.
func (e *Evaluator) EvaluateInstruction(accounts []Account, raw string) (Outcome, error) {
	parsed, err := instruction.Parse(raw)
	if err != nil {
		var parseErr instruction.ParseError
		if !errors.As(err, &parseErr) {
			return Outcome{}, err
		}

		return Outcome{
			Status:       StatusFailed,
			StatusReason: parseErr.Message,
			StatusCode:   string(parseErr.Kind),
			Accounts:     []Account{},
		}, nil
	}

	return e.Evaluate(parsed, accounts), nil
}

// Evaluate decides the outcome of a parsed instruction. It is a pure
// function of its arguments and the evaluator's clock; it never fails.
func (e *Evaluator) Evaluate(parsed instruction.Parsed, accounts []Account) Outcome {
	outcome := Outcome{
		Type:          parsed.Type,
		Amount:        parsed.Amount,
		Currency:      parsed.Currency,
		DebitAccount:  parsed.DebitAccount,
		CreditAccount: parsed.CreditAccount,
		ExecuteBy:     parsed.ExecuteBy,
		Accounts:      []Account{},
	}

	if parsed.ExecuteBy != nil && parsed.ExecuteBy.After(instruction.DateOf(e.now())) {
		outcome.Status = StatusPending
		outcome.StatusReason = "transaction pending"
		outcome.StatusCode = CodeTransactionPending

		return outcome
	}

	debit, debitFound := lookup(accounts, parsed.DebitAccount)
	credit, creditFound := lookup(accounts, parsed.CreditAccount)

	if !debitFound || !creditFound {
		outcome.Status = StatusFailed
		outcome.StatusReason = missingAccountReason(debitFound, creditFound)
		outcome.StatusCode = CodeAccountNotFound
		outcome.Accounts = echoFound(accounts, parsed, debitFound, creditFound)

		return outcome
	}

	if !strings.EqualFold(debit.Currency, parsed.Currency) || !strings.EqualFold(credit.Currency, parsed.Currency) {
		outcome.Status = StatusFailed
		outcome.StatusReason = "account currency does not match instruction currency"
		outcome.StatusCode = CodeCurrencyMismatch
		outcome.Accounts = []Account{echo(debit), echo(credit)}

		return outcome
	}

	if debit.Balance.LessThan(parsed.Amount) {
		outcome.Status = StatusFailed
		outcome.StatusReason = "insufficient funds in debit account"
		outcome.StatusCode = CodeInsufficientFunds
		outcome.Accounts = []Account{echo(debit), echo(credit)}

		return outcome
	}

	outcome.Status = StatusSuccessful
	outcome.StatusReason = "transaction executed successfully"
	outcome.StatusCode = CodeTransactionSuccessful
	outcome.Accounts = []Account{
		settle(debit, parsed.Amount.Neg()),
		settle(credit, parsed.Amount),
	}

	return outcome
}

// lookup finds an account by its case-sensitive identifier.
func lookup(accounts []Account, id string) (Account, bool) {
	for _, account := range accounts {
		if account.ID == id {
			return account, true
		}
	}

	return Account{}, false
}

func missingAccountReason(debitFound, creditFound bool) string {
	switch {
	case !debitFound && !creditFound:
		return "debit and credit accounts not found"
	case !debitFound:
		return "debit account not found"
	default:
		return "credit account not found"
	}
}

// echoFound returns the route accounts that were resolved, preserving the
// order in which they were supplied.
func echoFound(accounts []Account, parsed instruction.Parsed, debitFound, creditFound bool) []Account {
	found := []Account{}

	for _, account := range accounts {
		if (debitFound && account.ID == parsed.DebitAccount) || (creditFound && account.ID == parsed.CreditAccount) {
			found = append(found, echo(account))
		}
	}

	return found
}

// echo returns a copy of the account with BalanceBefore recorded and the
// balance untouched. Failed outcomes use it so callers can tell no money moved.
func echo(account Account) Account {
	before := account.Balance

	account.BalanceBefore = &before

	return account
}

// settle returns a derived copy of the account with the delta applied and the
// original balance recorded.
func settle(account Account, delta decimal.Decimal) Account {
	before := account.Balance

	account.Balance = account.Balance.Add(delta)
	account.BalanceBefore = &before

	return account
}
