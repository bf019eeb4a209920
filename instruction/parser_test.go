package instruction

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Parse -- happy paths
// ---------------------------------------------------------------------------

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Parsed
	}{
		{
			name: "debit with from before to",
			raw:  "DEBIT 500 USD FROM ACCOUNT A1 TO ACCOUNT A2",
			expected: Parsed{
				Type:          TypeDebit,
				Amount:        decimal.NewFromInt(500),
				Currency:      "USD",
				DebitAccount:  "A1",
				CreditAccount: "A2",
			},
		},
		{
			name: "credit with to before from",
			raw:  "CREDIT 250 NGN TO ACCOUNT savings-01 FROM ACCOUNT current_02",
			expected: Parsed{
				Type:          TypeCredit,
				Amount:        decimal.NewFromInt(250),
				Currency:      "NGN",
				DebitAccount:  "current_02",
				CreditAccount: "savings-01",
			},
		},
		{
			name: "lowercase keywords and currency are normalized",
			raw:  "debit 42 gbp from account A.1 to account B.2",
			expected: Parsed{
				Type:          TypeDebit,
				Amount:        decimal.NewFromInt(42),
				Currency:      "GBP",
				DebitAccount:  "A.1",
				CreditAccount: "B.2",
			},
		},
		{
			name: "case-sensitive identifiers are preserved",
			raw:  "DEBIT 10 GHS FROM ACCOUNT Alpha TO ACCOUNT alpha",
			expected: Parsed{
				Type:          TypeDebit,
				Amount:        decimal.NewFromInt(10),
				Currency:      "GHS",
				DebitAccount:  "Alpha",
				CreditAccount: "alpha",
			},
		},
		{
			name: "surrounding and repeated whitespace is ignored",
			raw:  "  DEBIT   500  USD   FROM ACCOUNT A1   TO ACCOUNT A2  ",
			expected: Parsed{
				Type:          TypeDebit,
				Amount:        decimal.NewFromInt(500),
				Currency:      "USD",
				DebitAccount:  "A1",
				CreditAccount: "A2",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.raw)

			require.NoError(t, err)
			assert.Equal(t, tt.expected.Type, got.Type)
			assert.True(t, tt.expected.Amount.Equal(got.Amount))
			assert.Equal(t, tt.expected.Currency, got.Currency)
			assert.Equal(t, tt.expected.DebitAccount, got.DebitAccount)
			assert.Equal(t, tt.expected.CreditAccount, got.CreditAccount)
			assert.Nil(t, got.ExecuteBy)
		})
	}
}

func TestParse_ExecuteBy(t *testing.T) {
	t.Parallel()

	got, err := Parse("DEBIT 500 USD FROM ACCOUNT A1 TO ACCOUNT A2 ON 2025-01-01")

	require.NoError(t, err)
	require.NotNil(t, got.ExecuteBy)
	assert.Equal(t, "2025-01-01", got.ExecuteBy.String())
}

func TestParse_Idempotent(t *testing.T) {
	t.Parallel()

	raw := "CREDIT 99 GHS TO ACCOUNT dest FROM ACCOUNT src ON 2030-12-31"

	first, err := Parse(raw)
	require.NoError(t, err)

	second, err := Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// ---------------------------------------------------------------------------
// Parse -- failure classification and ordering
// ---------------------------------------------------------------------------

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind Kind
	}{
		{name: "empty instruction", raw: "   ", kind: KindMalformedInstruction},
		{name: "unknown leading keyword", raw: "TRANSFER 500 USD FROM ACCOUNT A1 TO ACCOUNT A2", kind: KindMalformedInstruction},
		{name: "missing amount", raw: "DEBIT", kind: KindInvalidAmount},
		{name: "non-numeric amount", raw: "DEBIT abc USD FROM ACCOUNT A1 TO ACCOUNT A2", kind: KindInvalidAmount},
		{name: "zero amount", raw: "DEBIT 0 USD FROM ACCOUNT A1 TO ACCOUNT A2", kind: KindInvalidAmount},
		{name: "negative amount", raw: "DEBIT -5 USD FROM ACCOUNT A1 TO ACCOUNT A2", kind: KindInvalidAmount},
		{name: "fractional amount", raw: "DEBIT 10.5 USD FROM ACCOUNT A1 TO ACCOUNT A2", kind: KindInvalidAmount},
		{name: "missing currency", raw: "DEBIT 500", kind: KindUnsupportedCurrency},
		{name: "unsupported currency", raw: "CREDIT 100 EUR TO ACCOUNT A2 FROM ACCOUNT A1", kind: KindUnsupportedCurrency},
		{name: "missing route entirely", raw: "DEBIT 500 USD", kind: KindMalformedInstruction},
		{name: "missing TO keyword", raw: "DEBIT 500 USD FROM ACCOUNT A1", kind: KindMalformedInstruction},
		{name: "missing FROM keyword", raw: "DEBIT 500 USD TO ACCOUNT A2", kind: KindMalformedInstruction},
		{name: "debit with to before from", raw: "DEBIT 500 USD TO ACCOUNT A2 FROM ACCOUNT A1", kind: KindMalformedInstruction},
		{name: "credit with from before to", raw: "CREDIT 500 USD FROM ACCOUNT A1 TO ACCOUNT A2", kind: KindMalformedInstruction},
		{name: "route missing ACCOUNT keyword", raw: "DEBIT 500 USD FROM A1 TO ACCOUNT A2", kind: KindInvalidInstructionFormat},
		{name: "route missing identifier", raw: "DEBIT 500 USD FROM ACCOUNT A1 TO ACCOUNT", kind: KindInvalidInstructionFormat},
		{name: "identifier with disallowed characters", raw: "DEBIT 500 USD FROM ACCOUNT A/1 TO ACCOUNT A2", kind: KindInvalidInstructionFormat},
		{name: "same debit and credit account", raw: "DEBIT 100 USD FROM ACCOUNT A1 TO ACCOUNT A1", kind: KindSameAccount},
		{name: "ON without a date", raw: "DEBIT 500 USD FROM ACCOUNT A1 TO ACCOUNT A2 ON", kind: KindInvalidDateFormat},
		{name: "ON with garbage date", raw: "DEBIT 500 USD FROM ACCOUNT A1 TO ACCOUNT A2 ON tomorrow", kind: KindInvalidDateFormat},
		{name: "ON with overflowing day", raw: "DEBIT 500 USD FROM ACCOUNT A1 TO ACCOUNT A2 ON 2025-02-30", kind: KindInvalidDateFormat},
		{name: "ON with non-leap february 29", raw: "DEBIT 500 USD FROM ACCOUNT A1 TO ACCOUNT A2 ON 2023-02-29", kind: KindInvalidDateFormat},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.raw)

			require.Error(t, err)

			var parseErr ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.kind, parseErr.Kind)
		})
	}
}

// The first failing check wins: an instruction broken in several ways is
// classified by the earliest rule in the sequence.
func TestParse_FirstFailureWins(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind Kind
	}{
		{name: "bad type beats bad amount", raw: "PAY abc EUR", kind: KindMalformedInstruction},
		{name: "bad amount beats bad currency", raw: "DEBIT abc EUR FROM ACCOUNT A1 TO ACCOUNT A1", kind: KindInvalidAmount},
		{name: "bad currency beats missing route", raw: "DEBIT 100 EUR", kind: KindUnsupportedCurrency},
		{name: "bad route beats same account", raw: "DEBIT 100 USD TO ACCOUNT A1 FROM ACCOUNT A1", kind: KindMalformedInstruction},
		{name: "same account beats bad date", raw: "DEBIT 100 USD FROM ACCOUNT A1 TO ACCOUNT A1 ON 2025-02-30", kind: KindSameAccount},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.raw)

			require.Error(t, err)

			var parseErr ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.kind, parseErr.Kind)
		})
	}
}

func TestSupportedCurrency(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"USD", "NGN", "GBP", "GHS"} {
		assert.True(t, SupportedCurrency(code), code)
	}

	assert.False(t, SupportedCurrency("EUR"))
	assert.False(t, SupportedCurrency("usd"), "lookup is on the normalized form only")
}
