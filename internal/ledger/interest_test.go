package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/ledger"
)

func TestInterestToDate_Savings(t *testing.T) {
	l := newTestLedger(t)
	account, err := l.OpenSavingsAccount("Alice Jones", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	depositDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mustDeposit(t, l, account.Number, "1000", depositDate)

	// 30 days at the 72% annual savings rate:
	// 1000 * 72/100 * 30/365 = 59.178... -> 59.18
	interest, err := l.InterestToDate(account.Number, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, interest.Equal(decimal.RequireFromString("59.18")), "got %s", interest)
}

func TestInterestToDate_HomeLoan(t *testing.T) {
	l := newTestLedger(t)
	account, err := l.OpenHomeLoanAccount("Bob Smith", time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	mustDeposit(t, l, account.Number, "1000", time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC))

	// Exactly one rate-year: 1000 * 3.99/100 * 365/365 = 39.90
	interest, err := l.InterestToDate(account.Number, time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, interest.Equal(decimal.RequireFromString("39.90")), "got %s", interest)
}

func TestInterestToDate_AnchorIsLastTransaction(t *testing.T) {
	l := newTestLedger(t)
	account, err := l.OpenSavingsAccount("Alice Jones", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// The later deposit moves the anchor; only 10 days accrue.
	mustDeposit(t, l, account.Number, "500", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	mustDeposit(t, l, account.Number, "500", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	interest, err := l.InterestToDate(account.Number, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// 1000 * 72/100 * 10/365 = 19.726... -> 19.73
	assert.True(t, interest.Equal(decimal.RequireFromString("19.73")), "got %s", interest)
}

func TestInterestToDate_SameDayIsZero(t *testing.T) {
	l := newTestLedger(t)
	account, err := l.OpenSavingsAccount("Alice Jones", yesterday)
	require.NoError(t, err)
	mustDeposit(t, l, account.Number, "1000", yesterday)

	// toDate equal to the anchor date must yield zero, not a division fault.
	interest, err := l.InterestToDate(account.Number, yesterday)
	require.NoError(t, err)
	assert.True(t, interest.IsZero())
}

func TestInterestToDate_NoTransactionsUsesOpeningDate(t *testing.T) {
	l := newTestLedger(t)
	account, err := l.OpenSavingsAccount("Alice Jones", yesterday)
	require.NoError(t, err)

	interest, err := l.InterestToDate(account.Number, today)
	require.NoError(t, err)
	assert.True(t, interest.IsZero(), "zero balance accrues zero interest")
}

func TestInterestToDate_Rejections(t *testing.T) {
	l := newTestLedger(t)
	account, err := l.OpenSavingsAccount("Alice Jones", yesterday)
	require.NoError(t, err)

	_, err = l.InterestToDate("SV-999999", today)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = l.InterestToDate(account.Number, tomorrow)
	require.ErrorIs(t, err, domain.ErrFutureDate)
}

func TestInterestToDate_ConfigurableRates(t *testing.T) {
	l := ledger.New(ledger.Config{
		Clock: fixedClock{now: today},
		Rates: map[domain.AccountType]decimal.Decimal{
			domain.AccountTypeSavings:  decimal.NewFromInt(10),
			domain.AccountTypeHomeLoan: decimal.NewFromInt(5),
		},
	})

	account, err := l.OpenSavingsAccount("Alice Jones", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	mustDeposit(t, l, account.Number, "730", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	// 730 * 10/100 * 73/365 = 14.60
	interest, err := l.InterestToDate(account.Number, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, interest.Equal(decimal.RequireFromString("14.60")), "got %s", interest)
}
