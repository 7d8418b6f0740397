package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/bankledger/internal/domain"
)

func TestAccountType(t *testing.T) {
	assert.Equal(t, "SV", domain.AccountTypeSavings.Prefix())
	assert.Equal(t, "LN", domain.AccountTypeHomeLoan.Prefix())
	assert.Equal(t, "", domain.AccountType("checking").Prefix())

	assert.True(t, domain.AccountTypeSavings.Valid())
	assert.True(t, domain.AccountTypeHomeLoan.Valid())
	assert.False(t, domain.AccountType("checking").Valid())
}

func TestFormatAccountNumber(t *testing.T) {
	assert.Equal(t, "SV-000001", domain.FormatAccountNumber(domain.AccountTypeSavings, 1))
	assert.Equal(t, "LN-000042", domain.FormatAccountNumber(domain.AccountTypeHomeLoan, 42))
	assert.Equal(t, "SV-999999", domain.FormatAccountNumber(domain.AccountTypeSavings, 999999))
}

func TestAccount_ValidateWithdrawal(t *testing.T) {
	account := &domain.Account{Balance: decimal.NewFromInt(50)}

	require.NoError(t, account.ValidateWithdrawal(decimal.NewFromInt(50)))
	require.ErrorIs(t, account.ValidateWithdrawal(decimal.NewFromInt(51)), domain.ErrInsufficientFunds)
	require.ErrorIs(t, account.ValidateWithdrawal(decimal.Zero), domain.ErrInvalidAmount)
	require.ErrorIs(t, account.ValidateWithdrawal(decimal.NewFromInt(-1)), domain.ErrInvalidAmount)
}

func TestAccount_ApplyDebitCredit(t *testing.T) {
	account := &domain.Account{Balance: decimal.NewFromInt(100)}

	assert.True(t, account.ApplyCredit(decimal.NewFromInt(25)).Equal(decimal.NewFromInt(125)))
	assert.True(t, account.ApplyDebit(decimal.NewFromInt(25)).Equal(decimal.NewFromInt(75)))
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(100)), "Apply helpers must not mutate")
}
