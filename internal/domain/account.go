package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType identifies the product an account belongs to. Each type has its
// own number prefix, its own sequence counter, and its own interest rate.
type AccountType string

const (
	AccountTypeSavings  AccountType = "savings"
	AccountTypeHomeLoan AccountType = "home_loan"
)

// AccountNumberDigits is the width of the numeric part of an account number.
const AccountNumberDigits = 6

// MaxAccountSequence is the highest sequence number an account type can issue.
const MaxAccountSequence = 999999

// Prefix returns the account-number prefix for the type.
func (t AccountType) Prefix() string {
	switch t {
	case AccountTypeSavings:
		return "SV"
	case AccountTypeHomeLoan:
		return "LN"
	default:
		return ""
	}
}

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	return t == AccountTypeSavings || t == AccountTypeHomeLoan
}

// FormatAccountNumber builds an account number from a type prefix and a
// sequence value, zero-padded to AccountNumberDigits.
func FormatAccountNumber(t AccountType, seq int) string {
	return fmt.Sprintf("%s-%0*d", t.Prefix(), AccountNumberDigits, seq)
}

// Account represents one open bank account. Number, CustomerName, Type and
// OpenedAt are immutable after creation; Balance is mutated only by the
// ledger, which hands out value copies to callers.
type Account struct {
	Number       string
	CustomerName string
	Type         AccountType
	OpenedAt     time.Time
	Balance      decimal.Decimal
}

// ValidateWithdrawal checks if the account can be debited by amount.
// Overdrafts are not allowed.
func (a *Account) ValidateWithdrawal(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if amount.GreaterThan(a.Balance) {
		return fmt.Errorf("%w: balance %s, requested %s", ErrInsufficientFunds, a.Balance, amount)
	}
	return nil
}

// ApplyCredit returns the balance after crediting amount.
func (a *Account) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}

// ApplyDebit returns the balance after debiting amount.
func (a *Account) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}
