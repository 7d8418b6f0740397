package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/ledger"
)

// LedgerService defines the ledger behavior the HTTP handlers need.
type LedgerService interface {
	OpenAccount(t domain.AccountType, customerName string, openedAt time.Time) (domain.Account, error)
	Account(accountNumber string) (domain.Account, error)
	Accounts() []domain.Account
	Balance(accountNumber string) (decimal.Decimal, error)
	Deposit(accountNumber string, amount decimal.Decimal, description string, date time.Time) (domain.StatementRow, error)
	Withdraw(accountNumber string, amount decimal.Decimal, description string, date time.Time) (domain.StatementRow, error)
	Transfer(fromNumber, toNumber string, amount decimal.Decimal, description string, date time.Time) (domain.StatementRow, domain.StatementRow, error)
	MiniStatement(accountNumber string) ([]domain.StatementRow, error)
	InterestToDate(accountNumber string, toDate time.Time) (decimal.Decimal, error)
	CloseAccount(accountNumber string, closeDate time.Time) ([]domain.StatementRow, error)
	CheckConsistency() ledger.ConsistencyReport
}
