package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpenAccountRequest represents a request to open an account.
type OpenAccountRequest struct {
	CustomerName string     `json:"customer_name"`
	Type         string     `json:"type"`
	OpenedAt     *time.Time `json:"opened_at,omitempty"`
}

// DepositRequest represents a request to deposit into an account.
type DepositRequest struct {
	AccountNumber string          `json:"account_number"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          *time.Time      `json:"date,omitempty"`
}

// WithdrawalRequest represents a request to withdraw from an account.
type WithdrawalRequest struct {
	AccountNumber string          `json:"account_number"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          *time.Time      `json:"date,omitempty"`
}

// TransferRequest represents a request to transfer between accounts.
type TransferRequest struct {
	FromAccountNumber string          `json:"from_account_number"`
	ToAccountNumber   string          `json:"to_account_number"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description"`
	Date              *time.Time      `json:"date,omitempty"`
}

// EventDate resolves an optional caller-supplied date, defaulting to now.
func EventDate(date *time.Time) time.Time {
	if date != nil {
		return *date
	}
	return time.Now().UTC()
}
