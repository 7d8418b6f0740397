package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/ledger"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	Number       string          `json:"number"`
	CustomerName string          `json:"customer_name"`
	Type         string          `json:"type"`
	OpenedAt     time.Time       `json:"opened_at"`
	Balance      decimal.Decimal `json:"balance"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a domain.Account) AccountResponse {
	return AccountResponse{
		Number:       a.Number,
		CustomerName: a.CustomerName,
		Type:         string(a.Type),
		OpenedAt:     a.OpenedAt,
		Balance:      a.Balance,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []domain.Account) []AccountResponse {
	result := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps an account list.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Total    int               `json:"total"`
}

// StatementRowResponse represents a statement row in API responses.
type StatementRowResponse struct {
	ID            string          `json:"id"`
	AccountNumber string          `json:"account_number"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	Date          time.Time       `json:"date"`
	RecordedAt    time.Time       `json:"recorded_at"`
	Description   string          `json:"description"`
}

// StatementRowFromDomain converts a domain statement row to a response.
func StatementRowFromDomain(r domain.StatementRow) StatementRowResponse {
	return StatementRowResponse{
		ID:            r.ID,
		AccountNumber: r.AccountNumber,
		Amount:        r.Amount,
		BalanceAfter:  r.BalanceAfter,
		Date:          r.Date,
		RecordedAt:    r.RecordedAt,
		Description:   r.Description,
	}
}

// StatementRowsFromDomain converts domain statement rows to responses.
func StatementRowsFromDomain(rows []domain.StatementRow) []StatementRowResponse {
	result := make([]StatementRowResponse, len(rows))
	for i, r := range rows {
		result[i] = StatementRowFromDomain(r)
	}
	return result
}

// TransferResponse carries both rows produced by a transfer.
type TransferResponse struct {
	Debit  StatementRowResponse `json:"debit"`
	Credit StatementRowResponse `json:"credit"`
}

// BalanceResponse represents a balance query result.
type BalanceResponse struct {
	AccountNumber string          `json:"account_number"`
	Balance       decimal.Decimal `json:"balance"`
}

// InterestResponse represents an interest calculation result.
type InterestResponse struct {
	AccountNumber string          `json:"account_number"`
	ToDate        string          `json:"to_date"`
	Interest      decimal.Decimal `json:"interest"`
}

// CloseAccountResponse returns the closed account's full history.
type CloseAccountResponse struct {
	AccountNumber string                 `json:"account_number"`
	Rows          []StatementRowResponse `json:"rows"`
}

// ConsistencyResponse represents a ledger consistency check result.
type ConsistencyResponse struct {
	Consistent   bool            `json:"consistent"`
	TotalBalance decimal.Decimal `json:"total_balance"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Mismatches   []string        `json:"mismatches,omitempty"`
}

// ConsistencyFromReport converts a ledger report to a response.
func ConsistencyFromReport(r ledger.ConsistencyReport) ConsistencyResponse {
	return ConsistencyResponse{
		Consistent:   r.Consistent,
		TotalBalance: r.TotalBalance,
		TotalAmount:  r.TotalAmount,
		Mismatches:   r.Mismatches,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
