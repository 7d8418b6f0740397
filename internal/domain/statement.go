package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementRow records one balance-affecting event on an account. Amount is
// signed: positive for credits, negative for debits. BalanceAfter is the
// account balance immediately after the event was applied. Rows are immutable
// once recorded.
type StatementRow struct {
	ID            string
	AccountNumber string
	Amount        decimal.Decimal
	BalanceAfter  decimal.Decimal
	Date          time.Time
	RecordedAt    time.Time
	Description   string
}
