package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bankledger/internal/domain"
)

var (
	hundred     = decimal.NewFromInt(100)
	daysPerYear = decimal.NewFromInt(365)
)

// InterestToDate computes the interest accrued on the account from its anchor
// date up to toDate, using the annual rate configured for the account type:
//
//	interest = balance * rate/100 * days/365
//
// The anchor date is the event date of the account's most recently recorded
// statement row, or the opening date if the account has no transactions. The
// calculation is advisory: nothing is posted to the ledger. A toDate on or
// before the anchor date yields zero.
func (l *Ledger) InterestToDate(accountNumber string, toDate time.Time) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.index[accountNumber]
	if !ok {
		return decimal.Zero, domain.ErrAccountNotFound
	}
	if err := domain.ValidateNotFuture(toDate, l.clock.Now()); err != nil {
		return decimal.Zero, err
	}

	anchor := account.OpenedAt
	for i := len(l.log) - 1; i >= 0; i-- {
		if l.log[i].AccountNumber == accountNumber {
			anchor = l.log[i].Date
			break
		}
	}

	days := domain.DaysBetween(anchor, toDate)
	if days <= 0 {
		return decimal.Zero, nil
	}

	rate := l.rates[account.Type]
	interest := account.Balance.
		Mul(rate).Div(hundred).
		Mul(decimal.NewFromInt(int64(days))).Div(daysPerYear).
		Round(2)

	return interest, nil
}
