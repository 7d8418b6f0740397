package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxCustomerNameLength = 255
)

// ValidateCustomerName validates a customer name. Names must be non-empty
// after trimming whitespace.
func ValidateCustomerName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidCustomerName)
	}

	if len(name) > MaxCustomerNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidCustomerName, MaxCustomerNameLength)
	}

	return nil
}

// ValidateAmount validates a monetary amount. Amounts must be strictly
// positive and carry no more precision than the currency does (2 fractional
// digits).
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if !amount.Equal(amount.Round(2)) {
		return fmt.Errorf("%w: at most 2 decimal places allowed", ErrInvalidAmount)
	}

	return nil
}

// DateOnly truncates a timestamp to its UTC calendar date. All "is this date
// in the future" comparisons ignore the time of day.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidateNotFuture rejects dates whose calendar date is after now's.
func ValidateNotFuture(date, now time.Time) error {
	if DateOnly(date).After(DateOnly(now)) {
		return fmt.Errorf("%w: %s", ErrFutureDate, DateOnly(date).Format("2006-01-02"))
	}
	return nil
}

// DaysBetween returns the whole number of calendar days from one date to
// another. Negative if to is before from.
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)) / (24 * time.Hour))
}
