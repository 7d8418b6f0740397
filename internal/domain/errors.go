package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidAccountType = errors.New("unknown account type")
	ErrSequenceExhausted  = errors.New("account number sequence exhausted")

	// Operation errors
	ErrInvalidCustomerName = errors.New("invalid customer name")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrFutureDate          = errors.New("date is in the future")
	ErrSameAccount         = errors.New("cannot transfer to same account")
)
