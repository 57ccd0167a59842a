package domain

import "errors"

var (
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrSameAccount         = errors.New("sender and receiver cannot be the same")
	ErrCurrencyMismatch    = errors.New("currency must match receiver's account currency")
	ErrInsufficientFunds   = errors.New("insufficient balance in the sender's account")
	ErrRateUnavailable     = errors.New("exchange rate unavailable")
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrConcurrencyConflict = errors.New("concurrent balance update conflict")
)

// ErrorKind maps a domain error to its stable machine-readable kind.
// Unrecognized errors map to INTERNAL so no storage or provider detail
// leaks to callers.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return "INVALID_AMOUNT"
	case errors.Is(err, ErrSameAccount):
		return "SAME_ACCOUNT"
	case errors.Is(err, ErrCurrencyMismatch):
		return "CURRENCY_MISMATCH"
	case errors.Is(err, ErrInsufficientFunds):
		return "INSUFFICIENT_FUNDS"
	case errors.Is(err, ErrRateUnavailable):
		return "RATE_UNAVAILABLE"
	case errors.Is(err, ErrAccountNotFound):
		return "ACCOUNT_NOT_FOUND"
	case errors.Is(err, ErrTransactionNotFound):
		return "TRANSACTION_NOT_FOUND"
	case errors.Is(err, ErrConcurrencyConflict):
		return "CONCURRENCY_CONFLICT"
	default:
		return "INTERNAL"
	}
}
