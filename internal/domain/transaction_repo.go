package domain

import "context"

type TransactionRepository interface {
	// SaveTransfer applies both balance mutations and appends the
	// transaction record in one atomic unit. Either everything is
	// durable or nothing is. Returns ErrInsufficientFunds when the
	// sender's balance no longer covers the debit under lock, and
	// ErrConcurrencyConflict when the update loses a race and may be
	// retried.
	SaveTransfer(ctx context.Context, transaction *Transaction) error

	GetTransactionByID(ctx context.Context, id string) (*Transaction, error)

	// ListByAccount returns transactions where the account is sender or
	// receiver, newest first.
	ListByAccount(ctx context.Context, accountNumber string, page, limit int64, filters TransactionFilters) ([]*Transaction, int64, error)
}
