package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusFailed    TransactionStatus = "FAILED"
)

// Transaction is the immutable record of a completed transfer.
// Amount is denominated in the sender's currency, ConvertedAmount in the
// receiver's. ExchangeRate is the unadjusted market rate used for the
// conversion (1.0 when both accounts share a currency).
type Transaction struct {
	ID                    string
	SenderAccountNumber   string
	ReceiverAccountNumber string
	Amount                decimal.Decimal
	ConvertedAmount       decimal.Decimal
	ExchangeRate          decimal.Decimal
	Currency              Currency
	ToCurrency            Currency
	Description           string
	Status                TransactionStatus
	CreatedAt             time.Time
}

// TransactionFilters narrow ledger queries. Zero values are ignored,
// non-zero filters are conjunctive.
type TransactionFilters struct {
	Status   TransactionStatus
	DateFrom time.Time
	DateTo   time.Time
}
