package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type TransferUsecase interface {
	Transfer(ctx context.Context, senderAccountNumber, receiverAccountNumber string, amount decimal.Decimal, toCurrency Currency, description string) (*Transaction, error)
	ConvertPreview(ctx context.Context, amount decimal.Decimal, from, to Currency) (*ConversionPreview, error)
	GetTransactionByID(ctx context.Context, id string) (*Transaction, error)
	ListTransactions(ctx context.Context, accountNumber string, page, limit int64, filters TransactionFilters) ([]*Transaction, int64, error)
}

// ConversionPreview is a read-only conversion with the same semantics as a
// real transfer but no balance mutation.
type ConversionPreview struct {
	FromCurrency    Currency
	ToCurrency      Currency
	Amount          decimal.Decimal
	ConvertedAmount decimal.Decimal
	ExchangeRate    decimal.Decimal
	Source          RateSource
}
