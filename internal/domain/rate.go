package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type RateSource string

const (
	RateSourceRemote   RateSource = "REMOTE"
	RateSourceFallback RateSource = "FALLBACK"
)

// RateQuote is an ephemeral exchange-rate snapshot. It is consumed by the
// converter and recorded on the transaction for audit, never persisted itself.
type RateQuote struct {
	From        Currency
	To          Currency
	Rate        decimal.Decimal
	Source      RateSource
	RetrievedAt time.Time
}

type ExchangeRateProvider interface {
	GetRate(ctx context.Context, from, to Currency) (*RateQuote, error)
	GetName() string
}
