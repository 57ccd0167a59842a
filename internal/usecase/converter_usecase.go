package usecase

import (
	"context"

	"github.com/finovabank/banking-service/internal/domain"
	"github.com/shopspring/decimal"
)

type CurrencyConverter interface {
	Convert(ctx context.Context, amount decimal.Decimal, from, to domain.Currency) (*ConversionResult, error)
}

// ConversionResult carries the receiver's proceeds plus the market rate that
// produced them. Rate is the unadjusted quote so the audit trail shows the
// market price, not the spread-adjusted effective rate.
type ConversionResult struct {
	ConvertedAmount decimal.Decimal
	Rate            decimal.Decimal
	Source          domain.RateSource
}

// DefaultCurrencyConverter applies the configured spread fraction to
// cross-currency conversions. The spread is subtracted from the receiver's
// proceeds, it is the bank's conversion margin.
type DefaultCurrencyConverter struct {
	rates  ExchangeRateService
	spread decimal.Decimal
}

func NewDefaultCurrencyConverter(rates ExchangeRateService, spreadFraction float64) *DefaultCurrencyConverter {
	return &DefaultCurrencyConverter{
		rates:  rates,
		spread: decimal.NewFromFloat(spreadFraction),
	}
}

func (c *DefaultCurrencyConverter) Convert(ctx context.Context, amount decimal.Decimal, from, to domain.Currency) (*ConversionResult, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	// Same-currency transfers move at par with no spread.
	if from == to {
		return &ConversionResult{
			ConvertedAmount: amount,
			Rate:            decimal.NewFromInt(1),
			Source:          domain.RateSourceFallback,
		}, nil
	}

	quote, err := c.rates.GetQuote(ctx, from, to)
	if err != nil {
		return nil, err
	}

	// Rounding happens once, at the end, so the spread never compounds a
	// rounding error from the base conversion.
	base := amount.Mul(quote.Rate)
	converted := base.Mul(decimal.NewFromInt(1).Sub(c.spread)).Round(2)

	return &ConversionResult{
		ConvertedAmount: converted,
		Rate:            quote.Rate,
		Source:          quote.Source,
	}, nil
}
