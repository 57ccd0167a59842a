package exchange

import (
	"context"
	"fmt"
	"time"

	"github.com/finovabank/banking-service/internal/domain"
	"github.com/shopspring/decimal"
)

// FallbackRateProvider serves rates from a static table loaded once at
// startup. It covers all ordered pairs among the supported currencies and is
// the last resort when the remote provider is unreachable.
type FallbackRateProvider struct {
	rates map[domain.Currency]map[domain.Currency]decimal.Decimal
}

// DefaultFallbackRates mirrors the bank's static rate sheet.
var DefaultFallbackRates = map[string]map[string]float64{
	"USD": {"EUR": 0.85, "GBP": 0.75},
	"EUR": {"USD": 1.18, "GBP": 0.88},
	"GBP": {"USD": 1.33, "EUR": 1.14},
}

func NewFallbackRateProvider(table map[string]map[string]float64) *FallbackRateProvider {
	if len(table) == 0 {
		table = DefaultFallbackRates
	}

	rates := make(map[domain.Currency]map[domain.Currency]decimal.Decimal, len(table))
	for from, targets := range table {
		pairs := make(map[domain.Currency]decimal.Decimal, len(targets))
		for to, rate := range targets {
			pairs[domain.Currency(to)] = decimal.NewFromFloat(rate)
		}
		rates[domain.Currency(from)] = pairs
	}

	return &FallbackRateProvider{rates: rates}
}

func (p *FallbackRateProvider) GetName() string {
	return "fallback"
}

func (p *FallbackRateProvider) GetRate(_ context.Context, from, to domain.Currency) (*domain.RateQuote, error) {
	targets, ok := p.rates[from]
	if !ok {
		return nil, fmt.Errorf("%w: no fallback rates with base %s", domain.ErrRateUnavailable, from)
	}

	rate, ok := targets[to]
	if !ok {
		return nil, fmt.Errorf("%w: no fallback rate for %s/%s", domain.ErrRateUnavailable, from, to)
	}

	return &domain.RateQuote{
		From:        from,
		To:          to,
		Rate:        rate,
		Source:      domain.RateSourceFallback,
		RetrievedAt: time.Now(),
	}, nil
}
