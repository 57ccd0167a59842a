package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/finovabank/banking-service/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRateService struct {
	rates map[string]decimal.Decimal
}

func (s *stubRateService) GetQuote(_ context.Context, from, to domain.Currency) (*domain.RateQuote, error) {
	if from == to {
		return &domain.RateQuote{
			From: from, To: to,
			Rate:        decimal.NewFromInt(1),
			Source:      domain.RateSourceFallback,
			RetrievedAt: time.Now(),
		}, nil
	}
	rate, ok := s.rates[string(from)+"_"+string(to)]
	if !ok {
		return nil, domain.ErrRateUnavailable
	}
	return &domain.RateQuote{
		From: from, To: to,
		Rate:        rate,
		Source:      domain.RateSourceRemote,
		RetrievedAt: time.Now(),
	}, nil
}

func TestConvertSameCurrencyIsIdentity(t *testing.T) {
	converter := NewDefaultCurrencyConverter(&stubRateService{}, 0.01)

	for _, currency := range domain.SupportedCurrencies {
		result, err := converter.Convert(context.Background(), decimal.RequireFromString("123.45"), currency, currency)
		require.NoError(t, err)
		assert.True(t, result.ConvertedAmount.Equal(decimal.RequireFromString("123.45")))
		assert.True(t, result.Rate.Equal(decimal.NewFromInt(1)))
	}
}

func TestConvertAppliesSpread(t *testing.T) {
	rates := &stubRateService{rates: map[string]decimal.Decimal{
		"USD_EUR": decimal.RequireFromString("0.85"),
	}}
	converter := NewDefaultCurrencyConverter(rates, 0.01)

	result, err := converter.Convert(context.Background(), decimal.RequireFromString("1000.00"), domain.CurrencyUSD, domain.CurrencyEUR)
	require.NoError(t, err)

	// 1000 * 0.85 = 850, minus the 1% spread = 841.50
	assert.Equal(t, "841.50", result.ConvertedAmount.StringFixed(2))
	// The recorded rate stays the unadjusted market rate.
	assert.Equal(t, "0.85", result.Rate.String())
}

func TestConvertRoundsHalfUpOnce(t *testing.T) {
	rates := &stubRateService{rates: map[string]decimal.Decimal{
		"USD_EUR": decimal.RequireFromString("0.333"),
	}}
	converter := NewDefaultCurrencyConverter(rates, 0.0)

	// 10.05 * 0.333 = 3.34665 -> rounds half up to 3.35
	result, err := converter.Convert(context.Background(), decimal.RequireFromString("10.05"), domain.CurrencyUSD, domain.CurrencyEUR)
	require.NoError(t, err)
	assert.Equal(t, "3.35", result.ConvertedAmount.StringFixed(2))
}

func TestConvertRejectsNonPositiveAmount(t *testing.T) {
	converter := NewDefaultCurrencyConverter(&stubRateService{}, 0.01)

	_, err := converter.Convert(context.Background(), decimal.Zero, domain.CurrencyUSD, domain.CurrencyEUR)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = converter.Convert(context.Background(), decimal.RequireFromString("-5"), domain.CurrencyUSD, domain.CurrencyUSD)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestConvertPropagatesRateUnavailable(t *testing.T) {
	converter := NewDefaultCurrencyConverter(&stubRateService{}, 0.01)

	_, err := converter.Convert(context.Background(), decimal.RequireFromString("10"), domain.CurrencyUSD, domain.CurrencyEUR)
	assert.ErrorIs(t, err, domain.ErrRateUnavailable)
}
