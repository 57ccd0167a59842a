package usecase

import (
	"context"

	"github.com/finovabank/banking-service/internal/domain"
	"github.com/shopspring/decimal"
)

// ConvertPreview runs the exact conversion a transfer would apply, spread
// included, without touching any balance. Callers use it to show the
// receiver's proceeds before committing.
func (uc *DefaultTransferUsecase) ConvertPreview(ctx context.Context, amount decimal.Decimal, from, to domain.Currency) (*domain.ConversionPreview, error) {
	if !from.Supported() || !to.Supported() {
		return nil, domain.ErrCurrencyMismatch
	}

	result, err := uc.Converter.Convert(ctx, amount, from, to)
	if err != nil {
		return nil, err
	}

	return &domain.ConversionPreview{
		FromCurrency:    from,
		ToCurrency:      to,
		Amount:          amount.Round(2),
		ConvertedAmount: result.ConvertedAmount,
		ExchangeRate:    result.Rate,
		Source:          result.Source,
	}, nil
}
