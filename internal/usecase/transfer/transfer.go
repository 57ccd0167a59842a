package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finovabank/banking-service/internal/domain"
	publisher "github.com/finovabank/banking-service/internal/infrastructure/kafka"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer moves amount from the sender's account to the receiver's,
// converting currencies when they differ. Validation runs before any
// mutation; the debit, credit and record write are applied atomically by the
// transaction repository. A transfer only exists once its record does.
func (uc *DefaultTransferUsecase) Transfer(
	ctx context.Context,
	senderAccountNumber, receiverAccountNumber string,
	amount decimal.Decimal,
	toCurrency domain.Currency,
	description string,
) (*domain.Transaction, error) {
	start := time.Now()

	transaction, err := uc.transfer(ctx, senderAccountNumber, receiverAccountNumber, amount, toCurrency, description)
	if err != nil {
		if uc.Metrics != nil {
			uc.Metrics.RecordTransferError(domain.ErrorKind(err))
			uc.Metrics.RecordTransferDuration("failed", time.Since(start).Seconds())
		}
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordTransferCompleted(string(transaction.Currency), string(transaction.ToCurrency), transaction.Amount.InexactFloat64())
		uc.Metrics.RecordTransferDuration("completed", time.Since(start).Seconds())
	}

	uc.publishTransferEvent(transaction)

	return transaction, nil
}

func (uc *DefaultTransferUsecase) transfer(
	ctx context.Context,
	senderAccountNumber, receiverAccountNumber string,
	amount decimal.Decimal,
	toCurrency domain.Currency,
	description string,
) (*domain.Transaction, error) {
	// ===== VALIDATION, no mutation below this block until it passes =====
	if senderAccountNumber == receiverAccountNumber {
		return nil, domain.ErrSameAccount
	}

	sender, err := uc.AccountRepo.GetAccountByNumber(ctx, senderAccountNumber)
	if err != nil {
		return nil, err
	}
	receiver, err := uc.AccountRepo.GetAccountByNumber(ctx, receiverAccountNumber)
	if err != nil {
		return nil, err
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	if !toCurrency.Supported() || toCurrency != receiver.Currency {
		return nil, domain.ErrCurrencyMismatch
	}

	// The sender is always debited in their own currency, so the balance
	// check runs against the pre-conversion amount.
	if sender.Balance.LessThan(amount) {
		return nil, domain.ErrInsufficientFunds
	}

	// ===== EXECUTION =====
	// Conversion happens before any balance mutation: a stalled or dead
	// rate provider fails the transfer without touching either account.
	result, err := uc.Converter.Convert(ctx, amount, sender.Currency, toCurrency)
	if err != nil {
		return nil, err
	}

	if result.Source == domain.RateSourceFallback && sender.Currency != toCurrency && uc.Metrics != nil {
		uc.Metrics.RecordRateFallback(string(sender.Currency), string(toCurrency))
	}

	transaction := &domain.Transaction{
		ID:                    uuid.New().String(),
		SenderAccountNumber:   senderAccountNumber,
		ReceiverAccountNumber: receiverAccountNumber,
		Amount:                amount.Round(2),
		ConvertedAmount:       result.ConvertedAmount,
		ExchangeRate:          result.Rate,
		Currency:              sender.Currency,
		ToCurrency:            toCurrency,
		Description:           description,
		Status:                domain.StatusCompleted,
		CreatedAt:             time.Now(),
	}

	// The repository re-checks the sender's balance under lock, so a race
	// between the check above and the debit surfaces as
	// ErrInsufficientFunds or ErrConcurrencyConflict here, never as a
	// negative balance.
	for attempt := 1; ; attempt++ {
		err = uc.TransactionRepo.SaveTransfer(ctx, transaction)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrConcurrencyConflict) {
			return nil, err
		}
		if attempt >= uc.maxConflictRetries {
			return nil, fmt.Errorf("transfer %s: %w", transaction.ID, err)
		}
		if uc.Metrics != nil {
			uc.Metrics.RecordConflictRetry()
		}
		slog.Warn("transfer hit balance update conflict, retrying",
			"transaction_id", transaction.ID,
			"attempt", attempt)
	}

	return transaction, nil
}

func (uc *DefaultTransferUsecase) publishTransferEvent(transaction *domain.Transaction) {
	if uc.Publisher == nil {
		return
	}

	event := publisher.TransferEvent{
		TransactionID:         transaction.ID,
		SenderAccountNumber:   transaction.SenderAccountNumber,
		ReceiverAccountNumber: transaction.ReceiverAccountNumber,
		Amount:                transaction.Amount.StringFixed(2),
		ConvertedAmount:       transaction.ConvertedAmount.StringFixed(2),
		ExchangeRate:          transaction.ExchangeRate.String(),
		Currency:              string(transaction.Currency),
		ToCurrency:            string(transaction.ToCurrency),
		Status:                string(transaction.Status),
		Timestamp:             transaction.CreatedAt.Unix(),
	}

	// Event delivery is best effort, a broker outage must not fail a
	// transfer that is already durable.
	if err := uc.Publisher.PublishTransfer(uc.transferTopic, event); err != nil {
		slog.Error("failed to publish transfer event",
			"transaction_id", transaction.ID,
			"error", err.Error())
	}
}
