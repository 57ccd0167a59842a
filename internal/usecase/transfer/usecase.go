package usecase

import (
	"github.com/finovabank/banking-service/internal/domain"
	publisher "github.com/finovabank/banking-service/internal/infrastructure/kafka"
	"github.com/finovabank/banking-service/internal/infrastructure/metrics"
	"github.com/finovabank/banking-service/internal/usecase"
)

// TransferEventPublisher pushes completed transfers onto the event stream.
type TransferEventPublisher interface {
	PublishTransfer(topic string, event publisher.TransferEvent) error
}

// DefaultTransferUsecase orchestrates validation, currency conversion and the
// atomic two-account balance mutation behind every transfer.
type DefaultTransferUsecase struct {
	AccountRepo     domain.AccountRepository
	TransactionRepo domain.TransactionRepository
	Converter       usecase.CurrencyConverter
	Publisher       TransferEventPublisher
	Metrics         *metrics.TransferMetrics

	transferTopic      string
	maxConflictRetries int
}

func NewDefaultTransferUsecase(
	accountRepo domain.AccountRepository,
	transactionRepo domain.TransactionRepository,
	converter usecase.CurrencyConverter,
	pub TransferEventPublisher,
	transferMetrics *metrics.TransferMetrics,
	transferTopic string,
	maxConflictRetries int,
) *DefaultTransferUsecase {
	if maxConflictRetries <= 0 {
		maxConflictRetries = 3
	}
	return &DefaultTransferUsecase{
		AccountRepo:        accountRepo,
		TransactionRepo:    transactionRepo,
		Converter:          converter,
		Publisher:          pub,
		Metrics:            transferMetrics,
		transferTopic:      transferTopic,
		maxConflictRetries: maxConflictRetries,
	}
}
