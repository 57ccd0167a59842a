package usecase

import (
	"context"

	"github.com/finovabank/banking-service/internal/domain"
)

const (
	defaultPageSize int64 = 10
	maxPageSize     int64 = 100
)

func (uc *DefaultTransferUsecase) GetTransactionByID(ctx context.Context, id string) (*domain.Transaction, error) {
	return uc.TransactionRepo.GetTransactionByID(ctx, id)
}

// ListTransactions returns the account's ledger history, newest first.
// The account must exist; filters are conjunctive.
func (uc *DefaultTransferUsecase) ListTransactions(ctx context.Context, accountNumber string, page, limit int64, filters domain.TransactionFilters) ([]*domain.Transaction, int64, error) {
	if _, err := uc.AccountRepo.GetAccountByNumber(ctx, accountNumber); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return uc.TransactionRepo.ListByAccount(ctx, accountNumber, page, limit, filters)
}
