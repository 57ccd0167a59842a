package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/finovabank/banking-service/internal/domain"
	"github.com/finovabank/banking-service/internal/infrastructure/postgres/mappers"
	"github.com/finovabank/banking-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

// SaveTransfer debits the sender, credits the receiver and appends the
// transaction record inside one database transaction. Account rows are
// locked in account-number order so two transfers moving funds between the
// same pair in opposite directions cannot deadlock. The sender's balance is
// re-checked under lock; the guarded update makes a lost race visible
// instead of producing a negative balance.
func (r *DefaultTransactionRepository) SaveTransfer(ctx context.Context, transaction *domain.Transaction) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		first, second := transaction.SenderAccountNumber, transaction.ReceiverAccountNumber
		if second < first {
			first, second = second, first
		}

		var locked []models.AccountModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("account_number IN ?", []string{first, second}).
			Order("account_number").
			Find(&locked).Error; err != nil {
			return err
		}
		if len(locked) != 2 {
			return domain.ErrAccountNotFound
		}

		debit := tx.Model(&models.AccountModel{}).
			Where("account_number = ? AND balance >= ?", transaction.SenderAccountNumber, transaction.Amount).
			Update("balance", gorm.Expr("balance - ?", transaction.Amount))
		if debit.Error != nil {
			return debit.Error
		}
		if debit.RowsAffected == 0 {
			return domain.ErrInsufficientFunds
		}

		credit := tx.Model(&models.AccountModel{}).
			Where("account_number = ?", transaction.ReceiverAccountNumber).
			Update("balance", gorm.Expr("balance + ?", transaction.ConvertedAmount))
		if credit.Error != nil {
			return credit.Error
		}
		if credit.RowsAffected == 0 {
			return domain.ErrAccountNotFound
		}

		// The record is the durability boundary: if this insert fails the
		// whole transaction rolls back and neither balance moves.
		transactionModel := mappers.ToGORMTransaction(transaction)
		return tx.Create(transactionModel).Error
	})

	if err != nil {
		return mapTransferError(err)
	}
	return nil
}

// mapTransferError folds driver-level contention failures into the domain
// conflict error so the engine can retry them.
func mapTransferError(err error) error {
	if errors.Is(err, domain.ErrInsufficientFunds) || errors.Is(err, domain.ErrAccountNotFound) {
		return err
	}

	msg := err.Error()
	if strings.Contains(msg, "40001") || // serialization_failure
		strings.Contains(msg, "40P01") || // deadlock_detected
		strings.Contains(msg, "deadlock") {
		return fmt.Errorf("%w: %v", domain.ErrConcurrencyConflict, err)
	}

	return err
}

func (r *DefaultTransactionRepository) GetTransactionByID(ctx context.Context, id string) (*domain.Transaction, error) {
	var transaction models.TransactionModel
	if err := r.DB.WithContext(ctx).First(&transaction, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}

	return mappers.ToDomainTransaction(&transaction), nil
}

func (r *DefaultTransactionRepository) ListByAccount(
	ctx context.Context,
	accountNumber string,
	page, limit int64,
	filters domain.TransactionFilters,
) ([]*domain.Transaction, int64, error) {
	var transactionModels []models.TransactionModel
	var total int64

	baseQuery := r.DB.WithContext(ctx).Model(&models.TransactionModel{}).
		Where("sender_account_number = ? OR receiver_account_number = ?", accountNumber, accountNumber)

	if filters.Status != "" {
		baseQuery = baseQuery.Where("status = ?", string(filters.Status))
	}
	if !filters.DateFrom.IsZero() {
		baseQuery = baseQuery.Where("created_at >= ?", filters.DateFrom)
	}
	if !filters.DateTo.IsZero() {
		baseQuery = baseQuery.Where("created_at <= ?", filters.DateTo)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := baseQuery.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&transactionModels).Error; err != nil {
		return nil, 0, err
	}

	transactions := make([]*domain.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, mappers.ToDomainTransaction(&transactionModels[i]))
	}

	return transactions, total, nil
}
