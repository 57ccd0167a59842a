package repository

import (
	"context"
	"errors"

	"github.com/finovabank/banking-service/internal/domain"
	"github.com/finovabank/banking-service/internal/infrastructure/postgres/mappers"
	"github.com/finovabank/banking-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultAccountRepository struct {
	DB *gorm.DB
}

func NewDefaultAccountRepository(db *gorm.DB) *DefaultAccountRepository {
	return &DefaultAccountRepository{DB: db}
}

func (r *DefaultAccountRepository) CreateAccount(ctx context.Context, account *domain.Account) error {
	accountModel := mappers.ToGORMAccount(account)
	if err := r.DB.WithContext(ctx).Create(accountModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultAccountRepository) GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	var account models.AccountModel
	if err := r.DB.WithContext(ctx).First(&account, "account_number = ?", accountNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}

	return mappers.ToDomainAccount(&account), nil
}

func (r *DefaultAccountRepository) ListAccounts(ctx context.Context, page, limit int64) ([]*domain.Account, int64, error) {
	var accountModels []models.AccountModel
	var total int64

	query := r.DB.WithContext(ctx).Model(&models.AccountModel{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&accountModels).Error; err != nil {
		return nil, 0, err
	}

	accounts := make([]*domain.Account, 0, len(accountModels))
	for i := range accountModels {
		accounts = append(accounts, mappers.ToDomainAccount(&accountModels[i]))
	}

	return accounts, total, nil
}
