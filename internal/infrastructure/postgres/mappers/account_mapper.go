package mappers

import (
	"github.com/finovabank/banking-service/internal/domain"
	"github.com/finovabank/banking-service/internal/infrastructure/postgres/models"
)

func ToDomainAccount(model *models.AccountModel) *domain.Account {
	return &domain.Account{
		AccountNumber: model.AccountNumber,
		OwnerName:     model.OwnerName,
		AccountType:   domain.AccountType(model.AccountType),
		Balance:       model.Balance,
		Currency:      domain.Currency(model.Currency),
		Status:        domain.AccountStatus(model.Status),
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ToGORMAccount(account *domain.Account) *models.AccountModel {
	return &models.AccountModel{
		AccountNumber: account.AccountNumber,
		OwnerName:     account.OwnerName,
		AccountType:   string(account.AccountType),
		Balance:       account.Balance,
		Currency:      string(account.Currency),
		Status:        string(account.Status),
		CreatedAt:     account.CreatedAt,
		UpdatedAt:     account.UpdatedAt,
	}
}
