package mappers

import (
	"github.com/finovabank/banking-service/internal/domain"
	"github.com/finovabank/banking-service/internal/infrastructure/postgres/models"
)

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	return &domain.Transaction{
		ID:                    model.ID,
		SenderAccountNumber:   model.SenderAccountNumber,
		ReceiverAccountNumber: model.ReceiverAccountNumber,
		Amount:                model.Amount,
		ConvertedAmount:       model.ConvertedAmount,
		ExchangeRate:          model.ExchangeRate,
		Currency:              domain.Currency(model.Currency),
		ToCurrency:            domain.Currency(model.ToCurrency),
		Description:           model.Description,
		Status:                domain.TransactionStatus(model.Status),
		CreatedAt:             model.CreatedAt,
	}
}

func ToGORMTransaction(transaction *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:                    transaction.ID,
		SenderAccountNumber:   transaction.SenderAccountNumber,
		ReceiverAccountNumber: transaction.ReceiverAccountNumber,
		Amount:                transaction.Amount,
		ConvertedAmount:       transaction.ConvertedAmount,
		ExchangeRate:          transaction.ExchangeRate,
		Currency:              string(transaction.Currency),
		ToCurrency:            string(transaction.ToCurrency),
		Description:           transaction.Description,
		Status:                string(transaction.Status),
		CreatedAt:             transaction.CreatedAt,
	}
}
