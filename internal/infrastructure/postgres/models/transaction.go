package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionModel struct {
	ID                    string          `gorm:"primaryKey;type:uuid"`
	SenderAccountNumber   string          `gorm:"size:12;index:idx_tx_sender"`
	ReceiverAccountNumber string          `gorm:"size:12;index:idx_tx_receiver"`
	Amount                decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	ConvertedAmount       decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	ExchangeRate          decimal.Decimal `gorm:"type:numeric(15,6);not null"`
	Currency              string          `gorm:"size:3"`
	ToCurrency            string          `gorm:"size:3"`
	Description           string
	Status                string    `gorm:"index:idx_tx_status"`
	CreatedAt             time.Time `gorm:"index:idx_tx_created_at"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}
