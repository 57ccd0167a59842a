package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountModel struct {
	AccountNumber string `gorm:"primaryKey;size:12"`
	OwnerName     string
	AccountType   string
	Balance       decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	Currency      string          `gorm:"size:3;not null"`
	Status        string          `gorm:"index:idx_account_status"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (AccountModel) TableName() string {
	return "accounts"
}
