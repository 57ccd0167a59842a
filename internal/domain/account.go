package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
	CurrencyEUR Currency = "EUR"
)

// SupportedCurrencies is the closed set the bank settles in.
var SupportedCurrencies = []Currency{CurrencyUSD, CurrencyGBP, CurrencyEUR}

func (c Currency) Supported() bool {
	for _, supported := range SupportedCurrencies {
		if c == supported {
			return true
		}
	}
	return false
}

type AccountType string

const (
	AccountTypeSavings AccountType = "savings"
	AccountTypeCurrent AccountType = "current"
)

type AccountStatus string

const (
	AccountStatusActive AccountStatus = "active"
	AccountStatusClosed AccountStatus = "closed"
)

// Account is a single-currency ledger account. Balance is kept at
// two decimal places and is never negative.
type Account struct {
	AccountNumber string
	OwnerName     string
	AccountType   AccountType
	Balance       decimal.Decimal
	Currency      Currency
	Status        AccountStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Debit subtracts amount from the balance. The balance is left
// untouched when the check fails.
func (a *Account) Debit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}

// Credit adds amount to the balance.
func (a *Account) Credit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	a.Balance = a.Balance.Add(amount)
	return nil
}
