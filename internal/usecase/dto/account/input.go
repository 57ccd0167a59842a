package accountdto

import "github.com/shopspring/decimal"

type OpenAccountInput struct {
	OwnerName      string
	AccountType    string
	Currency       string
	InitialBalance decimal.Decimal
}
