package domain

import "context"

type AccountRepository interface {
	CreateAccount(ctx context.Context, account *Account) error
	GetAccountByNumber(ctx context.Context, accountNumber string) (*Account, error)
	ListAccounts(ctx context.Context, page, limit int64) ([]*Account, int64, error)
}
