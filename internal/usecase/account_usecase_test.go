package usecase

import (
	"context"
	"testing"

	"github.com/finovabank/banking-service/internal/domain"
	accountdto "github.com/finovabank/banking-service/internal/usecase/dto/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryAccountRepo struct {
	accounts map[string]*domain.Account
}

func newMemoryAccountRepo() *memoryAccountRepo {
	return &memoryAccountRepo{accounts: make(map[string]*domain.Account)}
}

func (r *memoryAccountRepo) CreateAccount(_ context.Context, account *domain.Account) error {
	r.accounts[account.AccountNumber] = account
	return nil
}

func (r *memoryAccountRepo) GetAccountByNumber(_ context.Context, accountNumber string) (*domain.Account, error) {
	account, ok := r.accounts[accountNumber]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

func (r *memoryAccountRepo) ListAccounts(_ context.Context, _, _ int64) ([]*domain.Account, int64, error) {
	accounts := make([]*domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		accounts = append(accounts, account)
	}
	return accounts, int64(len(accounts)), nil
}

func TestOpenAccountDefaults(t *testing.T) {
	uc := NewDefaultAccountUsecase(newMemoryAccountRepo())

	account, err := uc.OpenAccount(context.Background(), &accountdto.OpenAccountInput{
		OwnerName: "Ada Lovelace",
		Currency:  "USD",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.AccountTypeSavings, account.AccountType)
	assert.Equal(t, "10000.00", account.Balance.StringFixed(2))
	assert.Equal(t, domain.CurrencyUSD, account.Currency)
	assert.Equal(t, domain.AccountStatusActive, account.Status)
}

func TestOpenAccountNumberFormat(t *testing.T) {
	uc := NewDefaultAccountUsecase(newMemoryAccountRepo())

	savings, err := uc.OpenAccount(context.Background(), &accountdto.OpenAccountInput{
		OwnerName: "Ada Lovelace",
		Currency:  "EUR",
	})
	require.NoError(t, err)

	current, err := uc.OpenAccount(context.Background(), &accountdto.OpenAccountInput{
		OwnerName:   "Alan Turing",
		Currency:    "GBP",
		AccountType: "current",
	})
	require.NoError(t, err)

	assert.Len(t, savings.AccountNumber, 12)
	assert.Len(t, current.AccountNumber, 12)
	assert.Equal(t, "0991", savings.AccountNumber[:4])
	assert.Equal(t, "0992", current.AccountNumber[:4])

	for _, r := range savings.AccountNumber {
		assert.True(t, r >= '0' && r <= '9')
	}
}

func TestOpenAccountHonorsInitialBalance(t *testing.T) {
	uc := NewDefaultAccountUsecase(newMemoryAccountRepo())

	account, err := uc.OpenAccount(context.Background(), &accountdto.OpenAccountInput{
		OwnerName:      "Ada Lovelace",
		Currency:       "USD",
		InitialBalance: decimal.RequireFromString("250.505"),
	})
	require.NoError(t, err)

	assert.Equal(t, "250.51", account.Balance.StringFixed(2))
}

func TestOpenAccountRejectsUnsupportedCurrency(t *testing.T) {
	uc := NewDefaultAccountUsecase(newMemoryAccountRepo())

	_, err := uc.OpenAccount(context.Background(), &accountdto.OpenAccountInput{
		OwnerName: "Ada Lovelace",
		Currency:  "JPY",
	})
	assert.ErrorIs(t, err, domain.ErrCurrencyMismatch)
}

func TestOpenAccountRejectsNegativeBalance(t *testing.T) {
	uc := NewDefaultAccountUsecase(newMemoryAccountRepo())

	_, err := uc.OpenAccount(context.Background(), &accountdto.OpenAccountInput{
		OwnerName:      "Ada Lovelace",
		Currency:       "USD",
		InitialBalance: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}
