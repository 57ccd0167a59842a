package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/finovabank/banking-service/internal/domain"
	accountdto "github.com/finovabank/banking-service/internal/usecase/dto/account"
	"github.com/jaevor/go-nanoid"
	"github.com/shopspring/decimal"
)

// bankID prefixes every account number issued by this institution.
const bankID = "099"

type AccountUsecase interface {
	OpenAccount(ctx context.Context, input *accountdto.OpenAccountInput) (*domain.Account, error)
	GetAccount(ctx context.Context, accountNumber string) (*domain.Account, error)
	ListAccounts(ctx context.Context, page, limit int64) ([]*domain.Account, int64, error)
}

type DefaultAccountUsecase struct {
	AccountRepo domain.AccountRepository
}

func NewDefaultAccountUsecase(accountRepo domain.AccountRepository) *DefaultAccountUsecase {
	return &DefaultAccountUsecase{AccountRepo: accountRepo}
}

func (uc *DefaultAccountUsecase) OpenAccount(ctx context.Context, input *accountdto.OpenAccountInput) (*domain.Account, error) {
	currency := domain.Currency(input.Currency)
	if !currency.Supported() {
		return nil, fmt.Errorf("%w: unsupported currency %s", domain.ErrCurrencyMismatch, input.Currency)
	}

	accountType := domain.AccountType(input.AccountType)
	if accountType == "" {
		accountType = domain.AccountTypeSavings
	}

	balance := input.InitialBalance
	if balance.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if balance.IsZero() {
		balance = decimal.NewFromInt(10000)
	}

	accountNumber, err := generateAccountNumber(accountType)
	if err != nil {
		return nil, fmt.Errorf("failed to generate account number: %w", err)
	}

	account := &domain.Account{
		AccountNumber: accountNumber,
		OwnerName:     input.OwnerName,
		AccountType:   accountType,
		Balance:       balance.Round(2),
		Currency:      currency,
		Status:        domain.AccountStatusActive,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := uc.AccountRepo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// generateAccountNumber builds a 12-digit number: bank id, account type
// digit, then 8 random digits.
func generateAccountNumber(accountType domain.AccountType) (string, error) {
	typeDigit := "1"
	if accountType == domain.AccountTypeCurrent {
		typeDigit = "2"
	}

	idGenerator, err := nanoid.CustomASCII("0123456789", 8)
	if err != nil {
		return "", err
	}

	return bankID + typeDigit + idGenerator(), nil
}

func (uc *DefaultAccountUsecase) GetAccount(ctx context.Context, accountNumber string) (*domain.Account, error) {
	return uc.AccountRepo.GetAccountByNumber(ctx, accountNumber)
}

func (uc *DefaultAccountUsecase) ListAccounts(ctx context.Context, page, limit int64) ([]*domain.Account, int64, error) {
	return uc.AccountRepo.ListAccounts(ctx, page, limit)
}
