package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ndk-1996/BankingService/internal/domain"
)

// AccountUseCase handles account business logic.
type AccountUseCase struct {
	accountRepo AccountRepository
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository) *AccountUseCase {
	return &AccountUseCase{accountRepo: accountRepo}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	DocumentNumber string
}

// CreateAccount creates a new account.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateDocumentNumber(input.DocumentNumber); err != nil {
		return nil, err
	}

	account := &domain.Account{
		DocumentNumber: input.DocumentNumber,
		CreatedAt:      time.Now().UTC(),
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("%w: creating account: %v", domain.ErrPersistenceFailed, err)
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}
