package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ndk-1996/BankingService/internal/domain"
	"github.com/ndk-1996/BankingService/internal/usecase"
	"github.com/ndk-1996/BankingService/internal/usecase/mocks"
)

func TestCreateAccount(t *testing.T) {
	t.Run("assigns an ID and stamps creation time", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository()
		uc := usecase.NewAccountUseCase(repo)

		account, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{DocumentNumber: "12345678900"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if account.ID == 0 {
			t.Error("expected assigned ID")
		}
		if account.DocumentNumber != "12345678900" {
			t.Errorf("unexpected document number %q", account.DocumentNumber)
		}
		if account.CreatedAt.IsZero() {
			t.Error("expected CreatedAt to be set")
		}
	})

	t.Run("rejects malformed document numbers", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository()
		created := false
		repo.CreateFunc = func(ctx context.Context, account *domain.Account) error {
			created = true
			return nil
		}
		uc := usecase.NewAccountUseCase(repo)

		for _, doc := range []string{"", "12345-678", "abc", " 123", "12.3"} {
			if _, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{DocumentNumber: doc}); !errors.Is(err, domain.ErrInvalidDocumentNumber) {
				t.Errorf("document %q: expected ErrInvalidDocumentNumber, got %v", doc, err)
			}
		}
		if created {
			t.Error("expected no repository write for invalid input")
		}
	})

	t.Run("wraps repository failures", func(t *testing.T) {
		repo := mocks.NewMockAccountRepository()
		repo.CreateFunc = func(ctx context.Context, account *domain.Account) error {
			return errors.New("connection reset")
		}
		uc := usecase.NewAccountUseCase(repo)

		_, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{DocumentNumber: "42"})
		if !errors.Is(err, domain.ErrPersistenceFailed) {
			t.Fatalf("expected ErrPersistenceFailed, got %v", err)
		}
	})
}

func TestGetAccount(t *testing.T) {
	repo := mocks.NewMockAccountRepository()
	uc := usecase.NewAccountUseCase(repo)

	created, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{DocumentNumber: "99911122233"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("returns the stored account", func(t *testing.T) {
		got, err := uc.GetAccount(context.Background(), created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.DocumentNumber != "99911122233" {
			t.Errorf("unexpected document number %q", got.DocumentNumber)
		}
	})

	t.Run("reports missing accounts", func(t *testing.T) {
		if _, err := uc.GetAccount(context.Background(), created.ID+1); !errors.Is(err, domain.ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})
}
