package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ndk-1996/BankingService/internal/domain"
	"github.com/ndk-1996/BankingService/internal/infrastructure/locking"
	"github.com/ndk-1996/BankingService/internal/usecase"
	"github.com/ndk-1996/BankingService/internal/usecase/mocks"
)

const (
	opTypePurchase = int64(1)
	opTypeVoucher  = int64(4)
)

func newCatalog() *mocks.MockOperationTypeRepository {
	catalog := mocks.NewMockOperationTypeRepository()
	catalog.Add(&domain.OperationType{ID: opTypePurchase, Description: "NORMAL PURCHASE", Kind: domain.OperationKindDebit})
	catalog.Add(&domain.OperationType{ID: opTypeVoucher, Description: "CREDIT VOUCHER", Kind: domain.OperationKindCredit})
	return catalog
}

func newTransactionUseCase(txnRepo *mocks.MockTransactionRepository) *usecase.TransactionUseCase {
	return usecase.NewTransactionUseCase(
		mocks.NewMockTransactionManager(),
		newCatalog(),
		txnRepo,
		usecase.NewSettlementEngine(txnRepo),
		locking.NewAccountLocks(),
	)
}

func createTxn(t *testing.T, uc *usecase.TransactionUseCase, accountID, opTypeID, amount int64) *domain.Transaction {
	t.Helper()

	txn, err := uc.CreateTransaction(context.Background(), usecase.CreateTransactionInput{
		AccountID:       accountID,
		OperationTypeID: opTypeID,
		Amount:          decimal.NewFromInt(amount),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return txn
}

func TestCreateTransaction_DebitKeepsFullNegativeBalance(t *testing.T) {
	repo := mocks.NewMockTransactionRepository()
	settlementScanned := false
	repo.FindNegativeBalanceFunc = func(ctx context.Context, tx usecase.Transaction, accountID int64) ([]*domain.Transaction, error) {
		settlementScanned = true
		return nil, nil
	}
	uc := newTransactionUseCase(repo)

	txn := createTxn(t, uc, 7, opTypePurchase, 100)

	if want := decimal.NewFromInt(-100); !txn.Amount.Equal(want) {
		t.Errorf("expected signed amount %s, got %s", want, txn.Amount)
	}
	if want := decimal.NewFromInt(-100); !txn.Balance.Equal(want) {
		t.Errorf("expected balance %s, got %s", want, txn.Balance)
	}
	if txn.ID == 0 {
		t.Error("expected assigned ID")
	}
	if settlementScanned {
		t.Error("a debit must never trigger settlement")
	}
}

func TestCreateTransaction_CreditDischargesOldestDebtFirst(t *testing.T) {
	repo := mocks.NewMockTransactionRepository()
	uc := newTransactionUseCase(repo)

	first := createTxn(t, uc, 7, opTypePurchase, 100)
	second := createTxn(t, uc, 7, opTypePurchase, 50)
	credit := createTxn(t, uc, 7, opTypeVoucher, 120)

	if !credit.Balance.IsZero() {
		t.Errorf("expected credit residual 0, got %s", credit.Balance)
	}

	state := repo.All()
	if !state[first.ID].Balance.IsZero() {
		t.Errorf("expected oldest debt fully settled, got %s", state[first.ID].Balance)
	}
	if want := decimal.NewFromInt(-30); !state[second.ID].Balance.Equal(want) {
		t.Errorf("expected newer debt at %s, got %s", want, state[second.ID].Balance)
	}

	// Amounts never change; only balances move toward zero.
	if want := decimal.NewFromInt(-100); !state[first.ID].Amount.Equal(want) {
		t.Errorf("expected first amount unchanged at %s, got %s", want, state[first.ID].Amount)
	}
}

func TestCreateTransaction_CreditSurplusIsBanked(t *testing.T) {
	repo := mocks.NewMockTransactionRepository()
	uc := newTransactionUseCase(repo)

	debt := createTxn(t, uc, 7, opTypePurchase, 100)
	credit := createTxn(t, uc, 7, opTypeVoucher, 150)

	if !repo.All()[debt.ID].Balance.IsZero() {
		t.Error("expected debt fully settled")
	}
	if want := decimal.NewFromInt(50); !credit.Balance.Equal(want) {
		t.Errorf("expected surplus %s banked on the credit record, got %s", want, credit.Balance)
	}
	if want := decimal.NewFromInt(150); !credit.Amount.Equal(want) {
		t.Errorf("expected credit amount %s, got %s", want, credit.Amount)
	}
}

func TestCreateTransaction_CreditWithoutDebtKeepsFullBalance(t *testing.T) {
	repo := mocks.NewMockTransactionRepository()
	uc := newTransactionUseCase(repo)

	credit := createTxn(t, uc, 7, opTypeVoucher, 100)

	if want := decimal.NewFromInt(100); !credit.Balance.Equal(want) {
		t.Errorf("expected balance %s, got %s", want, credit.Balance)
	}
}

func TestCreateTransaction_InputFailures(t *testing.T) {
	tests := []struct {
		name      string
		input     usecase.CreateTransactionInput
		errorKind error
	}{
		{
			name:      "unknown operation type",
			input:     usecase.CreateTransactionInput{AccountID: 7, OperationTypeID: 42, Amount: decimal.NewFromInt(10)},
			errorKind: domain.ErrOperationTypeNotFound,
		},
		{
			name:      "unspecified operation type",
			input:     usecase.CreateTransactionInput{AccountID: 7, Amount: decimal.NewFromInt(10)},
			errorKind: domain.ErrOperationTypeUnspecified,
		},
		{
			name:      "zero amount",
			input:     usecase.CreateTransactionInput{AccountID: 7, OperationTypeID: opTypePurchase, Amount: decimal.Zero},
			errorKind: domain.ErrInvalidAmount,
		},
		{
			name:      "negative amount",
			input:     usecase.CreateTransactionInput{AccountID: 7, OperationTypeID: opTypeVoucher, Amount: decimal.NewFromInt(-5)},
			errorKind: domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockTransactionRepository()
			uc := newTransactionUseCase(repo)

			_, err := uc.CreateTransaction(context.Background(), tt.input)
			if !errors.Is(err, tt.errorKind) {
				t.Fatalf("expected %v, got %v", tt.errorKind, err)
			}

			if len(repo.All()) != 0 {
				t.Error("expected no record persisted")
			}
		})
	}
}

func TestCreateTransaction_InsertFailureAbortsWithoutCommit(t *testing.T) {
	repo := mocks.NewMockTransactionRepository()
	repo.InsertFunc = func(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
		return errors.New("write rejected")
	}

	unit := &mocks.MockTransaction{}
	txMgr := mocks.NewMockTransactionManager()
	txMgr.BeginFunc = func(ctx context.Context) (usecase.Transaction, error) {
		return unit, nil
	}

	uc := usecase.NewTransactionUseCase(txMgr, newCatalog(), repo, usecase.NewSettlementEngine(repo), locking.NewAccountLocks())

	_, err := uc.CreateTransaction(context.Background(), usecase.CreateTransactionInput{
		AccountID:       7,
		OperationTypeID: opTypeVoucher,
		Amount:          decimal.NewFromInt(10),
	})
	if !errors.Is(err, domain.ErrPersistenceFailed) {
		t.Fatalf("expected ErrPersistenceFailed, got %v", err)
	}

	if unit.Commits != 0 {
		t.Error("expected no commit after a failed insert")
	}
	if unit.Rollbacks == 0 {
		t.Error("expected the attempt to roll back")
	}
}

func TestCreateTransaction_DischargeFailureSkipsInsert(t *testing.T) {
	repo := mocks.NewMockTransactionRepository()
	repo.FindNegativeBalanceFunc = func(ctx context.Context, tx usecase.Transaction, accountID int64) ([]*domain.Transaction, error) {
		return nil, errors.New("lock wait timeout")
	}
	inserted := false
	repo.InsertFunc = func(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
		inserted = true
		return nil
	}

	uc := newTransactionUseCase(repo)

	_, err := uc.CreateTransaction(context.Background(), usecase.CreateTransactionInput{
		AccountID:       7,
		OperationTypeID: opTypeVoucher,
		Amount:          decimal.NewFromInt(10),
	})
	if !errors.Is(err, domain.ErrDischargeFailed) {
		t.Fatalf("expected ErrDischargeFailed, got %v", err)
	}

	if inserted {
		t.Error("expected no insert after a failed discharge")
	}
}

func TestCreateTransaction_ConcurrentCreditsDoNotLoseUpdates(t *testing.T) {
	repo := mocks.NewMockTransactionRepository()
	uc := newTransactionUseCase(repo)

	debt := createTxn(t, uc, 7, opTypePurchase, 100)

	var wg sync.WaitGroup
	results := make([]*domain.Transaction, 2)
	for i, amount := range []int64{60, 70} {
		wg.Add(1)
		go func(i int, amount int64) {
			defer wg.Done()
			results[i] = createTxn(t, uc, 7, opTypeVoucher, amount)
		}(i, amount)
	}
	wg.Wait()

	state := repo.All()
	if !state[debt.ID].Balance.IsZero() {
		t.Errorf("expected debt fully settled, got %s", state[debt.ID].Balance)
	}

	// Whichever credit ran second found less debt to discharge, but in
	// either order the residuals must add up to the overpayment.
	surplus := state[results[0].ID].Balance.Add(state[results[1].ID].Balance)
	if want := decimal.NewFromInt(30); !surplus.Equal(want) {
		t.Errorf("expected combined surplus %s, got %s", want, surplus)
	}

	for _, txn := range state {
		if txn.Amount.IsNegative() && txn.Balance.IsPositive() {
			t.Errorf("debit %d flipped sign: balance %s", txn.ID, txn.Balance)
		}
		if txn.Amount.IsPositive() && txn.Balance.IsNegative() {
			t.Errorf("credit %d flipped sign: balance %s", txn.ID, txn.Balance)
		}
	}
}

func TestCreateTransaction_ConservationAcrossSequence(t *testing.T) {
	repo := mocks.NewMockTransactionRepository()
	uc := newTransactionUseCase(repo)

	createTxn(t, uc, 7, opTypePurchase, 40)
	createTxn(t, uc, 7, opTypeVoucher, 25)
	createTxn(t, uc, 7, opTypePurchase, 10)
	createTxn(t, uc, 7, opTypeVoucher, 5)

	// Settlement moves value between balances; it never creates or
	// destroys it. Credits consumed equal debt discharged, so the two
	// sums drift by the same amount and their difference is stable.
	var sumAmount, sumBalance decimal.Decimal
	for _, txn := range repo.All() {
		sumAmount = sumAmount.Add(txn.Amount)
		sumBalance = sumBalance.Add(txn.Balance)
	}

	if want := decimal.NewFromInt(-20); !sumAmount.Equal(want) {
		t.Errorf("expected net amount %s, got %s", want, sumAmount)
	}
	if !sumBalance.Equal(sumAmount) {
		t.Errorf("conservation violated: sum(amount)=%s sum(balance)=%s", sumAmount, sumBalance)
	}
}
