package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndk-1996/BankingService/internal/domain"
	"github.com/ndk-1996/BankingService/internal/infrastructure/metrics"
)

// TransactionUseCase orchestrates transaction creation: it resolves the
// operation type, runs settlement for credits and persists the new record.
type TransactionUseCase struct {
	txManager         TransactionManager
	operationTypeRepo OperationTypeRepository
	transactionRepo   TransactionRepository
	engine            *SettlementEngine
	locks             AccountLocker
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(
	txManager TransactionManager,
	operationTypeRepo OperationTypeRepository,
	transactionRepo TransactionRepository,
	engine *SettlementEngine,
	locks AccountLocker,
) *TransactionUseCase {
	return &TransactionUseCase{
		txManager:         txManager,
		operationTypeRepo: operationTypeRepo,
		transactionRepo:   transactionRepo,
		engine:            engine,
		locks:             locks,
	}
}

// CreateTransactionInput represents input for creating a transaction.
type CreateTransactionInput struct {
	AccountID       int64
	OperationTypeID int64
	Amount          decimal.Decimal
}

// CreateTransaction records a new monetary movement.
//
// For credit operations the account lock is held from before the
// settlement read until the enclosing database transaction has committed,
// so two concurrent credits to one account can never discharge the same
// debt twice. Debits skip settlement entirely: a debit never pays off
// other debits.
func (uc *TransactionUseCase) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	if input.OperationTypeID == 0 {
		return nil, domain.ErrOperationTypeUnspecified
	}

	opType, err := uc.operationTypeRepo.GetByID(ctx, input.OperationTypeID)
	if err != nil {
		if errors.Is(err, domain.ErrOperationTypeNotFound) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: resolving operation type: %v", domain.ErrPersistenceFailed, err)
	}

	signed := input.Amount.Mul(decimal.NewFromInt(opType.Kind.Multiplier()))

	txn := &domain.Transaction{
		AccountID:       input.AccountID,
		OperationTypeID: input.OperationTypeID,
		Amount:          signed,
		Balance:         signed,
		EventDate:       time.Now().UTC(),
	}

	if opType.Kind.IsCredit() {
		err = uc.locks.WithLock(input.AccountID, func() error {
			return uc.settleAndInsert(ctx, txn, input.Amount)
		})
	} else {
		err = uc.insert(ctx, txn)
	}
	if err != nil {
		return nil, err
	}

	metrics.TransactionsCreated.WithLabelValues(string(opType.Kind)).Inc()

	return txn, nil
}

// settleAndInsert discharges existing debt with the credited amount and
// inserts the new record, all inside one database transaction.
func (uc *TransactionUseCase) settleAndInsert(ctx context.Context, txn *domain.Transaction, credit decimal.Decimal) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", domain.ErrPersistenceFailed, err)
	}
	defer tx.Rollback(ctx)

	residual, err := uc.engine.Discharge(ctx, tx, txn.AccountID, credit)
	if err != nil {
		return err
	}

	txn.Balance = residual

	if err := uc.transactionRepo.Insert(ctx, tx, txn); err != nil {
		return fmt.Errorf("%w: inserting transaction: %v", domain.ErrPersistenceFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: committing transaction: %v", domain.ErrPersistenceFailed, err)
	}

	return nil
}

func (uc *TransactionUseCase) insert(ctx context.Context, txn *domain.Transaction) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", domain.ErrPersistenceFailed, err)
	}
	defer tx.Rollback(ctx)

	if err := uc.transactionRepo.Insert(ctx, tx, txn); err != nil {
		return fmt.Errorf("%w: inserting transaction: %v", domain.ErrPersistenceFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: committing transaction: %v", domain.ErrPersistenceFailed, err)
	}

	return nil
}

// GetTransaction retrieves a transaction by ID.
func (uc *TransactionUseCase) GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	return uc.transactionRepo.GetByID(ctx, id)
}

// ListTransactionsByAccountInput represents input for listing transactions.
type ListTransactionsByAccountInput struct {
	AccountID int64
	Limit     int
	Offset    int
}

// ListTransactionsByAccount lists an account's transactions, newest first.
func (uc *TransactionUseCase) ListTransactionsByAccount(ctx context.Context, input ListTransactionsByAccountInput) ([]*domain.Transaction, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	if input.Limit > 100 {
		input.Limit = 100
	}

	return uc.transactionRepo.ListByAccount(ctx, input.AccountID, input.Limit, input.Offset)
}

// ListOperationTypes lists the operation-type catalog.
func (uc *TransactionUseCase) ListOperationTypes(ctx context.Context) ([]*domain.OperationType, error) {
	return uc.operationTypeRepo.List(ctx)
}
