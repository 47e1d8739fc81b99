package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndk-1996/BankingService/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	// Create persists a new account and assigns its ID.
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
}

// OperationTypeRepository defines lookup of operation-type reference data.
type OperationTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.OperationType, error)
	List(ctx context.Context) ([]*domain.OperationType, error)
}

// TransactionRepository defines data access for transactions.
type TransactionRepository interface {
	// Insert persists a new transaction inside tx and assigns its ID.
	Insert(ctx context.Context, tx Transaction, txn *domain.Transaction) error
	// FindNegativeBalance returns the account's unsettled debit
	// transactions ordered ascending by event date, row-locked for the
	// duration of tx.
	FindNegativeBalance(ctx context.Context, tx Transaction, accountID int64) ([]*domain.Transaction, error)
	// UpdateBalance persists a new unsettled balance for an existing
	// transaction inside tx. No other field is ever updated.
	UpdateBalance(ctx context.Context, tx Transaction, id int64, balance decimal.Decimal) error
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)
	ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Transaction, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// AccountLocker serializes work on a single account. Different accounts
// proceed independently.
type AccountLocker interface {
	WithLock(accountID int64, fn func() error) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
