package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ndk-1996/BankingService/internal/domain"
	"github.com/ndk-1996/BankingService/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	nextID   int64
	accounts map[int64]*domain.Account

	CreateFunc  func(ctx context.Context, account *domain.Account) error
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{accounts: make(map[int64]*domain.Account)}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	account.ID = m.nextID
	copied := *account
	m.accounts[account.ID] = &copied
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		copied := *acc
		return &copied, nil
	}
	return nil, domain.ErrAccountNotFound
}

// MockOperationTypeRepository is a mock implementation of OperationTypeRepository.
type MockOperationTypeRepository struct {
	mu    sync.RWMutex
	types map[int64]*domain.OperationType

	GetByIDFunc func(ctx context.Context, id int64) (*domain.OperationType, error)
	ListFunc    func(ctx context.Context) ([]*domain.OperationType, error)
}

func NewMockOperationTypeRepository() *MockOperationTypeRepository {
	return &MockOperationTypeRepository{types: make(map[int64]*domain.OperationType)}
}

// Add seeds an operation type.
func (m *MockOperationTypeRepository) Add(op *domain.OperationType) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.types[op.ID] = op
}

func (m *MockOperationTypeRepository) GetByID(ctx context.Context, id int64) (*domain.OperationType, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if op, ok := m.types[id]; ok {
		return op, nil
	}
	return nil, domain.ErrOperationTypeNotFound
}

func (m *MockOperationTypeRepository) List(ctx context.Context) ([]*domain.OperationType, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	ops := make([]*domain.OperationType, 0, len(m.types))
	for _, op := range m.types {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].ID < ops[j].ID })
	return ops, nil
}

// MockTransactionRepository is an in-memory, thread-safe mock
// implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.Mutex
	nextID       int64
	transactions map[int64]*domain.Transaction

	InsertFunc              func(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error
	FindNegativeBalanceFunc func(ctx context.Context, tx usecase.Transaction, accountID int64) ([]*domain.Transaction, error)
	UpdateBalanceFunc       func(ctx context.Context, tx usecase.Transaction, id int64, balance decimal.Decimal) error
	GetByIDFunc             func(ctx context.Context, id int64) (*domain.Transaction, error)
	ListByAccountFunc       func(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Transaction, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{transactions: make(map[int64]*domain.Transaction)}
}

func (m *MockTransactionRepository) Insert(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, tx, txn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	txn.ID = m.nextID
	copied := *txn
	m.transactions[txn.ID] = &copied
	return nil
}

func (m *MockTransactionRepository) FindNegativeBalance(ctx context.Context, tx usecase.Transaction, accountID int64) ([]*domain.Transaction, error) {
	if m.FindNegativeBalanceFunc != nil {
		return m.FindNegativeBalanceFunc(ctx, tx, accountID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var debts []*domain.Transaction
	for _, txn := range m.transactions {
		if txn.AccountID == accountID && txn.Balance.IsNegative() {
			copied := *txn
			debts = append(debts, &copied)
		}
	}
	sort.Slice(debts, func(i, j int) bool {
		if debts[i].EventDate.Equal(debts[j].EventDate) {
			return debts[i].ID < debts[j].ID
		}
		return debts[i].EventDate.Before(debts[j].EventDate)
	})
	return debts, nil
}

func (m *MockTransactionRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id int64, balance decimal.Decimal) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if txn, ok := m.transactions[id]; ok {
		txn.Balance = balance
	}
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if txn, ok := m.transactions[id]; ok {
		copied := *txn
		return &copied, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Transaction, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID, limit, offset)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var txns []*domain.Transaction
	for _, txn := range m.transactions {
		if txn.AccountID == accountID {
			copied := *txn
			txns = append(txns, &copied)
		}
	}
	sort.Slice(txns, func(i, j int) bool { return txns[i].EventDate.After(txns[j].EventDate) })
	if offset > len(txns) {
		offset = len(txns)
	}
	txns = txns[offset:]
	if limit < len(txns) {
		txns = txns[:limit]
	}
	return txns, nil
}

// All returns every stored transaction keyed by ID.
func (m *MockTransactionRepository) All() map[int64]*domain.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[int64]*domain.Transaction, len(m.transactions))
	for id, txn := range m.transactions {
		copied := *txn
		out[id] = &copied
	}
	return out
}

// MockTransaction is a mock implementation of the unit-of-work Transaction.
type MockTransaction struct {
	mu        sync.Mutex
	Commits   int
	Rollbacks int

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Commits++
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Rollbacks++
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}
