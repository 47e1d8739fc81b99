package locking

import (
	"sync"
	"time"

	"github.com/ndk-1996/BankingService/internal/infrastructure/metrics"
)

// AccountLocks serializes settlement per account with an in-process keyed
// mutex. A lock is created the first time an account is seen and kept for
// the lifetime of the process, so two concurrent credits for the same
// account can never interleave while unrelated accounts proceed in
// parallel. Fairness between waiters is not guaranteed.
type AccountLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// NewAccountLocks creates a new AccountLocks.
func NewAccountLocks() *AccountLocks {
	return &AccountLocks{locks: make(map[int64]*sync.Mutex)}
}

// WithLock runs fn with exclusive access to the given account.
func (l *AccountLocks) WithLock(accountID int64, fn func() error) error {
	lock := l.lockFor(accountID)

	start := time.Now()
	lock.Lock()
	metrics.AccountLockWait.Observe(time.Since(start).Seconds())
	defer lock.Unlock()

	return fn()
}

func (l *AccountLocks) lockFor(accountID int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[accountID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[accountID] = lock
	}

	return lock
}
