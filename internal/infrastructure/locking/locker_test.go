package locking

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestWithLockSerializesSameAccount(t *testing.T) {
	locks := NewAccountLocks()

	var inside, maxInside int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = locks.WithLock(1, func() error {
				mu.Lock()
				inside++
				if inside > maxInside {
					maxInside = inside
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	if maxInside != 1 {
		t.Errorf("expected at most one holder of the account lock, saw %d", maxInside)
	}
}

func TestWithLockIndependentAccountsDoNotBlock(t *testing.T) {
	locks := NewAccountLocks()

	release := make(chan struct{})
	held := make(chan struct{})
	go func() {
		_ = locks.WithLock(1, func() error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held
	defer close(release)

	done := make(chan struct{})
	go func() {
		_ = locks.WithLock(2, func() error { return nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock on account 2 blocked behind account 1")
	}
}

func TestWithLockPropagatesError(t *testing.T) {
	locks := NewAccountLocks()

	want := errors.New("critical section failed")
	if err := locks.WithLock(1, func() error { return want }); err != want {
		t.Errorf("expected %v, got %v", want, err)
	}

	// The lock must be free again after a failed critical section.
	done := make(chan struct{})
	go func() {
		_ = locks.WithLock(1, func() error { return nil })
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock was not released after an error")
	}
}
