package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeIdempotencyStore struct {
	mu      sync.Mutex
	entries map[string][]byte
	err     error
}

func newFakeIdempotencyStore() *fakeIdempotencyStore {
	return &fakeIdempotencyStore{entries: make(map[string][]byte)}
}

func (s *fakeIdempotencyStore) CheckAndSet(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, nil, s.err
	}
	if existing, ok := s.entries[key]; ok {
		return true, existing, nil
	}
	s.entries[key] = []byte("processing")
	return false, nil, nil
}

func (s *fakeIdempotencyStore) Update(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

func TestIdempotencyMiddleware_CachesAndReplays(t *testing.T) {
	store := newFakeIdempotencyStore()
	calls := 0
	handler := NewIdempotencyMiddleware(store, time.Minute).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"transaction_id":1}`))
	}))

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader("{}"))
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	handler.ServeHTTP(first, req)

	if first.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", first.Code)
	}
	if first.Header().Get("X-Idempotency-Replay") != "" {
		t.Error("first request must not be marked as replay")
	}

	second := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader("{}"))
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	handler.ServeHTTP(second, req)

	if calls != 1 {
		t.Errorf("expected handler called once, got %d", calls)
	}
	if second.Header().Get("X-Idempotency-Replay") != "true" {
		t.Error("expected replay header on second request")
	}
	if second.Body.String() != `{"transaction_id":1}` {
		t.Errorf("unexpected replayed body %q", second.Body.String())
	}
}

func TestIdempotencyMiddleware_SkipsWithoutKeyOrOnReads(t *testing.T) {
	store := newFakeIdempotencyStore()
	calls := 0
	handler := NewIdempotencyMiddleware(store, time.Minute).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/transactions", nil))

	req := httptest.NewRequest(http.MethodGet, "/transactions/1", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if calls != 2 {
		t.Errorf("expected both requests to pass through, got %d calls", calls)
	}
	store.mu.Lock()
	defer store.mu.Unlock()
	if len(store.entries) != 0 {
		t.Error("expected nothing cached without a key on a mutating request")
	}
}

func TestIdempotencyMiddleware_DoesNotCacheFailures(t *testing.T) {
	store := newFakeIdempotencyStore()
	calls := 0
	handler := NewIdempotencyMiddleware(store, time.Minute).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/transactions", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	// The failed attempt leaves the claim at "processing", so a retry
	// reaches the handler instead of replaying an error.
	req = httptest.NewRequest(http.MethodPost, "/transactions", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if calls != 2 {
		t.Errorf("expected retry to reach the handler, got %d calls", calls)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201 on retry, got %d", rec.Code)
	}
}
