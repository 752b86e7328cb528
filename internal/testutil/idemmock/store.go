package idemmock

import (
	"context"
	"sync"
	"time"

	"loan-service/internal/idempotency"
)

var _ idempotency.Store = (*Store)(nil)

// Store is an in-memory idempotency.Store for tests. When the function
// fields are unset it behaves as a plain map-backed cache (TTL ignored);
// set GetFn/SetFn to simulate errors or observe calls.
type Store struct {
	GetFn func(ctx context.Context, token string) (*idempotency.Entry, error)
	SetFn func(ctx context.Context, token string, e *idempotency.Entry, ttl time.Duration) error

	mu      sync.Mutex
	entries map[string]*idempotency.Entry
}

func New() *Store { return &Store{entries: make(map[string]*idempotency.Entry)} }

func (m *Store) Get(ctx context.Context, token string) (*idempotency.Entry, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[token], nil
}

func (m *Store) Set(ctx context.Context, token string, e *idempotency.Entry, ttl time.Duration) error {
	if m.SetFn != nil {
		return m.SetFn(ctx, token, e, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[token] = e
	return nil
}

// Len reports how many entries were recorded (map mode only).
func (m *Store) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
