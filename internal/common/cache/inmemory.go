package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

const defaultCleanupInterval = time.Minute

// InMemoryClient is a process local Client, used when no redis is configured. Values are kept
// encoded so callers never share a cached slice or map.
type InMemoryClient[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
	done    chan struct{}
	once    sync.Once
}

type entry struct {
	raw       []byte
	expiresAt time.Time
}

func (e entry) expiredAt(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

type InMemoryOption func(*inMemoryOptions)

type inMemoryOptions struct {
	cleanupInterval time.Duration
	now             func() time.Time
}

func WithCleanupInterval(d time.Duration) InMemoryOption {
	return func(o *inMemoryOptions) {
		if d > 0 {
			o.cleanupInterval = d
		}
	}
}

func WithClock(now func() time.Time) InMemoryOption {
	return func(o *inMemoryOptions) { o.now = now }
}

func NewInMemoryClient[T any](opts ...InMemoryOption) *InMemoryClient[T] {
	o := inMemoryOptions{cleanupInterval: defaultCleanupInterval, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	m := &InMemoryClient[T]{
		entries: make(map[string]entry),
		now:     o.now,
		done:    make(chan struct{}),
	}
	go m.evictLoop(o.cleanupInterval)
	return m
}

func (m *InMemoryClient[T]) Get(_ context.Context, key string) (result T, err error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || e.expiredAt(m.now()) {
		return result, ErrNotExists
	}
	if err = json.Unmarshal(e.raw, &result); err != nil {
		return result, err
	}
	return result, nil
}

// Set stores object; a ttl of zero never expires.
func (m *InMemoryClient[T]) Set(_ context.Context, key string, object T, ttl time.Duration) error {
	raw, err := json.Marshal(object)
	if err != nil {
		return err
	}

	e := entry{raw: raw}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
	return nil
}

func (m *InMemoryClient[T]) GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (T, error) {
	return getOrSet[T](ctx, m, opts)
}

// Len counts the stored entries, expired ones included until the next eviction.
func (m *InMemoryClient[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *InMemoryClient[T]) evictExpired() {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()
	for key, e := range m.entries {
		if e.expiredAt(now) {
			delete(m.entries, key)
		}
	}
}

func (m *InMemoryClient[T]) evictLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.evictExpired()
		case <-m.done:
			return
		}
	}
}

// Close stops the eviction loop. It is safe to call more than once.
func (m *InMemoryClient[T]) Close() {
	m.once.Do(func() { close(m.done) })
}
