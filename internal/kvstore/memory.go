package kvstore

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process Store. Used in tests and when no database is wired.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]map[string]Entry
	now     func() time.Time
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]map[string]Entry),
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, namespace, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[namespace][key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(e.Value))
	copy(out, e.Value)
	return out, nil
}

func (m *Memory) Set(_ context.Context, namespace, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ns, ok := m.entries[namespace]
	if !ok {
		ns = make(map[string]Entry)
		m.entries[namespace] = ns
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	ns[key] = Entry{Namespace: namespace, Key: key, Value: stored, UpdatedAt: m.now()}
	return nil
}

func (m *Memory) Delete(_ context.Context, namespace, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries[namespace], key)
	return nil
}

func (m *Memory) Prune(_ context.Context, namespace string, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int64
	for key, e := range m.entries[namespace] {
		if e.UpdatedAt.Before(cutoff) {
			delete(m.entries[namespace], key)
			removed++
		}
	}
	return removed, nil
}
