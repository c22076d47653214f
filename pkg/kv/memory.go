package kv

import (
	"context"
	"sync"
)

// Memory is an in-memory implementation of the Store interface.
// It's useful for testing and as the default backend for applications
// that don't need persistence across restarts.
// All methods are safe for concurrent use.
type Memory struct {
	values map[string]any
	mu     sync.RWMutex
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		values: make(map[string]any),
	}
}

// NewMemoryWithValues creates an in-memory store pre-populated with the
// given scalar values. The map is copied; later mutation of the argument
// does not affect the store.
func NewMemoryWithValues(values map[string]any) *Memory {
	m := NewMemory()
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

// Get returns the raw stored value, or (nil, nil) if the key is not set.
func (m *Memory) Get(ctx context.Context, key string) (any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (m *Memory) GetString(ctx context.Context, key string) (string, bool, error) {
	return GetTyped[string](ctx, m, key)
}

func (m *Memory) GetInt(ctx context.Context, key string) (int64, bool, error) {
	return GetTyped[int64](ctx, m, key)
}

func (m *Memory) GetFloat(ctx context.Context, key string) (float64, bool, error) {
	return GetTyped[float64](ctx, m, key)
}

func (m *Memory) GetBool(ctx context.Context, key string) (bool, bool, error) {
	return GetTyped[bool](ctx, m, key)
}

func (m *Memory) SetString(ctx context.Context, key, value string) error {
	return m.set(key, value)
}

func (m *Memory) SetInt(ctx context.Context, key string, value int64) error {
	return m.set(key, value)
}

func (m *Memory) SetFloat(ctx context.Context, key string, value float64) error {
	return m.set(key, value)
}

func (m *Memory) SetBool(ctx context.Context, key string, value bool) error {
	return m.set(key, value)
}

func (m *Memory) set(key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// Remove deletes the key. Removing an absent key is a no-op.
func (m *Memory) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

// Keys returns all stored keys in unspecified order.
func (m *Memory) Keys(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	return keys, nil
}

// Close releases any resources. For the memory store, this is a no-op.
func (m *Memory) Close() error {
	return nil
}
