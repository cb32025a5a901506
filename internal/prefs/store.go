// Package prefs is the durable key-value store behind user preferences.
package prefs

import "sync"

// Store reads and writes string preferences by key.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// MemStore is an in-memory Store. The zero value is ready to use.
type MemStore struct {
	mu     sync.Mutex
	values map[string]string
}

func (m *MemStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}
