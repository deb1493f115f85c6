package preferences

import (
	"context"
	"sort"
	"sync"
)

// Store is a flat key-value store scoped per profile
type Store interface {
	// Get returns the stored value and whether the key exists
	Get(ctx context.Context, profile, key string) (string, bool, error)
	Set(ctx context.Context, profile, key, value string) error
	Ping(ctx context.Context) error
	Close() error
}

// PriceKey is the storage key for a crop price
func PriceKey(cropName string) string {
	return PriceKeyPrefix + cropName
}

// MemoryStore keeps preferences in process memory
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]map[string]string
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[string]map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, profile, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.profiles[profile][key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, profile, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	values, ok := m.profiles[profile]
	if !ok {
		values = make(map[string]string)
		m.profiles[profile] = values
	}
	values[key] = value
	return nil
}

func (m *MemoryStore) Ping(context.Context) error { return nil }

func (m *MemoryStore) Close() error { return nil }

// Keys lists the stored keys of a profile in sorted order
func (m *MemoryStore) Keys(profile string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.profiles[profile]))
	for k := range m.profiles[profile] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
