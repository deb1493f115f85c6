package preferences

import (
	"context"
	"errors"
	"sync"
)

type fakeCatalog struct {
	names  []string
	prices map[string]float64
}

func (c fakeCatalog) Names() []string                  { return c.names }
func (c fakeCatalog) DefaultPrice(name string) float64 { return c.prices[name] }

func newFakeCatalog() fakeCatalog {
	return fakeCatalog{
		names:  []string{"Wheat", "Corn", "Apple Tree"},
		prices: map[string]float64{"Wheat": 9, "Corn": 12.5, "Apple Tree": 40},
	}
}

var errStoreDown = errors.New("store down")

// flakyStore wraps a MemoryStore and fails selected operations
type flakyStore struct {
	*MemoryStore
	mu         sync.Mutex
	failGet    map[string]bool
	failAllGet bool
	failSet    bool
	sets       int
}

func newFlakyStore() *flakyStore {
	return &flakyStore{MemoryStore: NewMemoryStore(), failGet: map[string]bool{}}
}

func (f *flakyStore) Get(ctx context.Context, profile, key string) (string, bool, error) {
	f.mu.Lock()
	fail := f.failAllGet || f.failGet[key]
	f.mu.Unlock()
	if fail {
		return "", false, errStoreDown
	}
	return f.MemoryStore.Get(ctx, profile, key)
}

func (f *flakyStore) Set(ctx context.Context, profile, key, value string) error {
	f.mu.Lock()
	f.sets++
	fail := f.failSet
	f.mu.Unlock()
	if fail {
		return errStoreDown
	}
	return f.MemoryStore.Set(ctx, profile, key, value)
}

// gatedStore holds back every write of one value until release is closed
type gatedStore struct {
	*MemoryStore
	value   string
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGatedStore(value string) *gatedStore {
	return &gatedStore{
		MemoryStore: NewMemoryStore(),
		value:       value,
		entered:     make(chan struct{}),
		release:     make(chan struct{}),
	}
}

func (g *gatedStore) Set(ctx context.Context, profile, key, value string) error {
	if value == g.value {
		g.once.Do(func() { close(g.entered) })
		<-g.release
	}
	return g.MemoryStore.Set(ctx, profile, key, value)
}
