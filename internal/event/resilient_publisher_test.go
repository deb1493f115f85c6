package event

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockBus fails while shouldFail returns true for the call number
type mockBus struct {
	mu         sync.Mutex
	calls      int
	shouldFail func(call int) bool
}

func (m *mockBus) Publish(ctx context.Context, e Event) error {
	m.mu.Lock()
	m.calls++
	call := m.calls
	m.mu.Unlock()

	if m.shouldFail != nil && m.shouldFail(call) {
		return errors.New("mock publish error")
	}
	return nil
}

func (m *mockBus) Subscribe(Type, Handler) {}

func (m *mockBus) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func newPublisher(t *testing.T, bus Bus, retries int) (*ResilientPublisher, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	rp := NewResilientPublisher(bus, ResilientConfig{
		MaxRetries:     retries,
		RetryDelay:     5 * time.Millisecond,
		DeadLetterPath: path,
	})
	t.Cleanup(func() { _ = rp.Shutdown(context.Background()) })
	return rp, path
}

func TestResilientPublisher_SuccessfulPublish(t *testing.T) {
	bus := &mockBus{}
	rp, path := newPublisher(t, bus, 3)

	require.NoError(t, rp.Publish(context.Background(), NewPriceUpdatedEvent("p", "Wheat", 1)))
	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Equal(t, 1, bus.CallCount())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no dead letter expected")
}

func TestResilientPublisher_RetriesUntilSuccess(t *testing.T) {
	bus := &mockBus{shouldFail: func(call int) bool { return call <= 2 }}
	rp, _ := newPublisher(t, bus, 5)

	require.NoError(t, rp.Publish(context.Background(), NewPriceUpdatedEvent("p", "Wheat", 1)))

	assert.Eventually(t, func() bool { return bus.CallCount() == 3 }, time.Second, 5*time.Millisecond)
}

func TestResilientPublisher_DeadLettersAfterExhaustion(t *testing.T) {
	bus := &mockBus{shouldFail: func(int) bool { return true }}
	rp, path := newPublisher(t, bus, 2)

	require.NoError(t, rp.Publish(context.Background(), NewPreferencesUpdatedEvent("p", []string{"totalEffort"})))

	assert.Eventually(t, func() bool {
		fi, err := os.Stat(path)
		return err == nil && fi.Size() > 0 && bus.CallCount() == 3
	}, 2*time.Second, 5*time.Millisecond)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	require.True(t, scanner.Scan())
	var entry DeadLetterEntry
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
	assert.Equal(t, DeadLetterSchemaVersion, entry.SchemaVersion)
	assert.Equal(t, PreferencesUpdated, entry.Event.Type)
	assert.Equal(t, 2, entry.Attempts)
	assert.Equal(t, "mock publish error", entry.LastError)
}

func TestResilientPublisher_ShutdownStopsRetries(t *testing.T) {
	bus := &mockBus{shouldFail: func(int) bool { return true }}
	rp := NewResilientPublisher(bus, ResilientConfig{MaxRetries: 5, RetryDelay: time.Hour})

	require.NoError(t, rp.Publish(context.Background(), NewPriceUpdatedEvent("p", "Corn", 2)))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, rp.Shutdown(ctx))
	assert.Equal(t, 1, bus.CallCount())
}
