package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/awnumar/memguard"
)

// memorySessionStore is the in-process [SessionKeyStore]. Each value is
// sealed in its own memguard enclave so it is encrypted at rest in RAM.
type memorySessionStore struct {
	mu      sync.RWMutex
	entries map[string]*memguard.Enclave
}

// NewMemorySessionStore constructs an empty session store.
func NewMemorySessionStore() SessionKeyStore {
	return &memorySessionStore{entries: make(map[string]*memguard.Enclave)}
}

func (m *memorySessionStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	enclave, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return "", false, nil
	}

	buf, err := enclave.Open()
	if err != nil {
		return "", false, fmt.Errorf("open session entry: %w", err)
	}
	defer buf.Destroy()

	// copy out before the buffer is destroyed
	return string(buf.Bytes()), true, nil
}

func (m *memorySessionStore) Set(_ context.Context, key string, value string) error {
	// NewEnclave wipes its argument, so hand it a private copy.
	enclave := memguard.NewEnclave([]byte(value))
	if enclave == nil {
		return fmt.Errorf("seal session entry: empty value")
	}

	m.mu.Lock()
	m.entries[key] = enclave
	m.mu.Unlock()
	return nil
}

func (m *memorySessionStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

func (m *memorySessionStore) Purge(_ context.Context) error {
	m.mu.Lock()
	m.entries = make(map[string]*memguard.Enclave)
	m.mu.Unlock()
	return nil
}
