package store

import (
	"context"
	"sync"
)

// memorySaltStore is a process-local [SaltStore]. Salts are lost on exit,
// so vaults unlocked against it cannot be reopened later.
type memorySaltStore struct {
	mu    sync.RWMutex
	salts map[string]string
}

// NewMemorySaltStore constructs an empty in-memory [SaltStore].
func NewMemorySaltStore() SaltStore {
	return &memorySaltStore{salts: make(map[string]string)}
}

func (m *memorySaltStore) Get(_ context.Context, userID string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	salt, ok := m.salts[userID]
	return salt, ok, nil
}

func (m *memorySaltStore) Set(_ context.Context, userID string, salt string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.salts[userID]; ok {
		return ErrSaltAlreadyExists
	}
	m.salts[userID] = salt
	return nil
}
