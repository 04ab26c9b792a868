package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

func newTestBoltStore(t *testing.T, path string) *BoltSaltStore {
	t.Helper()
	s, err := NewBoltSaltStore(path, time.Second, logger.Nop())
	require.NoError(t, err)
	return s
}

func TestBoltSaltStore_GetSet(t *testing.T) {
	s := newTestBoltStore(t, filepath.Join(t.TempDir(), "salts.bolt"))
	t.Cleanup(func() { s.Close() })
	ctx := testContext()

	_, found, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "alice", "Zmlyc3Q="))
	assert.ErrorIs(t, s.Set(ctx, "alice", "c2Vjb25k"), ErrSaltAlreadyExists)

	salt, found, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Zmlyc3Q=", salt)

	_, found, err = s.Get(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBoltSaltStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salts.bolt")

	s := newTestBoltStore(t, path)
	require.NoError(t, s.Set(testContext(), "alice", "Zmlyc3Q="))
	require.NoError(t, s.Close())

	reopened := newTestBoltStore(t, path)
	t.Cleanup(func() { reopened.Close() })

	salt, found, err := reopened.Get(testContext(), "alice")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Zmlyc3Q=", salt)
}

func TestBoltSaltStore_LockTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salts.bolt")
	holder := newTestBoltStore(t, path)
	t.Cleanup(func() { holder.Close() })

	_, err := NewBoltSaltStore(path, 50*time.Millisecond, logger.Nop())
	assert.Error(t, err)
}

func TestBoltSaltStore_CancelledContext(t *testing.T) {
	s := newTestBoltStore(t, filepath.Join(t.TempDir(), "salts.bolt"))
	t.Cleanup(func() { s.Close() })

	ctx, cancel := context.WithCancel(testContext())
	cancel()

	_, _, err := s.Get(ctx, "alice")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Set(ctx, "alice", "x"), context.Canceled)
}
