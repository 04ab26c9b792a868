package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

func testClientConfig(t *testing.T) config.ClientConfig {
	t.Helper()
	dir := t.TempDir()
	return config.ClientConfig{
		App: config.ClientApp{
			KDF:    config.ClientKDF{Algorithm: config.KDFPBKDF2SHA256, Iterations: 10_000},
			UserID: "alice",
		},
		Storage: config.ClientStorage{
			DB:   config.ClientDB{DSN: filepath.Join(dir, "vault.db")},
			Salt: config.ClientSalt{Driver: config.SaltDriverSQLite},
		},
		Workers: config.ClientWorkers{DecryptConcurrency: 2},
	}
}

func openServices(t *testing.T, ctx context.Context, cfg config.ClientConfig) (*ClientServices, *store.ClientStorages) {
	t.Helper()
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger.Nop())
	require.NoError(t, err)
	services, err := NewClientServices(storages, cfg)
	require.NoError(t, err)
	return services, storages
}

// A vault written in one session opens in the next with the same password
// and fails item by item with a different one.
func TestClientServices_UnlockPersistReopen(t *testing.T) {
	ctx := logger.Nop().WithContext(context.Background())
	cfg := testClientConfig(t)

	services, storages := openServices(t, ctx, cfg)
	key, err := services.Keys.Unlock(ctx, "alice", "CorrectHorse")
	require.NoError(t, err)
	created, err := services.Items.Create(ctx, "alice", key, models.VaultItemPlaintext{
		Title:    "mail",
		Password: "my-secret-pw",
	})
	require.NoError(t, err)
	require.NoError(t, services.Keys.Lock(ctx, "alice", key))
	require.NoError(t, storages.Close())

	services, storages = openServices(t, ctx, cfg)
	defer storages.Close()

	_, ok := services.Keys.Resume(ctx, "alice")
	assert.False(t, ok, "session cache does not survive a restart")

	key, err = services.Keys.Unlock(ctx, "alice", "CorrectHorse")
	require.NoError(t, err)
	res, err := services.Items.LoadAll(ctx, "alice", key)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, created.ID, res.Items[0].ID)
	assert.Equal(t, "my-secret-pw", res.Items[0].Password)

	wrong, err := services.Keys.Unlock(ctx, "alice", "WrongHorse")
	require.NoError(t, err)
	res, err = services.Items.LoadAll(ctx, "alice", wrong)
	require.NoError(t, err)
	assert.True(t, res.AllFailed())
	assert.Equal(t, []string{created.ID}, res.FailedIDs())
}

func TestNewClientServices_UnsupportedKDF(t *testing.T) {
	cfg := testClientConfig(t)
	cfg.App.KDF.Algorithm = "scrypt"

	_, err := NewClientServices(&store.ClientStorages{Salts: store.NewMemorySaltStore(), Sessions: store.NewMemorySessionStore()}, cfg)
	assert.Error(t, err)
}
