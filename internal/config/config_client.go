package config

import (
	"fmt"
	"time"
)

// ClientKDF is the key derivation parameter set used by the client.
type ClientKDF struct {
	Algorithm      string
	Iterations     int
	ArgonTime      uint32
	ArgonMemoryKiB uint32
	ArgonThreads   uint8
}

// ClientApp holds client-side application settings.
type ClientApp struct {
	// KDF is the fixed key derivation parameter set.
	KDF ClientKDF
	// UserID namespaces the salt, the session key and the items.
	UserID string
	// LogPath is the client log file.
	LogPath string
}

// ClientDB contains record store connection settings.
type ClientDB struct {
	// DSN is the SQLite path or PostgreSQL URL.
	DSN string
}

// ClientSalt contains salt store settings.
type ClientSalt struct {
	Driver      string
	Path        string
	OpenTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds record store settings.
	DB ClientDB
	// Salt holds salt store settings.
	Salt ClientSalt
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// DecryptConcurrency bounds parallel item decryption.
	DecryptConcurrency int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			KDF: ClientKDF{
				Algorithm:      cfg.App.KDF.Algorithm,
				Iterations:     cfg.App.KDF.Iterations,
				ArgonTime:      cfg.App.KDF.ArgonTime,
				ArgonMemoryKiB: cfg.App.KDF.ArgonMemoryKiB,
				ArgonThreads:   cfg.App.KDF.ArgonThreads,
			},
			UserID:  cfg.App.UserID,
			LogPath: cfg.App.LogPath,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			Salt: ClientSalt{
				Driver:      cfg.Storage.Salt.Driver,
				Path:        cfg.Storage.Salt.Path,
				OpenTimeout: cfg.Storage.Salt.OpenTimeout,
			},
		},
		Workers: ClientWorkers{DecryptConcurrency: cfg.Workers.DecryptConcurrency},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
