package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// ClientStorages groups every store the vault needs into a single value
// that can be passed to the service layer.
type ClientStorages struct {
	// VaultItems is the record store for encrypted items.
	VaultItems VaultItemRepository
	// Salts is the durable per-user salt store.
	Salts SaltStore
	// Sessions is the volatile session store holding exported keys.
	Sessions SessionKeyStore

	closers []func() error
}

// NewClientStorages initialises the storage layer. It performs the following
// steps:
//  1. Opens the record store selected by cfg.DB.DSN (SQLite file, created if
//     missing, or a postgres:// URL).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Opens the salt store selected by cfg.Salt.Driver.
//  4. Creates an empty in-memory session store.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	s := &ClientStorages{
		VaultItems: NewVaultItemRepository(db, log),
		Sessions:   NewMemorySessionStore(),
		closers:    []func() error{db.Close},
	}

	switch cfg.Salt.Driver {
	case config.SaltDriverSQLite, "":
		s.Salts = NewSQLSaltStore(db, log)
	case config.SaltDriverBolt:
		bolt, err := NewBoltSaltStore(cfg.Salt.Path, cfg.Salt.OpenTimeout, log)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.Salts = bolt
		s.closers = append(s.closers, bolt.Close)
	case config.SaltDriverMemory:
		s.Salts = NewMemorySaltStore()
	default:
		s.Close()
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSaltDriver, cfg.Salt.Driver)
	}

	return s, nil
}

// Close purges the session store and releases every underlying handle.
func (s *ClientStorages) Close() error {
	var errs []error
	if s.Sessions != nil {
		errs = append(errs, s.Sessions.Purge(context.Background()))
	}
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}
	s.closers = nil
	return errors.Join(errs...)
}
