package store

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

var saltsBucket = []byte("salts")

// BoltSaltStore keeps salts in a standalone bbolt file, independent of the
// record store database.
type BoltSaltStore struct {
	db     *bbolt.DB
	logger *logger.Logger
}

// NewBoltSaltStore opens (or creates) the bbolt file at path. openTimeout
// bounds the wait for the file lock held by another process.
func NewBoltSaltStore(path string, openTimeout time.Duration, log *logger.Logger) (*BoltSaltStore, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		log.Err(err).Str("func", "NewBoltSaltStore").Msg("error opening salt store")
		return nil, fmt.Errorf("error opening salt store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(saltsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating salts bucket: %w", err)
	}

	return &BoltSaltStore{db: db, logger: log}, nil
}

func (s *BoltSaltStore) Get(ctx context.Context, userID string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	var salt string
	var found bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(saltsBucket).Get([]byte(userID))
		if v != nil {
			// v is only valid inside the transaction
			salt, found = string(v), true
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "BoltSaltStore.Get").
			Str("user_id", userID).
			Msg("failed to read salt")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return salt, found, nil
}

func (s *BoltSaltStore) Set(ctx context.Context, userID string, salt string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(saltsBucket)
		if b.Get([]byte(userID)) != nil {
			return ErrSaltAlreadyExists
		}
		return b.Put([]byte(userID), []byte(salt))
	})
}

// Close releases the bbolt file lock.
func (s *BoltSaltStore) Close() error {
	return s.db.Close()
}
