package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// sqlSaltStore keeps salts in the vault_salts table of the record store
// database.
type sqlSaltStore struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLSaltStore constructs a [SaltStore] backed by db.
func NewSQLSaltStore(db *DB, logger *logger.Logger) SaltStore {
	return &sqlSaltStore{DB: db, logger: logger, now: time.Now}
}

func (s *sqlSaltStore) Get(ctx context.Context, userID string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSaltQuery(s.builder(), userID)
	if err != nil {
		return "", false, err
	}

	var salt string
	err = s.withRetry(ctx, func(ctx context.Context) error {
		return s.DB.QueryRowContext(ctx, query, args...).Scan(&salt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqlSaltStore.Get").
			Str("user_id", userID).
			Msg("failed to query salt")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return salt, true, nil
}

func (s *sqlSaltStore) Set(ctx context.Context, userID string, salt string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSaltQuery(s.builder(), userID, salt, s.now())
	if err != nil {
		return err
	}

	err = s.withRetry(ctx, func(ctx context.Context) error {
		_, err := s.DB.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		if s.classify(err) == Duplicate {
			return ErrSaltAlreadyExists
		}
		log.Err(err).
			Str("func", "sqlSaltStore.Set").
			Str("user_id", userID).
			Msg("failed to insert salt")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
