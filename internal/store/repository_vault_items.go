package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// vaultItemRepository is the SQL implementation of [VaultItemRepository].
// It works against SQLite and PostgreSQL; the embedded [*DB] picks the
// placeholder format.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext]. Only ids are logged; envelopes never are.
type vaultItemRepository struct {
	*DB
	logger *logger.Logger
}

// NewVaultItemRepository constructs a [VaultItemRepository] backed by the
// provided database connection and logger.
func NewVaultItemRepository(db *DB, logger *logger.Logger) VaultItemRepository {
	return &vaultItemRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveItem inserts a new item. An id collision yields
// [ErrVaultItemAlreadyExists].
func (r *vaultItemRepository) SaveItem(ctx context.Context, item models.VaultItem) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertVaultItemQuery(r.builder(), item)
	if err != nil {
		log.Err(err).Str("func", "vaultItemRepository.SaveItem").Msg("failed to create query")
		return err
	}

	err = r.withRetry(ctx, func(ctx context.Context) error {
		_, err := r.DB.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		if r.classify(err) == Duplicate {
			return ErrVaultItemAlreadyExists
		}
		log.Err(err).
			Str("func", "vaultItemRepository.SaveItem").
			Str("owner_id", item.OwnerID).
			Str("id", item.ID).
			Msg("failed to insert vault item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *vaultItemRepository) GetItem(ctx context.Context, ownerID, id string) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectVaultItemQuery(r.builder(), ownerID, id)
	if err != nil {
		return models.VaultItem{}, err
	}

	var item models.VaultItem
	err = r.withRetry(ctx, func(ctx context.Context) error {
		return scanVaultItem(r.DB.QueryRowContext(ctx, query, args...), &item)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultItem{}, ErrVaultItemNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "vaultItemRepository.GetItem").
			Str("owner_id", ownerID).
			Str("id", id).
			Msg("failed to get vault item")
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// ListItems returns every item of ownerID, newest first. An owner with no
// items gets an empty, non-nil slice.
func (r *vaultItemRepository) ListItems(ctx context.Context, ownerID string) ([]models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListVaultItemsQuery(r.builder(), ownerID)
	if err != nil {
		return nil, err
	}

	var items []models.VaultItem
	err = r.withRetry(ctx, func(ctx context.Context) error {
		items, err = r.queryItems(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "vaultItemRepository.ListItems").
			Str("owner_id", ownerID).
			Msg("failed to list vault items")
		return nil, err
	}

	return items, nil
}

func (r *vaultItemRepository) queryItems(ctx context.Context, query string, args ...any) ([]models.VaultItem, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.VaultItem, 0, 32)
	for rows.Next() {
		var item models.VaultItem
		if err := scanVaultItem(rows, &item); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// UpdateItem replaces the mutable columns of an existing item.
func (r *vaultItemRepository) UpdateItem(ctx context.Context, item models.VaultItem) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateVaultItemQuery(r.builder(), item)
	if err != nil {
		return err
	}

	if err := r.execAffectingOne(ctx, query, args...); err != nil {
		if !errors.Is(err, ErrVaultItemNotFound) {
			log.Err(err).
				Str("func", "vaultItemRepository.UpdateItem").
				Str("owner_id", item.OwnerID).
				Str("id", item.ID).
				Msg("failed to update vault item")
		}
		return err
	}

	return nil
}

func (r *vaultItemRepository) DeleteItem(ctx context.Context, ownerID, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteVaultItemQuery(r.builder(), ownerID, id)
	if err != nil {
		return err
	}

	if err := r.execAffectingOne(ctx, query, args...); err != nil {
		if !errors.Is(err, ErrVaultItemNotFound) {
			log.Err(err).
				Str("func", "vaultItemRepository.DeleteItem").
				Str("owner_id", ownerID).
				Str("id", id).
				Msg("failed to delete vault item")
		}
		return err
	}

	return nil
}

// execAffectingOne runs a DML statement and maps zero affected rows to
// [ErrVaultItemNotFound].
func (r *vaultItemRepository) execAffectingOne(ctx context.Context, query string, args ...any) error {
	var result sql.Result
	err := r.withRetry(ctx, func(ctx context.Context) error {
		var err error
		result, err = r.DB.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrVaultItemNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVaultItem(row rowScanner, item *models.VaultItem) error {
	return row.Scan(
		&item.ID,
		&item.OwnerID,
		&item.Title,
		&item.Username,
		&item.EncryptedPassword,
		&item.URL,
		&item.EncryptedNotes,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}
