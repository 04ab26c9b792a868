package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SaltStore is the durable, non-secret per-user salt storage. A salt is
// written once and never replaced.
type SaltStore interface {
	// Get returns the Base64-encoded salt for userID. found is false when no
	// salt has been stored yet.
	Get(ctx context.Context, userID string) (salt string, found bool, err error)
	// Set stores salt for userID. It fails with [ErrSaltAlreadyExists] when
	// a salt is already present.
	Set(ctx context.Context, userID string, salt string) error
}

// SessionKeyStore is a volatile, session-scoped key-value store. Values are
// Base64 strings. Everything in it is discarded by Purge or process exit.
type SessionKeyStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
	// Purge drops every entry.
	Purge(ctx context.Context) error
}

// VaultItemRepository persists encrypted vault items.
type VaultItemRepository interface {
	SaveItem(ctx context.Context, item models.VaultItem) error
	GetItem(ctx context.Context, ownerID, id string) (models.VaultItem, error)
	// ListItems returns every item of ownerID, newest first.
	ListItems(ctx context.Context, ownerID string) ([]models.VaultItem, error)
	UpdateItem(ctx context.Context, item models.VaultItem) error
	DeleteItem(ctx context.Context, ownerID, id string) error
}
