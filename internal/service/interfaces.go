package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SaltService owns the per-user salt lifecycle.
type SaltService interface {
	// GetOrCreateSalt returns the stored salt for userID. When none exists a
	// fresh one is generated and persisted before it is returned. Repeated
	// calls for the same user always return the same bytes.
	GetOrCreateSalt(ctx context.Context, userID string) ([]byte, error)
}

// SessionKeyCache keeps the derived key for the current session so the user
// is not prompted again on every vault open.
type SessionKeyCache interface {
	// Put exports key and stores it, Base64-encoded, in the session store.
	Put(ctx context.Context, userID string, key *crypto.Key) error
	// Get reconstructs the cached key. ok is false when nothing is cached or
	// the cached bytes cannot be turned back into a key.
	Get(ctx context.Context, userID string) (key *crypto.Key, ok bool)
	// Clear drops the cached key. It is called on explicit logout.
	Clear(ctx context.Context, userID string) error
}

// VaultKeyService drives vault unlock and lock.
type VaultKeyService interface {
	// Resume returns the session-cached key, if any.
	Resume(ctx context.Context, userID string) (*crypto.Key, bool)
	// Unlock gets or creates the user's salt, derives the key from
	// masterPassword and caches it for the session. A wrong password is not
	// detected here; it shows up as every item failing to decrypt.
	Unlock(ctx context.Context, userID, masterPassword string) (*crypto.Key, error)
	// Lock clears the cached key and destroys key.
	Lock(ctx context.Context, userID string, key *crypto.Key) error
}

// VaultItemService manages vault items. Passwords and notes are encrypted
// before they reach the record store and decrypted after they are read.
type VaultItemService interface {
	Create(ctx context.Context, userID string, key *crypto.Key, item models.VaultItemPlaintext) (models.VaultItemPlaintext, error)
	Update(ctx context.Context, userID string, key *crypto.Key, item models.VaultItemPlaintext) (models.VaultItemPlaintext, error)
	Delete(ctx context.Context, userID, id string) error
	Get(ctx context.Context, userID string, key *crypto.Key, id string) (models.VaultItemPlaintext, error)

	// LoadAll decrypts every item of userID. Items that fail to decrypt are
	// reported in the result's Failed list and never abort the load.
	LoadAll(ctx context.Context, userID string, key *crypto.Key) (models.VaultLoadResult, error)

	// Filter returns the items whose title, username or URL contain query,
	// case-insensitively, preserving order.
	Filter(items []models.VaultItemPlaintext, query string) []models.VaultItemPlaintext
}

// VaultItemServiceWrapper decorates a VaultItemService, for example with
// input validation.
type VaultItemServiceWrapper interface {
	VaultItemService
	Wrap(inner VaultItemService) VaultItemService
}

// IDGenerator issues identifiers for new vault items.
type IDGenerator interface {
	Generate() string
}
