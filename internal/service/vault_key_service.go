package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

type vaultKeyService struct {
	salts SaltService
	kdf   crypto.KeyDerivationService
	cache SessionKeyCache
}

// NewVaultKeyService creates the unlock/lock service.
func NewVaultKeyService(salts SaltService, kdf crypto.KeyDerivationService, cache SessionKeyCache) VaultKeyService {
	return &vaultKeyService{salts: salts, kdf: kdf, cache: cache}
}

func (v *vaultKeyService) Resume(ctx context.Context, userID string) (*crypto.Key, bool) {
	if userID == "" {
		return nil, false
	}
	return v.cache.Get(ctx, userID)
}

func (v *vaultKeyService) Unlock(ctx context.Context, userID, masterPassword string) (*crypto.Key, error) {
	if userID == "" {
		return nil, ErrNoUserID
	}
	if masterPassword == "" {
		return nil, ErrEmptyMasterPassword
	}

	log := logger.FromContext(ctx)

	// the salt must be durable before anything is derived from it
	salt, err := v.salts.GetOrCreateSalt(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get or create salt: %w", err)
	}

	key, err := v.kdf.DeriveKey(masterPassword, salt)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	if err := v.cache.Put(ctx, userID, key); err != nil {
		// the vault is usable without the cache; the next open re-prompts
		log.Warn().Err(err).Str("func", "vaultKeyService.Unlock").Str("user_id", userID).Msg("failed to cache session key")
	}

	log.Info().Str("func", "vaultKeyService.Unlock").Str("user_id", userID).Msg("vault unlocked")
	return key, nil
}

func (v *vaultKeyService) Lock(ctx context.Context, userID string, key *crypto.Key) error {
	key.Destroy()

	if err := v.cache.Clear(ctx, userID); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("func", "vaultKeyService.Lock").Str("user_id", userID).Msg("vault locked")
	return nil
}
