package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// ClientServices groups the services the UI talks to.
type ClientServices struct {
	Salts    SaltService
	Sessions SessionKeyCache
	Keys     VaultKeyService
	Items    VaultItemService
}

// NewClientServices wires the services on top of storages using the KDF and
// worker settings from cfg.
func NewClientServices(storages *store.ClientStorages, cfg config.ClientConfig) (*ClientServices, error) {
	kdf, err := crypto.NewKeyDerivationService(kdfParams(cfg.App.KDF))
	if err != nil {
		return nil, fmt.Errorf("create key derivation service: %w", err)
	}

	salts := NewSaltService(storages.Salts, kdf)
	sessions := NewSessionKeyCache(storages.Sessions)
	items := NewVaultItemService(storages.VaultItems, crypto.NewCipher(), utils.NewUUIDGenerator(), cfg.Workers.DecryptConcurrency)

	return &ClientServices{
		Salts:    salts,
		Sessions: sessions,
		Keys:     NewVaultKeyService(salts, kdf, sessions),
		Items:    NewVaultItemValidationService().Wrap(items),
	}, nil
}

func kdfParams(cfg config.ClientKDF) crypto.KDFParams {
	return crypto.KDFParams{
		Algorithm:    cfg.Algorithm,
		Iterations:   cfg.Iterations,
		ArgonTime:    cfg.ArgonTime,
		ArgonMemory:  cfg.ArgonMemoryKiB,
		ArgonThreads: cfg.ArgonThreads,
	}
}
