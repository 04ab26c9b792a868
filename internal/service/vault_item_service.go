// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
	"github.com/MKhiriev/go-pass-vault/models"
)

type vaultItemService struct {
	items       store.VaultItemRepository
	cipher      crypto.Cipher
	ids         IDGenerator
	concurrency int
	now         func() time.Time
}

// NewVaultItemService creates a VaultItemService. concurrency bounds how many
// items LoadAll decrypts in parallel.
func NewVaultItemService(items store.VaultItemRepository, cipher crypto.Cipher, ids IDGenerator, concurrency int) VaultItemService {
	return &vaultItemService{
		items:       items,
		cipher:      cipher,
		ids:         ids,
		concurrency: concurrency,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *vaultItemService) Create(ctx context.Context, userID string, key *crypto.Key, item models.VaultItemPlaintext) (models.VaultItemPlaintext, error) {
	if err := checkAccess(userID, key); err != nil {
		return models.VaultItemPlaintext{}, err
	}

	now := s.now()
	item.ID = s.ids.Generate()
	item.CreatedAt = now
	item.UpdatedAt = now

	record, err := s.seal(userID, key, item)
	if err != nil {
		return models.VaultItemPlaintext{}, fmt.Errorf("encrypt item for create: %w", err)
	}

	if err := s.items.SaveItem(ctx, record); err != nil {
		return models.VaultItemPlaintext{}, fmt.Errorf("save created item: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("func", "vaultItemService.Create").Str("item_id", item.ID).Msg("item created")
	return item, nil
}

func (s *vaultItemService) Update(ctx context.Context, userID string, key *crypto.Key, item models.VaultItemPlaintext) (models.VaultItemPlaintext, error) {
	if err := checkAccess(userID, key); err != nil {
		return models.VaultItemPlaintext{}, err
	}

	prev, err := s.items.GetItem(ctx, userID, item.ID)
	if err != nil {
		return models.VaultItemPlaintext{}, fmt.Errorf("load existing item: %w", err)
	}

	item.CreatedAt = prev.CreatedAt
	item.UpdatedAt = s.now()

	record, err := s.seal(userID, key, item)
	if err != nil {
		return models.VaultItemPlaintext{}, fmt.Errorf("encrypt item for update: %w", err)
	}

	if err := s.items.UpdateItem(ctx, record); err != nil {
		return models.VaultItemPlaintext{}, fmt.Errorf("update item: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("func", "vaultItemService.Update").Str("item_id", item.ID).Msg("item updated")
	return item, nil
}

func (s *vaultItemService) Delete(ctx context.Context, userID, id string) error {
	if userID == "" {
		return ErrNoUserID
	}

	if err := s.items.DeleteItem(ctx, userID, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (s *vaultItemService) Get(ctx context.Context, userID string, key *crypto.Key, id string) (models.VaultItemPlaintext, error) {
	if err := checkAccess(userID, key); err != nil {
		return models.VaultItemPlaintext{}, err
	}

	record, err := s.items.GetItem(ctx, userID, id)
	if err != nil {
		return models.VaultItemPlaintext{}, fmt.Errorf("get item: %w", err)
	}

	plain, err := s.open(record, key)
	if err != nil {
		return models.VaultItemPlaintext{}, fmt.Errorf("decrypt item %s: %w", record.ID, err)
	}
	return plain, nil
}

// LoadAll implements VaultItemService. Every item is decrypted in its own
// worker and writes into its own slot, so the store order is kept.
func (s *vaultItemService) LoadAll(ctx context.Context, userID string, key *crypto.Key) (models.VaultLoadResult, error) {
	if err := checkAccess(userID, key); err != nil {
		return models.VaultLoadResult{}, err
	}

	log := logger.FromContext(ctx)

	records, err := s.items.ListItems(ctx, userID)
	if err != nil {
		return models.VaultLoadResult{}, fmt.Errorf("list items: %w", err)
	}

	type slot struct {
		plain models.VaultItemPlaintext
		err   error
		done  bool
	}
	slots := make([]slot, len(records))

	pool := workers.New(s.concurrency)
	for i := range records {
		pool.Add(workers.WorkerFunc(func(context.Context) {
			slots[i].plain, slots[i].err = s.open(records[i], key)
			slots[i].done = true
		}))
	}

	if err := pool.Run(ctx); err != nil {
		return models.VaultLoadResult{}, fmt.Errorf("decrypt vault: %w", err)
	}

	result := models.VaultLoadResult{
		Items: make([]models.VaultItemPlaintext, 0, len(records)),
	}
	for i, sl := range slots {
		if !sl.done {
			return models.VaultLoadResult{}, fmt.Errorf("decrypt vault: item %s was not processed", records[i].ID)
		}
		if sl.err != nil {
			log.Warn().Err(sl.err).Str("func", "vaultItemService.LoadAll").Str("item_id", records[i].ID).Msg("skipping item that failed to decrypt")
			result.Failed = append(result.Failed, models.FailedItem{ID: records[i].ID, Err: sl.err})
			continue
		}
		result.Items = append(result.Items, sl.plain)
	}

	if result.AllFailed() {
		log.Warn().Str("func", "vaultItemService.LoadAll").Int("failed", len(result.Failed)).Msg("no item could be decrypted, master password is probably wrong")
	}

	return result, nil
}

func (s *vaultItemService) Filter(items []models.VaultItemPlaintext, query string) []models.VaultItemPlaintext {
	if strings.TrimSpace(query) == "" {
		return items
	}

	out := make([]models.VaultItemPlaintext, 0, len(items))
	for _, it := range items {
		if it.Matches(query) {
			out = append(out, it)
		}
	}
	return out
}

// seal encrypts the secret fields of item into a record owned by userID.
// Notes are stored as NULL when empty.
func (s *vaultItemService) seal(userID string, key *crypto.Key, item models.VaultItemPlaintext) (models.VaultItem, error) {
	password, err := s.cipher.Encrypt(item.Password, key)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("encrypt password: %w", err)
	}

	record := models.VaultItem{
		ID:                item.ID,
		OwnerID:           userID,
		Title:             item.Title,
		Username:          models.OptionalString(item.Username),
		URL:               models.OptionalString(item.URL),
		EncryptedPassword: models.CipherEnvelope(password),
		CreatedAt:         item.CreatedAt,
		UpdatedAt:         item.UpdatedAt,
	}

	if item.Notes != "" {
		notes, err := s.cipher.Encrypt(item.Notes, key)
		if err != nil {
			return models.VaultItem{}, fmt.Errorf("encrypt notes: %w", err)
		}
		env := models.CipherEnvelope(notes)
		record.EncryptedNotes = &env
	}

	return record, nil
}

// open decrypts record. Either every secret field decrypts or the item fails.
func (s *vaultItemService) open(record models.VaultItem, key *crypto.Key) (models.VaultItemPlaintext, error) {
	password, err := s.cipher.Decrypt(record.EncryptedPassword.String(), key)
	if err != nil {
		return models.VaultItemPlaintext{}, err
	}

	var notes string
	if record.EncryptedNotes != nil {
		notes, err = s.cipher.Decrypt(record.EncryptedNotes.String(), key)
		if err != nil {
			return models.VaultItemPlaintext{}, err
		}
	}

	return models.VaultItemPlaintext{
		ID:        record.ID,
		Title:     record.Title,
		Username:  models.StringValue(record.Username),
		Password:  password,
		URL:       models.StringValue(record.URL),
		Notes:     notes,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}, nil
}

func checkAccess(userID string, key *crypto.Key) error {
	if userID == "" {
		return ErrNoUserID
	}
	if key.Destroyed() {
		return ErrVaultLocked
	}
	return nil
}
