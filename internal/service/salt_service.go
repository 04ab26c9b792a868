// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

type saltService struct {
	salts store.SaltStore
	kdf   crypto.KeyDerivationService

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewSaltService creates a SaltService on top of the durable salt store.
func NewSaltService(salts store.SaltStore, kdf crypto.KeyDerivationService) SaltService {
	return &saltService{
		salts: salts,
		kdf:   kdf,
		locks: make(map[string]*sync.Mutex),
	}
}

// userLock returns the mutex serialising salt creation for userID.
func (s *saltService) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// GetOrCreateSalt implements SaltService. The new salt is persisted before it
// is returned, so no key is ever derived from a salt that was not stored.
// If another writer stored a salt first, that one wins and is returned.
func (s *saltService) GetOrCreateSalt(ctx context.Context, userID string) ([]byte, error) {
	if userID == "" {
		return nil, ErrNoUserID
	}

	log := logger.FromContext(ctx)

	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	encoded, found, err := s.salts.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("read salt: %w", err)
	}
	if found {
		return decodeSalt(encoded)
	}

	salt, err := s.kdf.GenerateSalt()
	if err != nil {
		log.Err(err).Str("func", "saltService.GetOrCreateSalt").Str("user_id", userID).Msg("failed to generate salt")
		return nil, err
	}

	err = s.salts.Set(ctx, userID, base64.StdEncoding.EncodeToString(salt))
	if errors.Is(err, store.ErrSaltAlreadyExists) {
		log.Info().Str("func", "saltService.GetOrCreateSalt").Str("user_id", userID).Msg("salt created concurrently, using stored one")
		return s.readExisting(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("store salt: %w", err)
	}

	log.Info().Str("func", "saltService.GetOrCreateSalt").Str("user_id", userID).Msg("created salt for new vault")
	return salt, nil
}

func (s *saltService) readExisting(ctx context.Context, userID string) ([]byte, error) {
	encoded, found, err := s.salts.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("read salt: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("read salt: %w", store.ErrSaltAlreadyExists)
	}
	return decodeSalt(encoded)
}

func decodeSalt(encoded string) ([]byte, error) {
	salt, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: stored salt is not base64", crypto.ErrInvalidSalt)
	}
	if len(salt) != crypto.SaltSize {
		return nil, fmt.Errorf("%w: stored salt has %d bytes", crypto.ErrInvalidSalt, len(salt))
	}
	return salt, nil
}
