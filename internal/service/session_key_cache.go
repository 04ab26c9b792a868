package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

const sessionKeyPrefix = "vault-key:"

type sessionKeyCache struct {
	sessions store.SessionKeyStore
}

// NewSessionKeyCache creates a SessionKeyCache backed by the session store.
func NewSessionKeyCache(sessions store.SessionKeyStore) SessionKeyCache {
	return &sessionKeyCache{sessions: sessions}
}

func sessionKeyName(userID string) string {
	return sessionKeyPrefix + userID
}

func (c *sessionKeyCache) Put(ctx context.Context, userID string, key *crypto.Key) error {
	raw, err := crypto.ExportKey(key)
	if err != nil {
		return fmt.Errorf("export key: %w", err)
	}
	defer memguard.WipeBytes(raw)

	if err := c.sessions.Set(ctx, sessionKeyName(userID), base64.StdEncoding.EncodeToString(raw)); err != nil {
		return fmt.Errorf("cache key: %w", err)
	}
	return nil
}

// Get implements SessionKeyCache. Any failure is logged and reported as a
// miss so the caller falls back to prompting for the master password.
func (c *sessionKeyCache) Get(ctx context.Context, userID string) (*crypto.Key, bool) {
	log := logger.FromContext(ctx)

	encoded, found, err := c.sessions.Get(ctx, sessionKeyName(userID))
	if err != nil {
		log.Warn().Err(err).Str("func", "sessionKeyCache.Get").Str("user_id", userID).Msg("session store read failed, treating as cache miss")
		return nil, false
	}
	if !found {
		return nil, false
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		log.Warn().Str("func", "sessionKeyCache.Get").Str("user_id", userID).Msg("cached key is not base64, treating as cache miss")
		return nil, false
	}

	key, err := crypto.ImportKey(raw)
	if err != nil {
		log.Warn().Err(err).Str("func", "sessionKeyCache.Get").Str("user_id", userID).Msg("cached key could not be reconstructed, treating as cache miss")
		return nil, false
	}

	return key, true
}

func (c *sessionKeyCache) Clear(ctx context.Context, userID string) error {
	if err := c.sessions.Remove(ctx, sessionKeyName(userID)); err != nil {
		return fmt.Errorf("clear cached key: %w", err)
	}
	return nil
}
