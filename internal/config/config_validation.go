// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// Supported KDF names. They match the crypto package constants.
const (
	KDFPBKDF2SHA256 = "pbkdf2-sha256"
	KDFArgon2id     = "argon2id"
)

// Supported salt store drivers.
const (
	SaltDriverSQLite = "sqlite"
	SaltDriverBolt   = "bolt"
	SaltDriverMemory = "memory"
)

// minPBKDF2Iterations rejects configurations that would weaken the default
// derivation to a trivially brute-forceable level.
const minPBKDF2Iterations = 10_000

// validate checks that the final merged [StructuredConfig] is usable.
// Partially filled configs (no defaults yet) are accepted; only values that
// are set and obviously wrong are rejected.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.DecryptConcurrency < 0 {
		return fmt.Errorf("%w: decrypt concurrency must not be negative", ErrInvalidWorkerConfigs)
	}
	if cfg.App.KDF.Iterations < 0 {
		return fmt.Errorf("%w: kdf iterations must not be negative", ErrInvalidAppConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || isInMemorySQLite(cfg.Storage.DB.DSN) {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Storage.Salt.Driver {
	case SaltDriverSQLite, SaltDriverMemory:
	case SaltDriverBolt:
		if cfg.Storage.Salt.Path == "" {
			return fmt.Errorf("%w: bolt salt driver needs a path", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown salt driver %q", ErrInvalidStorageConfigs, cfg.Storage.Salt.Driver)
	}

	switch cfg.App.KDF.Algorithm {
	case KDFPBKDF2SHA256:
		if cfg.App.KDF.Iterations < minPBKDF2Iterations {
			return fmt.Errorf("%w: pbkdf2 needs at least %d iterations", ErrInvalidAppConfigs, minPBKDF2Iterations)
		}
	case KDFArgon2id:
		if cfg.App.KDF.ArgonTime == 0 || cfg.App.KDF.ArgonMemoryKiB == 0 || cfg.App.KDF.ArgonThreads == 0 {
			return fmt.Errorf("%w: argon2id parameters must be positive", ErrInvalidAppConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown kdf %q", ErrInvalidAppConfigs, cfg.App.KDF.Algorithm)
	}

	if cfg.App.UserID == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.DecryptConcurrency <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// isInMemorySQLite reports whether dsn names a SQLite database that lives only
// for the connection: ":memory:", "file::memory:" or a URI with mode=memory.
func isInMemorySQLite(dsn string) bool {
	path, query, _ := strings.Cut(dsn, "?")
	path = strings.TrimPrefix(path, "file:")
	if path == ":memory:" {
		return true
	}

	for _, param := range strings.Split(query, "&") {
		if param == "mode=memory" {
			return true
		}
	}
	return false
}
