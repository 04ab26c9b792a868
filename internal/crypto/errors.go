// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the vault crypto layer. Callers should match
// them with [errors.Is]; messages are deliberately generic so that a failed
// decryption never reveals whether the key was wrong or the data corrupted.
var (
	// ErrRandomSourceUnavailable is returned when the CSPRNG cannot supply
	// bytes for a salt or a nonce. It is fatal for the current operation and
	// must never be retried with different input.
	ErrRandomSourceUnavailable = errors.New("random source unavailable")

	// ErrDecryption is the generic decryption failure. It covers a wrong key,
	// a tampered or corrupted envelope and an unusable key handle alike.
	ErrDecryption = errors.New("failed to decrypt data: invalid encryption key or corrupted data")

	// ErrMalformedEnvelope is returned when an envelope cannot be parsed at
	// all (invalid base64 or shorter than nonce plus tag). It matches
	// ErrDecryption via errors.Is.
	ErrMalformedEnvelope = fmt.Errorf("%w: malformed envelope", ErrDecryption)

	// ErrKeyReconstruction is returned by [ImportKey] when raw bytes read back
	// from the session store cannot be turned into a usable key.
	ErrKeyReconstruction = errors.New("failed to reconstruct key")

	// ErrInvalidKey is returned when a key handle is nil, destroyed, or raw
	// key material has the wrong length.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidSalt is returned when a salt is not exactly SaltSize bytes.
	ErrInvalidSalt = errors.New("invalid salt")

	// ErrUnsupportedKDF is returned for an unknown KDF algorithm name.
	ErrUnsupportedKDF = errors.New("unsupported key derivation function")
)
