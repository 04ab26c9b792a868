// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// SaltSize is the length in bytes of a per-user KDF salt.
const SaltSize = 16

// Supported KDF algorithm names.
const (
	KDFPBKDF2SHA256 = "pbkdf2-sha256"
	KDFArgon2id     = "argon2id"
)

// KDFParams is the single, fixed parameter set used for every derivation in
// a deployment. Changing any field silently produces different keys for the
// same password, and existing envelopes carry no version marker.
type KDFParams struct {
	Algorithm string

	// PBKDF2 iteration count.
	Iterations int

	// Argon2id tuning parameters.
	ArgonTime    uint32
	ArgonMemory  uint32 // KiB
	ArgonThreads uint8
}

// DefaultKDFParams returns PBKDF2-HMAC-SHA256 with 100,000 iterations, plus
// the OWASP (2024) Argon2id values used when Algorithm is switched to
// [KDFArgon2id]:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func DefaultKDFParams() KDFParams {
	return KDFParams{
		Algorithm:    KDFPBKDF2SHA256,
		Iterations:   100_000,
		ArgonTime:    1,
		ArgonMemory:  64 * 1024, // 64 MiB
		ArgonThreads: 4,
	}
}

// keyDerivationService is the private implementation of [KeyDerivationService].
type keyDerivationService struct {
	params KDFParams
	rand   io.Reader
}

// NewKeyDerivationService validates params and constructs a
// [KeyDerivationService]. Zero numeric fields fall back to
// [DefaultKDFParams].
func NewKeyDerivationService(params KDFParams) (KeyDerivationService, error) {
	def := DefaultKDFParams()
	if params.Algorithm == "" {
		params.Algorithm = def.Algorithm
	}
	if params.Iterations <= 0 {
		params.Iterations = def.Iterations
	}
	if params.ArgonTime == 0 {
		params.ArgonTime = def.ArgonTime
	}
	if params.ArgonMemory == 0 {
		params.ArgonMemory = def.ArgonMemory
	}
	if params.ArgonThreads == 0 {
		params.ArgonThreads = def.ArgonThreads
	}

	switch params.Algorithm {
	case KDFPBKDF2SHA256, KDFArgon2id:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKDF, params.Algorithm)
	}

	return &keyDerivationService{params: params, rand: rand.Reader}, nil
}

// GenerateSalt implements [KeyDerivationService]. It reads SaltSize bytes
// from the CSPRNG and fails with [ErrRandomSourceUnavailable] if the read
// does not complete.
func (k *keyDerivationService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(k.rand, salt); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSourceUnavailable, err)
	}
	return salt, nil
}

// DeriveKey implements [KeyDerivationService]. The derived bytes are sealed
// into a [Key] and wiped from the heap together with the password copy.
func (k *keyDerivationService) DeriveKey(masterPassword string, salt []byte) (*Key, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSalt, len(salt), SaltSize)
	}

	password := []byte(masterPassword)
	defer memguard.WipeBytes(password)

	var raw []byte
	switch k.params.Algorithm {
	case KDFArgon2id:
		raw = argon2.IDKey(password, salt, k.params.ArgonTime, k.params.ArgonMemory, k.params.ArgonThreads, KeySize)
	default:
		raw = pbkdf2.Key(password, salt, k.params.Iterations, KeySize, sha256.New)
	}

	return newKey(raw)
}
