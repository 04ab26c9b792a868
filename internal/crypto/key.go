// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"sync"

	"github.com/awnumar/memguard"
)

// KeySize is the length in bytes of a derived vault key (AES-256).
const KeySize = 32

// Key is an opaque handle to a derived vault key. The key material lives in a
// memguard enclave, encrypted at rest in process memory, and is only
// decrypted into a locked buffer for the duration of a single cipher call.
//
// A Key exposes no accessor for its bytes. The one deliberate way out is
// [ExportKey], used by the session key cache.
type Key struct {
	mu      sync.RWMutex
	enclave *memguard.Enclave
}

// newKey seals raw into a new Key. raw is wiped in every case.
func newKey(raw []byte) (*Key, error) {
	if len(raw) != KeySize {
		memguard.WipeBytes(raw)
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKey, len(raw), KeySize)
	}

	return &Key{enclave: memguard.NewEnclave(raw)}, nil
}

// use opens the enclave, passes the plaintext key to fn and destroys the
// locked buffer before returning.
func (k *Key) use(fn func(raw []byte) error) error {
	if k == nil {
		return ErrInvalidKey
	}

	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.enclave == nil {
		return ErrInvalidKey
	}

	buf, err := k.enclave.Open()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	defer buf.Destroy()

	return fn(buf.Bytes())
}

// Destroy drops the enclave. Any later use of the key fails with
// [ErrInvalidKey]. Safe to call more than once and on a nil Key.
func (k *Key) Destroy() {
	if k == nil {
		return
	}

	k.mu.Lock()
	k.enclave = nil
	k.mu.Unlock()
}

// Destroyed reports whether the key can no longer be used.
func (k *Key) Destroyed() bool {
	if k == nil {
		return true
	}

	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.enclave == nil
}

// ExportKey returns a copy of the raw key bytes. It exists only so the
// session key cache can move a key across the storage boundary; the caller
// owns the returned slice and must wipe it with memguard.WipeBytes once done.
func ExportKey(k *Key) ([]byte, error) {
	var out []byte
	err := k.use(func(raw []byte) error {
		out = make([]byte, len(raw))
		copy(out, raw)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ImportKey rebuilds a Key from raw bytes previously produced by [ExportKey].
// raw is wiped. Any failure is reported as [ErrKeyReconstruction].
func ImportKey(raw []byte) (*Key, error) {
	key, err := newKey(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyReconstruction, err)
	}

	return key, nil
}
