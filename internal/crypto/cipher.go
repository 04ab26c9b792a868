// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// Envelope layout constants. The nonce length is fixed, so an envelope needs
// no format tag.
const (
	NonceSize = 12
	TagSize   = 16
)

// aesGCMCipher is the AES-256-GCM implementation of [Cipher].
type aesGCMCipher struct {
	rand io.Reader
}

// NewCipher constructs a [Cipher] that draws nonces from crypto/rand.
func NewCipher() Cipher {
	return &aesGCMCipher{rand: rand.Reader}
}

// Encrypt implements [Cipher]. The output is a Base64 (standard encoding)
// string of the blob: nonce (12 bytes) ‖ ciphertext ‖ tag (16 bytes).
func (c *aesGCMCipher) Encrypt(plaintext string, key *Key) (string, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(c.rand, nonce); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRandomSourceUnavailable, err)
	}

	var blob []byte
	err := key.use(func(raw []byte) error {
		gcm, err := newGCM(raw)
		if err != nil {
			return err
		}

		blob = gcm.Seal(nonce, nonce, []byte(plaintext), nil)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("encrypt: %w", err)
	}

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [Cipher]. Every failure past envelope parsing collapses
// into the same [ErrDecryption] value.
func (c *aesGCMCipher) Decrypt(envelope string, key *Key) (string, error) {
	blob, err := decodeEnvelope(envelope)
	if err != nil {
		return "", err
	}

	if key.Destroyed() {
		return "", fmt.Errorf("%w: %w", ErrDecryption, ErrInvalidKey)
	}

	nonce, ciphertext := blob[:NonceSize], blob[NonceSize:]

	var plaintext []byte
	err = key.use(func(raw []byte) error {
		gcm, err := newGCM(raw)
		if err != nil {
			return err
		}

		plaintext, err = gcm.Open(nil, nonce, ciphertext, nil)
		return err
	})
	if err != nil {
		return "", ErrDecryption
	}

	return string(plaintext), nil
}

// decodeEnvelope accepts only the exact encoding Encrypt produces. Strict
// decoding rejects non-zero padding bits, and the re-encode check rejects
// line breaks, which the decoder would otherwise skip.
func decodeEnvelope(envelope string) ([]byte, error) {
	blob, err := base64.StdEncoding.Strict().DecodeString(envelope)
	if err != nil || base64.StdEncoding.EncodeToString(blob) != envelope {
		return nil, ErrMalformedEnvelope
	}
	if len(blob) < NonceSize+TagSize {
		return nil, ErrMalformedEnvelope
	}

	return blob, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
