// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CipherEnvelope is one encrypted field as it travels to and from the record
// store: base64(nonce ‖ ciphertext ‖ tag). The store treats it as an opaque
// string; it is meaningless without the key that produced it.
type CipherEnvelope string

// String returns the envelope unchanged.
func (e CipherEnvelope) String() string {
	return string(e)
}
