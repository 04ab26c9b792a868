// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// VaultItem is one row of the record store. Only the password and the notes
// are encrypted; title, username and URL are kept in the clear.
type VaultItem struct {
	// ID is the item identifier (UUID v7), assigned on creation.
	ID string
	// OwnerID identifies the user the item belongs to.
	OwnerID string

	Title    string
	Username *string
	URL      *string

	// EncryptedPassword is always present.
	EncryptedPassword CipherEnvelope
	// EncryptedNotes is nil when the item has no notes.
	EncryptedNotes *CipherEnvelope

	CreatedAt time.Time
	UpdatedAt time.Time
}

// VaultItemPlaintext is the decrypted view of a [VaultItem] handed to the UI.
// Empty Username, URL and Notes mean the field is absent.
type VaultItemPlaintext struct {
	ID       string
	Title    string
	Username string
	Password string
	URL      string
	Notes    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Matches reports whether query occurs, case-insensitively, in the title,
// username or URL. An empty query matches everything.
func (p VaultItemPlaintext) Matches(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Username), query) ||
		strings.Contains(strings.ToLower(p.URL), query)
}

// OptionalString converts an empty string to nil, the way nullable columns
// store an absent value.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue returns the pointed-to string or "" for nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
