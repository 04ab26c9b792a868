// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the item identifier. Required for update and delete.
	FieldID = "id"
	// FieldTitle targets the display title.
	FieldTitle = "title"
	// FieldPassword targets the secret that gets encrypted.
	FieldPassword = "password"
	// FieldURL targets the optional site address.
	FieldURL = "url"
)

// MaxTitleLength bounds the title in runes. Titles are stored in the clear.
const MaxTitleLength = 256

// VaultItemValidator implements [Validator] for [models.VaultItemPlaintext].
// Without field names it checks everything a new item needs.
type VaultItemValidator struct {
}

// NewVaultItemValidator constructs a new VaultItemValidator.
func NewVaultItemValidator() Validator {
	return &VaultItemValidator{}
}

func (v *VaultItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.VaultItemPlaintext:
		return v.validateItem(ctx, value, fields...)
	case *models.VaultItemPlaintext:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateItem(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *VaultItemValidator) validateItem(_ context.Context, item models.VaultItemPlaintext, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldPassword, FieldURL}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(item.ID) == "" {
				return ErrInvalidItemID
			}
		case FieldTitle:
			title := strings.TrimSpace(item.Title)
			if title == "" {
				return ErrEmptyTitle
			}
			if utf8.RuneCountInString(title) > MaxTitleLength {
				return ErrTitleTooLong
			}
		case FieldPassword:
			if item.Password == "" {
				return ErrEmptyPassword
			}
		case FieldURL:
			if item.URL != "" && !isValidURL(item.URL) {
				return ErrInvalidURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidURL accepts absolute URLs and bare hosts such as "example.com".
func isValidURL(raw string) bool {
	if strings.ContainsAny(raw, " \t\n") {
		return false
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	return err == nil && u.Host != ""
}
