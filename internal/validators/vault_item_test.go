// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validItem() models.VaultItemPlaintext {
	return models.VaultItemPlaintext{
		ID:       "item-1",
		Title:    "mail",
		Username: "alice",
		Password: "my-secret-pw",
		URL:      "https://mail.example.com/login",
	}
}

// ---------------------------------------------------------------------------
// Validate dispatch
// ---------------------------------------------------------------------------

func TestNewVaultItemValidator(t *testing.T) {
	v := NewVaultItemValidator()
	require.NotNil(t, v)
	assert.IsType(t, &VaultItemValidator{}, v)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewVaultItemValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.VaultItem{}), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, (*models.VaultItemPlaintext)(nil)), ErrUnsupportedType)
}

func TestValidate_ValueAndPointer(t *testing.T) {
	v := NewVaultItemValidator()
	item := validItem()

	assert.NoError(t, v.Validate(context.Background(), item))
	assert.NoError(t, v.Validate(context.Background(), &item))
}

// ---------------------------------------------------------------------------
// Field rules
// ---------------------------------------------------------------------------

func TestValidate_Fields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.VaultItemPlaintext)
		fields  []string
		wantErr error
	}{
		{name: "valid defaults", mutate: func(*models.VaultItemPlaintext) {}},
		{name: "new item needs no id", mutate: func(i *models.VaultItemPlaintext) { i.ID = "" }},
		{name: "empty title", mutate: func(i *models.VaultItemPlaintext) { i.Title = "   " }, wantErr: ErrEmptyTitle},
		{name: "title too long", mutate: func(i *models.VaultItemPlaintext) { i.Title = strings.Repeat("я", MaxTitleLength+1) }, wantErr: ErrTitleTooLong},
		{name: "title at limit", mutate: func(i *models.VaultItemPlaintext) { i.Title = strings.Repeat("я", MaxTitleLength) }},
		{name: "empty password", mutate: func(i *models.VaultItemPlaintext) { i.Password = "" }, wantErr: ErrEmptyPassword},
		{name: "whitespace password is allowed", mutate: func(i *models.VaultItemPlaintext) { i.Password = "   " }},
		{name: "no url", mutate: func(i *models.VaultItemPlaintext) { i.URL = "" }},
		{name: "bare host url", mutate: func(i *models.VaultItemPlaintext) { i.URL = "example.com" }},
		{name: "url with spaces", mutate: func(i *models.VaultItemPlaintext) { i.URL = "not a url" }, wantErr: ErrInvalidURL},
		{name: "url without host", mutate: func(i *models.VaultItemPlaintext) { i.URL = "https://" }, wantErr: ErrInvalidURL},
		{name: "id required when asked", mutate: func(i *models.VaultItemPlaintext) { i.ID = "" }, fields: []string{FieldID}, wantErr: ErrInvalidItemID},
		{name: "scoped to id ignores title", mutate: func(i *models.VaultItemPlaintext) { i.Title = "" }, fields: []string{FieldID}},
		{name: "unknown field", mutate: func(*models.VaultItemPlaintext) {}, fields: []string{"notes"}, wantErr: ErrUnknownField},
	}

	v := NewVaultItemValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validItem()
			tt.mutate(&item)

			err := v.Validate(context.Background(), item, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
