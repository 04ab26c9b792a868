// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	vaultSaltsTable = "vault_salts"
	vaultItemsTable = "vault_items"
)

var vaultItemColumns = []string{
	"id",
	"owner_id",
	"title",
	"username",
	"encrypted_password",
	"url",
	"encrypted_notes",
	"created_at",
	"updated_at",
}

func buildSelectSaltQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	query, args, err := b.Select("salt").
		From(vaultSaltsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertSaltQuery(b sq.StatementBuilderType, userID, salt string, createdAt time.Time) (string, []any, error) {
	query, args, err := b.Insert(vaultSaltsTable).
		Columns("user_id", "salt", "created_at").
		Values(userID, salt, createdAt.UTC()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertVaultItemQuery(b sq.StatementBuilderType, item models.VaultItem) (string, []any, error) {
	query, args, err := b.Insert(vaultItemsTable).
		Columns(vaultItemColumns...).
		Values(
			item.ID,
			item.OwnerID,
			item.Title,
			nullableString(item.Username),
			item.EncryptedPassword.String(),
			nullableString(item.URL),
			nullableEnvelope(item.EncryptedNotes),
			item.CreatedAt.UTC(),
			item.UpdatedAt.UTC(),
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectVaultItemQuery(b sq.StatementBuilderType, ownerID, id string) (string, []any, error) {
	query, args, err := b.Select(vaultItemColumns...).
		From(vaultItemsTable).
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListVaultItemsQuery selects all items of an owner, newest first. The
// id tiebreak keeps the order stable for items created in the same instant.
func buildListVaultItemsQuery(b sq.StatementBuilderType, ownerID string) (string, []any, error) {
	query, args, err := b.Select(vaultItemColumns...).
		From(vaultItemsTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateVaultItemQuery(b sq.StatementBuilderType, item models.VaultItem) (string, []any, error) {
	query, args, err := b.Update(vaultItemsTable).
		Set("title", item.Title).
		Set("username", nullableString(item.Username)).
		Set("encrypted_password", item.EncryptedPassword.String()).
		Set("url", nullableString(item.URL)).
		Set("encrypted_notes", nullableEnvelope(item.EncryptedNotes)).
		Set("updated_at", item.UpdatedAt.UTC()).
		Where(sq.Eq{"owner_id": item.OwnerID}).
		Where(sq.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteVaultItemQuery(b sq.StatementBuilderType, ownerID, id string) (string, []any, error) {
	query, args, err := b.Delete(vaultItemsTable).
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullableEnvelope(e *models.CipherEnvelope) any {
	if e == nil {
		return nil
	}
	return e.String()
}
