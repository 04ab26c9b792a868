package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultItemValidationService validates input before it reaches the wrapped
// VaultItemService. When the context carries a session user, every call must
// be made for that same user.
type VaultItemValidationService struct {
	inner     VaultItemService
	validator validators.Validator
}

func NewVaultItemValidationService() VaultItemServiceWrapper {
	return &VaultItemValidationService{
		validator: validators.NewVaultItemValidator(),
	}
}

func (v *VaultItemValidationService) Wrap(inner VaultItemService) VaultItemService {
	v.inner = inner
	return v
}

func (v *VaultItemValidationService) Create(ctx context.Context, userID string, key *crypto.Key, item models.VaultItemPlaintext) (models.VaultItemPlaintext, error) {
	if err := checkSessionUser(ctx, userID); err != nil {
		return models.VaultItemPlaintext{}, err
	}
	if err := v.validator.Validate(ctx, item); err != nil {
		return models.VaultItemPlaintext{}, fmt.Errorf("error during vault item validation before saving: %w", err)
	}

	return v.inner.Create(ctx, userID, key, item)
}

func (v *VaultItemValidationService) Update(ctx context.Context, userID string, key *crypto.Key, item models.VaultItemPlaintext) (models.VaultItemPlaintext, error) {
	if err := checkSessionUser(ctx, userID); err != nil {
		return models.VaultItemPlaintext{}, err
	}
	err := v.validator.Validate(ctx, item, validators.FieldID, validators.FieldTitle, validators.FieldPassword, validators.FieldURL)
	if err != nil {
		return models.VaultItemPlaintext{}, fmt.Errorf("error during vault item validation before update: %w", err)
	}

	return v.inner.Update(ctx, userID, key, item)
}

func (v *VaultItemValidationService) Delete(ctx context.Context, userID, id string) error {
	if err := checkSessionUser(ctx, userID); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, models.VaultItemPlaintext{ID: id}, validators.FieldID); err != nil {
		return fmt.Errorf("error during vault item validation before delete: %w", err)
	}

	return v.inner.Delete(ctx, userID, id)
}

func (v *VaultItemValidationService) Get(ctx context.Context, userID string, key *crypto.Key, id string) (models.VaultItemPlaintext, error) {
	if err := checkSessionUser(ctx, userID); err != nil {
		return models.VaultItemPlaintext{}, err
	}
	if err := v.validator.Validate(ctx, models.VaultItemPlaintext{ID: id}, validators.FieldID); err != nil {
		return models.VaultItemPlaintext{}, fmt.Errorf("error during vault item validation before get: %w", err)
	}

	return v.inner.Get(ctx, userID, key, id)
}

func (v *VaultItemValidationService) LoadAll(ctx context.Context, userID string, key *crypto.Key) (models.VaultLoadResult, error) {
	if err := checkSessionUser(ctx, userID); err != nil {
		return models.VaultLoadResult{}, err
	}

	return v.inner.LoadAll(ctx, userID, key)
}

func (v *VaultItemValidationService) Filter(items []models.VaultItemPlaintext, query string) []models.VaultItemPlaintext {
	return v.inner.Filter(items, query)
}

// checkSessionUser rejects a call for a user other than the one stored in ctx.
// A context without a session user is accepted.
func checkSessionUser(ctx context.Context, userID string) error {
	sessionUser, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	if sessionUser != userID {
		return ErrUserMismatch
	}
	return nil
}
