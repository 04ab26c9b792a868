// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FailedItem names an item whose ciphertext could not be decrypted during a
// vault load, together with the reason.
type FailedItem struct {
	ID  string
	Err error
}

// VaultLoadResult is the outcome of decrypting a user's vault. Items keep the
// store's newest-first order; Failed lists every item that was skipped.
type VaultLoadResult struct {
	Items  []VaultItemPlaintext
	Failed []FailedItem
}

// Total returns the number of items read from the store.
func (r VaultLoadResult) Total() int {
	return len(r.Items) + len(r.Failed)
}

// AllFailed reports whether at least one item was read and none of them
// decrypted. Callers treat this as a wrong master password.
func (r VaultLoadResult) AllFailed() bool {
	return len(r.Failed) > 0 && len(r.Items) == 0
}

// FailedIDs returns the identifiers of the skipped items.
func (r VaultLoadResult) FailedIDs() []string {
	ids := make([]string, 0, len(r.Failed))
	for _, f := range r.Failed {
		ids = append(ids, f.ID)
	}
	return ids
}
