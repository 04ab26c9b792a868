// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks vault items before they are encrypted and
// written to the record store. Callers may scope a check to named fields,
// e.g. only [FieldID] before a delete.
package validators

import "context"

// Validator validates obj, restricted to fields when any are given.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
