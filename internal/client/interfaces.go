// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// UnlockFlow asks for the master password until the vault opens.
	UnlockFlow(ctx context.Context, userID string) (*crypto.Key, models.VaultLoadResult, error)
	// MainLoop runs the unlocked vault and reports whether it was locked.
	MainLoop(ctx context.Context, userID string, key *crypto.Key, initial models.VaultLoadResult) (locked bool, err error)
}
