package tui

import (
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

type unlockDoneMsg struct {
	key    *crypto.Key
	result models.VaultLoadResult
	err    error
}

type vaultLoadedMsg struct {
	result models.VaultLoadResult
	err    error
}

type itemSavedMsg struct {
	item    models.VaultItemPlaintext
	created bool
	err     error
}

type itemDeletedMsg struct {
	id  string
	err error
}

type lockDoneMsg struct {
	err error
}

type clearStatusMsg struct{}
