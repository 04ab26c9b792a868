// Package tui is the interactive terminal shell of the vault, built on
// bubbletea. It has two programs: the unlock prompt and the unlocked vault.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	log       *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, log: log}
}

// UnlockFlow prompts for the master password until it opens the vault. It
// returns ErrUserQuit when the user leaves the prompt.
func (t *TUI) UnlockFlow(ctx context.Context, userID string) (*crypto.Key, models.VaultLoadResult, error) {
	finalModel, err := tea.NewProgram(newUnlockModel(ctx, userID, t.services, t.buildInfo), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, models.VaultLoadResult{}, err
	}

	result, ok := finalModel.(unlockModel)
	if !ok {
		return nil, models.VaultLoadResult{}, tea.ErrProgramKilled
	}
	if result.quit || result.key == nil {
		return nil, models.VaultLoadResult{}, ErrUserQuit
	}

	return result.key, result.result, nil
}

// MainLoop runs the unlocked vault. locked is true when the user locked the
// vault rather than quitting.
func (t *TUI) MainLoop(ctx context.Context, userID string, key *crypto.Key, initial models.VaultLoadResult) (locked bool, err error) {
	model := newVaultModel(ctx, userID, key, t.services, initial)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(vaultModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}

	if len(result.failed) > 0 {
		t.log.Warn().Str("func", "*TUI.MainLoop").Int("failed", len(result.failed)).Msg("vault closed with undecryptable items")
	}
	return result.locked, nil
}
