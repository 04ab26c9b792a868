package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

var ErrNoUserID = errors.New("client: user id is not configured")

type App struct {
	services *service.ClientServices
	ui       UI
	userID   string
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, userID string, log *logger.Logger) (*App, error) {
	if userID == "" {
		return nil, ErrNoUserID
	}
	return &App{services: services, ui: ui, userID: userID, logger: log}, nil
}

// Run drives the unlock / vault / lock cycle until the user quits.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(utils.WithUserID(ctx, a.userID))

	for {
		key, initial, ok := a.resume(ctx)
		if !ok {
			var err error
			key, initial, err = a.ui.UnlockFlow(ctx, a.userID)
			if errors.Is(err, tui.ErrUserQuit) {
				a.logger.Info().Msg("user left the unlock prompt")
				return nil
			}
			if err != nil {
				return fmt.Errorf("unlock: %w", err)
			}
		}

		a.logger.Info().
			Int("items", len(initial.Items)).
			Int("failed", len(initial.Failed)).
			Msg("vault opened")

		locked, err := a.ui.MainLoop(ctx, a.userID, key, initial)
		if err != nil {
			return fmt.Errorf("vault: %w", err)
		}
		if !locked {
			return nil
		}
		a.logger.Info().Msg("vault locked, back to unlock prompt")
	}
}

// resume opens the vault with the session-cached key. A cached key that
// decrypts nothing is dropped and the user is asked for the password.
func (a *App) resume(ctx context.Context) (*crypto.Key, models.VaultLoadResult, bool) {
	key, ok := a.services.Keys.Resume(ctx, a.userID)
	if !ok {
		return nil, models.VaultLoadResult{}, false
	}

	res, err := a.services.Items.LoadAll(ctx, a.userID, key)
	if err == nil && !res.AllFailed() {
		a.logger.Info().Msg("session resumed from cached key")
		return key, res, true
	}

	if err != nil {
		a.logger.Err(err).Str("func", "*App.resume").Msg("failed to load vault with cached key")
	} else {
		a.logger.Warn().Str("func", "*App.resume").Msg("cached key decrypts nothing, discarding it")
	}
	if err := a.services.Keys.Lock(ctx, a.userID, key); err != nil {
		a.logger.Err(err).Str("func", "*App.resume").Msg("failed to clear cached key")
	}
	return nil, models.VaultLoadResult{}, false
}
