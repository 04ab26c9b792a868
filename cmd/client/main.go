package main

import (
	"context"
	"fmt"
	"os"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// wipe every enclave and locked buffer on ctrl+c outside the UI
	memguard.CatchInterrupt()
	defer memguard.Purge()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		memguard.SafeExit(1)
	}
}

func run() error {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log, closeLog := logger.NewFileLogger("go-pass-vault", cfg.App.LogPath)
	defer closeLog()

	ctx := log.WithContext(context.Background())

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("create client storages")
		return fmt.Errorf("create client storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("close client storages")
		}
	}()

	services, err := service.NewClientServices(storages, *cfg)
	if err != nil {
		log.Err(err).Msg("create client services")
		return fmt.Errorf("create client services: %w", err)
	}

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui := tui.New(services, info, log)

	app, err := client.NewApp(services, ui, cfg.App.UserID, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		return fmt.Errorf("init client app: %w", err)
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		return err
	}
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
