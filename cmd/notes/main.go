// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/MKhiriev/atmost-notes/internal/adapter"
	"github.com/MKhiriev/atmost-notes/internal/client"
	"github.com/MKhiriev/atmost-notes/internal/config"
	"github.com/MKhiriev/atmost-notes/internal/crypto"
	"github.com/MKhiriev/atmost-notes/internal/logger"
	"github.com/MKhiriev/atmost-notes/internal/service"
	"github.com/MKhiriev/atmost-notes/internal/store"
	"github.com/MKhiriev/atmost-notes/internal/tui"
	"github.com/MKhiriev/atmost-notes/internal/workers"
	"github.com/MKhiriev/atmost-notes/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewFileLogger("atmost-notes", cfg.App.LogFile)
	log.Debug().Str("db", cfg.Storage.DB.DSN).Str("assistant", cfg.Assistant.URL).Msg("received configs")

	ctx, cancel := context.WithCancel(log.WithContext(context.Background()))
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	assistant, err := adapter.NewGeminiAdapter(cfg.Assistant, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating assistant adapter")
	}

	services := service.NewServices(storages, assistant, crypto.NewPasswordHasher(cfg.Security), cfg, log)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().Str("build", buildInfo.Summary()).Str("date", buildInfo.BuildDate()).Msg("starting")
	ui := tui.New(services, cfg.UI, buildInfo, log)

	jobs := workers.NewWorkers(workers.NewShutdownWorker(cancel, log, syscall.SIGTERM, syscall.SIGHUP))
	app := client.NewApp(ui, jobs, storages, log)

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "atmost-notes: %v\n", err)
		os.Exit(1)
	}
}
