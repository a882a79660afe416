// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-echo-sockets/internal/config"
	"github.com/MKhiriev/go-echo-sockets/internal/handler"
	"github.com/MKhiriev/go-echo-sockets/internal/logger"
	"github.com/MKhiriev/go-echo-sockets/internal/server"
	"github.com/MKhiriev/go-echo-sockets/internal/service"
	"github.com/MKhiriev/go-echo-sockets/internal/store"
	"github.com/MKhiriev/go-echo-sockets/internal/workers"
	"github.com/MKhiriev/go-echo-sockets/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(info)

	log := logger.NewLogger("echo-server")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = info.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	repositories, err := store.NewRepositories(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}
	defer func() {
		if err := repositories.Close(); err != nil {
			log.Err(err).Msg("error closing repositories")
		}
	}()

	services, err := service.NewServices(repositories, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, services.SessionJournal, workers.NewWorkers(services, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		_ = repositories.Close()
		log.Fatal().Err(err).Msg("server stopped")
	}
}
