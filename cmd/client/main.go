// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-echo-sockets/internal/adapter"
	"github.com/MKhiriev/go-echo-sockets/internal/client"
	"github.com/MKhiriev/go-echo-sockets/internal/config"
	"github.com/MKhiriev/go-echo-sockets/internal/logger"
	"github.com/MKhiriev/go-echo-sockets/internal/tui"
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

	// the client logs to a file, so fatal errors are echoed to stderr too
	log := logger.NewClientLogger("echo-client")
	fatal := func(err error, msg string) {
		fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
		log.Fatal().Err(err).Msg(msg)
	}

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fatal(err, "error getting configs")
	}

	admin, err := adapter.NewAdminClient(cfg.Client, log)
	if err != nil {
		fatal(err, "error creating admin client")
	}

	app := client.NewApp(
		cfg.Client,
		client.Adapters{
			Datagram: adapter.NewDatagramClient(cfg.Client, log),
			Stream:   adapter.NewStreamClient(cfg.Client, log),
			Admin:    admin,
		},
		tui.New(info, log),
		os.Stdin,
		os.Stdout,
		log,
	)

	if err = app.Run(context.Background()); err != nil {
		fatal(err, "client run error")
	}
}
