// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-echo-sockets/internal/config"
	"github.com/MKhiriev/go-echo-sockets/internal/handler/http"
	"github.com/MKhiriev/go-echo-sockets/internal/logger"
	"github.com/MKhiriev/go-echo-sockets/internal/service"
)

// Handlers holds the request handlers of the optional server surfaces.
// HTTP is nil when the admin API is disabled.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	if services == nil {
		return nil, errNilServices
	}

	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.AdminEnabled() {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	return handlers, nil
}
