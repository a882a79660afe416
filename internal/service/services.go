// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-echo-sockets/internal/config"
	"github.com/MKhiriev/go-echo-sockets/internal/logger"
	"github.com/MKhiriev/go-echo-sockets/internal/store"
	"github.com/MKhiriev/go-echo-sockets/internal/utils"
)

type Services struct {
	SessionJournal SessionJournal
	AppInfoService AppInfoService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		SessionJournal: NewSessionJournal(repositories.SessionRepository, utils.NewUUIDGenerator(), logger),
		AppInfoService: appInfoService,
	}, nil
}
