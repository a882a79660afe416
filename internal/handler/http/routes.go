// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/healthz", h.health)
	router.Get("/api/version/", h.getServerVersion)
	router.Get("/api/stats", h.getStats)
	router.Get("/api/sessions", h.listSessions)

	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
