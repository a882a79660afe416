// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-echo-sockets/internal/logger"
	"github.com/MKhiriev/go-echo-sockets/internal/utils"
	"github.com/MKhiriev/go-echo-sockets/models"
)

const (
	defaultSessionsLimit = 50
	maxSessionsLimit     = 1000
)

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.SessionJournal.Stats(), http.StatusOK)
}

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.listSessions").Msg("invalid limit")
		writeError(w, err)
		return
	}

	sessions, err := h.services.SessionJournal.List(r.Context(), limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listSessions").Msg("error listing sessions")
		writeError(w, err)
		return
	}

	if sessions == nil {
		sessions = []models.Session{}
	}

	utils.WriteJSON(w, sessions, http.StatusOK)
}

// parseLimit reads the limit query value. Values above maxSessionsLimit are
// capped rather than rejected.
func parseLimit(raw string) (int, error) {
	if raw == "" {
		return defaultSessionsLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, ErrInvalidLimitParameter
	}

	return min(limit, maxSessionsLimit), nil
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, ErrMethodNotAllowed)
}

func writeError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, statusFromError(err))
}
