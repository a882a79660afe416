// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-echo-sockets/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteText(w, serverVersion, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, "ok", http.StatusOK)
}
