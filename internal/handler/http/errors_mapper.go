// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-echo-sockets/internal/service"
	"github.com/MKhiriev/go-echo-sockets/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidLimitParameter: http.StatusBadRequest,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,

	service.ErrInvalidPurgePeriod: http.StatusBadRequest,
	store.ErrInvalidLimit:         http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
