// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with the given status code
// and a "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 Internal Server Error and returns
// a wrapped error. The returned int is the number of body bytes written.
//
//	WriteJSON(w, stats, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Error: "bad limit"}, http.StatusBadRequest)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteText writes a plain-text body with the given status code.
func WriteText(w http.ResponseWriter, text string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)

	return w.Write([]byte(text))
}
