// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across the application:
// typed context keys, JSON/text response writers, the resty HTTP client
// wrapper and the UUID generator used for session and trace ids.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// SessionIDCtxKey is the key under which a connection handler stores the id
// of its journal session.
var SessionIDCtxKey = contextKey("sessionID")

// WithSessionID returns a copy of ctx carrying the session id.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDCtxKey, sessionID)
}

// GetSessionIDFromContext retrieves the session id stored by WithSessionID.
// ok is false when the value is missing, empty or of an unexpected type.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok && sessionID != ""
}
