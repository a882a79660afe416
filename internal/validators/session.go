// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-echo-sockets/models"
)

const (
	FieldID          = "id"
	FieldTransport   = "transport"
	FieldRemoteAddr  = "remote_addr"
	FieldTimes       = "times"
	FieldBytes       = "bytes"
	FieldCloseReason = "close_reason"
)

var allSessionFields = []string{
	FieldID,
	FieldTransport,
	FieldRemoteAddr,
	FieldTimes,
	FieldBytes,
	FieldCloseReason,
}

// closeReasons lists the reasons each transport can end a session with.
var closeReasons = map[models.Transport][]models.CloseReason{
	models.TransportTCP: {
		models.ClosePeerClosed,
		models.CloseReadError,
		models.CloseWriteError,
		models.CloseServerShutdown,
	},
	models.TransportUDP: {
		models.CloseReplied,
		models.CloseWriteError,
	},
}

type SessionValidator struct{}

func NewSessionValidator() Validator {
	return &SessionValidator{}
}

func (v *SessionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Session:
		return v.validateSession(value, fields...)
	case *models.Session:
		if value == nil {
			return fmt.Errorf("%w: nil session", ErrUnsupportedType)
		}
		return v.validateSession(*value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *SessionValidator) validateSession(s models.Session, fields ...string) error {
	if len(fields) == 0 {
		fields = allSessionFields
	}

	for _, field := range fields {
		if err := v.validateField(s, field); err != nil {
			return err
		}
	}
	return nil
}

func (v *SessionValidator) validateField(s models.Session, field string) error {
	switch field {
	case FieldID:
		if s.ID == "" {
			return ErrEmptySessionID
		}
	case FieldTransport:
		if _, ok := closeReasons[s.Transport]; !ok {
			return fmt.Errorf("%w: %q", ErrInvalidTransport, s.Transport)
		}
	case FieldRemoteAddr:
		if s.RemoteAddr == "" {
			return ErrEmptyRemoteAddr
		}
	case FieldTimes:
		if s.Closed() && s.EndedAt.Before(s.StartedAt) {
			return ErrInvalidTimes
		}
	case FieldBytes:
		if s.BytesIn < 0 || s.BytesOut < 0 {
			return ErrNegativeByteCount
		}
	case FieldCloseReason:
		// a live session has no reason yet
		if !s.Closed() && s.CloseReason == "" {
			return nil
		}
		if !slices.Contains(closeReasons[s.Transport], s.CloseReason) {
			return fmt.Errorf("%w: %q for %s", ErrInvalidCloseReason, s.CloseReason, s.Transport)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}
