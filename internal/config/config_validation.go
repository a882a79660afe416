// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strconv"
)

// validateServer checks the settings the server binary depends on.
func (cfg *StructuredConfig) validateServer() error {
	s := cfg.Server

	if !s.UDPEnabled() && !s.TCPEnabled() {
		return fmt.Errorf("%w: both udp and tcp are disabled", ErrInvalidServerConfigs)
	}

	for name, addr := range map[string]string{
		"udp":   s.UDPAddress,
		"tcp":   s.TCPAddress,
		"admin": s.AdminAddress,
	} {
		if addr == "" || addr == AddressOff {
			continue
		}
		if _, _, err := splitAddress(addr); err != nil {
			return fmt.Errorf("%w: %s address %q: %w", ErrInvalidServerConfigs, name, addr, err)
		}
	}

	if s.BufferSize <= 0 || s.BufferSize > 65535 {
		return fmt.Errorf("%w: buffer size %d out of range", ErrInvalidServerConfigs, s.BufferSize)
	}

	if s.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown timeout must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Workers.RetentionInterval < 0 || cfg.Workers.RetentionPeriod < 0 {
		return ErrInvalidWorkerConfigs
	}
	if cfg.Workers.RetentionInterval > 0 && cfg.Workers.RetentionPeriod == 0 {
		return fmt.Errorf("%w: retention period is required when retention is enabled", ErrInvalidWorkerConfigs)
	}

	return nil
}

// validateClient checks the settings the client binary depends on.
func (cfg *StructuredConfig) validateClient() error {
	c := cfg.Client

	switch c.Mode {
	case ModeUDP, ModeTCP, ModeConsole:
		if c.Host == "" {
			return fmt.Errorf("%w: empty host", ErrInvalidClientConfigs)
		}
		if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
			return fmt.Errorf("%w: invalid port %q", ErrInvalidClientConfigs, c.Port)
		}
	case ModeStats:
		u, err := url.Parse(c.AdminURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: invalid admin url %q", ErrInvalidClientConfigs, c.AdminURL)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidClientConfigs, c.Mode)
	}

	if c.ReceiveTimeout <= 0 || c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidClientConfigs)
	}

	return nil
}
