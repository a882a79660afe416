// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors StructuredConfig with string durations so it can be
// decoded from either JSON or TOML.
type fileConfig struct {
	App struct {
		Version string `json:"version" toml:"version"`
	} `json:"app" toml:"app"`

	Server struct {
		UDPAddress      string   `json:"udp_address" toml:"udp_address"`
		TCPAddress      string   `json:"tcp_address" toml:"tcp_address"`
		AdminAddress    string   `json:"admin_address" toml:"admin_address"`
		BufferSize      int      `json:"buffer_size" toml:"buffer_size"`
		ShutdownTimeout Duration `json:"shutdown_timeout" toml:"shutdown_timeout"`
	} `json:"server" toml:"server"`

	Client struct {
		Mode           string   `json:"mode" toml:"mode"`
		Host           string   `json:"host" toml:"host"`
		Port           string   `json:"port" toml:"port"`
		AdminURL       string   `json:"admin_url" toml:"admin_url"`
		ReceiveTimeout Duration `json:"receive_timeout" toml:"receive_timeout"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"client" toml:"client"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db" toml:"db"`
	} `json:"storage" toml:"storage"`

	Workers struct {
		RetentionInterval Duration `json:"retention_interval" toml:"retention_interval"`
		RetentionPeriod   Duration `json:"retention_period" toml:"retention_period"`
	} `json:"workers" toml:"workers"`
}

// parseFile reads a config file. Files ending in ".toml" are decoded as
// TOML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fc fileConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding toml configs: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{Version: fc.App.Version},
		Server: Server{
			UDPAddress:      fc.Server.UDPAddress,
			TCPAddress:      fc.Server.TCPAddress,
			AdminAddress:    fc.Server.AdminAddress,
			BufferSize:      fc.Server.BufferSize,
			ShutdownTimeout: time.Duration(fc.Server.ShutdownTimeout),
		},
		Client: Client{
			Mode:           fc.Client.Mode,
			Host:           fc.Client.Host,
			Port:           fc.Client.Port,
			AdminURL:       fc.Client.AdminURL,
			ReceiveTimeout: time.Duration(fc.Client.ReceiveTimeout),
			RequestTimeout: time.Duration(fc.Client.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: fc.Storage.DB.DSN},
		},
		Workers: Workers{
			RetentionInterval: time.Duration(fc.Workers.RetentionInterval),
			RetentionPeriod:   time.Duration(fc.Workers.RetentionPeriod),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and TOML. JSON numbers are read as nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// UnmarshalText parses a Go duration string. TOML decoding goes through it.
func (d *Duration) UnmarshalText(b []byte) error {
	tmp, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
