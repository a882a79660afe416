// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-echo-sockets/internal/protocol"
)

// AddressOff disables a transport when used as its listen address.
const AddressOff = "off"

// StructuredConfig is the top-level configuration container. Both binaries
// load the same structure and validate the groups they use.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Server holds listen addresses and limits for the UDP, TCP and admin
	// servers.
	Server Server `envPrefix:"SERVER_"`

	// Client holds the target server and the run mode of the client.
	Client Client `envPrefix:"CLIENT_"`

	// Storage holds configuration for the session journal backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// ConfigFilePath is the optional path to a JSON or TOML config file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is reported by the admin API.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network settings for the inbound transports.
type Server struct {
	// UDPAddress is where the request/reply server binds, in "host:port"
	// form. An empty host binds every interface. "off" disables UDP.
	// Env: SERVER_UDP_ADDRESS
	UDPAddress string `env:"UDP_ADDRESS"`

	// TCPAddress is where the echo server listens. "off" disables TCP.
	// Env: SERVER_TCP_ADDRESS
	TCPAddress string `env:"TCP_ADDRESS"`

	// AdminAddress is where the HTTP admin API listens. Empty disables it.
	// Env: SERVER_ADMIN_ADDRESS
	AdminAddress string `env:"ADMIN_ADDRESS"`

	// BufferSize is the per-connection TCP read chunk in bytes.
	// Env: SERVER_BUFFER_SIZE
	BufferSize int `env:"BUFFER_SIZE"`

	// ShutdownTimeout bounds how long shutdown waits for connection handlers.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// UDPEnabled reports whether the UDP transport should be started.
func (s Server) UDPEnabled() bool {
	return s.UDPAddress != "" && s.UDPAddress != AddressOff
}

// TCPEnabled reports whether the TCP transport should be started.
func (s Server) TCPEnabled() bool {
	return s.TCPAddress != "" && s.TCPAddress != AddressOff
}

// AdminEnabled reports whether the admin HTTP server should be started.
func (s Server) AdminEnabled() bool {
	return s.AdminAddress != "" && s.AdminAddress != AddressOff
}

// Client run modes.
const (
	ModeUDP     = "udp"
	ModeTCP     = "tcp"
	ModeConsole = "console"
	ModeStats   = "stats"
)

// Client holds settings for the client binary.
type Client struct {
	// Mode selects what the client does: udp, tcp, console or stats.
	// Env: CLIENT_MODE
	Mode string `env:"MODE"`

	// Host is the server host name or IP address.
	// Env: CLIENT_HOST
	Host string `env:"HOST"`

	// Port is the server port shared by UDP and TCP.
	// Env: CLIENT_PORT
	Port string `env:"PORT"`

	// AdminURL is the base URL of the server's admin API (stats mode).
	// Env: CLIENT_ADMIN_URL
	AdminURL string `env:"ADMIN_URL"`

	// ReceiveTimeout bounds how long the UDP client waits for a reply.
	// Env: CLIENT_RECEIVE_TIMEOUT
	ReceiveTimeout time.Duration `env:"RECEIVE_TIMEOUT"`

	// RequestTimeout bounds dialing and admin API calls.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Address returns the server address the client talks to.
func (c Client) Address() string {
	return protocol.JoinHostPort(c.Host, c.Port)
}

// Storage groups the configuration for the session journal.
type Storage struct {
	// DB holds the journal database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the journal backend.
type DB struct {
	// DSN selects the backend: empty keeps the journal in memory,
	// "postgres://..." uses PostgreSQL, anything else is a SQLite file.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RetentionInterval is how often finished sessions are purged.
	// Zero disables the retention worker.
	// Env: WORKERS_RETENTION_INTERVAL
	RetentionInterval time.Duration `env:"RETENTION_INTERVAL"`

	// RetentionPeriod is how long finished sessions are kept.
	// Env: WORKERS_RETENTION_PERIOD
	RetentionPeriod time.Duration `env:"RETENTION_PERIOD"`
}

// defaultConfig returns the values used when no source provides one.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			UDPAddress:      ":" + protocol.DefaultPort,
			TCPAddress:      ":" + protocol.DefaultPort,
			BufferSize:      protocol.DefaultStreamBufferSize,
			ShutdownTimeout: 5 * time.Second,
		},
		Client: Client{
			Mode:           ModeTCP,
			Host:           protocol.DefaultHost,
			Port:           protocol.DefaultPort,
			AdminURL:       "http://localhost:8080",
			ReceiveTimeout: protocol.DefaultReceiveTimeout,
			RequestTimeout: 5 * time.Second,
		},
		Workers: Workers{
			RetentionPeriod: 24 * time.Hour,
		},
	}
}

// GetServerConfig loads, merges, and validates the server configuration.
// args are the command-line arguments without the program name.
func GetServerConfig(args []string) (*StructuredConfig, error) {
	cfg, err := load(args)
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateServer()
}

// GetClientConfig loads, merges, and validates the client configuration.
// args are the command-line arguments without the program name.
func GetClientConfig(args []string) (*StructuredConfig, error) {
	cfg, err := load(args)
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateClient()
}

func load(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withFile().
		withDefaults().
		build()
}
