// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface. The literal "off" marks a
// disabled transport.
type NetAddress struct {
	Host     string
	Port     int
	Disabled bool

	set bool
}

// ParseFlags parses the configuration flags shared by both binaries.
//
// Flags:
//
//	-u udp listen address in format [host]:port, or "off"
//	-t tcp listen address in format [host]:port, or "off"
//	-a admin http listen address in format [host]:port
//	-d journal database DSN
//	-c/-config config file path (.json or .toml)
//	-buffer-size tcp read chunk in bytes
//	-shutdown-timeout graceful shutdown bound (e.g. "5s")
//	-mode client mode: udp, tcp, console, stats
//	-host server host for the client
//	-port server port for the client
//	-admin-url admin api base url for the client
//	-receive-timeout udp reply timeout (e.g. "10s")
//	-request-timeout dial and admin request timeout (e.g. "5s")
//	-retention-interval journal purge interval (e.g. "1h")
//	-retention-period journal entry lifetime (e.g. "24h")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var udpAddress, tcpAddress, adminAddress NetAddress
	var databaseDSN string
	var configPath string
	var bufferSize int
	var shutdownTimeout time.Duration
	var mode, host, port, adminURL string
	var receiveTimeout, requestTimeout time.Duration
	var retentionInterval, retentionPeriod time.Duration

	fs := flag.NewFlagSet("echo", flag.ContinueOnError)
	fs.Var(&udpAddress, "u", "UDP listen address [host]:port or off")
	fs.Var(&tcpAddress, "t", "TCP listen address [host]:port or off")
	fs.Var(&adminAddress, "a", "Admin HTTP listen address [host]:port")
	fs.StringVar(&databaseDSN, "d", "", "Journal database DSN")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.IntVar(&bufferSize, "buffer-size", 0, "TCP read chunk in bytes")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 5s)")
	fs.StringVar(&mode, "mode", "", "Client mode: udp, tcp, console, stats")
	fs.StringVar(&host, "host", "", "Server host")
	fs.StringVar(&port, "port", "", "Server port")
	fs.StringVar(&adminURL, "admin-url", "", "Admin API base URL")
	fs.DurationVar(&receiveTimeout, "receive-timeout", 0, "UDP reply timeout (e.g., 10s)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Dial and admin request timeout (e.g., 5s)")
	fs.DurationVar(&retentionInterval, "retention-interval", 0, "Journal purge interval (e.g., 1h)")
	fs.DurationVar(&retentionPeriod, "retention-period", 0, "Journal entry lifetime (e.g., 24h)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Server: Server{
			UDPAddress:      udpAddress.String(),
			TCPAddress:      tcpAddress.String(),
			AdminAddress:    adminAddress.String(),
			BufferSize:      bufferSize,
			ShutdownTimeout: shutdownTimeout,
		},
		Client: Client{
			Mode:           mode,
			Host:           host,
			Port:           port,
			AdminURL:       adminURL,
			ReceiveTimeout: receiveTimeout,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers: Workers{
			RetentionInterval: retentionInterval,
			RetentionPeriod:   retentionPeriod,
		},
		ConfigFilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, "off" for a
// disabled one, or "" when it was never set.
func (a *NetAddress) String() string {
	if a.Disabled {
		return AddressOff
	}
	if !a.set && a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses "host:port", ":port", "[ipv6]:port" or "off". The host must be
// empty, "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	if s == AddressOff {
		*a = NetAddress{Disabled: true, set: true}
		return nil
	}

	host, port, err := splitAddress(s)
	if err != nil {
		return err
	}

	a.Host = host
	a.Port = port
	a.Disabled = false
	a.set = true
	return nil
}

func splitAddress(s string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return "", 0, errAddressFormat
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", errAddressFormat, err)
	}
	if port < 0 || port > 65535 {
		return "", 0, errPortRange
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return "", 0, errHostNotIP
	}

	return host, port, nil
}
