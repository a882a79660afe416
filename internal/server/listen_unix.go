// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build unix

package server

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// dualStackControl clears IPV6_V6ONLY on IPv6 sockets so one listener
// serves both IPv4 and IPv6 peers.
func dualStackControl(network, _ string, c syscall.RawConn) error {
	if network != "tcp6" && network != "udp6" {
		return nil
	}

	var sockErr error
	if err := c.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.IPPROTO_IPV6, unix.IPV6_V6ONLY, 0)
	}); err != nil {
		return err
	}
	return sockErr
}
