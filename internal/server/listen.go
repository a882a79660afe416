// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
)

func listenConfig() net.ListenConfig {
	return net.ListenConfig{Control: dualStackControl}
}

func listenStream(ctx context.Context, address string) (net.Listener, error) {
	lc := listenConfig()
	ln, err := lc.Listen(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w tcp %s: %w", ErrBind, address, err)
	}
	return ln, nil
}

func listenDatagram(ctx context.Context, address string) (net.PacketConn, error) {
	lc := listenConfig()
	conn, err := lc.ListenPacket(ctx, "udp", address)
	if err != nil {
		return nil, fmt.Errorf("%w udp %s: %w", ErrBind, address, err)
	}
	return conn, nil
}
