// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-echo-sockets/internal/protocol"
)

// runDatagram sends the request payload once and prints the reply.
func (a *App) runDatagram(ctx context.Context) error {
	reply, err := a.adapters.Datagram.Request(ctx, []byte(protocol.RequestPayload))
	if err != nil {
		a.logger.Err(err).Str("func", "*App.runDatagram").Msg("request failed")
		return err
	}

	fmt.Fprintf(a.out, "Sent: %s\n", protocol.RequestPayload)
	fmt.Fprintf(a.out, "Received: %s\n", protocol.Printable(reply))

	return nil
}
