// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-echo-sockets/internal/adapter"
	"github.com/MKhiriev/go-echo-sockets/internal/protocol"
)

const prompt = "Write a message to send: "

// runStream sends every input line to the echo server until input ends.
// Lines of any length are read whole.
func (a *App) runStream(ctx context.Context) error {
	conn, err := a.dial(ctx)
	if err != nil {
		return err
	}
	defer a.closeConn(conn)

	fmt.Fprintln(a.out, "Connection established!")

	reader := bufio.NewReader(a.in)
	for {
		fmt.Fprint(a.out, prompt)

		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("%w: %w", ErrReadInput, readErr)
		}
		if readErr != nil && line == "" {
			fmt.Fprintln(a.out)
			return nil
		}

		msg := []byte(strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))

		if err := conn.Send(ctx, msg); err != nil {
			a.logger.Err(err).Str("func", "*App.runStream").Msg("send failed")
			return err
		}
		fmt.Fprintln(a.out, "Sent!")

		reply, err := conn.Receive(ctx, len(msg))
		if err != nil {
			a.logger.Err(err).Str("func", "*App.runStream").Msg("receive failed")
			return err
		}
		fmt.Fprintf(a.out, "Read: %s\n", protocol.Printable(reply))
	}
}

// runConsole hands the connection to the interactive console.
func (a *App) runConsole(ctx context.Context) error {
	conn, err := a.dial(ctx)
	if err != nil {
		return err
	}
	defer a.closeConn(conn)

	return a.console.Run(ctx, conn)
}

func (a *App) dial(ctx context.Context) (adapter.Echoer, error) {
	conn, err := a.adapters.Stream.Dial(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "*App.dial").Msg("dial failed")
		return nil, err
	}
	return conn, nil
}

func (a *App) closeConn(conn adapter.Echoer) {
	if err := conn.Close(); err != nil {
		a.logger.Err(err).Str("func", "*App.closeConn").Msg("error closing connection")
	}
}
