// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync/atomic"

	"github.com/MKhiriev/go-echo-sockets/internal/logger"
	"github.com/MKhiriev/go-echo-sockets/internal/protocol"
	"github.com/MKhiriev/go-echo-sockets/internal/service"
	"github.com/MKhiriev/go-echo-sockets/models"
)

// udpServer answers every datagram with protocol.ReplyPayload. Each exchange
// is journaled as its own session.
type udpServer struct {
	conn    net.PacketConn
	journal service.SessionJournal
	closing atomic.Bool

	logger *logger.Logger
}

func newUDPServer(ctx context.Context, address string, journal service.SessionJournal, logger *logger.Logger) (*udpServer, error) {
	conn, err := listenDatagram(ctx, address)
	if err != nil {
		return nil, err
	}

	return &udpServer{
		conn:    conn,
		journal: journal,
		logger:  logger,
	}, nil
}

func (u *udpServer) name() string { return "udp" }

func (u *udpServer) addr() net.Addr { return u.conn.LocalAddr() }

func (u *udpServer) serve(ctx context.Context) error {
	buf := make([]byte, protocol.MaxDatagramSize)
	for {
		n, from, err := u.conn.ReadFrom(buf)
		if err != nil {
			if u.stopped(err) {
				return nil
			}
			u.logger.Err(err).Str("func", "*udpServer.serve").Msg("error receiving datagram")
			return fmt.Errorf("%w: %w", ErrDatagramReceive, err)
		}

		if err = u.reply(ctx, buf[:n], from); err != nil {
			if u.stopped(err) {
				return nil
			}
			return err
		}
	}
}

func (u *udpServer) reply(ctx context.Context, request []byte, to net.Addr) error {
	session := u.journal.Open(ctx, models.TransportUDP, to.String())
	log := u.logger.ForSession(session.ID, string(models.TransportUDP), to.String())
	ctx = log.WithContext(ctx)

	host, port := protocol.SplitAddr(to)
	log.Info().
		Str("host", host).
		Str("port", port).
		Str("payload", protocol.Printable(request)).
		Msg("Received")

	n, err := u.conn.WriteTo([]byte(protocol.ReplyPayload), to)
	u.journal.Record(session, int64(len(request)), int64(n))
	if err != nil {
		log.Err(err).Str("func", "*udpServer.reply").Msg("error sending reply")
		u.closeSession(ctx, session, models.CloseWriteError)
		return fmt.Errorf("%w to %s: %w", ErrDatagramSend, to, err)
	}

	log.Info().Int("bytes", n).Msg("Sent")
	u.closeSession(ctx, session, models.CloseReplied)

	return nil
}

func (u *udpServer) closeSession(ctx context.Context, session *models.Session, reason models.CloseReason) {
	if err := u.journal.Close(context.WithoutCancel(ctx), session, reason); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*udpServer.closeSession").Msg("error closing session")
	}
}

// stopped reports whether err comes from shutdown closing the socket.
func (u *udpServer) stopped(err error) bool {
	return u.closing.Load() || errors.Is(err, net.ErrClosed)
}

func (u *udpServer) shutdown(context.Context) error {
	u.closing.Store(true)
	u.logger.Info().Msg("UDP server Shutdown")

	if err := u.conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("error closing udp socket: %w", err)
	}
	return nil
}
