// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-echo-sockets/internal/adapter"
	"github.com/MKhiriev/go-echo-sockets/internal/config"
	"github.com/MKhiriev/go-echo-sockets/internal/logger"
	"github.com/MKhiriev/go-echo-sockets/internal/mock"
	"github.com/MKhiriev/go-echo-sockets/models"
)

type testApp struct {
	datagram *mock.MockDatagramRequester
	stream   *mock.MockStreamDialer
	admin    *mock.MockAdminAPI
	echoer   *mock.MockEchoer
	console  *fakeConsole
	out      *bytes.Buffer
}

type fakeConsole struct {
	got adapter.Echoer
	err error
}

func (c *fakeConsole) Run(_ context.Context, echoer adapter.Echoer) error {
	c.got = echoer
	return c.err
}

// errReader fails on the first read.
type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func newTestApp(t *testing.T, mode string, in io.Reader) (*App, *testApp) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := &testApp{
		datagram: mock.NewMockDatagramRequester(ctrl),
		stream:   mock.NewMockStreamDialer(ctrl),
		admin:    mock.NewMockAdminAPI(ctrl),
		echoer:   mock.NewMockEchoer(ctrl),
		console:  &fakeConsole{},
		out:      &bytes.Buffer{},
	}

	app := NewApp(
		config.Client{Mode: mode},
		Adapters{Datagram: deps.datagram, Stream: deps.stream, Admin: deps.admin},
		deps.console,
		in,
		deps.out,
		logger.Nop(),
	)
	return app, deps
}

func TestRun_UDP(t *testing.T) {
	app, deps := newTestApp(t, config.ModeUDP, strings.NewReader(""))
	deps.datagram.EXPECT().
		Request(gomock.Any(), []byte("request!")).
		Return([]byte("Hello world!"), nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "Sent: request!\nReceived: Hello world!\n", deps.out.String())
}

func TestRun_UDP_NulTerminatedReply(t *testing.T) {
	app, deps := newTestApp(t, config.ModeUDP, strings.NewReader(""))
	deps.datagram.EXPECT().
		Request(gomock.Any(), gomock.Any()).
		Return([]byte("Hello world!\x00junk"), nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, deps.out.String(), "Received: Hello world!\n")
}

func TestRun_UDP_Error(t *testing.T) {
	app, deps := newTestApp(t, config.ModeUDP, strings.NewReader(""))
	deps.datagram.EXPECT().Request(gomock.Any(), gomock.Any()).Return(nil, adapter.ErrReceive)

	err := app.Run(context.Background())

	require.ErrorIs(t, err, adapter.ErrReceive)
	assert.Empty(t, deps.out.String())
}

func TestRun_TCP_EchoesLinesUntilEOF(t *testing.T) {
	app, deps := newTestApp(t, config.ModeTCP, strings.NewReader("hello\r\nworld\n\n"))
	deps.stream.EXPECT().Dial(gomock.Any()).Return(deps.echoer, nil)
	gomock.InOrder(
		deps.echoer.EXPECT().Send(gomock.Any(), []byte("hello")).Return(nil),
		deps.echoer.EXPECT().Receive(gomock.Any(), 5).Return([]byte("hello"), nil),
		deps.echoer.EXPECT().Send(gomock.Any(), []byte("world")).Return(nil),
		deps.echoer.EXPECT().Receive(gomock.Any(), 5).Return([]byte("world"), nil),
		deps.echoer.EXPECT().Send(gomock.Any(), []byte("")).Return(nil),
		deps.echoer.EXPECT().Receive(gomock.Any(), 0).Return([]byte{}, nil),
		deps.echoer.EXPECT().Close().Return(nil),
	)

	require.NoError(t, app.Run(context.Background()))

	want := "Connection established!\n" +
		prompt + "Sent!\nRead: hello\n" +
		prompt + "Sent!\nRead: world\n" +
		prompt + "Sent!\nRead: \n" +
		prompt + "\n"
	assert.Equal(t, want, deps.out.String())
}

func TestRun_TCP_LastLineWithoutNewline(t *testing.T) {
	app, deps := newTestApp(t, config.ModeTCP, strings.NewReader("tail"))
	deps.stream.EXPECT().Dial(gomock.Any()).Return(deps.echoer, nil)
	gomock.InOrder(
		deps.echoer.EXPECT().Send(gomock.Any(), []byte("tail")).Return(nil),
		deps.echoer.EXPECT().Receive(gomock.Any(), 4).Return([]byte("tail"), nil),
		deps.echoer.EXPECT().Close().Return(nil),
	)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, deps.out.String(), "Sent!\nRead: tail\n")
}

func TestRun_TCP_LongLine(t *testing.T) {
	line := strings.Repeat("a", 200*1024)
	app, deps := newTestApp(t, config.ModeTCP, strings.NewReader(line+"\n"))
	deps.stream.EXPECT().Dial(gomock.Any()).Return(deps.echoer, nil)
	gomock.InOrder(
		deps.echoer.EXPECT().Send(gomock.Any(), []byte(line)).Return(nil),
		deps.echoer.EXPECT().Receive(gomock.Any(), len(line)).Return([]byte(line), nil),
		deps.echoer.EXPECT().Close().Return(nil),
	)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, deps.out.String(), "Sent!\n")
}

func TestRun_TCP_DialError(t *testing.T) {
	app, deps := newTestApp(t, config.ModeTCP, strings.NewReader("hello\n"))
	deps.stream.EXPECT().Dial(gomock.Any()).Return(nil, adapter.ErrDial)

	err := app.Run(context.Background())

	require.ErrorIs(t, err, adapter.ErrDial)
	assert.Empty(t, deps.out.String())
}

func TestRun_TCP_SendErrorClosesConnection(t *testing.T) {
	app, deps := newTestApp(t, config.ModeTCP, strings.NewReader("hello\nnever sent\n"))
	deps.stream.EXPECT().Dial(gomock.Any()).Return(deps.echoer, nil)
	deps.echoer.EXPECT().Send(gomock.Any(), []byte("hello")).Return(adapter.ErrSend)
	deps.echoer.EXPECT().Close().Return(nil)

	err := app.Run(context.Background())

	require.ErrorIs(t, err, adapter.ErrSend)
	assert.NotContains(t, deps.out.String(), "Sent!")
}

func TestRun_TCP_SentPrintedBeforeReceiveFails(t *testing.T) {
	app, deps := newTestApp(t, config.ModeTCP, strings.NewReader("hello\nnever sent\n"))
	deps.stream.EXPECT().Dial(gomock.Any()).Return(deps.echoer, nil)
	gomock.InOrder(
		deps.echoer.EXPECT().Send(gomock.Any(), []byte("hello")).Return(nil),
		deps.echoer.EXPECT().Receive(gomock.Any(), 5).Return(nil, adapter.ErrConnectionClosed),
		deps.echoer.EXPECT().Close().Return(nil),
	)

	err := app.Run(context.Background())

	require.ErrorIs(t, err, adapter.ErrConnectionClosed)
	assert.Equal(t, "Connection established!\n"+prompt+"Sent!\n", deps.out.String())
}

func TestRun_TCP_InputError(t *testing.T) {
	readErr := errors.New("stdin broke")
	app, deps := newTestApp(t, config.ModeTCP, errReader{err: readErr})
	deps.stream.EXPECT().Dial(gomock.Any()).Return(deps.echoer, nil)
	deps.echoer.EXPECT().Close().Return(errors.New("already closed"))

	err := app.Run(context.Background())

	require.ErrorIs(t, err, ErrReadInput)
	assert.ErrorIs(t, err, readErr)
}

func TestRun_Console(t *testing.T) {
	tests := []struct {
		name       string
		consoleErr error
	}{
		{name: "user quits", consoleErr: nil},
		{name: "connection lost", consoleErr: adapter.ErrConnectionClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, deps := newTestApp(t, config.ModeConsole, strings.NewReader(""))
			deps.console.err = tt.consoleErr
			deps.stream.EXPECT().Dial(gomock.Any()).Return(deps.echoer, nil)
			deps.echoer.EXPECT().Close().Return(nil)

			err := app.Run(context.Background())

			assert.ErrorIs(t, err, tt.consoleErr)
			assert.Same(t, deps.echoer, deps.console.got)
		})
	}
}

func TestRun_Stats(t *testing.T) {
	app, deps := newTestApp(t, config.ModeStats, strings.NewReader(""))
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	deps.admin.EXPECT().Version(gomock.Any()).Return("v1.0.0", nil)
	deps.admin.EXPECT().Stats(gomock.Any()).Return(models.Stats{
		ActiveSessions: 1,
		TotalSessions:  4,
		TotalBytesIn:   120,
		TotalBytesOut:  110,
		StartedAt:      started,
	}, nil)
	deps.admin.EXPECT().Sessions(gomock.Any(), recentSessions).Return([]models.Session{
		{
			ID:          "0190-abc",
			Transport:   models.TransportTCP,
			RemoteAddr:  "127.0.0.1:40000",
			StartedAt:   started,
			EndedAt:     started.Add(1500 * time.Millisecond),
			BytesIn:     11,
			BytesOut:    11,
			CloseReason: models.ClosePeerClosed,
		},
	}, nil)

	require.NoError(t, app.Run(context.Background()))

	out := deps.out.String()
	assert.Contains(t, out, "Server version: v1.0.0")
	assert.Contains(t, out, "Up since: 2026-03-01T10:00:00Z")
	assert.Contains(t, out, "Total sessions: 4")
	assert.Contains(t, out, "Bytes in/out: 120/110")
	assert.Contains(t, out, "0190-abc")
	assert.Contains(t, out, "peer_closed")
	assert.Contains(t, out, "1.5s")
}

func TestRun_Stats_Errors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name  string
		setup func(d *testApp)
	}{
		{
			name: "version",
			setup: func(d *testApp) {
				d.admin.EXPECT().Version(gomock.Any()).Return("", boom)
			},
		},
		{
			name: "stats",
			setup: func(d *testApp) {
				d.admin.EXPECT().Version(gomock.Any()).Return("v1", nil)
				d.admin.EXPECT().Stats(gomock.Any()).Return(models.Stats{}, boom)
			},
		},
		{
			name: "sessions",
			setup: func(d *testApp) {
				d.admin.EXPECT().Version(gomock.Any()).Return("v1", nil)
				d.admin.EXPECT().Stats(gomock.Any()).Return(models.Stats{}, nil)
				d.admin.EXPECT().Sessions(gomock.Any(), recentSessions).Return(nil, boom)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, deps := newTestApp(t, config.ModeStats, strings.NewReader(""))
			tt.setup(deps)

			err := app.Run(context.Background())

			require.ErrorIs(t, err, boom)
			assert.Contains(t, err.Error(), tt.name)
			assert.Empty(t, deps.out.String())
		})
	}
}

func TestRun_UnknownMode(t *testing.T) {
	app, _ := newTestApp(t, "carrier-pigeon", strings.NewReader(""))

	err := app.Run(context.Background())

	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestRenderSessions_Empty(t *testing.T) {
	assert.Equal(t, "No sessions recorded", renderSessions(nil))
}
