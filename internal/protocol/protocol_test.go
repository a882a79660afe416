// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimTerminator(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"nul terminated", []byte("request!\x00"), []byte("request!")},
		{"plain", []byte("request!"), []byte("request!")},
		{"only one nul removed", []byte("a\x00\x00"), []byte("a\x00")},
		{"empty", []byte{}, []byte{}},
		{"single nul", []byte{0}, []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrimTerminator(tt.in))
		})
	}
}

func TestPrintable_StopsAtNUL(t *testing.T) {
	assert.Equal(t, "hello", Printable([]byte("hello\x00garbage")))
	assert.Equal(t, "hello", Printable([]byte("hello")))
	assert.Equal(t, "", Printable(nil))
}

func TestJoinHostPort(t *testing.T) {
	assert.Equal(t, "localhost:1337", JoinHostPort("", ""))
	assert.Equal(t, "127.0.0.1:9000", JoinHostPort("127.0.0.1", "9000"))
	assert.Equal(t, "[::1]:1337", JoinHostPort("::1", ""))
}

func TestSplitAddr(t *testing.T) {
	host, port := SplitAddr(&net.UDPAddr{IP: net.ParseIP("127.0.0.1"), Port: 4242})
	assert.Equal(t, "127.0.0.1", host)
	assert.Equal(t, "4242", port)

	host, port = SplitAddr(&net.TCPAddr{IP: net.ParseIP("::1"), Port: 80})
	assert.Equal(t, "::1", host)
	assert.Equal(t, "80", port)

	host, port = SplitAddr(nil)
	assert.Empty(t, host)
	assert.Empty(t, port)
}
