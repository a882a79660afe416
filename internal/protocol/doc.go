// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package protocol holds the constants and byte helpers shared by the
// datagram request/reply pair and the stream echo pair.
//
// There is no framing: a UDP exchange is one request datagram answered by one
// reply datagram, and the TCP echo returns exactly the bytes it received.
package protocol
