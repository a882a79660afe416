// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the socket servers.
//
// It binds the UDP replier, the TCP echo listener and the optional admin HTTP
// server, runs them together with the background workers, and shuts all of
// them down when the process receives a stop signal.
package server
