// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !unix

package server

import "syscall"

func dualStackControl(string, string, syscall.RawConn) error {
	return nil
}
