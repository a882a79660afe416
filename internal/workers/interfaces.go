// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the echo server next to its
// transports. It defines the Worker interface, the Workers aggregate and the
// journal retention worker.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
