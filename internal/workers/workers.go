// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-echo-sockets/internal/config"
	"github.com/MKhiriev/go-echo-sockets/internal/logger"
	"github.com/MKhiriev/go-echo-sockets/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled by cfg. With retention disabled the
// aggregate is empty and Run returns as soon as ctx is done.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.RetentionInterval > 0 {
		w.workers = append(w.workers, NewRetentionWorker(services.SessionJournal, cfg, logger))
	}

	return w
}

// Run starts every worker in its own goroutine and waits for all of them.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}

// Len reports how many workers are configured.
func (w *Workers) Len() int {
	return len(w.workers)
}
