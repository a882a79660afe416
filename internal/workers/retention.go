// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-echo-sockets/internal/config"
	"github.com/MKhiriev/go-echo-sockets/internal/logger"
	"github.com/MKhiriev/go-echo-sockets/internal/service"
)

// RetentionWorker purges journal sessions that ended more than period ago,
// once every interval.
type RetentionWorker struct {
	journal  service.SessionJournal
	interval time.Duration
	period   time.Duration

	logger *logger.Logger
}

func NewRetentionWorker(journal service.SessionJournal, cfg config.Workers, logger *logger.Logger) *RetentionWorker {
	return &RetentionWorker{
		journal:  journal,
		interval: cfg.RetentionInterval,
		period:   cfg.RetentionPeriod,
		logger:   logger,
	}
}

func (w *RetentionWorker) Run(ctx context.Context) {
	t := time.NewTicker(w.interval)
	defer t.Stop()

	w.logger.Info().
		Dur("interval", w.interval).
		Dur("period", w.period).
		Msg("retention worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("retention worker stopped")
			return
		case <-t.C:
			w.purge(ctx)
		}
	}
}

func (w *RetentionWorker) purge(ctx context.Context) {
	deleted, err := w.journal.Purge(ctx, w.period)
	if err != nil {
		w.logger.Err(err).Str("func", "*RetentionWorker.purge").Msg("error purging journal")
		return
	}

	if deleted > 0 {
		w.logger.Info().Int64("deleted", deleted).Msg("purged old sessions")
	}
}
