// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-echo-sockets/internal/logger"
	"github.com/MKhiriev/go-echo-sockets/internal/utils"
)

// retryDelays is the wait before each retry. Its length is the retry budget.
var retryDelays = []time.Duration{
	50 * time.Millisecond,
	150 * time.Millisecond,
	400 * time.Millisecond,
}

// withRetry runs op until it succeeds, fails with an error the classifier
// marks non-retryable, the retry budget is spent, or ctx is done.
func withRetry(ctx context.Context, classifier ErrorClassificator, op func() error) error {
	err := op()
	for _, delay := range retryDelays {
		if err == nil || classifier == nil || classifier.Classify(err) != Retryable {
			return err
		}

		event := logger.FromContext(ctx).Warn().Err(err).Dur("delay", delay)
		if sessionID, ok := utils.GetSessionIDFromContext(ctx); ok {
			event = event.Str("session_id", sessionID)
		}
		event.Msg("retrying database operation")

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return err
		case <-timer.C:
		}

		err = op()
	}

	return err
}
