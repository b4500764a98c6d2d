package commands

import (
	"context"
	"errors"
	"log/slog"

	"zapshift/internal/core/domain/model/tracking"
	"zapshift/internal/core/ports"
	"zapshift/internal/pkg/errs"
)

// DefaultMaxAttempts bounds how often a transaction is replayed after losing
// a conditional write.
const DefaultMaxAttempts = 3

// retryOnConflict runs fn until it succeeds, fails with something other than
// a version conflict, or attempts run out. Every attempt re-reads state.
func retryOnConflict(ctx context.Context, attempts int, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for range attempts {
		if err = fn(); !errors.Is(err, errs.ErrVersionIsInvalid) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errs.NewStoreUnavailableError("retry after version conflict", ctxErr)
		}
	}
	return err
}

// publishAll hands committed events to the publisher. Failures are logged only.
func publishAll(ctx context.Context, publisher ports.EventPublisher, logger *slog.Logger, events ...tracking.Event) {
	if publisher == nil {
		return
	}
	for _, e := range events {
		if err := publisher.Publish(ctx, e); err != nil {
			logger.WarnContext(ctx, "failed to publish tracking event",
				"trackingNumber", e.TrackingNumber,
				"status", e.Status,
				"error", err,
			)
		}
	}
}
