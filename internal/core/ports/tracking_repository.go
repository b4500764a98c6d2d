package ports

import (
	"context"

	"zapshift/internal/core/domain/model/tracking"
)

type TrackingRepository interface {
	// Add appends an event. Events are never updated or deleted.
	Add(ctx context.Context, event tracking.Event) error
}
