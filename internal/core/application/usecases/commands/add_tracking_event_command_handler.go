package commands

import (
	"context"
	"log/slog"

	"zapshift/internal/core/application/authz"
	"zapshift/internal/core/domain/model/tracking"
	"zapshift/internal/core/ports"
)

type AddTrackingEventCommandHandler struct {
	uowFactory ParcelUoWFactory
	clock      ports.Clock
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewAddTrackingEventCommandHandler(
	uowFactory ParcelUoWFactory,
	clock ports.Clock,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) AddTrackingEventCommandHandler {
	return AddTrackingEventCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		publisher:  publisher,
		logger:     logger.With("component", "AddTrackingEventCommandHandler"),
	}
}

// Handle appends the event. Only an admin or the parcel's rider may write.
// The parcel itself is not modified.
func (h AddTrackingEventCommandHandler) Handle(ctx context.Context, cmd AddTrackingEventCommand) (tracking.Event, error) {
	if err := cmd.Validate(); err != nil {
		return tracking.Event{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return tracking.Event{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.ParcelRepository().GetByTrackingNumber(ctx, cmd.TrackingNumber())
	if err != nil {
		return tracking.Event{}, err
	}

	if err = authz.CanHandleParcel(cmd.Caller(), p); err != nil {
		return tracking.Event{}, err
	}

	status := cmd.Status()
	if status == "" {
		status = p.DeliveryStatus().String()
	}

	event, err := tracking.NewEvent(
		p.ID(),
		p.TrackingNumber(),
		status,
		cmd.Location(),
		cmd.Message(),
		cmd.Caller().Email().String(),
		h.clock.Now(),
	)
	if err != nil {
		return tracking.Event{}, err
	}

	if err = uow.TrackingRepository().Add(ctx, event); err != nil {
		return tracking.Event{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return tracking.Event{}, err
	}

	publishAll(ctx, h.publisher, h.logger, event)
	return event, nil
}
