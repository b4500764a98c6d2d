package commands

import (
	"context"
	"log/slog"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/tracking"
	"zapshift/internal/core/ports"
)

type CreateParcelCommandHandler struct {
	uowFactory  ParcelUoWFactory
	clock       ports.Clock
	publisher   ports.EventPublisher
	logger      *slog.Logger
	maxAttempts int
}

func NewCreateParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	clock ports.Clock,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	maxAttempts int,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory:  uowFactory,
		clock:       clock,
		publisher:   publisher,
		logger:      logger.With("component", "CreateParcelCommandHandler"),
		maxAttempts: maxAttempts,
	}
}

// Handle books the parcel and opens its tracking log with a creation event.
// A tracking number taken by a concurrent booking is a version conflict; the
// next attempt books under a fresh id and tracking number.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	var (
		p     *parcel.Parcel
		event tracking.Event
	)
	err := retryOnConflict(ctx, h.maxAttempts, func() error {
		var err error
		p, event, err = h.create(ctx, cmd, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	publishAll(ctx, h.publisher, h.logger, event)
	return p, nil
}

func (h CreateParcelCommandHandler) create(
	ctx context.Context,
	cmd CreateParcelCommand,
	now time.Time,
) (*parcel.Parcel, tracking.Event, error) {
	p, err := parcel.NewParcel(kernel.NewUUID(), cmd.Booking(), now)
	if err != nil {
		return nil, tracking.Event{}, err
	}

	event, err := tracking.NewEvent(
		p.ID(),
		p.TrackingNumber(),
		p.DeliveryStatus().String(),
		p.Booking().Sender.District.String(),
		"Parcel created",
		cmd.Caller().Email().String(),
		now,
	)
	if err != nil {
		return nil, tracking.Event{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, tracking.Event{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, p); err != nil {
		return nil, tracking.Event{}, err
	}

	if err = uow.TrackingRepository().Add(ctx, event); err != nil {
		return nil, tracking.Event{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, tracking.Event{}, err
	}
	return p, event, nil
}
