package commands

import (
	"context"
	"fmt"
	"log/slog"

	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/tracking"
	"zapshift/internal/core/domain/services"
	"zapshift/internal/core/ports"
)

// AssignRiderCommandHandler links a parcel to a rider in one transaction.
//
// Both rows are locked (parcel first, then rider) and both writes are
// conditional on the loaded versions. When a concurrent writer wins, the whole
// transaction is replayed against fresh state, so the loser ends with
// ParcelNotAssignable or RiderUnavailable instead of a double booking.
type AssignRiderCommandHandler struct {
	uowFactory  DeliveryUoWFactory
	clock       ports.Clock
	publisher   ports.EventPublisher
	logger      *slog.Logger
	maxAttempts int
}

func NewAssignRiderCommandHandler(
	uowFactory DeliveryUoWFactory,
	clock ports.Clock,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	maxAttempts int,
) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory:  uowFactory,
		clock:       clock,
		publisher:   publisher,
		logger:      logger.With("component", "AssignRiderCommandHandler"),
		maxAttempts: maxAttempts,
	}
}

func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var (
		assigned *parcel.Parcel
		event    tracking.Event
	)
	err := retryOnConflict(ctx, h.maxAttempts, func() error {
		var err error
		assigned, event, err = h.assign(ctx, cmd)
		return err
	})
	if err != nil {
		return nil, err
	}

	publishAll(ctx, h.publisher, h.logger, event)
	return assigned, nil
}

func (h AssignRiderCommandHandler) assign(
	ctx context.Context,
	cmd AssignRiderCommand,
) (*parcel.Parcel, tracking.Event, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, tracking.Event{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	riderRepo := uow.RiderRepository()

	p, err := parcelRepo.GetForUpdate(ctx, cmd.ParcelID())
	if err != nil {
		return nil, tracking.Event{}, err
	}

	r, err := riderRepo.GetForUpdate(ctx, cmd.RiderID())
	if err != nil {
		return nil, tracking.Event{}, err
	}

	now := h.clock.Now()
	if err = services.NewRiderAssigner().Assign(p, r, now); err != nil {
		return nil, tracking.Event{}, err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return nil, tracking.Event{}, err
	}

	if err = riderRepo.Update(ctx, r); err != nil {
		return nil, tracking.Event{}, err
	}

	event, err := tracking.NewEvent(
		p.ID(),
		p.TrackingNumber(),
		p.DeliveryStatus().String(),
		r.District().String(),
		fmt.Sprintf("Assigned to rider %s", r.Name()),
		cmd.AssignedBy().String(),
		now,
	)
	if err != nil {
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
