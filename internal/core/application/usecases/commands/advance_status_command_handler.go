package commands

import (
	"context"
	"errors"
	"log/slog"

	"zapshift/internal/core/application/authz"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/core/domain/model/tracking"
	"zapshift/internal/core/domain/services"
	"zapshift/internal/core/ports"
	"zapshift/internal/pkg/errs"
)

// AdvanceStatusCommandHandler moves a parcel along its lifecycle. When the
// move completes the delivery, the parcel update and the rider release are
// committed together.
type AdvanceStatusCommandHandler struct {
	uowFactory  DeliveryUoWFactory
	clock       ports.Clock
	publisher   ports.EventPublisher
	logger      *slog.Logger
	completer   services.DeliveryCompleter
	maxAttempts int
}

func NewAdvanceStatusCommandHandler(
	uowFactory DeliveryUoWFactory,
	clock ports.Clock,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	releaseRiderOnDelivery bool,
	maxAttempts int,
) AdvanceStatusCommandHandler {
	return AdvanceStatusCommandHandler{
		uowFactory:  uowFactory,
		clock:       clock,
		publisher:   publisher,
		logger:      logger.With("component", "AdvanceStatusCommandHandler"),
		completer:   services.NewDeliveryCompleter(releaseRiderOnDelivery),
		maxAttempts: maxAttempts,
	}
}

func (h AdvanceStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceStatusCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var (
		advanced *parcel.Parcel
		event    tracking.Event
	)
	err := retryOnConflict(ctx, h.maxAttempts, func() error {
		var err error
		advanced, event, err = h.advance(ctx, cmd)
		return err
	})
	if err != nil {
		return nil, err
	}

	publishAll(ctx, h.publisher, h.logger, event)
	return advanced, nil
}

func (h AdvanceStatusCommandHandler) advance(
	ctx context.Context,
	cmd AdvanceStatusCommand,
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

	if err = authz.CanHandleParcel(cmd.Caller(), p); err != nil {
		return nil, tracking.Event{}, err
	}

	if _, err = p.DeliveryStatus().Advance(cmd.Status()); err != nil {
		return nil, tracking.Event{}, err
	}

	var assigned *rider.Rider
	if cmd.Status().IsFinal() {
		assigned, err = h.loadAssignedRider(ctx, riderRepo, p)
		if err != nil {
			return nil, tracking.Event{}, err
		}
	}

	now := h.clock.Now()
	riderTouched, err := h.completer.Advance(p, assigned, cmd.Status(), now)
	if err != nil {
		return nil, tracking.Event{}, err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return nil, tracking.Event{}, err
	}

	if riderTouched {
		if err = riderRepo.Update(ctx, assigned); err != nil {
			return nil, tracking.Event{}, err
		}
	}

	event, err := tracking.NewEvent(
		p.ID(),
		p.TrackingNumber(),
		p.DeliveryStatus().String(),
		cmd.Location(),
		cmd.Message(),
		cmd.Caller().Email().String(),
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

// loadAssignedRider locks the rider on p. A rider deleted since assignment is
// logged and skipped so the delivery itself still completes.
func (h AdvanceStatusCommandHandler) loadAssignedRider(
	ctx context.Context,
	riderRepo ports.RiderRepository,
	p *parcel.Parcel,
) (*rider.Rider, error) {
	assignment := p.Rider()
	if assignment == nil {
		return nil, nil
	}

	r, err := riderRepo.GetForUpdate(ctx, assignment.ID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.WarnContext(ctx, "assigned rider no longer exists, skipping release",
			"parcelId", p.ID().String(),
			"riderId", assignment.ID.String(),
		)
		return nil, nil
	}
	return r, err
}
