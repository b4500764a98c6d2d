package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/tracking"
	"zapshift/internal/core/domain/services"
	"zapshift/internal/core/ports"
	"zapshift/internal/pkg/errs"
)

const dispatcherIdentity = "system:dispatcher"

// ErrNoParcelAwaitingRider means there is nothing to dispatch.
var ErrNoParcelAwaitingRider = errors.New("no paid parcel is awaiting a rider")

type DispatchRiderCommandHandler struct {
	uowFactory  DeliveryUoWFactory
	clock       ports.Clock
	publisher   ports.EventPublisher
	logger      *slog.Logger
	maxAttempts int
}

func NewDispatchRiderCommandHandler(
	uowFactory DeliveryUoWFactory,
	clock ports.Clock,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	maxAttempts int,
) DispatchRiderCommandHandler {
	return DispatchRiderCommandHandler{
		uowFactory:  uowFactory,
		clock:       clock,
		publisher:   publisher,
		logger:      logger.With("component", "DispatchRiderCommandHandler"),
		maxAttempts: maxAttempts,
	}
}

// Handle assigns one waiting parcel. It returns ErrNoParcelAwaitingRider when
// the queue is empty and services.ErrNoAvailableRider when nobody can take it.
func (h DispatchRiderCommandHandler) Handle(ctx context.Context, cmd DispatchRiderCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var (
		dispatched *parcel.Parcel
		event      tracking.Event
	)
	err := retryOnConflict(ctx, h.maxAttempts, func() error {
		var err error
		dispatched, event, err = h.dispatch(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	publishAll(ctx, h.publisher, h.logger, event)
	return dispatched, nil
}

func (h DispatchRiderCommandHandler) dispatch(ctx context.Context) (*parcel.Parcel, tracking.Event, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, tracking.Event{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	riderRepo := uow.RiderRepository()

	p, err := parcelRepo.GetOldestAwaitingRider(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, tracking.Event{}, ErrNoParcelAwaitingRider
	}
	if err != nil {
		return nil, tracking.Event{}, err
	}

	candidates, err := riderRepo.GetAllAvailable(ctx)
	if err != nil {
		return nil, tracking.Event{}, err
	}

	now := h.clock.Now()
	// candidates are not locked; the conditional rider update below catches
	// a rider taken in the meantime and the attempt is replayed
	r, err := services.NewRiderDispatcher().Dispatch(p, candidates, now)
	if err != nil {
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
		fmt.Sprintf("Dispatched to rider %s", r.Name()),
		dispatcherIdentity,
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
