package commands

import (
	"context"
	"errors"
	"log/slog"

	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/pkg/errs"
)

// DeleteParcelCommandHandler removes a parcel. A rider still carrying the
// parcel is freed in the same transaction.
type DeleteParcelCommandHandler struct {
	uowFactory  DeliveryUoWFactory
	logger      *slog.Logger
	maxAttempts int
}

func NewDeleteParcelCommandHandler(uowFactory DeliveryUoWFactory, logger *slog.Logger, maxAttempts int) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{
		uowFactory:  uowFactory,
		logger:      logger.With("component", "DeleteParcelCommandHandler"),
		maxAttempts: maxAttempts,
	}
}

// Handle removes the parcel. Its tracking events stay as history.
func (h DeleteParcelCommandHandler) Handle(ctx context.Context, cmd DeleteParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retryOnConflict(ctx, h.maxAttempts, func() error {
		return h.delete(ctx, cmd)
	})
}

func (h DeleteParcelCommandHandler) delete(ctx context.Context, cmd DeleteParcelCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	p, err := parcelRepo.GetForUpdate(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = h.releaseRider(ctx, uow, p); err != nil {
		return err
	}

	if err = parcelRepo.Delete(ctx, p.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// releaseRider frees the rider of a parcel that is assigned or in transit.
// Riders of finished parcels were already handled on delivery.
func (h DeleteParcelCommandHandler) releaseRider(ctx context.Context, uow DeliveryUoW, p *parcel.Parcel) error {
	assignment := p.Rider()
	if assignment == nil || p.DeliveryStatus().IsFinal() {
		return nil
	}

	riderRepo := uow.RiderRepository()
	r, err := riderRepo.GetForUpdate(ctx, assignment.ID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.WarnContext(ctx, "assigned rider no longer exists, nothing to release",
			"parcelId", p.ID().String(),
			"riderId", assignment.ID.String(),
		)
		return nil
	}
	if err != nil {
		return err
	}

	r.CancelDelivery()
	return riderRepo.Update(ctx, r)
}
