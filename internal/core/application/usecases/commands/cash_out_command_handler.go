package commands

import (
	"context"

	"zapshift/internal/core/application/authz"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/ports"
)

// CashOutCommandHandler pays the rider share of a delivered parcel. The write
// is conditional on the loaded version, so of two concurrent cash-outs only
// one commits; the replayed one sees CashOutPaid and fails with ErrAlreadyPaidOut.
type CashOutCommandHandler struct {
	uowFactory  ParcelUoWFactory
	clock       ports.Clock
	maxAttempts int
}

func NewCashOutCommandHandler(uowFactory ParcelUoWFactory, clock ports.Clock, maxAttempts int) CashOutCommandHandler {
	return CashOutCommandHandler{
		uowFactory:  uowFactory,
		clock:       clock,
		maxAttempts: maxAttempts,
	}
}

func (h CashOutCommandHandler) Handle(ctx context.Context, cmd CashOutCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var paid *parcel.Parcel
	err := retryOnConflict(ctx, h.maxAttempts, func() error {
		var err error
		paid, err = h.cashOut(ctx, cmd)
		return err
	})
	if err != nil {
		return nil, err
	}
	return paid, nil
}

func (h CashOutCommandHandler) cashOut(ctx context.Context, cmd CashOutCommand) (*parcel.Parcel, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	p, err := parcelRepo.GetForUpdate(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	if err = authz.CanHandleParcel(cmd.Caller(), p); err != nil {
		return nil, err
	}

	if _, err = p.CashOut(h.clock.Now()); err != nil {
		return nil, err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
