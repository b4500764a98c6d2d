package commands

import (
	"context"
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/core/ports"
	"zapshift/internal/pkg/errs"
)

var ErrRiderAlreadyApplied = errors.New("a rider application already exists for this e-mail")

type ApplyRiderCommandHandler struct {
	uowFactory RiderUoWFactory
	clock      ports.Clock
}

func NewApplyRiderCommandHandler(uowFactory RiderUoWFactory, clock ports.Clock) ApplyRiderCommandHandler {
	return ApplyRiderCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle stores a pending, idle rider. One application per e-mail.
func (h ApplyRiderCommandHandler) Handle(ctx context.Context, cmd ApplyRiderCommand) (*rider.Rider, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	r, err := rider.NewRider(kernel.NewUUID(), cmd.Profile(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()

	_, err = riderRepo.GetByEmail(ctx, r.Email())
	switch {
	case err == nil:
		return nil, errs.NewValueIsInvalidErrorWithCause("email", ErrRiderAlreadyApplied)
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	if err = riderRepo.Add(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
