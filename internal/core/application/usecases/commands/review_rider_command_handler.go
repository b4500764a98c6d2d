package commands

import (
	"context"
	"errors"
	"log/slog"

	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/core/ports"
	"zapshift/internal/pkg/errs"
)

// ReviewRiderCommandHandler records an admin decision on a rider application.
// Approval also promotes the user with the rider's e-mail to RoleRider; when
// no such user exists the miss is logged and the review still commits.
// Admins keep their role.
type ReviewRiderCommandHandler struct {
	uowFactory  RiderUoWFactory
	clock       ports.Clock
	logger      *slog.Logger
	maxAttempts int
}

func NewReviewRiderCommandHandler(
	uowFactory RiderUoWFactory,
	clock ports.Clock,
	logger *slog.Logger,
	maxAttempts int,
) ReviewRiderCommandHandler {
	return ReviewRiderCommandHandler{
		uowFactory:  uowFactory,
		clock:       clock,
		logger:      logger.With("component", "ReviewRiderCommandHandler"),
		maxAttempts: maxAttempts,
	}
}

func (h ReviewRiderCommandHandler) Handle(ctx context.Context, cmd ReviewRiderCommand) (*rider.Rider, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var reviewed *rider.Rider
	err := retryOnConflict(ctx, h.maxAttempts, func() error {
		var err error
		reviewed, err = h.review(ctx, cmd)
		return err
	})
	if err != nil {
		return nil, err
	}
	return reviewed, nil
}

func (h ReviewRiderCommandHandler) review(ctx context.Context, cmd ReviewRiderCommand) (*rider.Rider, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()

	r, err := riderRepo.GetForUpdate(ctx, cmd.RiderID())
	if err != nil {
		return nil, err
	}

	if err = r.Review(cmd.Decision(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = riderRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	if cmd.Decision() == rider.Active {
		if err = h.promoteUser(ctx, uow.UserRepository(), r); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}

func (h ReviewRiderCommandHandler) promoteUser(ctx context.Context, userRepo ports.UserRepository, r *rider.Rider) error {
	u, err := userRepo.GetByEmail(ctx, r.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.WarnContext(ctx, "approved rider has no user account, role left unchanged",
			"riderId", r.ID().String(),
			"email", r.Email().String(),
		)
		return nil
	}
	if err != nil {
		return err
	}
	if u.Role() == user.RoleAdmin {
		h.logger.InfoContext(ctx, "approved rider is an admin, role kept",
			"riderId", r.ID().String(),
			"email", r.Email().String(),
		)
		return nil
	}

	if err = u.ChangeRole(user.RoleRider); err != nil {
		return err
	}
	return userRepo.Update(ctx, u)
}
