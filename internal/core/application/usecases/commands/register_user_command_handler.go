package commands

import (
	"context"
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/core/ports"
	"zapshift/internal/pkg/errs"
)

type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	clock      ports.Clock
}

func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, clock ports.Clock) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle creates the user on first login and refreshes the last-login stamp
// afterwards. The role of an existing user is never touched. The boolean
// reports whether the user was created.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, bool, error) {
	if err := cmd.Validate(); err != nil {
		return nil, false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	now := h.clock.Now()

	u, err := userRepo.GetByEmail(ctx, cmd.Email())
	created := false
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		u, err = user.NewUser(kernel.NewUUID(), cmd.Email(), cmd.DisplayName(), now)
		if err != nil {
			return nil, false, err
		}
		if err = userRepo.Add(ctx, u); err != nil {
			return nil, false, err
		}
		created = true
	case err != nil:
		return nil, false, err
	default:
		u.RecordLogin(cmd.DisplayName(), now)
		if err = userRepo.Update(ctx, u); err != nil {
			return nil, false, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, false, err
	}

	return u, created, nil
}
