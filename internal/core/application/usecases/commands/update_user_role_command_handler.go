package commands

import (
	"context"

	"zapshift/internal/core/domain/model/user"
)

type UpdateUserRoleCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewUpdateUserRoleCommandHandler(uowFactory UserUoWFactory) UpdateUserRoleCommandHandler {
	return UpdateUserRoleCommandHandler{uowFactory: uowFactory}
}

func (h UpdateUserRoleCommandHandler) Handle(ctx context.Context, cmd UpdateUserRoleCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	u, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	if err = u.ChangeRole(cmd.Role()); err != nil {
		return nil, err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
