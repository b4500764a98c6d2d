package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/pkg/guard"
)

var ErrUpdateUserRoleCommandIsNotConstructed = errors.New(
	"UpdateUserRoleCommand must be created via NewUpdateUserRoleCommand constructor",
)

type UpdateUserRoleCommand struct {
	userID kernel.UUID
	role   user.Role

	guard guard.ConstructorGuard
}

func NewUpdateUserRoleCommand(userID kernel.UUID, role string) (UpdateUserRoleCommand, error) {
	r, roleErr := user.ParseRole(role)
	if err := errors.Join(userID.Validate(), roleErr); err != nil {
		return UpdateUserRoleCommand{}, err
	}

	return UpdateUserRoleCommand{userID: userID, role: r, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserRoleCommandIsNotConstructed)
}

func (c UpdateUserRoleCommand) UserID() kernel.UUID { return c.userID }
func (c UpdateUserRoleCommand) Role() user.Role     { return c.role }
