package commands

import (
	"errors"
	"strings"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

type RegisterUserCommand struct {
	email       kernel.Email
	displayName string

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(email kernel.Email, displayName string) (RegisterUserCommand, error) {
	if err := email.Validate(); err != nil {
		return RegisterUserCommand{}, err
	}

	return RegisterUserCommand{
		email:       email,
		displayName: strings.TrimSpace(displayName),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Email() kernel.Email { return c.email }
func (c RegisterUserCommand) DisplayName() string { return c.displayName }
