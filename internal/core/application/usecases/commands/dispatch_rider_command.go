package commands

import (
	"errors"

	"zapshift/internal/pkg/guard"
)

var ErrDispatchRiderCommandIsNotConstructed = errors.New(
	"DispatchRiderCommand must be created via NewDispatchRiderCommand constructor",
)

// DispatchRiderCommand asks the system to pair the oldest paid, unassigned
// parcel with the best available rider.
type DispatchRiderCommand struct {
	guard guard.ConstructorGuard
}

func NewDispatchRiderCommand() (DispatchRiderCommand, error) {
	return DispatchRiderCommand{guard: guard.NewConstructorGuard()}, nil
}

func (c DispatchRiderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchRiderCommandIsNotConstructed)
}
