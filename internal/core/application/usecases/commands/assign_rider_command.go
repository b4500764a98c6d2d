package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

type AssignRiderCommand struct {
	parcelID   kernel.UUID
	riderID    kernel.UUID
	assignedBy kernel.Email

	guard guard.ConstructorGuard
}

func NewAssignRiderCommand(parcelID, riderID kernel.UUID, assignedBy kernel.Email) (AssignRiderCommand, error) {
	if err := errors.Join(parcelID.Validate(), riderID.Validate(), assignedBy.Validate()); err != nil {
		return AssignRiderCommand{}, err
	}

	return AssignRiderCommand{
		parcelID:   parcelID,
		riderID:    riderID,
		assignedBy: assignedBy,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

func (c AssignRiderCommand) ParcelID() kernel.UUID    { return c.parcelID }
func (c AssignRiderCommand) RiderID() kernel.UUID     { return c.riderID }
func (c AssignRiderCommand) AssignedBy() kernel.Email { return c.assignedBy }
