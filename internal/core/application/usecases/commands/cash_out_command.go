package commands

import (
	"errors"

	"zapshift/internal/core/application/authz"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var ErrCashOutCommandIsNotConstructed = errors.New(
	"CashOutCommand must be created via NewCashOutCommand constructor",
)

type CashOutCommand struct {
	caller   authz.Caller
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCashOutCommand(caller authz.Caller, parcelID kernel.UUID) (CashOutCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return CashOutCommand{}, err
	}

	return CashOutCommand{
		caller:   caller,
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CashOutCommand) Validate() error {
	return c.guard.Validate(ErrCashOutCommandIsNotConstructed)
}

func (c CashOutCommand) Caller() authz.Caller  { return c.caller }
func (c CashOutCommand) ParcelID() kernel.UUID { return c.parcelID }
