package commands

import (
	"errors"
	"strings"

	"zapshift/internal/core/application/authz"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

var ErrApplyRiderCommandIsNotConstructed = errors.New(
	"ApplyRiderCommand must be created via NewApplyRiderCommand constructor",
)

type ApplyRiderCommand struct {
	profile rider.Profile

	guard guard.ConstructorGuard
}

// NewApplyRiderCommand files the application under the caller's e-mail.
func NewApplyRiderCommand(caller authz.Caller, name, phone, district string) (ApplyRiderCommand, error) {
	if !caller.IsAuthenticated() {
		return ApplyRiderCommand{}, errs.NewUnauthenticatedError("rider application requires a caller")
	}

	d, err := kernel.NewDistrict(district)
	if err != nil {
		return ApplyRiderCommand{}, err
	}

	return ApplyRiderCommand{
		profile: rider.Profile{
			Name:     strings.TrimSpace(name),
			Email:    caller.Email(),
			Phone:    strings.TrimSpace(phone),
			District: d,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ApplyRiderCommand) Validate() error {
	return c.guard.Validate(ErrApplyRiderCommandIsNotConstructed)
}

func (c ApplyRiderCommand) Profile() rider.Profile { return c.profile }
