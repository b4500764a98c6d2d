package commands

import (
	"errors"
	"strings"

	"zapshift/internal/core/application/authz"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/pkg/guard"
)

var ErrAdvanceStatusCommandIsNotConstructed = errors.New(
	"AdvanceStatusCommand must be created via NewAdvanceStatusCommand constructor",
)

type AdvanceStatusCommand struct {
	caller   authz.Caller
	parcelID kernel.UUID
	status   parcel.DeliveryStatus
	location string
	message  string

	guard guard.ConstructorGuard
}

// NewAdvanceStatusCommand parses the requested status label. Unknown labels are
// rejected here as invalid values; known but illegal targets fail later with
// parcel.ErrInvalidTransition.
func NewAdvanceStatusCommand(
	caller authz.Caller,
	parcelID kernel.UUID,
	status string,
	location, message string,
) (AdvanceStatusCommand, error) {
	target, statusErr := parcel.ParseDeliveryStatus(status)
	if err := errors.Join(parcelID.Validate(), statusErr); err != nil {
		return AdvanceStatusCommand{}, err
	}

	return AdvanceStatusCommand{
		caller:   caller,
		parcelID: parcelID,
		status:   target,
		location: strings.TrimSpace(location),
		message:  strings.TrimSpace(message),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStatusCommandIsNotConstructed)
}

func (c AdvanceStatusCommand) Caller() authz.Caller          { return c.caller }
func (c AdvanceStatusCommand) ParcelID() kernel.UUID         { return c.parcelID }
func (c AdvanceStatusCommand) Status() parcel.DeliveryStatus { return c.status }
func (c AdvanceStatusCommand) Location() string              { return c.location }
func (c AdvanceStatusCommand) Message() string               { return c.message }
