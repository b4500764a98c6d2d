package commands

import (
	"errors"
	"strings"

	"zapshift/internal/core/application/authz"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

var ErrAddTrackingEventCommandIsNotConstructed = errors.New(
	"AddTrackingEventCommand must be created via NewAddTrackingEventCommand constructor",
)

type AddTrackingEventCommand struct {
	caller         authz.Caller
	trackingNumber string
	status         string
	location       string
	message        string

	guard guard.ConstructorGuard
}

// NewAddTrackingEventCommand records a manual note on a parcel's history. An
// empty status is filled with the parcel's current delivery status.
func NewAddTrackingEventCommand(
	caller authz.Caller,
	trackingNumber, status, location, message string,
) (AddTrackingEventCommand, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return AddTrackingEventCommand{}, errs.NewValueIsRequiredError("trackingNumber")
	}

	return AddTrackingEventCommand{
		caller:         caller,
		trackingNumber: trackingNumber,
		status:         strings.TrimSpace(status),
		location:       location,
		message:        message,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c AddTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrAddTrackingEventCommandIsNotConstructed)
}

func (c AddTrackingEventCommand) Caller() authz.Caller   { return c.caller }
func (c AddTrackingEventCommand) TrackingNumber() string { return c.trackingNumber }
func (c AddTrackingEventCommand) Status() string         { return c.status }
func (c AddTrackingEventCommand) Location() string       { return c.location }
func (c AddTrackingEventCommand) Message() string        { return c.message }
