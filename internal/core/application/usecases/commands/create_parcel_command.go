package commands

import (
	"errors"
	"strings"

	"zapshift/internal/core/application/authz"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// ParcelBooking is the raw booking form as submitted by a sender.
type ParcelBooking struct {
	Title            string
	ParcelType       string
	WeightKg         float64
	SenderName       string
	SenderDistrict   string
	ReceiverName     string
	ReceiverContact  string
	ReceiverAddress  string
	ReceiverDistrict string
	Cost             int64
}

type CreateParcelCommand struct {
	caller  authz.Caller
	booking parcel.Booking

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand builds the booking for the calling user, who becomes
// the sender and owner of the parcel.
func NewCreateParcelCommand(caller authz.Caller, form ParcelBooking) (CreateParcelCommand, error) {
	if !caller.IsAuthenticated() {
		return CreateParcelCommand{}, errs.NewUnauthenticatedError("parcel booking requires a caller")
	}

	senderDistrict, senderErr := kernel.NewDistrict(form.SenderDistrict)
	receiverDistrict, receiverErr := kernel.NewDistrict(form.ReceiverDistrict)
	if err := errors.Join(senderErr, receiverErr); err != nil {
		return CreateParcelCommand{}, err
	}

	booking := parcel.Booking{
		Title:    strings.TrimSpace(form.Title),
		Type:     parcel.Type(strings.TrimSpace(form.ParcelType)),
		WeightKg: form.WeightKg,
		Sender: parcel.Sender{
			Name:     strings.TrimSpace(form.SenderName),
			Email:    caller.Email(),
			District: senderDistrict,
		},
		Receiver: parcel.Receiver{
			Name:     strings.TrimSpace(form.ReceiverName),
			Contact:  strings.TrimSpace(form.ReceiverContact),
			Address:  strings.TrimSpace(form.ReceiverAddress),
			District: receiverDistrict,
		},
		Cost: form.Cost,
	}

	return CreateParcelCommand{
		caller:  caller,
		booking: booking,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

func (c CreateParcelCommand) Caller() authz.Caller    { return c.caller }
func (c CreateParcelCommand) Booking() parcel.Booking { return c.booking }
