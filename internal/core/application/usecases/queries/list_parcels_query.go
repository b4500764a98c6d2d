package queries

import (
	"errors"

	"zapshift/internal/core/application/authz"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

var ErrListParcelsQueryIsNotConstructed = errors.New(
	"ListParcelsQuery must be created via NewListParcelsQuery constructor",
)

// ListParcelsQuery lists parcels, latest first. Every filter is optional.
// Non-admin callers only ever see their own parcels: an empty owner filter
// is narrowed to the caller and any other owner is Forbidden.
type ListParcelsQuery struct {
	ownerEmail     string
	deliveryStatus string
	paymentStatus  string

	guard guard.ConstructorGuard
}

func NewListParcelsQuery(caller authz.Caller, ownerEmail, deliveryStatus, paymentStatus string) (ListParcelsQuery, error) {
	if err := authz.RequireAuthenticated.Check(caller); err != nil {
		return ListParcelsQuery{}, err
	}

	if ownerEmail != "" {
		email, err := kernel.NewEmail(ownerEmail)
		if err != nil {
			return ListParcelsQuery{}, err
		}
		ownerEmail = email.String()
	}

	if !caller.IsAdmin() {
		if ownerEmail != "" && ownerEmail != caller.Email().String() {
			return ListParcelsQuery{}, errs.NewForbiddenError("parcel owner", caller.Role().String())
		}
		ownerEmail = caller.Email().String()
	}

	if deliveryStatus != "" {
		if _, err := parcel.ParseDeliveryStatus(deliveryStatus); err != nil {
			return ListParcelsQuery{}, err
		}
	}
	if paymentStatus != "" {
		if _, err := parcel.ParsePaymentStatus(paymentStatus); err != nil {
			return ListParcelsQuery{}, err
		}
	}

	return ListParcelsQuery{
		ownerEmail:     ownerEmail,
		deliveryStatus: deliveryStatus,
		paymentStatus:  paymentStatus,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}

func (q ListParcelsQuery) OwnerEmail() string     { return q.ownerEmail }
func (q ListParcelsQuery) DeliveryStatus() string { return q.deliveryStatus }
func (q ListParcelsQuery) PaymentStatus() string  { return q.paymentStatus }
