package services

import (
	"time"

	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/rider"
)

type RiderAssigner struct{}

func NewRiderAssigner() RiderAssigner {
	return RiderAssigner{}
}

// Assign links p to r. Both preconditions are checked first so that a failed
// assignment leaves both aggregates untouched: ParcelNotAssignable when the
// parcel left NotCollected, RiderUnavailable when the rider is not active or
// already in delivery.
func (RiderAssigner) Assign(p *parcel.Parcel, r *rider.Rider, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}

	if _, err := p.DeliveryStatus().Assign(); err != nil {
		return err
	}
	if err := r.ValidateAssignable(); err != nil {
		return err
	}

	if err := p.AssignRider(parcel.AssignedRider{ID: r.ID(), Name: r.Name(), Email: r.Email()}, now); err != nil {
		return err
	}
	return r.Assign(now)
}
