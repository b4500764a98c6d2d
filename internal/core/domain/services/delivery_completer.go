package services

import (
	"time"

	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/rider"
)

// DeliveryCompleter advances a parcel and releases its rider when the move
// ends the delivery. releaseRider decides whether the rider goes back to Idle;
// lastDeliveryCompletedAt is stamped either way.
type DeliveryCompleter struct {
	releaseRider bool
}

func NewDeliveryCompleter(releaseRider bool) DeliveryCompleter {
	return DeliveryCompleter{releaseRider: releaseRider}
}

// Advance returns true when the rider was touched and must be persisted.
// r may be nil when the assigned rider no longer exists.
func (c DeliveryCompleter) Advance(p *parcel.Parcel, r *rider.Rider, target parcel.DeliveryStatus, now time.Time) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}

	completed, err := p.Advance(target, now)
	if err != nil {
		return false, err
	}
	if !completed || r == nil {
		return false, nil
	}

	r.CompleteDelivery(now, c.releaseRider)
	return true, nil
}
