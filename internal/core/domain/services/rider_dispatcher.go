package services

import (
	"errors"
	"time"

	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/rider"
)

var ErrNoAvailableRider = errors.New("no available rider")

// RiderDispatcher chooses a rider for a parcel waiting for collection.
type RiderDispatcher struct {
	assigner RiderAssigner
}

func NewRiderDispatcher() RiderDispatcher {
	return RiderDispatcher{assigner: NewRiderAssigner()}
}

// Dispatch assigns the best candidate to p and returns it.
//
// Candidates must pass ValidateAssignable. Riders whose district matches the
// sender's are preferred; ties go to the rider idle for the longest time, a
// rider never assigned before coming first.
func (d RiderDispatcher) Dispatch(p *parcel.Parcel, riders []*rider.Rider, now time.Time) (*rider.Rider, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if _, err := p.DeliveryStatus().Assign(); err != nil {
		return nil, err
	}

	best, err := d.findBestRider(p, riders)
	if err != nil {
		return nil, err
	}

	if err = d.assigner.Assign(p, best, now); err != nil {
		return nil, err
	}
	return best, nil
}

func (d RiderDispatcher) findBestRider(p *parcel.Parcel, riders []*rider.Rider) (*rider.Rider, error) {
	senderDistrict := p.Booking().Sender.District

	var best *rider.Rider
	for _, r := range riders {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if r.ValidateAssignable() != nil {
			continue
		}
		if best == nil || isBetterCandidate(r, best, senderDistrict.IsSame(r.District()), senderDistrict.IsSame(best.District())) {
			best = r
		}
	}

	if best == nil {
		return nil, ErrNoAvailableRider
	}
	return best, nil
}

func isBetterCandidate(candidate, current *rider.Rider, candidateLocal, currentLocal bool) bool {
	if candidateLocal != currentLocal {
		return candidateLocal
	}
	c, b := candidate.LastAssignedAt(), current.LastAssignedAt()
	switch {
	case c == nil:
		return b != nil
	case b == nil:
		return false
	default:
		return c.Before(*b)
	}
}
