package parcel

import (
	"errors"
	"fmt"

	"zapshift/internal/pkg/errs"
)

var (
	// ErrInvalidTransition is returned when a requested delivery status is not a
	// legal forward step from the current one.
	ErrInvalidTransition = errors.New("delivery status transition is not allowed")

	// ErrParcelNotAssignable is returned when a rider is assigned to a parcel
	// that is no longer waiting for collection.
	ErrParcelNotAssignable = errors.New("parcel is not assignable")
)

// DeliveryStatus is the lifecycle state of a parcel.
//
// State transitions:
//
//	NotCollected ──> RiderAssigned ──> InTransit ──┬──> Delivered
//	                      │              ↺         │
//	                      └────────────────────────┴──> ServiceCenterDelivered
//
// NotCollected → RiderAssigned only happens through Assign. InTransit may be
// re-confirmed; Delivered and ServiceCenterDelivered are final.
type DeliveryStatus int

const (
	// Unknown catches uninitialized values and unrecognized labels.
	Unknown DeliveryStatus = iota

	// NotCollected is the initial status of a freshly booked parcel.
	NotCollected

	// RiderAssigned means a rider has been reserved for pickup.
	RiderAssigned

	// InTransit means the rider has picked the parcel up.
	InTransit

	// Delivered means the receiver got the parcel. Only delivered parcels can be cashed out.
	Delivered

	// ServiceCenterDelivered means the parcel was dropped at a service center instead.
	ServiceCenterDelivered
)

var deliveryStatusLabels = map[DeliveryStatus]string{
	NotCollected:           "not-collected",
	RiderAssigned:          "rider-assigned",
	InTransit:              "in-transit",
	Delivered:              "delivered",
	ServiceCenterDelivered: "service-center-delivered",
}

// forwardTransitions lists the caller-requestable moves. NotCollected is absent
// because leaving it requires a rider and goes through Assign.
var forwardTransitions = map[DeliveryStatus][]DeliveryStatus{
	RiderAssigned: {InTransit, Delivered, ServiceCenterDelivered},
	InTransit:     {InTransit, Delivered, ServiceCenterDelivered},
}

// DeliveryStatuses returns every valid status in lifecycle order.
func DeliveryStatuses() []DeliveryStatus {
	return []DeliveryStatus{NotCollected, RiderAssigned, InTransit, Delivered, ServiceCenterDelivered}
}

// ParseDeliveryStatus maps a wire label such as "in-transit" to its status.
// Unrecognized labels yield Unknown and a ValueIsInvalidError.
func ParseDeliveryStatus(label string) (DeliveryStatus, error) {
	for status, l := range deliveryStatusLabels {
		if l == label {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"deliveryStatus",
		fmt.Errorf("%q is not a delivery status", label),
	)
}

// Validate returns a ValueIsInvalidError for Unknown and out-of-range values.
func (s DeliveryStatus) Validate() error {
	if _, ok := deliveryStatusLabels[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("deliveryStatus", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire label, or "unknown".
func (s DeliveryStatus) String() string {
	if l, ok := deliveryStatusLabels[s]; ok {
		return l
	}
	return "unknown"
}

// HasRider reports whether a parcel in this status must carry an assigned rider.
func (s DeliveryStatus) HasRider() bool {
	return s == RiderAssigned || s == InTransit || s == Delivered || s == ServiceCenterDelivered
}

// IsFinal reports whether the status ends the delivery.
func (s DeliveryStatus) IsFinal() bool {
	return s == Delivered || s == ServiceCenterDelivered
}

// ValidateCanHaveRider checks that rider assignment and status agree:
// the rider is set exactly when HasRider is true.
func (s DeliveryStatus) ValidateCanHaveRider(rider bool) error {
	if rider && !s.HasRider() {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryStatus",
			fmt.Errorf("%s is not a valid status to have a rider", s),
		)
	}
	if !rider && s.HasRider() {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryStatus",
			fmt.Errorf("%s is not a valid status to have no rider", s),
		)
	}
	return nil
}

// Assign moves NotCollected to RiderAssigned. Any other source status fails
// with ErrParcelNotAssignable.
func (s DeliveryStatus) Assign() (DeliveryStatus, error) {
	if s != NotCollected {
		return Unknown, fmt.Errorf("%w: status is %s", ErrParcelNotAssignable, s)
	}
	return RiderAssigned, nil
}

// Advance returns target when the move from s is listed in the transition
// table, and ErrInvalidTransition otherwise.
func (s DeliveryStatus) Advance(target DeliveryStatus) (DeliveryStatus, error) {
	for _, allowed := range forwardTransitions[s] {
		if allowed == target {
			return target, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
}
