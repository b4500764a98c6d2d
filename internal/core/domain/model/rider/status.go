package rider

import (
	"fmt"

	"zapshift/internal/pkg/errs"
)

// ApplicationStatus is the outcome of the admin review of a rider application.
type ApplicationStatus int

const (
	ApplicationUnknown ApplicationStatus = iota
	Pending
	Active
	Rejected
)

var applicationLabels = map[ApplicationStatus]string{
	Pending:  "pending",
	Active:   "active",
	Rejected: "rejected",
}

func (s ApplicationStatus) String() string {
	if l, ok := applicationLabels[s]; ok {
		return l
	}
	return "unknown"
}

func (s ApplicationStatus) Validate() error {
	if _, ok := applicationLabels[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid application status", s))
	}
	return nil
}

// IsDecision reports whether s can be the result of a review.
func (s ApplicationStatus) IsDecision() bool {
	return s == Active || s == Rejected
}

// ParseApplicationStatus maps "pending", "active" or "rejected" to a status.
func ParseApplicationStatus(label string) (ApplicationStatus, error) {
	for s, l := range applicationLabels {
		if l == label {
			return s, nil
		}
	}
	return ApplicationUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not an application status", label),
	)
}

// WorkStatus says whether the rider is currently carrying a parcel.
type WorkStatus int

const (
	WorkUnknown WorkStatus = iota
	Idle
	InDelivery
)

func (s WorkStatus) String() string {
	switch s {
	case Idle:
		return "idle"
	case InDelivery:
		return "in-delivery"
	default:
		return "unknown"
	}
}

func (s WorkStatus) Validate() error {
	if s != Idle && s != InDelivery {
		return errs.NewValueIsInvalidErrorWithCause("workStatus", fmt.Errorf("%d is not a valid work status", s))
	}
	return nil
}

// ParseWorkStatus maps "idle" or "in-delivery" to a WorkStatus.
func ParseWorkStatus(label string) (WorkStatus, error) {
	switch label {
	case "idle":
		return Idle, nil
	case "in-delivery":
		return InDelivery, nil
	}
	return WorkUnknown, errs.NewValueIsInvalidErrorWithCause(
		"workStatus",
		fmt.Errorf("%q is not a work status", label),
	)
}
