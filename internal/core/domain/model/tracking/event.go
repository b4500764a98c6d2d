// Package tracking implements the append-only log of parcel status events.
package tracking

import (
	"errors"
	"strings"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
)

// Event is one immutable entry of a parcel's tracking history.
type Event struct {
	ID             kernel.UUID
	ParcelID       kernel.UUID
	TrackingNumber string
	Status         string
	Location       string
	Message        string
	UpdatedBy      string
	Timestamp      time.Time
}

// NewEvent validates and stamps a new tracking entry.
func NewEvent(
	parcelID kernel.UUID,
	trackingNumber, status, location, message, updatedBy string,
	now time.Time,
) (Event, error) {
	var problems []error
	problems = append(problems, parcelID.Validate())
	if strings.TrimSpace(trackingNumber) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("trackingNumber"))
	}
	if strings.TrimSpace(status) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("status"))
	}
	if err := errors.Join(problems...); err != nil {
		return Event{}, err
	}

	return Event{
		ID:             kernel.NewUUID(),
		ParcelID:       parcelID,
		TrackingNumber: trackingNumber,
		Status:         strings.TrimSpace(status),
		Location:       strings.TrimSpace(location),
		Message:        strings.TrimSpace(message),
		UpdatedBy:      updatedBy,
		Timestamp:      now,
	}, nil
}
