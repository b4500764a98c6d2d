package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
	"zapshift/internal/pkg/pgerr"

	"gorm.io/gorm"
)

var ErrListTrackingEventsQueryIsNotConstructed = errors.New(
	"ListTrackingEventsQuery must be created via NewListTrackingEventsQuery constructor",
)

type ListTrackingEventsQuery struct {
	trackingNumber string

	guard guard.ConstructorGuard
}

func NewListTrackingEventsQuery(trackingNumber string) (ListTrackingEventsQuery, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return ListTrackingEventsQuery{}, errs.NewValueIsRequiredError("trackingNumber")
	}

	return ListTrackingEventsQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q ListTrackingEventsQuery) Validate() error {
	return q.guard.Validate(ErrListTrackingEventsQueryIsNotConstructed)
}

func (q ListTrackingEventsQuery) TrackingNumber() string { return q.trackingNumber }

type TrackingEventView struct {
	ID             string    `json:"id"`
	ParcelID       string    `json:"parcelId"`
	TrackingNumber string    `json:"trackingNumber"`
	Status         string    `json:"status"`
	Location       string    `json:"location"`
	Message        string    `json:"message"`
	UpdatedBy      string    `json:"updatedBy"`
	Timestamp      time.Time `json:"timestamp"`
}

type ListTrackingEventsQueryHandler struct {
	db *gorm.DB
}

func NewListTrackingEventsQueryHandler(db *gorm.DB) ListTrackingEventsQueryHandler {
	return ListTrackingEventsQueryHandler{db: db}
}

// Handle returns the events of one parcel oldest first. An unknown tracking
// number yields an empty list.
func (h ListTrackingEventsQueryHandler) Handle(ctx context.Context, query ListTrackingEventsQuery) ([]TrackingEventView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var events []TrackingEventView
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id::text AS id,
			parcel_id::text AS parcel_id,
			tracking_number,
			status,
			location,
			message,
			updated_by,
			occurred_at AS timestamp
		FROM tracking_events
		WHERE tracking_number = ?
		ORDER BY occurred_at, id
	`, query.TrackingNumber()).Scan(&events).Error
	if err != nil {
		return nil, pgerr.Classify("list tracking events", err)
	}

	if events == nil {
		events = make([]TrackingEventView, 0)
	}
	return events, nil
}
