// Package realtime pushes committed tracking events to live subscribers:
// Redis pub/sub for other services and a WebSocket hub for browsers.
package realtime

import (
	"context"
	"errors"
	"time"

	"zapshift/internal/core/domain/model/tracking"
	"zapshift/internal/core/ports"
)

const MessageTypeTrackingUpdate = "tracking_update"

// Message is the JSON envelope sent on every channel.
type Message struct {
	Type string         `json:"type"`
	Data TrackingUpdate `json:"data"`
}

type TrackingUpdate struct {
	EventID        string    `json:"id"`
	ParcelID       string    `json:"parcelId"`
	TrackingNumber string    `json:"trackingNumber"`
	Status         string    `json:"status"`
	Location       string    `json:"location"`
	Message        string    `json:"message"`
	UpdatedBy      string    `json:"updatedBy"`
	Timestamp      time.Time `json:"timestamp"`
}

func NewMessage(event tracking.Event) Message {
	return Message{
		Type: MessageTypeTrackingUpdate,
		Data: TrackingUpdate{
			EventID:        event.ID.String(),
			ParcelID:       event.ParcelID.String(),
			TrackingNumber: event.TrackingNumber,
			Status:         event.Status,
			Location:       event.Location,
			Message:        event.Message,
			UpdatedBy:      event.UpdatedBy,
			Timestamp:      event.Timestamp,
		},
	}
}

// Fanout publishes to every publisher and joins their errors.
type Fanout []ports.EventPublisher

func (f Fanout) Publish(ctx context.Context, event tracking.Event) error {
	var problems []error
	for _, p := range f {
		if err := p.Publish(ctx, event); err != nil {
			problems = append(problems, err)
		}
	}
	return errors.Join(problems...)
}
