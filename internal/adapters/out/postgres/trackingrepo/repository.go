// Package trackingrepo appends parcel tracking events to the tracking_events table.
package trackingrepo

import (
	"context"
	"time"

	"zapshift/internal/core/domain/model/tracking"
	"zapshift/internal/pkg/pgerr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID       uuid.UUID `gorm:"type:uuid;not null;index"`
	TrackingNumber string    `gorm:"size:32;not null;index:idx_tracking_events_number_time,priority:1"`
	Status         string    `gorm:"size:64;not null"`
	Location       string
	Message        string
	UpdatedBy      string
	OccurredAt     time.Time `gorm:"not null;index:idx_tracking_events_number_time,priority:2"`
}

func (EventDTO) TableName() string {
	return "tracking_events"
}

type GormTrackingRepository struct {
	db *gorm.DB
}

func NewGormTrackingRepository(db *gorm.DB) *GormTrackingRepository {
	return &GormTrackingRepository{db: db}
}

// Add appends event. There is no update or delete.
func (r *GormTrackingRepository) Add(ctx context.Context, event tracking.Event) error {
	dto := EventDTO{
		ID:             event.ID.Google(),
		ParcelID:       event.ParcelID.Google(),
		TrackingNumber: event.TrackingNumber,
		Status:         event.Status,
		Location:       event.Location,
		Message:        event.Message,
		UpdatedBy:      event.UpdatedBy,
		OccurredAt:     event.Timestamp,
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("insert tracking event", err)
	}
	return nil
}
