// Package riderrepo persists rider applications in the riders table.
package riderrepo

import (
	"errors"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

type RiderDTO struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                    string    `gorm:"not null"`
	Email                   string    `gorm:"not null;uniqueIndex"`
	Phone                   string
	District                string    `gorm:"not null;index"`
	Status                  string    `gorm:"size:16;not null;index"`
	WorkStatus              string    `gorm:"size:16;not null"`
	AppliedAt               time.Time `gorm:"not null"`
	ReviewedAt              *time.Time
	LastAssignedAt          *time.Time
	LastDeliveryCompletedAt *time.Time
	Version                 int64 `gorm:"not null"`
}

func (RiderDTO) TableName() string {
	return "riders"
}

func fromDomain(r *rider.Rider) RiderDTO {
	p := r.Profile()
	return RiderDTO{
		ID:                      r.ID().Google(),
		Name:                    p.Name,
		Email:                   p.Email.String(),
		Phone:                   p.Phone,
		District:                p.District.String(),
		Status:                  r.Status().String(),
		WorkStatus:              r.WorkStatus().String(),
		AppliedAt:               r.AppliedAt(),
		ReviewedAt:              r.ReviewedAt(),
		LastAssignedAt:          r.LastAssignedAt(),
		LastDeliveryCompletedAt: r.LastDeliveryCompletedAt(),
		Version:                 r.Version(),
	}
}

func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, idErr := kernel.UUIDFromGoogle(dto.ID)
	email, emailErr := kernel.NewEmail(dto.Email)
	district, districtErr := kernel.NewDistrict(dto.District)
	status, statusErr := rider.ParseApplicationStatus(dto.Status)
	work, workErr := rider.ParseWorkStatus(dto.WorkStatus)
	if err := errors.Join(idErr, emailErr, districtErr, statusErr, workErr); err != nil {
		return nil, err
	}

	return rider.RestoreRider(rider.State{
		ID: id,
		Profile: rider.Profile{
			Name:     dto.Name,
			Email:    email,
			Phone:    dto.Phone,
			District: district,
		},
		Status:                  status,
		WorkStatus:              work,
		AppliedAt:               dto.AppliedAt,
		ReviewedAt:              dto.ReviewedAt,
		LastAssignedAt:          dto.LastAssignedAt,
		LastDeliveryCompletedAt: dto.LastDeliveryCompletedAt,
		Version:                 dto.Version,
	})
}
