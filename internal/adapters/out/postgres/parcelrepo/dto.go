// Package parcelrepo persists the parcel aggregate in the parcels table.
package parcelrepo

import (
	"errors"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

const (
	TrackingNumberIndex = "idx_parcels_tracking_number"

	// OpenDeliveryPerRiderIndex is the partial unique index allowing a rider
	// at most one rider-assigned or in-transit parcel. Migrate creates it.
	OpenDeliveryPerRiderIndex = "idx_parcels_open_delivery_per_rider"
)

// ParcelDTO is the row layout of the parcels table. Statuses are stored as
// their labels so read models can return them without translation.
type ParcelDTO struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey"`
	TrackingNumber string      `gorm:"size:32;not null;uniqueIndex:idx_parcels_tracking_number"`
	Title          string      `gorm:"not null"`
	ParcelType     string      `gorm:"size:16;not null"`
	WeightKg       float64     `gorm:"not null;default:0"`
	Sender         SenderDTO   `gorm:"embedded;embeddedPrefix:sender_"`
	Receiver       ReceiverDTO `gorm:"embedded;embeddedPrefix:receiver_"`
	Cost           int64       `gorm:"not null"`
	CreatedAt      time.Time   `gorm:"not null;index"`

	DeliveryStatus string `gorm:"size:32;not null;index"`
	PaymentStatus  string `gorm:"size:16;not null;index"`

	AssignedRider AssignedRiderDTO `gorm:"embedded;embeddedPrefix:assigned_rider_"`
	AssignedAt    *time.Time
	PickedUpAt    *time.Time
	DeliveredAt   *time.Time

	CashOutStatus string `gorm:"size:16;not null;default:''"`
	CashOutAt     *time.Time
	RiderEarning  *int64

	Version int64 `gorm:"not null"`
}

func (ParcelDTO) TableName() string {
	return "parcels"
}

type SenderDTO struct {
	Name     string
	Email    string `gorm:"not null;index"`
	District string `gorm:"not null"`
}

type ReceiverDTO struct {
	Name     string `gorm:"not null"`
	Contact  string
	Address  string
	District string `gorm:"not null"`
}

// AssignedRiderDTO is the rider snapshot. All columns are NULL while no rider is assigned.
type AssignedRiderDTO struct {
	ID    *uuid.UUID `gorm:"type:uuid;index"`
	Name  *string
	Email *string `gorm:"index"`
}

func fromDomain(p *parcel.Parcel) ParcelDTO {
	b := p.Booking()
	dto := ParcelDTO{
		ID:             p.ID().Google(),
		TrackingNumber: p.TrackingNumber(),
		Title:          b.Title,
		ParcelType:     string(b.Type),
		WeightKg:       b.WeightKg,
		Sender: SenderDTO{
			Name:     b.Sender.Name,
			Email:    b.Sender.Email.String(),
			District: b.Sender.District.String(),
		},
		Receiver: ReceiverDTO{
			Name:     b.Receiver.Name,
			Contact:  b.Receiver.Contact,
			Address:  b.Receiver.Address,
			District: b.Receiver.District.String(),
		},
		Cost:           b.Cost,
		CreatedAt:      p.CreatedAt(),
		DeliveryStatus: p.DeliveryStatus().String(),
		PaymentStatus:  p.PaymentStatus().String(),
		AssignedAt:     p.AssignedAt(),
		PickedUpAt:     p.PickedUpAt(),
		DeliveredAt:    p.DeliveredAt(),
		CashOutStatus:  p.CashOutStatus().String(),
		CashOutAt:      p.CashOutAt(),
		RiderEarning:   p.RiderEarning(),
		Version:        p.Version(),
	}

	if r := p.Rider(); r != nil {
		id := r.ID.Google()
		name := r.Name
		email := r.Email.String()
		dto.AssignedRider = AssignedRiderDTO{ID: &id, Name: &name, Email: &email}
	}

	return dto
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	senderEmail, emailErr := kernel.NewEmail(dto.Sender.Email)
	senderDistrict, senderErr := kernel.NewDistrict(dto.Sender.District)
	receiverDistrict, receiverErr := kernel.NewDistrict(dto.Receiver.District)
	deliveryStatus, deliveryErr := parcel.ParseDeliveryStatus(dto.DeliveryStatus)
	paymentStatus, paymentErr := parcel.ParsePaymentStatus(dto.PaymentStatus)
	cashOutStatus, cashOutErr := parcel.ParseCashOutStatus(dto.CashOutStatus)
	assigned, riderErr := assignedRiderToDomain(dto.AssignedRider)
	if err = errors.Join(emailErr, senderErr, receiverErr, deliveryErr, paymentErr, cashOutErr, riderErr); err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(parcel.State{
		ID:             id,
		TrackingNumber: dto.TrackingNumber,
		Booking: parcel.Booking{
			Title:    dto.Title,
			Type:     parcel.Type(dto.ParcelType),
			WeightKg: dto.WeightKg,
			Sender: parcel.Sender{
				Name:     dto.Sender.Name,
				Email:    senderEmail,
				District: senderDistrict,
			},
			Receiver: parcel.Receiver{
				Name:     dto.Receiver.Name,
				Contact:  dto.Receiver.Contact,
				Address:  dto.Receiver.Address,
				District: receiverDistrict,
			},
			Cost: dto.Cost,
		},
		CreatedAt:      dto.CreatedAt,
		DeliveryStatus: deliveryStatus,
		PaymentStatus:  paymentStatus,
		Rider:          assigned,
		AssignedAt:     dto.AssignedAt,
		PickedUpAt:     dto.PickedUpAt,
		DeliveredAt:    dto.DeliveredAt,
		CashOutStatus:  cashOutStatus,
		CashOutAt:      dto.CashOutAt,
		RiderEarning:   dto.RiderEarning,
		Version:        dto.Version,
	})
}

func assignedRiderToDomain(dto AssignedRiderDTO) (*parcel.AssignedRider, error) {
	if dto.ID == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromGoogle(*dto.ID)
	if err != nil {
		return nil, err
	}

	r := &parcel.AssignedRider{ID: id}
	if dto.Name != nil {
		r.Name = *dto.Name
	}
	if dto.Email != nil {
		if r.Email, err = kernel.NewEmail(*dto.Email); err != nil {
			return nil, err
		}
	}
	return r, nil
}
