// Package queries contains the read side: raw SQL over the tables the
// postgres adapters own, returned as flat JSON-ready views.
package queries

import (
	"time"

	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/payment"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/core/domain/model/tracking"
	"zapshift/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// ParcelView is the read model of a parcel.
type ParcelView struct {
	ID                 string     `json:"id"`
	TrackingNumber     string     `json:"trackingNumber"`
	Title              string     `json:"title"`
	ParcelType         string     `json:"parcelType"`
	WeightKg           float64    `json:"weightKg"`
	SenderName         string     `json:"senderName"`
	SenderEmail        string     `json:"userEmail"`
	SenderDistrict     string     `json:"senderDistrict"`
	ReceiverName       string     `json:"receiverName"`
	ReceiverContact    string     `json:"receiverContact"`
	ReceiverAddress    string     `json:"receiverAddress"`
	ReceiverDistrict   string     `json:"receiverDistrict"`
	Cost               int64      `json:"cost"`
	CreatedAt          time.Time  `json:"creationDate"`
	DeliveryStatus     string     `json:"deliveryStatus"`
	PaymentStatus      string     `json:"paymentStatus"`
	AssignedRiderID    *string    `json:"assignedRiderId,omitempty"`
	AssignedRiderName  *string    `json:"assignedRiderName,omitempty"`
	AssignedRiderEmail *string    `json:"assignedRiderEmail,omitempty"`
	AssignedAt         *time.Time `json:"assignedAt,omitempty"`
	PickedUpAt         *time.Time `json:"pickedUpAt,omitempty"`
	DeliveredAt        *time.Time `json:"deliveredAt,omitempty"`
	CashOutStatus      string     `json:"cashOutStatus,omitempty"`
	CashOutAt          *time.Time `json:"cashOutAt,omitempty"`
	RiderEarning       *int64     `json:"riderEarning,omitempty"`
}

// NewParcelView flattens a loaded aggregate into its read model.
func NewParcelView(p *parcel.Parcel) ParcelView {
	b := p.Booking()
	v := ParcelView{
		ID:               p.ID().String(),
		TrackingNumber:   p.TrackingNumber(),
		Title:            b.Title,
		ParcelType:       string(b.Type),
		WeightKg:         b.WeightKg,
		SenderName:       b.Sender.Name,
		SenderEmail:      b.Sender.Email.String(),
		SenderDistrict:   b.Sender.District.String(),
		ReceiverName:     b.Receiver.Name,
		ReceiverContact:  b.Receiver.Contact,
		ReceiverAddress:  b.Receiver.Address,
		ReceiverDistrict: b.Receiver.District.String(),
		Cost:             b.Cost,
		CreatedAt:        p.CreatedAt(),
		DeliveryStatus:   p.DeliveryStatus().String(),
		PaymentStatus:    p.PaymentStatus().String(),
		AssignedAt:       p.AssignedAt(),
		PickedUpAt:       p.PickedUpAt(),
		DeliveredAt:      p.DeliveredAt(),
		CashOutStatus:    p.CashOutStatus().String(),
		CashOutAt:        p.CashOutAt(),
		RiderEarning:     p.RiderEarning(),
	}
	if r := p.Rider(); r != nil {
		id, name, email := r.ID.String(), r.Name, r.Email.String()
		v.AssignedRiderID = &id
		v.AssignedRiderName = &name
		v.AssignedRiderEmail = &email
	}
	return v
}

const parcelColumns = `
	id, tracking_number, title, parcel_type, weight_kg,
	sender_name, sender_email, sender_district,
	receiver_name, receiver_contact, receiver_address, receiver_district,
	cost, created_at, delivery_status, payment_status,
	assigned_rider_id, assigned_rider_name, assigned_rider_email,
	assigned_at, picked_up_at, delivered_at,
	cash_out_status, cash_out_at, rider_earning`

// parcelRow matches parcelColumns.
type parcelRow struct {
	ID                 uuid.UUID
	TrackingNumber     string
	Title              string
	ParcelType         string
	WeightKg           float64
	SenderName         string
	SenderEmail        string
	SenderDistrict     string
	ReceiverName       string
	ReceiverContact    string
	ReceiverAddress    string
	ReceiverDistrict   string
	Cost               int64
	CreatedAt          time.Time
	DeliveryStatus     string
	PaymentStatus      string
	AssignedRiderID    *uuid.UUID
	AssignedRiderName  *string
	AssignedRiderEmail *string
	AssignedAt         *time.Time
	PickedUpAt         *time.Time
	DeliveredAt        *time.Time
	CashOutStatus      string
	CashOutAt          *time.Time
	RiderEarning       *int64
}

func (r parcelRow) view() ParcelView {
	v := ParcelView{
		ID:                 r.ID.String(),
		TrackingNumber:     r.TrackingNumber,
		Title:              r.Title,
		ParcelType:         r.ParcelType,
		WeightKg:           r.WeightKg,
		SenderName:         r.SenderName,
		SenderEmail:        r.SenderEmail,
		SenderDistrict:     r.SenderDistrict,
		ReceiverName:       r.ReceiverName,
		ReceiverContact:    r.ReceiverContact,
		ReceiverAddress:    r.ReceiverAddress,
		ReceiverDistrict:   r.ReceiverDistrict,
		Cost:               r.Cost,
		CreatedAt:          r.CreatedAt,
		DeliveryStatus:     r.DeliveryStatus,
		PaymentStatus:      r.PaymentStatus,
		AssignedRiderName:  r.AssignedRiderName,
		AssignedRiderEmail: r.AssignedRiderEmail,
		AssignedAt:         r.AssignedAt,
		PickedUpAt:         r.PickedUpAt,
		DeliveredAt:        r.DeliveredAt,
		CashOutStatus:      r.CashOutStatus,
		CashOutAt:          r.CashOutAt,
		RiderEarning:       r.RiderEarning,
	}
	if r.AssignedRiderID != nil {
		id := r.AssignedRiderID.String()
		v.AssignedRiderID = &id
	}
	return v
}

func parcelViews(rows []parcelRow) []ParcelView {
	views := make([]ParcelView, 0, len(rows))
	for _, r := range rows {
		views = append(views, r.view())
	}
	return views
}

// RiderView is the read model of a rider application.
type RiderView struct {
	ID                      string     `json:"id"`
	Name                    string     `json:"name"`
	Email                   string     `json:"email"`
	Phone                   string     `json:"phone"`
	District                string     `json:"district"`
	Status                  string     `json:"status"`
	WorkStatus              string     `json:"workStatus"`
	AppliedAt               time.Time  `json:"appliedAt"`
	ReviewedAt              *time.Time `json:"reviewedAt,omitempty"`
	LastAssignedAt          *time.Time `json:"lastAssignedAt,omitempty"`
	LastDeliveryCompletedAt *time.Time `json:"lastDeliveryCompletedAt,omitempty"`
}

func NewRiderView(r *rider.Rider) RiderView {
	return RiderView{
		ID:                      r.ID().String(),
		Name:                    r.Name(),
		Email:                   r.Email().String(),
		Phone:                   r.Profile().Phone,
		District:                r.District().String(),
		Status:                  r.Status().String(),
		WorkStatus:              r.WorkStatus().String(),
		AppliedAt:               r.AppliedAt(),
		ReviewedAt:              r.ReviewedAt(),
		LastAssignedAt:          r.LastAssignedAt(),
		LastDeliveryCompletedAt: r.LastDeliveryCompletedAt(),
	}
}

const riderColumns = `
	id, name, email, phone, district, status, work_status,
	applied_at, reviewed_at, last_assigned_at, last_delivery_completed_at`

type riderRow struct {
	ID                      uuid.UUID
	Name                    string
	Email                   string
	Phone                   string
	District                string
	Status                  string
	WorkStatus              string
	AppliedAt               time.Time
	ReviewedAt              *time.Time
	LastAssignedAt          *time.Time
	LastDeliveryCompletedAt *time.Time
}

func riderViews(rows []riderRow) []RiderView {
	views := make([]RiderView, 0, len(rows))
	for _, r := range rows {
		views = append(views, RiderView{
			ID:                      r.ID.String(),
			Name:                    r.Name,
			Email:                   r.Email,
			Phone:                   r.Phone,
			District:                r.District,
			Status:                  r.Status,
			WorkStatus:              r.WorkStatus,
			AppliedAt:               r.AppliedAt,
			ReviewedAt:              r.ReviewedAt,
			LastAssignedAt:          r.LastAssignedAt,
			LastDeliveryCompletedAt: r.LastDeliveryCompletedAt,
		})
	}
	return views
}

func NewPaymentView(p *payment.Payment) PaymentView {
	return PaymentView{
		ID:            p.ID().String(),
		ParcelID:      p.ParcelID().String(),
		PayerEmail:    p.PayerEmail().String(),
		Amount:        p.Amount(),
		Currency:      p.Currency(),
		Method:        p.Method(),
		TransactionID: p.TransactionID(),
		PaidAt:        p.PaidAt(),
	}
}

func NewTrackingEventView(e tracking.Event) TrackingEventView {
	return TrackingEventView{
		ID:             e.ID.String(),
		ParcelID:       e.ParcelID.String(),
		TrackingNumber: e.TrackingNumber,
		Status:         e.Status,
		Location:       e.Location,
		Message:        e.Message,
		UpdatedBy:      e.UpdatedBy,
		Timestamp:      e.Timestamp,
	}
}

// UserView is what a user sees of their own account.
type UserView struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	LastLoginAt time.Time `json:"lastLoginAt"`
}

func NewUserView(u *user.User) UserView {
	return UserView{
		ID:          u.ID().String(),
		Email:       u.Email().String(),
		DisplayName: u.DisplayName(),
		Role:        u.Role().String(),
		CreatedAt:   u.CreatedAt(),
		LastLoginAt: u.LastLoginAt(),
	}
}
