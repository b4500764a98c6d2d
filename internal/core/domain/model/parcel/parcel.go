package parcel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel was not built by NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

	// ErrNotDelivered is returned by CashOut for parcels whose status is not Delivered.
	ErrNotDelivered = errors.New("parcel is not delivered")

	// ErrAlreadyPaidOut is returned by CashOut when the rider was already paid for the parcel.
	ErrAlreadyPaidOut = errors.New("parcel is already paid out")

	// ErrAlreadyPaid is returned by MarkPaid when the sender already paid.
	ErrAlreadyPaid = errors.New("parcel is already paid")
)

// Type is the kind of goods being shipped.
type Type string

const (
	TypeDocument    Type = "document"
	TypeNonDocument Type = "non-document"
)

func (t Type) Validate() error {
	if t != TypeDocument && t != TypeNonDocument {
		return errs.NewValueIsInvalidErrorWithCause("parcelType", fmt.Errorf("%q is not a parcel type", string(t)))
	}
	return nil
}

// Sender is the booking side of a parcel. Email is the owning user.
type Sender struct {
	Name     string
	Email    kernel.Email
	District kernel.District
}

// Receiver is the delivery side of a parcel.
type Receiver struct {
	Name     string
	Contact  string
	Address  string
	District kernel.District
}

// Booking holds what a sender submits when creating a parcel.
type Booking struct {
	Title    string
	Type     Type
	WeightKg float64
	Sender   Sender
	Receiver Receiver
	// Cost is the declared delivery charge in the smallest currency unit.
	Cost int64
}

// AssignedRider is the snapshot of a rider copied onto the parcel at assignment.
type AssignedRider struct {
	ID    kernel.UUID
	Name  string
	Email kernel.Email
}

// Parcel is the aggregate root of a shipment. It owns the delivery state
// machine, the payment flag and the rider payout.
//
// Invariants:
//   - an assigned rider is present exactly when DeliveryStatus().HasRider()
//   - the assignment is kept after delivery for cash-out and history
//   - cash-out happens at most once, and only from Delivered
//
// Version is the optimistic-concurrency token; the repository increments it on
// every successful conditional write.
type Parcel struct {
	id             kernel.UUID
	trackingNumber string
	booking        Booking
	createdAt      time.Time

	deliveryStatus DeliveryStatus
	paymentStatus  PaymentStatus

	rider       *AssignedRider
	assignedAt  *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time

	cashOutStatus CashOutStatus
	cashOutAt     *time.Time
	riderEarning  *int64

	version int64
	guard   guard.ConstructorGuard
}

// NewParcel books a new shipment: NotCollected, Unpaid, with a generated
// tracking number and version 1.
//
// Parameters:
//   - id: identifier of the parcel
//   - booking: sender, receiver and declared cost (must be non-negative)
//   - now: booking time, also used for the tracking number
//
// Returns the parcel or the joined validation errors of every invalid field.
func NewParcel(id kernel.UUID, booking Booking, now time.Time) (*Parcel, error) {
	p := &Parcel{
		createdAt:      now,
		deliveryStatus: NotCollected,
		paymentStatus:  Unpaid,
		version:        1,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setBooking(booking),
	); err != nil {
		return nil, err
	}
	p.trackingNumber = NewTrackingNumber(id, now)

	return p, nil
}

// State is the full persisted form of a parcel, used by RestoreParcel.
type State struct {
	ID             kernel.UUID
	TrackingNumber string
	Booking        Booking
	CreatedAt      time.Time
	DeliveryStatus DeliveryStatus
	PaymentStatus  PaymentStatus
	Rider          *AssignedRider
	AssignedAt     *time.Time
	PickedUpAt     *time.Time
	DeliveredAt    *time.Time
	CashOutStatus  CashOutStatus
	CashOutAt      *time.Time
	RiderEarning   *int64
	Version        int64
}

// RestoreParcel rebuilds a parcel loaded from storage. It rejects states that
// break the rider/status invariant.
func RestoreParcel(s State) (*Parcel, error) {
	p := &Parcel{
		trackingNumber: s.TrackingNumber,
		createdAt:      s.CreatedAt,
		rider:          s.Rider,
		assignedAt:     s.AssignedAt,
		pickedUpAt:     s.PickedUpAt,
		deliveredAt:    s.DeliveredAt,
		cashOutStatus:  s.CashOutStatus,
		cashOutAt:      s.CashOutAt,
		riderEarning:   s.RiderEarning,
		version:        s.Version,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(s.ID),
		p.setBooking(s.Booking),
		p.setTrackingNumber(s.TrackingNumber),
		p.setStatus(s.DeliveryStatus, s.Rider),
		s.PaymentStatus.Validate(),
	); err != nil {
		return nil, err
	}
	p.paymentStatus = s.PaymentStatus

	return p, nil
}

// Validate ensures the parcel was built through a constructor.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

func (p *Parcel) ID() kernel.UUID                { return p.id }
func (p *Parcel) TrackingNumber() string         { return p.trackingNumber }
func (p *Parcel) Booking() Booking               { return p.booking }
func (p *Parcel) CreatedAt() time.Time           { return p.createdAt }
func (p *Parcel) DeliveryStatus() DeliveryStatus { return p.deliveryStatus }
func (p *Parcel) PaymentStatus() PaymentStatus   { return p.paymentStatus }
func (p *Parcel) AssignedAt() *time.Time         { return p.assignedAt }
func (p *Parcel) PickedUpAt() *time.Time         { return p.pickedUpAt }
func (p *Parcel) DeliveredAt() *time.Time        { return p.deliveredAt }
func (p *Parcel) CashOutStatus() CashOutStatus   { return p.cashOutStatus }
func (p *Parcel) CashOutAt() *time.Time          { return p.cashOutAt }
func (p *Parcel) RiderEarning() *int64           { return p.riderEarning }
func (p *Parcel) Version() int64                 { return p.version }

// Rider returns a copy of the assigned rider, or nil.
func (p *Parcel) Rider() *AssignedRider {
	if p.rider == nil {
		return nil
	}
	r := *p.rider
	return &r
}

// IsAssignedTo reports whether riderID is the rider currently on the parcel.
func (p *Parcel) IsAssignedTo(riderID kernel.UUID) bool {
	return p.rider != nil && p.rider.ID.IsEqual(riderID)
}

// IsOwnedBy reports whether email booked the parcel.
func (p *Parcel) IsOwnedBy(email kernel.Email) bool {
	return p.booking.Sender.Email.IsEqual(email)
}

// AssignRider reserves rider for pickup. The parcel must be NotCollected,
// otherwise ErrParcelNotAssignable is returned and nothing changes.
func (p *Parcel) AssignRider(rider AssignedRider, now time.Time) error {
	if err := errors.Join(rider.ID.Validate(), rider.Email.Validate()); err != nil {
		return err
	}

	newStatus, err := p.deliveryStatus.Assign()
	if err != nil {
		return err
	}

	p.deliveryStatus = newStatus
	p.rider = &rider
	p.assignedAt = &now
	return nil
}

// Advance moves the parcel to target following the transition table.
//
// Effects:
//   - InTransit stamps pickedUpAt unless already set (re-confirmation keeps it)
//   - Delivered and ServiceCenterDelivered stamp deliveredAt
//   - Delivered opens the cash-out (CashOutUnpaid)
//
// Returns true when the move completed the delivery and the assigned rider
// must be released. Illegal moves return ErrInvalidTransition and leave the
// parcel unchanged.
func (p *Parcel) Advance(target DeliveryStatus, now time.Time) (bool, error) {
	newStatus, err := p.deliveryStatus.Advance(target)
	if err != nil {
		return false, err
	}

	p.deliveryStatus = newStatus
	switch newStatus {
	case InTransit:
		if p.pickedUpAt == nil {
			p.pickedUpAt = &now
		}
	case Delivered:
		p.deliveredAt = &now
		p.cashOutStatus = CashOutUnpaid
	case ServiceCenterDelivered:
		p.deliveredAt = &now
	}

	return newStatus.IsFinal(), nil
}

// CashOut computes the rider earning and marks the payout done.
// Only Delivered parcels qualify (ErrNotDelivered) and only once (ErrAlreadyPaidOut).
func (p *Parcel) CashOut(now time.Time) (int64, error) {
	if p.deliveryStatus != Delivered {
		return 0, fmt.Errorf("%w: status is %s", ErrNotDelivered, p.deliveryStatus)
	}
	if p.cashOutStatus == CashOutPaid {
		return 0, ErrAlreadyPaidOut
	}

	earning, err := CalculateEarning(
		p.booking.Cost,
		EarningPercent(p.booking.Sender.District, p.booking.Receiver.District),
	)
	if err != nil {
		return 0, err
	}

	p.cashOutStatus = CashOutPaid
	p.cashOutAt = &now
	p.riderEarning = &earning
	return earning, nil
}

// MarkPaid flips the payment flag. A second payment is refused with ErrAlreadyPaid.
func (p *Parcel) MarkPaid() error {
	if p.paymentStatus == Paid {
		return ErrAlreadyPaid
	}
	p.paymentStatus = Paid
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingNumber(trackingNumber string) error {
	if strings.TrimSpace(trackingNumber) == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	p.trackingNumber = trackingNumber
	return nil
}

func (p *Parcel) setBooking(b Booking) error {
	var problems []error
	if strings.TrimSpace(b.Title) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("title"))
	}
	if b.WeightKg < 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("weight", b.WeightKg, 0, "+inf"))
	}
	if b.Cost < 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("cost", b.Cost, 0, "+inf"))
	}
	problems = append(problems,
		b.Type.Validate(),
		b.Sender.Email.Validate(),
		b.Sender.District.Validate(),
		b.Receiver.District.Validate(),
	)
	if strings.TrimSpace(b.Receiver.Name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("receiverName"))
	}

	if err := errors.Join(problems...); err != nil {
		return err
	}
	p.booking = b
	return nil
}

func (p *Parcel) setStatus(status DeliveryStatus, rider *AssignedRider) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveRider(rider != nil); err != nil {
		return err
	}
	p.deliveryStatus = status
	return nil
}

// IncrementVersion is called by the repository after a successful conditional write.
func (p *Parcel) IncrementVersion() {
	p.version++
}
