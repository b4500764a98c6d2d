package rider

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
	// ErrRiderIsNotConstructed is returned when a Rider was not built by NewRider or RestoreRider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")

	// ErrRiderUnavailable is returned when a rider cannot take a parcel: not
	// approved, or already carrying one.
	ErrRiderUnavailable = errors.New("rider is unavailable")
)

// Profile is what an applicant submits.
type Profile struct {
	Name     string
	Email    kernel.Email
	Phone    string
	District kernel.District
}

// Rider is the aggregate root of a courier account.
//
// Business rules:
//   - only Active riders that are Idle can be assigned
//   - an assignment moves the rider to InDelivery
//   - finishing a delivery always stamps lastDeliveryCompletedAt; returning to
//     Idle depends on the release policy passed to CompleteDelivery
type Rider struct {
	id         kernel.UUID
	profile    Profile
	status     ApplicationStatus
	workStatus WorkStatus

	appliedAt               time.Time
	reviewedAt              *time.Time
	lastAssignedAt          *time.Time
	lastDeliveryCompletedAt *time.Time

	version int64
	guard   guard.ConstructorGuard
}

// NewRider registers a pending, idle application.
func NewRider(id kernel.UUID, profile Profile, now time.Time) (*Rider, error) {
	r := &Rider{
		status:     Pending,
		workStatus: Idle,
		appliedAt:  now,
		version:    1,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setProfile(profile),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// State is the persisted form of a rider.
type State struct {
	ID                      kernel.UUID
	Profile                 Profile
	Status                  ApplicationStatus
	WorkStatus              WorkStatus
	AppliedAt               time.Time
	ReviewedAt              *time.Time
	LastAssignedAt          *time.Time
	LastDeliveryCompletedAt *time.Time
	Version                 int64
}

// RestoreRider rebuilds a rider loaded from storage.
func RestoreRider(s State) (*Rider, error) {
	r := &Rider{
		appliedAt:               s.AppliedAt,
		reviewedAt:              s.ReviewedAt,
		lastAssignedAt:          s.LastAssignedAt,
		lastDeliveryCompletedAt: s.LastDeliveryCompletedAt,
		version:                 s.Version,
		guard:                   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(s.ID),
		r.setProfile(s.Profile),
		s.Status.Validate(),
		s.WorkStatus.Validate(),
	); err != nil {
		return nil, err
	}
	r.status = s.Status
	r.workStatus = s.WorkStatus

	return r, nil
}

func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

func (r *Rider) ID() kernel.UUID                     { return r.id }
func (r *Rider) Profile() Profile                    { return r.profile }
func (r *Rider) Name() string                        { return r.profile.Name }
func (r *Rider) Email() kernel.Email                 { return r.profile.Email }
func (r *Rider) District() kernel.District           { return r.profile.District }
func (r *Rider) Status() ApplicationStatus           { return r.status }
func (r *Rider) WorkStatus() WorkStatus              { return r.workStatus }
func (r *Rider) AppliedAt() time.Time                { return r.appliedAt }
func (r *Rider) ReviewedAt() *time.Time              { return r.reviewedAt }
func (r *Rider) LastAssignedAt() *time.Time          { return r.lastAssignedAt }
func (r *Rider) LastDeliveryCompletedAt() *time.Time { return r.lastDeliveryCompletedAt }
func (r *Rider) Version() int64                      { return r.version }

// IncrementVersion is called by the repository after a successful conditional write.
func (r *Rider) IncrementVersion() {
	r.version++
}

// ValidateAssignable returns ErrRiderUnavailable unless the rider is Active and Idle.
func (r *Rider) ValidateAssignable() error {
	if r.status != Active {
		return fmt.Errorf("%w: application is %s", ErrRiderUnavailable, r.status)
	}
	if r.workStatus == InDelivery {
		return fmt.Errorf("%w: rider is %s", ErrRiderUnavailable, r.workStatus)
	}
	return nil
}

// Assign reserves the rider for one parcel.
func (r *Rider) Assign(now time.Time) error {
	if err := r.ValidateAssignable(); err != nil {
		return err
	}
	r.workStatus = InDelivery
	r.lastAssignedAt = &now
	return nil
}

// CompleteDelivery stamps the end of the current delivery. The rider goes back
// to Idle only when release is true.
func (r *Rider) CompleteDelivery(now time.Time, release bool) {
	r.lastDeliveryCompletedAt = &now
	if release {
		r.workStatus = Idle
	}
}

// CancelDelivery frees the rider when its parcel is withdrawn before
// delivery. No completed delivery is recorded.
func (r *Rider) CancelDelivery() {
	r.workStatus = Idle
}

// Review applies an admin decision. Only Active and Rejected are decisions;
// a rider that is carrying a parcel cannot be rejected.
func (r *Rider) Review(decision ApplicationStatus, now time.Time) error {
	if !decision.IsDecision() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a review decision", decision),
		)
	}
	if decision == Rejected && r.workStatus == InDelivery {
		return fmt.Errorf("%w: cannot reject a rider in delivery", ErrRiderUnavailable)
	}
	r.status = decision
	r.reviewedAt = &now
	return nil
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setProfile(p Profile) error {
	var nameErr error
	if strings.TrimSpace(p.Name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if err := errors.Join(nameErr, p.Email.Validate(), p.District.Validate()); err != nil {
		return err
	}
	r.profile = p
	return nil
}
