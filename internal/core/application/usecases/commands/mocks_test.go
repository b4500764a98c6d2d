package commands_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"zapshift/internal/core/application/authz"
	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/payment"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/core/domain/model/tracking"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	return m.parcelResult(m.Called(ctx, id))
}

func (m *MockParcelRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	return m.parcelResult(m.Called(ctx, id))
}

func (m *MockParcelRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*parcel.Parcel, error) {
	return m.parcelResult(m.Called(ctx, trackingNumber))
}

func (m *MockParcelRepository) GetOldestAwaitingRider(ctx context.Context) (*parcel.Parcel, error) {
	return m.parcelResult(m.Called(ctx))
}

func (m *MockParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockParcelRepository) parcelResult(args mock.Arguments) (*parcel.Parcel, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

type MockRiderRepository struct{ mock.Mock }

func (m *MockRiderRepository) Add(ctx context.Context, r *rider.Rider) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRiderRepository) Update(ctx context.Context, r *rider.Rider) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	return m.riderResult(m.Called(ctx, id))
}

func (m *MockRiderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	return m.riderResult(m.Called(ctx, id))
}

func (m *MockRiderRepository) GetByEmail(ctx context.Context, email kernel.Email) (*rider.Rider, error) {
	return m.riderResult(m.Called(ctx, email))
}

func (m *MockRiderRepository) GetAllAvailable(ctx context.Context) ([]*rider.Rider, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) riderResult(args mock.Arguments) (*rider.Rider, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) Add(ctx context.Context, e tracking.Event) error {
	return m.Called(ctx, e).Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, e tracking.Event) error {
	return m.Called(ctx, e).Error(0)
}

type MockPaymentProcessor struct{ mock.Mock }

func (m *MockPaymentProcessor) CreateIntent(ctx context.Context, amount int64, currency string) (ports.PaymentIntent, error) {
	args := m.Called(ctx, amount, currency)
	return args.Get(0).(ports.PaymentIntent), args.Error(1)
}

// MockUoW satisfies every narrow unit-of-work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	return m.Called().Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) RiderRepository() ports.RiderRepository {
	return m.Called().Get(0).(ports.RiderRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	return m.Called().Get(0).(ports.PaymentRepository)
}

func (m *MockUoW) TrackingRepository() ports.TrackingRepository {
	return m.Called().Get(0).(ports.TrackingRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	return m.Called().Get(0).(commands.ParcelUoW)
}

type MockRiderUoWFactory struct{ mock.Mock }

func (m *MockRiderUoWFactory) Create() commands.RiderUoW {
	return m.Called().Get(0).(commands.RiderUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	return m.Called().Get(0).(commands.UserUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return m.Called().Get(0).(commands.DeliveryUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	return m.Called().Get(0).(commands.PaymentUoW)
}

func mustEmail(t *testing.T, address string) kernel.Email {
	t.Helper()
	e, err := kernel.NewEmail(address)
	require.NoError(t, err)
	return e
}

func mustDistrict(t *testing.T, name string) kernel.District {
	t.Helper()
	d, err := kernel.NewDistrict(name)
	require.NoError(t, err)
	return d
}

func adminCaller(t *testing.T) authz.Caller {
	return authz.NewCaller(mustEmail(t, "admin@zapshift.io"), user.RoleAdmin)
}

func ownerCaller(t *testing.T) authz.Caller {
	return authz.NewCaller(mustEmail(t, "nadia@mail.com"), user.RoleUser)
}

// newParcel restores a parcel owned by nadia@mail.com travelling Dhaka -> to.
// A non-nil assigned rider is required for statuses that carry one.
func newParcel(
	t *testing.T,
	status parcel.DeliveryStatus,
	assigned *parcel.AssignedRider,
	to string,
) *parcel.Parcel {
	t.Helper()
	id := kernel.NewUUID()
	state := parcel.State{
		ID:             id,
		TrackingNumber: parcel.NewTrackingNumber(id, now.Add(-time.Hour)),
		Booking: parcel.Booking{
			Title:    "Documents",
			Type:     parcel.TypeDocument,
			WeightKg: 0.5,
			Sender: parcel.Sender{
				Name:     "Nadia",
				Email:    mustEmail(t, "nadia@mail.com"),
				District: mustDistrict(t, "Dhaka"),
			},
			Receiver: parcel.Receiver{
				Name:     "Rafi",
				Contact:  "+8801700000000",
				Address:  "12 Lake Road",
				District: mustDistrict(t, to),
			},
			Cost: 1000,
		},
		CreatedAt:      now.Add(-time.Hour),
		DeliveryStatus: status,
		PaymentStatus:  parcel.Unpaid,
		Rider:          assigned,
		Version:        1,
	}
	if status == parcel.Delivered {
		state.CashOutStatus = parcel.CashOutUnpaid
	}

	p, err := parcel.RestoreParcel(state)
	require.NoError(t, err)
	return p
}

// newRider restores a rider in Dhaka. Each rider gets its own e-mail, derived
// from its id, so riders never pass each other's ownership checks.
func newRider(t *testing.T, status rider.ApplicationStatus, work rider.WorkStatus) *rider.Rider {
	t.Helper()
	id := kernel.NewUUID()
	r, err := rider.RestoreRider(rider.State{
		ID: id,
		Profile: rider.Profile{
			Name:     "Karim",
			Email:    mustEmail(t, fmt.Sprintf("rider-%s@zapshift.io", id.String()[:8])),
			Phone:    "+8801800000000",
			District: mustDistrict(t, "Dhaka"),
		},
		Status:     status,
		WorkStatus: work,
		AppliedAt:  now.Add(-48 * time.Hour),
		Version:    1,
	})
	require.NoError(t, err)
	return r
}

func snapshot(r *rider.Rider) *parcel.AssignedRider {
	return &parcel.AssignedRider{ID: r.ID(), Name: r.Name(), Email: r.Email()}
}

func riderCaller(r *rider.Rider) authz.Caller {
	return authz.NewCaller(r.Email(), user.RoleRider)
}

var discardLogger = slog.New(slog.DiscardHandler)
