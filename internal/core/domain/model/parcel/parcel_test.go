package parcel_test

import (
	"testing"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

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

func validBooking(t *testing.T, senderDistrict, receiverDistrict string, cost int64) parcel.Booking {
	t.Helper()
	return parcel.Booking{
		Title:    "Birthday gift",
		Type:     parcel.TypeNonDocument,
		WeightKg: 1.5,
		Sender: parcel.Sender{
			Name:     "Nadia",
			Email:    mustEmail(t, "nadia@mail.com"),
			District: mustDistrict(t, senderDistrict),
		},
		Receiver: parcel.Receiver{
			Name:     "Rafi",
			Contact:  "+8801700000000",
			Address:  "House 4, Road 2",
			District: mustDistrict(t, receiverDistrict),
		},
		Cost: cost,
	}
}

func newParcel(t *testing.T, cost int64, sameDistrict bool) *parcel.Parcel {
	t.Helper()
	receiver := "Dhaka"
	if !sameDistrict {
		receiver = "Sylhet"
	}
	p, err := parcel.NewParcel(kernel.NewUUID(), validBooking(t, "Dhaka", receiver, cost), bookedAt)
	require.NoError(t, err)
	return p
}

func assignedRider(t *testing.T) parcel.AssignedRider {
	t.Helper()
	return parcel.AssignedRider{ID: kernel.NewUUID(), Name: "Karim", Email: mustEmail(t, "karim@zapshift.io")}
}

func TestNewParcel(t *testing.T) {
	t.Run("books a not-collected unpaid parcel", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := parcel.NewParcel(id, validBooking(t, "Dhaka", "Dhaka", 1000), bookedAt)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, parcel.NotCollected, p.DeliveryStatus())
		assert.Equal(t, parcel.Unpaid, p.PaymentStatus())
		assert.Equal(t, parcel.CashOutNone, p.CashOutStatus())
		assert.Nil(t, p.Rider())
		assert.Equal(t, int64(1), p.Version())
		assert.Regexp(t, `^ZS-20260314-[0-9A-F]{8}$`, p.TrackingNumber())
		assert.True(t, p.IsOwnedBy(mustEmail(t, "NADIA@mail.com")))
	})

	t.Run("reports every invalid field", func(t *testing.T) {
		booking := validBooking(t, "Dhaka", "Dhaka", -5)
		booking.Title = " "
		booking.Type = "crate"
		booking.Receiver.District = kernel.District{}

		p, err := parcel.NewParcel(kernel.NewUUID(), booking, bookedAt)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, kernel.ErrDistrictIsNotConstructed)
	})

	t.Run("rejects zero id", func(t *testing.T) {
		_, err := parcel.NewParcel(kernel.UUID{}, validBooking(t, "Dhaka", "Dhaka", 10), bookedAt)

		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestParcel_Validate(t *testing.T) {
	var p *parcel.Parcel
	assert.Equal(t, parcel.ErrParcelIsNotConstructed, p.Validate())
	assert.Equal(t, parcel.ErrParcelIsNotConstructed, (&parcel.Parcel{}).Validate())
}

func TestParcel_AssignRider(t *testing.T) {
	now := bookedAt.Add(time.Hour)

	t.Run("assigns a not-collected parcel", func(t *testing.T) {
		p := newParcel(t, 1000, true)
		r := assignedRider(t)

		require.NoError(t, p.AssignRider(r, now))

		assert.Equal(t, parcel.RiderAssigned, p.DeliveryStatus())
		assert.Equal(t, &r, p.Rider())
		assert.True(t, p.IsAssignedTo(r.ID))
		require.NotNil(t, p.AssignedAt())
		assert.Equal(t, now, *p.AssignedAt())
	})

	t.Run("refuses a second assignment and keeps the first rider", func(t *testing.T) {
		p := newParcel(t, 1000, true)
		first := assignedRider(t)
		require.NoError(t, p.AssignRider(first, now))

		err := p.AssignRider(assignedRider(t), now.Add(time.Minute))

		require.ErrorIs(t, err, parcel.ErrParcelNotAssignable)
		assert.True(t, p.IsAssignedTo(first.ID))
		assert.Equal(t, now, *p.AssignedAt())
	})

	t.Run("rejects an incomplete rider snapshot", func(t *testing.T) {
		p := newParcel(t, 1000, true)

		err := p.AssignRider(parcel.AssignedRider{Name: "ghost"}, now)

		require.Error(t, err)
		assert.Equal(t, parcel.NotCollected, p.DeliveryStatus())
		assert.Nil(t, p.Rider())
	})
}

func TestParcel_Advance(t *testing.T) {
	assigned := bookedAt.Add(time.Hour)
	pickup := assigned.Add(time.Hour)
	later := pickup.Add(time.Hour)

	t.Run("in-transit stamps pickedUpAt once", func(t *testing.T) {
		p := newParcel(t, 1000, true)
		require.NoError(t, p.AssignRider(assignedRider(t), assigned))

		release, err := p.Advance(parcel.InTransit, pickup)
		require.NoError(t, err)
		assert.False(t, release)

		release, err = p.Advance(parcel.InTransit, later)
		require.NoError(t, err)
		assert.False(t, release)

		assert.Equal(t, parcel.InTransit, p.DeliveryStatus())
		assert.Equal(t, pickup, *p.PickedUpAt())
	})

	t.Run("delivered stamps deliveredAt, opens cash-out and asks for release", func(t *testing.T) {
		p := newParcel(t, 1000, true)
		r := assignedRider(t)
		require.NoError(t, p.AssignRider(r, assigned))

		release, err := p.Advance(parcel.Delivered, later)

		require.NoError(t, err)
		assert.True(t, release)
		assert.Equal(t, later, *p.DeliveredAt())
		assert.Equal(t, parcel.CashOutUnpaid, p.CashOutStatus())
		assert.True(t, p.IsAssignedTo(r.ID), "assignment is kept after delivery")
	})

	t.Run("service-center delivery releases without cash-out", func(t *testing.T) {
		p := newParcel(t, 1000, true)
		require.NoError(t, p.AssignRider(assignedRider(t), assigned))
		_, err := p.Advance(parcel.InTransit, pickup)
		require.NoError(t, err)

		release, err := p.Advance(parcel.ServiceCenterDelivered, later)

		require.NoError(t, err)
		assert.True(t, release)
		assert.Equal(t, parcel.CashOutNone, p.CashOutStatus())
		require.NotNil(t, p.DeliveredAt())
	})

	t.Run("illegal moves leave the parcel unchanged", func(t *testing.T) {
		p := newParcel(t, 1000, true)

		_, err := p.Advance(parcel.InTransit, pickup)
		require.ErrorIs(t, err, parcel.ErrInvalidTransition)
		_, err = p.Advance(parcel.RiderAssigned, pickup)
		require.ErrorIs(t, err, parcel.ErrInvalidTransition)

		assert.Equal(t, parcel.NotCollected, p.DeliveryStatus())
		assert.Nil(t, p.PickedUpAt())
	})

	t.Run("delivered is final", func(t *testing.T) {
		p := newParcel(t, 1000, true)
		require.NoError(t, p.AssignRider(assignedRider(t), assigned))
		_, err := p.Advance(parcel.Delivered, later)
		require.NoError(t, err)

		for _, target := range parcel.DeliveryStatuses() {
			_, err = p.Advance(target, later.Add(time.Hour))
			assert.ErrorIs(t, err, parcel.ErrInvalidTransition, target.String())
		}
		assert.Equal(t, later, *p.DeliveredAt())
	})
}

func TestParcel_CashOut(t *testing.T) {
	now := bookedAt.Add(24 * time.Hour)

	deliver := func(t *testing.T, p *parcel.Parcel) {
		t.Helper()
		require.NoError(t, p.AssignRider(assignedRider(t), bookedAt))
		_, err := p.Advance(parcel.Delivered, now)
		require.NoError(t, err)
	}

	t.Run("same district earns 80 percent", func(t *testing.T) {
		p := newParcel(t, 1000, true)
		deliver(t, p)

		earning, err := p.CashOut(now)

		require.NoError(t, err)
		assert.Equal(t, int64(800), earning)
		assert.Equal(t, parcel.CashOutPaid, p.CashOutStatus())
		assert.Equal(t, int64(800), *p.RiderEarning())
		assert.Equal(t, now, *p.CashOutAt())
	})

	t.Run("cross district earns 30 percent", func(t *testing.T) {
		p := newParcel(t, 1000, false)
		deliver(t, p)

		earning, err := p.CashOut(now)

		require.NoError(t, err)
		assert.Equal(t, int64(300), earning)
	})

	t.Run("rounds half up", func(t *testing.T) {
		p := newParcel(t, 1001, true)
		deliver(t, p)

		earning, err := p.CashOut(now)

		require.NoError(t, err)
		assert.Equal(t, int64(801), earning)
	})

	t.Run("succeeds once", func(t *testing.T) {
		p := newParcel(t, 1000, true)
		deliver(t, p)
		_, err := p.CashOut(now)
		require.NoError(t, err)

		_, err = p.CashOut(now.Add(time.Minute))

		require.ErrorIs(t, err, parcel.ErrAlreadyPaidOut)
		assert.Equal(t, now, *p.CashOutAt())
	})

	t.Run("requires delivered", func(t *testing.T) {
		p := newParcel(t, 1000, true)
		require.NoError(t, p.AssignRider(assignedRider(t), bookedAt))
		_, err := p.Advance(parcel.ServiceCenterDelivered, now)
		require.NoError(t, err)

		_, err = p.CashOut(now)

		require.ErrorIs(t, err, parcel.ErrNotDelivered)
		assert.Nil(t, p.RiderEarning())
	})
}

func TestParcel_MarkPaid(t *testing.T) {
	p := newParcel(t, 1000, true)

	require.NoError(t, p.MarkPaid())
	assert.Equal(t, parcel.Paid, p.PaymentStatus())
	assert.ErrorIs(t, p.MarkPaid(), parcel.ErrAlreadyPaid)
}

func TestRestoreParcel(t *testing.T) {
	r := assignedRider(t)
	assignedAt := bookedAt.Add(time.Hour)

	t.Run("restores an assigned parcel", func(t *testing.T) {
		p, err := parcel.RestoreParcel(parcel.State{
			ID:             kernel.NewUUID(),
			TrackingNumber: "ZS-20260314-ABCDEF01",
			Booking:        validBooking(t, "Dhaka", "Dhaka", 1000),
			CreatedAt:      bookedAt,
			DeliveryStatus: parcel.RiderAssigned,
			PaymentStatus:  parcel.Paid,
			Rider:          &r,
			AssignedAt:     &assignedAt,
			Version:        7,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), p.Version())
		assert.True(t, p.IsAssignedTo(r.ID))

		p.IncrementVersion()
		assert.Equal(t, int64(8), p.Version())
	})

	t.Run("rejects rider without assigned status", func(t *testing.T) {
		_, err := parcel.RestoreParcel(parcel.State{
			ID:             kernel.NewUUID(),
			TrackingNumber: "ZS-20260314-ABCDEF01",
			Booking:        validBooking(t, "Dhaka", "Dhaka", 1000),
			DeliveryStatus: parcel.NotCollected,
			PaymentStatus:  parcel.Unpaid,
			Rider:          &r,
		})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects in-transit without rider", func(t *testing.T) {
		_, err := parcel.RestoreParcel(parcel.State{
			ID:             kernel.NewUUID(),
			TrackingNumber: "ZS-20260314-ABCDEF01",
			Booking:        validBooking(t, "Dhaka", "Dhaka", 1000),
			DeliveryStatus: parcel.InTransit,
			PaymentStatus:  parcel.Unpaid,
		})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
