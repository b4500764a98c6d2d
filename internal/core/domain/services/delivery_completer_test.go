package services_test

import (
	"testing"
	"time"

	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryCompleter_Advance(t *testing.T) {
	done := now.Add(3 * time.Hour)

	assigned := func(t *testing.T) (*parcel.Parcel, *rider.Rider) {
		t.Helper()
		p := newParcel(t, "Dhaka")
		r := newRider(t, "Dhaka", rider.Active, rider.Idle, nil)
		require.NoError(t, services.NewRiderAssigner().Assign(p, r, now))
		return p, r
	}

	t.Run("in-transit does not touch the rider", func(t *testing.T) {
		p, r := assigned(t)

		touched, err := services.NewDeliveryCompleter(true).Advance(p, r, parcel.InTransit, done)

		require.NoError(t, err)
		assert.False(t, touched)
		assert.Nil(t, r.LastDeliveryCompletedAt())
	})

	t.Run("delivery keeps the rider busy when release is off", func(t *testing.T) {
		p, r := assigned(t)

		touched, err := services.NewDeliveryCompleter(false).Advance(p, r, parcel.Delivered, done)

		require.NoError(t, err)
		assert.True(t, touched)
		assert.Equal(t, rider.InDelivery, r.WorkStatus())
		assert.Equal(t, done, *r.LastDeliveryCompletedAt())
	})

	t.Run("delivery frees the rider when release is on", func(t *testing.T) {
		p, r := assigned(t)

		touched, err := services.NewDeliveryCompleter(true).Advance(p, r, parcel.ServiceCenterDelivered, done)

		require.NoError(t, err)
		assert.True(t, touched)
		assert.Equal(t, rider.Idle, r.WorkStatus())
	})

	t.Run("missing rider still completes the parcel", func(t *testing.T) {
		p, _ := assigned(t)

		touched, err := services.NewDeliveryCompleter(true).Advance(p, nil, parcel.Delivered, done)

		require.NoError(t, err)
		assert.False(t, touched)
		assert.Equal(t, parcel.Delivered, p.DeliveryStatus())
	})

	t.Run("illegal transition changes nothing", func(t *testing.T) {
		p, r := assigned(t)

		_, err := services.NewDeliveryCompleter(true).Advance(p, r, parcel.NotCollected, done)

		require.ErrorIs(t, err, parcel.ErrInvalidTransition)
		assert.Equal(t, parcel.RiderAssigned, p.DeliveryStatus())
		assert.Equal(t, rider.InDelivery, r.WorkStatus())
	})
}
