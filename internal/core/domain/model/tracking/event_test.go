package tracking_test

import (
	"testing"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/tracking"
	"zapshift/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	parcelID := kernel.NewUUID()
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	e, err := tracking.NewEvent(parcelID, "ZS-20260401-0000ABCD", "in-transit", " Dhaka hub ", "", "karim@zapshift.io", now)

	require.NoError(t, err)
	assert.False(t, e.ID.IsZero())
	assert.True(t, e.ParcelID.IsEqual(parcelID))
	assert.Equal(t, "Dhaka hub", e.Location)
	assert.Equal(t, now, e.Timestamp)

	_, err = tracking.NewEvent(kernel.UUID{}, "", "", "", "", "", now)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
