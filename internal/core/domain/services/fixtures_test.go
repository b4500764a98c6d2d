package services_test

import (
	"testing"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/rider"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func newParcel(t *testing.T, senderDistrict string) *parcel.Parcel {
	t.Helper()
	sender, err := kernel.NewEmail("nadia@mail.com")
	require.NoError(t, err)
	from, err := kernel.NewDistrict(senderDistrict)
	require.NoError(t, err)
	to, err := kernel.NewDistrict("Dhaka")
	require.NoError(t, err)

	p, err := parcel.NewParcel(kernel.NewUUID(), parcel.Booking{
		Title:    "Documents",
		Type:     parcel.TypeDocument,
		Sender:   parcel.Sender{Name: "Nadia", Email: sender, District: from},
		Receiver: parcel.Receiver{Name: "Rafi", District: to},
		Cost:     1000,
	}, now.Add(-time.Hour))
	require.NoError(t, err)
	return p
}

func newRider(t *testing.T, district string, status rider.ApplicationStatus, work rider.WorkStatus, lastAssigned *time.Time) *rider.Rider {
	t.Helper()
	email, err := kernel.NewEmail("rider-" + kernel.NewUUID().String()[:8] + "@zapshift.io")
	require.NoError(t, err)
	d, err := kernel.NewDistrict(district)
	require.NoError(t, err)

	r, err := rider.RestoreRider(rider.State{
		ID:             kernel.NewUUID(),
		Profile:        rider.Profile{Name: "Rider " + district, Email: email, District: d},
		Status:         status,
		WorkStatus:     work,
		AppliedAt:      now.Add(-48 * time.Hour),
		LastAssignedAt: lastAssigned,
		Version:        1,
	})
	require.NoError(t, err)
	return r
}

func ptr(t time.Time) *time.Time { return &t }
