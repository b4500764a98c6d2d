// Package pgtest starts throwaway PostgreSQL containers and builds fixtures
// for the integration suites of the postgres adapters and the queries.
package pgtest

import (
	"context"
	"testing"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/rider"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Start runs postgres:15-alpine, connects GORM to it and migrates models.
func Start(ctx context.Context, models ...any) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, err
	}

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, err
	}

	if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, err
	}

	return container, db, nil
}

// BookedAt is the creation time of the first fixture parcel.
var BookedAt = time.Date(2026, 5, 20, 8, 30, 0, 0, time.UTC)

func Email(t testing.TB, address string) kernel.Email {
	t.Helper()
	e, err := kernel.NewEmail(address)
	require.NoError(t, err)
	return e
}

func District(t testing.TB, name string) kernel.District {
	t.Helper()
	d, err := kernel.NewDistrict(name)
	require.NoError(t, err)
	return d
}

// Parcel books a parcel from Dhaka to toDistrict for sender, costing cost.
func Parcel(t testing.TB, sender string, toDistrict string, cost int64, bookedAt time.Time) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(kernel.NewUUID(), parcel.Booking{
		Title:    "Books",
		Type:     parcel.TypeNonDocument,
		WeightKg: 2.5,
		Sender: parcel.Sender{
			Name:     "Nadia Rahman",
			Email:    Email(t, sender),
			District: District(t, "Dhaka"),
		},
		Receiver: parcel.Receiver{
			Name:     "Tanvir Hasan",
			Contact:  "+8801700000000",
			Address:  "12 Lake Road",
			District: District(t, toDistrict),
		},
		Cost: cost,
	}, bookedAt)
	require.NoError(t, err)
	return p
}

// ActiveRider applies and approves a rider serving district.
func ActiveRider(t testing.TB, name, email, district string) *rider.Rider {
	t.Helper()
	r, err := rider.NewRider(kernel.NewUUID(), rider.Profile{
		Name:     name,
		Email:    Email(t, email),
		Phone:    "+8801800000000",
		District: District(t, district),
	}, BookedAt.Add(-24*time.Hour))
	require.NoError(t, err)
	require.NoError(t, r.Review(rider.Active, BookedAt.Add(-23*time.Hour)))
	return r
}

// Snapshot copies r onto a parcel assignment.
func Snapshot(r *rider.Rider) parcel.AssignedRider {
	return parcel.AssignedRider{ID: r.ID(), Name: r.Name(), Email: r.Email()}
}
