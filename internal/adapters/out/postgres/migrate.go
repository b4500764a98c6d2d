package postgres

import (
	"context"
	"fmt"

	"zapshift/internal/adapters/out/postgres/parcelrepo"
	"zapshift/internal/adapters/out/postgres/paymentrepo"
	"zapshift/internal/adapters/out/postgres/riderrepo"
	"zapshift/internal/adapters/out/postgres/trackingrepo"
	"zapshift/internal/adapters/out/postgres/userrepo"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/rider"

	"gorm.io/gorm"
)

// Models lists every table the service owns.
func Models() []any {
	return []any{
		&parcelrepo.ParcelDTO{},
		&riderrepo.RiderDTO{},
		&userrepo.UserDTO{},
		&paymentrepo.PaymentDTO{},
		&trackingrepo.EventDTO{},
	}
}

// partialIndexes are the indexes struct tags cannot express.
func partialIndexes() []string {
	return []string{
		fmt.Sprintf(
			`CREATE UNIQUE INDEX IF NOT EXISTS %s ON parcels (assigned_rider_id) WHERE delivery_status IN ('%s', '%s')`,
			parcelrepo.OpenDeliveryPerRiderIndex, parcel.RiderAssigned, parcel.InTransit,
		),
		fmt.Sprintf(
			`CREATE INDEX IF NOT EXISTS idx_parcels_awaiting_rider ON parcels (created_at) WHERE delivery_status = '%s' AND payment_status = '%s'`,
			parcel.NotCollected, parcel.Paid,
		),
		fmt.Sprintf(
			`CREATE INDEX IF NOT EXISTS idx_riders_available ON riders (last_assigned_at NULLS FIRST, applied_at) WHERE status = '%s' AND work_status = '%s'`,
			rider.Active, rider.Idle,
		),
	}
}

// Migrate creates or updates the schema. It is safe to run on every start.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	for _, stmt := range partialIndexes() {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create partial index: %w", err)
		}
	}
	return nil
}
