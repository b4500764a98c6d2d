package ports

import (
	"context"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
)

type ParcelRepository interface {
	// Add persists a newly booked parcel.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update writes the parcel only if the stored version still equals
	// aggregate.Version(), then increments the version. A lost race returns
	// errs.VersionIsInvalidError and nothing is written.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get loads a parcel without locking it.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetForUpdate loads a parcel and locks its row until the transaction ends.
	// Lock order across aggregates is parcel first, then rider.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingNumber loads a parcel by its public tracking number.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*parcel.Parcel, error)

	// GetOldestAwaitingRider locks the oldest paid parcel that is still
	// not collected, skipping rows locked by concurrent dispatchers.
	GetOldestAwaitingRider(ctx context.Context) (*parcel.Parcel, error)

	// Delete removes a parcel. Returns errs.ObjectNotFoundError when absent.
	Delete(ctx context.Context, id kernel.UUID) error
}
