package ports

import (
	"context"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"
)

type RiderRepository interface {
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Update is conditional on the loaded version, like ParcelRepository.Update.
	Update(ctx context.Context, aggregate *rider.Rider) error

	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// GetForUpdate loads and row-locks a rider. Call it after locking the parcel.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// GetByEmail finds the application submitted with email.
	GetByEmail(ctx context.Context, email kernel.Email) (*rider.Rider, error)

	// GetAllAvailable returns active idle riders, least recently assigned first.
	GetAllAvailable(ctx context.Context) ([]*rider.Rider, error)
}
