package parcelrepo

import (
	"context"
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/pgerr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormParcelRepository implements ports.ParcelRepository using GORM.
type GormParcelRepository struct {
	db *gorm.DB
}

func NewGormParcelRepository(db *gorm.DB) *GormParcelRepository {
	return &GormParcelRepository{db: db}
}

// Add inserts a new parcel. A tracking number or rider already taken by another
// parcel is a VersionIsInvalidError.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.ClassifyConflict("insert parcel", err, TrackingNumberIndex, OpenDeliveryPerRiderIndex)
	}

	return nil
}

// Update writes every column when the stored version equals the aggregate's,
// then bumps the version on both sides.
// A rider already holding another open delivery is a VersionIsInvalidError.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.ClassifyConflict("update parcel", result.Error, OpenDeliveryPerRiderIndex)
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("parcel " + aggregate.ID().String())
	}

	aggregate.IncrementVersion()
	return nil
}

func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	return r.first(r.db.WithContext(ctx), id)
}

// GetForUpdate holds a row lock on the parcel until the transaction ends.
func (r *GormParcelRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormParcelRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*parcel.Parcel, error) {
	var dto ParcelDTO
	err := r.db.WithContext(ctx).First(&dto, "tracking_number = ?", trackingNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", trackingNumber)
		}
		return nil, pgerr.Classify("load parcel by tracking number", err)
	}

	return toDomain(dto)
}

// GetOldestAwaitingRider locks the oldest paid, not collected parcel. Rows
// already locked by another dispatcher are skipped, not waited on.
func (r *GormParcelRepository) GetOldestAwaitingRider(ctx context.Context) (*parcel.Parcel, error) {
	var dto ParcelDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("delivery_status = ? AND payment_status = ?", parcel.NotCollected.String(), parcel.Paid.String()).
		Order("created_at").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", "awaiting rider")
		}
		return nil, pgerr.Classify("load parcel awaiting rider", err)
	}

	return toDomain(dto)
}

func (r *GormParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ParcelDTO{}, "id = ?", id.Google())
	if result.Error != nil {
		return pgerr.Classify("delete parcel", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("parcel", id.String())
	}
	return nil
}

func (r *GormParcelRepository) first(db *gorm.DB, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := db.First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, pgerr.Classify("load parcel", err)
	}

	return toDomain(dto)
}
