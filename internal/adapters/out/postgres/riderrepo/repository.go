package riderrepo

import (
	"context"
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/pgerr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormRiderRepository struct {
	db *gorm.DB
}

func NewGormRiderRepository(db *gorm.DB) *GormRiderRepository {
	return &GormRiderRepository{db: db}
}

// Add inserts a rider. A second application with the same e-mail violates
// the unique index and comes back as a ValueIsInvalidError.
func (r *GormRiderRepository) Add(ctx context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("insert rider", err)
	}

	return nil
}

func (r *GormRiderRepository) Update(ctx context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&RiderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id", "applied_at").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Classify("update rider", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("rider " + aggregate.ID().String())
	}

	aggregate.IncrementVersion()
	return nil
}

func (r *GormRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(r.db.WithContext(ctx), id.String(), "id = ?", id.Google())
}

func (r *GormRiderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id.String(), "id = ?", id.Google())
}

func (r *GormRiderRepository) GetByEmail(ctx context.Context, email kernel.Email) (*rider.Rider, error) {
	return r.first(r.db.WithContext(ctx), email.String(), "email = ?", email.String())
}

// GetAllAvailable returns active idle riders, never-assigned riders first,
// then the longest idle.
func (r *GormRiderRepository) GetAllAvailable(ctx context.Context) ([]*rider.Rider, error) {
	var dtos []RiderDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND work_status = ?", rider.Active.String(), rider.Idle.String()).
		Order("last_assigned_at ASC NULLS FIRST").
		Order("applied_at").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Classify("load available riders", err)
	}

	riders := make([]*rider.Rider, 0, len(dtos))
	for _, dto := range dtos {
		rd, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		riders = append(riders, rd)
	}

	return riders, nil
}

func (r *GormRiderRepository) first(db *gorm.DB, key string, query string, args ...any) (*rider.Rider, error) {
	var dto RiderDTO
	if err := db.Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider", key)
		}
		return nil, pgerr.Classify("load rider", err)
	}

	return toDomain(dto)
}
