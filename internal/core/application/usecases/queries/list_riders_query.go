package queries

import (
	"context"
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/pkg/guard"
	"zapshift/internal/pkg/pgerr"

	"gorm.io/gorm"
)

var (
	ErrListRidersQueryIsNotConstructed = errors.New(
		"ListRidersQuery must be created via NewListRidersQuery constructor",
	)
	ErrListAvailableRidersQueryIsNotConstructed = errors.New(
		"ListAvailableRidersQuery must be created via NewListAvailableRidersQuery constructor",
	)
)

// ListRidersQuery lists rider applications, oldest application first,
// optionally restricted to one application status.
type ListRidersQuery struct {
	status string

	guard guard.ConstructorGuard
}

func NewListRidersQuery(status string) (ListRidersQuery, error) {
	if status != "" {
		if _, err := rider.ParseApplicationStatus(status); err != nil {
			return ListRidersQuery{}, err
		}
	}

	return ListRidersQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListRidersQuery) Validate() error {
	return q.guard.Validate(ErrListRidersQueryIsNotConstructed)
}

func (q ListRidersQuery) Status() string { return q.status }

// ListAvailableRidersQuery lists the riders who could take a parcel in a
// district right now: active and idle.
type ListAvailableRidersQuery struct {
	district kernel.District

	guard guard.ConstructorGuard
}

func NewListAvailableRidersQuery(district string) (ListAvailableRidersQuery, error) {
	d, err := kernel.NewDistrict(district)
	if err != nil {
		return ListAvailableRidersQuery{}, err
	}

	return ListAvailableRidersQuery{
		district: d,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListAvailableRidersQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableRidersQueryIsNotConstructed)
}

func (q ListAvailableRidersQuery) District() kernel.District { return q.district }

// RidersQueryHandler answers both rider listings.
type RidersQueryHandler struct {
	db *gorm.DB
}

func NewRidersQueryHandler(db *gorm.DB) RidersQueryHandler {
	return RidersQueryHandler{db: db}
}

func (h RidersQueryHandler) List(ctx context.Context, query ListRidersQuery) ([]RiderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := "SELECT " + riderColumns + " FROM riders"
	var args []any
	if query.Status() != "" {
		sql += " WHERE status = ?"
		args = append(args, query.Status())
	}
	sql += " ORDER BY applied_at, id"

	var rows []riderRow
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, pgerr.Classify("list riders", err)
	}
	return riderViews(rows), nil
}

// Available orders riders the same way the dispatcher does: never assigned
// first, then longest idle.
func (h RidersQueryHandler) Available(ctx context.Context, query ListAvailableRidersQuery) ([]RiderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []riderRow
	err := h.db.WithContext(ctx).Raw(
		"SELECT "+riderColumns+` FROM riders
		WHERE status = ? AND work_status = ? AND district = ?
		ORDER BY last_assigned_at ASC NULLS FIRST, applied_at`,
		rider.Active.String(), rider.Idle.String(), query.District().String(),
	).Scan(&rows).Error
	if err != nil {
		return nil, pgerr.Classify("list available riders", err)
	}
	return riderViews(rows), nil
}
