package queries

import (
	"context"
	"errors"

	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/pkg/guard"
	"zapshift/internal/pkg/pgerr"

	"gorm.io/gorm"
)

var ErrParcelStatusCountsQueryIsNotConstructed = errors.New(
	"ParcelStatusCountsQuery must be created via NewParcelStatusCountsQuery constructor",
)

// ParcelStatusCountsQuery counts parcels per delivery status for the admin dashboard.
type ParcelStatusCountsQuery struct {
	guard guard.ConstructorGuard
}

func NewParcelStatusCountsQuery() ParcelStatusCountsQuery {
	return ParcelStatusCountsQuery{guard: guard.NewConstructorGuard()}
}

func (q ParcelStatusCountsQuery) Validate() error {
	return q.guard.Validate(ErrParcelStatusCountsQueryIsNotConstructed)
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type ParcelStatusCountsQueryHandler struct {
	db *gorm.DB
}

func NewParcelStatusCountsQueryHandler(db *gorm.DB) ParcelStatusCountsQueryHandler {
	return ParcelStatusCountsQueryHandler{db: db}
}

// Handle returns one entry per lifecycle status, in lifecycle order,
// including statuses with no parcels.
func (h ParcelStatusCountsQueryHandler) Handle(ctx context.Context, query ParcelStatusCountsQuery) ([]StatusCount, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT delivery_status, COUNT(*)
		FROM parcels
		GROUP BY delivery_status
	`).Rows()
	if err != nil {
		return nil, pgerr.Classify("count parcels by status", err)
	}
	defer rows.Close()

	byStatus := make(map[string]int64)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		byStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, pgerr.Classify("count parcels by status", err)
	}

	statuses := parcel.DeliveryStatuses()
	counts := make([]StatusCount, 0, len(statuses))
	for _, s := range statuses {
		counts = append(counts, StatusCount{Status: s.String(), Count: byStatus[s.String()]})
	}
	return counts, nil
}
