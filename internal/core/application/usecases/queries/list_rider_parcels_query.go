package queries

import (
	"context"
	"errors"

	"zapshift/internal/core/application/authz"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/pkg/guard"
	"zapshift/internal/pkg/pgerr"

	"gorm.io/gorm"
)

var ErrListRiderParcelsQueryIsNotConstructed = errors.New(
	"ListRiderParcelsQuery must be created via NewListRiderParcelsQuery constructor",
)

// ListRiderParcelsQuery lists the parcels assigned to the calling rider:
// either the ones still to deliver or the completed ones.
type ListRiderParcelsQuery struct {
	riderEmail kernel.Email
	completed  bool

	guard guard.ConstructorGuard
}

func NewListRiderParcelsQuery(caller authz.Caller, completed bool) (ListRiderParcelsQuery, error) {
	if err := authz.RequireRider.Check(caller); err != nil {
		return ListRiderParcelsQuery{}, err
	}

	return ListRiderParcelsQuery{
		riderEmail: caller.Email(),
		completed:  completed,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListRiderParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListRiderParcelsQueryIsNotConstructed)
}

func (q ListRiderParcelsQuery) RiderEmail() kernel.Email { return q.riderEmail }
func (q ListRiderParcelsQuery) Completed() bool          { return q.completed }

type ListRiderParcelsQueryHandler struct {
	db *gorm.DB
}

func NewListRiderParcelsQueryHandler(db *gorm.DB) ListRiderParcelsQueryHandler {
	return ListRiderParcelsQueryHandler{db: db}
}

// Handle returns pending parcels oldest assignment first, so the rider works
// through them in order, and completed parcels latest delivery first.
func (h ListRiderParcelsQueryHandler) Handle(ctx context.Context, query ListRiderParcelsQuery) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := []string{parcel.RiderAssigned.String(), parcel.InTransit.String()}
	order := "assigned_at, id"
	if query.Completed() {
		statuses = []string{parcel.Delivered.String(), parcel.ServiceCenterDelivered.String()}
		order = "delivered_at DESC, id"
	}

	var rows []parcelRow
	err := h.db.WithContext(ctx).Raw(
		"SELECT "+parcelColumns+` FROM parcels
		WHERE assigned_rider_email = ? AND delivery_status IN ?
		ORDER BY `+order,
		query.RiderEmail().String(), statuses,
	).Scan(&rows).Error
	if err != nil {
		return nil, pgerr.Classify("list rider parcels", err)
	}

	return parcelViews(rows), nil
}
