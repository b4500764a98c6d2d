package queries

import (
	"context"
	"strings"

	"zapshift/internal/pkg/pgerr"

	"gorm.io/gorm"
)

type ListParcelsQueryHandler struct {
	db *gorm.DB
}

func NewListParcelsQueryHandler(db *gorm.DB) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{db: db}
}

func (h ListParcelsQueryHandler) Handle(ctx context.Context, query ListParcelsQuery) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if query.OwnerEmail() != "" {
		where = append(where, "sender_email = ?")
		args = append(args, query.OwnerEmail())
	}
	if query.DeliveryStatus() != "" {
		where = append(where, "delivery_status = ?")
		args = append(args, query.DeliveryStatus())
	}
	if query.PaymentStatus() != "" {
		where = append(where, "payment_status = ?")
		args = append(args, query.PaymentStatus())
	}

	sql := "SELECT " + parcelColumns + " FROM parcels"
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	sql += " ORDER BY created_at DESC, id"

	var rows []parcelRow
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, pgerr.Classify("list parcels", err)
	}

	return parcelViews(rows), nil
}
