package queries

import (
	"context"

	"zapshift/internal/core/application/authz"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
)

// ParcelReader is the part of ports.ParcelRepository a single-parcel read needs.
type ParcelReader interface {
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)
}

// GetParcelQueryHandler loads the aggregate rather than a row so that the
// owner, rider and admin visibility rule is the one authz applies to writes.
type GetParcelQueryHandler struct {
	parcels ParcelReader
}

func NewGetParcelQueryHandler(parcels ParcelReader) GetParcelQueryHandler {
	return GetParcelQueryHandler{parcels: parcels}
}

func (h GetParcelQueryHandler) Handle(ctx context.Context, query GetParcelQuery) (ParcelView, error) {
	if err := query.Validate(); err != nil {
		return ParcelView{}, err
	}

	p, err := h.parcels.Get(ctx, query.ParcelID())
	if err != nil {
		return ParcelView{}, err
	}

	if err := authz.CanViewParcel(query.Caller(), p); err != nil {
		return ParcelView{}, err
	}

	return NewParcelView(p), nil
}
