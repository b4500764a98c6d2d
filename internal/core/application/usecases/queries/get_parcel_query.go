package queries

import (
	"errors"

	"zapshift/internal/core/application/authz"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

type GetParcelQuery struct {
	caller   authz.Caller
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetParcelQuery(caller authz.Caller, parcelID kernel.UUID) (GetParcelQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetParcelQuery{}, err
	}

	return GetParcelQuery{
		caller:   caller,
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

func (q GetParcelQuery) Caller() authz.Caller  { return q.caller }
func (q GetParcelQuery) ParcelID() kernel.UUID { return q.parcelID }
