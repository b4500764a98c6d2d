package commands

import (
	"context"

	"zapshift/internal/core/ports"
)

type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// ParcelUoW covers operations on a single parcel and its tracking log.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
		TrackingRepoFactory
	}

	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// RiderUoW covers rider applications and reviews, which touch users.
	RiderUoW interface {
		TxManager
		RiderRepoFactory
		UserRepoFactory
	}

	RiderUoWFactory interface {
		Create() RiderUoW
	}

	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// DeliveryUoW covers operations spanning a parcel and its rider.
	DeliveryUoW interface {
		TxManager
		ParcelRepoFactory
		RiderRepoFactory
		TrackingRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	PaymentUoW interface {
		TxManager
		ParcelRepoFactory
		PaymentRepoFactory
		TrackingRepoFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}
)
