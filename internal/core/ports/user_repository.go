package ports

import (
	"context"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/user"
)

type UserRepository interface {
	Add(ctx context.Context, aggregate *user.User) error
	Update(ctx context.Context, aggregate *user.User) error
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
	// GetByEmail returns errs.ObjectNotFoundError when no user has the address.
	GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error)
}
