package queries

import (
	"context"
	"errors"

	"zapshift/internal/core/application/authz"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/pkg/guard"
	"zapshift/internal/pkg/pgerr"

	"gorm.io/gorm"
)

var ErrGetUserRoleQueryIsNotConstructed = errors.New(
	"GetUserRoleQuery must be created via NewGetUserRoleQuery constructor",
)

type GetUserRoleQuery struct {
	email kernel.Email

	guard guard.ConstructorGuard
}

func NewGetUserRoleQuery(caller authz.Caller) (GetUserRoleQuery, error) {
	if err := authz.RequireAuthenticated.Check(caller); err != nil {
		return GetUserRoleQuery{}, err
	}

	return GetUserRoleQuery{
		email: caller.Email(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetUserRoleQuery) Validate() error {
	return q.guard.Validate(ErrGetUserRoleQueryIsNotConstructed)
}

func (q GetUserRoleQuery) Email() kernel.Email { return q.email }

type UserRoleView struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type GetUserRoleQueryHandler struct {
	db *gorm.DB
}

func NewGetUserRoleQueryHandler(db *gorm.DB) GetUserRoleQueryHandler {
	return GetUserRoleQueryHandler{db: db}
}

// Handle reads the stored role. Users that never registered are plain users.
func (h GetUserRoleQueryHandler) Handle(ctx context.Context, query GetUserRoleQuery) (UserRoleView, error) {
	if err := query.Validate(); err != nil {
		return UserRoleView{}, err
	}

	var roles []string
	err := h.db.WithContext(ctx).
		Raw("SELECT role FROM users WHERE email = ?", query.Email().String()).
		Scan(&roles).Error
	if err != nil {
		return UserRoleView{}, pgerr.Classify("load user role", err)
	}

	role := user.RoleUser.String()
	if len(roles) > 0 {
		role = roles[0]
	}
	return UserRoleView{Email: query.Email().String(), Role: role}, nil
}
