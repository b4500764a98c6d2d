// Package userrepo persists user accounts and their roles.
package userrepo

import (
	"errors"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/user"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email       string    `gorm:"not null;uniqueIndex"`
	DisplayName string
	Role        string    `gorm:"size:16;not null"`
	CreatedAt   time.Time `gorm:"not null"`
	LastLoginAt time.Time `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:          u.ID().Google(),
		Email:       u.Email().String(),
		DisplayName: u.DisplayName(),
		Role:        u.Role().String(),
		CreatedAt:   u.CreatedAt(),
		LastLoginAt: u.LastLoginAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, idErr := kernel.UUIDFromGoogle(dto.ID)
	email, emailErr := kernel.NewEmail(dto.Email)
	role, roleErr := user.ParseRole(dto.Role)
	if err := errors.Join(idErr, emailErr, roleErr); err != nil {
		return nil, err
	}

	return user.RestoreUser(id, email, dto.DisplayName, role, dto.CreatedAt, dto.LastLoginAt)
}
