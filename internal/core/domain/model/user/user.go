// Package user implements the User aggregate whose role drives authorization.
package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// Role is the authorization role of a user.
type Role int

const (
	RoleUnknown Role = iota
	RoleUser
	RoleAdmin
	RoleRider
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAdmin:
		return "admin"
	case RoleRider:
		return "rider"
	default:
		return "unknown"
	}
}

func (r Role) Validate() error {
	if r != RoleUser && r != RoleAdmin && r != RoleRider {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// ParseRole maps "user", "admin" or "rider" to a Role.
func ParseRole(label string) (Role, error) {
	for _, r := range []Role{RoleUser, RoleAdmin, RoleRider} {
		if r.String() == label {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a role", label))
}

// User is an account identified by a unique e-mail.
type User struct {
	id          kernel.UUID
	email       kernel.Email
	displayName string
	role        Role
	createdAt   time.Time
	lastLoginAt time.Time
	guard       guard.ConstructorGuard
}

// NewUser registers a plain user.
func NewUser(id kernel.UUID, email kernel.Email, displayName string, now time.Time) (*User, error) {
	if err := errors.Join(id.Validate(), email.Validate()); err != nil {
		return nil, err
	}
	return &User{
		id:          id,
		email:       email,
		displayName: strings.TrimSpace(displayName),
		role:        RoleUser,
		createdAt:   now,
		lastLoginAt: now,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreUser rebuilds a user loaded from storage.
func RestoreUser(
	id kernel.UUID,
	email kernel.Email,
	displayName string,
	role Role,
	createdAt, lastLoginAt time.Time,
) (*User, error) {
	if err := errors.Join(id.Validate(), email.Validate(), role.Validate()); err != nil {
		return nil, err
	}
	return &User{
		id:          id,
		email:       email,
		displayName: displayName,
		role:        role,
		createdAt:   createdAt,
		lastLoginAt: lastLoginAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID        { return u.id }
func (u *User) Email() kernel.Email    { return u.email }
func (u *User) DisplayName() string    { return u.displayName }
func (u *User) Role() Role             { return u.role }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
func (u *User) LastLoginAt() time.Time { return u.lastLoginAt }

// ChangeRole sets a new role.
func (u *User) ChangeRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

// RecordLogin refreshes lastLoginAt and, when given, the display name.
func (u *User) RecordLogin(displayName string, now time.Time) {
	if name := strings.TrimSpace(displayName); name != "" {
		u.displayName = name
	}
	u.lastLoginAt = now
}
