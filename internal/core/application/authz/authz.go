// Package authz resolves the caller's role and expresses access rules as
// composable capability checks.
//
// A route or handler declares what it needs:
//
//	authz.AnyOf(authz.RequireAdmin, authz.RequireRider).Check(caller)
//
// Failures are errs.UnauthenticatedError or errs.ForbiddenError and are never retried.
package authz

import (
	"context"
	"errors"
	"strings"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/core/ports"
	"zapshift/internal/pkg/errs"
)

// Caller is the identity behind a request. The zero value is anonymous.
type Caller struct {
	email kernel.Email
	role  user.Role
}

// NewCaller builds an authenticated caller.
func NewCaller(email kernel.Email, role user.Role) Caller {
	return Caller{email: email, role: role}
}

func (c Caller) Email() kernel.Email { return c.email }
func (c Caller) Role() user.Role     { return c.role }

// IsAuthenticated reports whether the caller carries a verified identity.
func (c Caller) IsAuthenticated() bool {
	return c.email.Validate() == nil
}

func (c Caller) IsAdmin() bool { return c.IsAuthenticated() && c.role == user.RoleAdmin }
func (c Caller) IsRider() bool { return c.IsAuthenticated() && c.role == user.RoleRider }

// Capability is a named access rule.
type Capability struct {
	name  string
	allow func(Caller) bool
}

var (
	RequireAuthenticated = Capability{name: "authenticated", allow: Caller.IsAuthenticated}
	RequireAdmin         = Capability{name: "admin", allow: Caller.IsAdmin}
	RequireRider         = Capability{name: "rider", allow: Caller.IsRider}
)

// AnyOf passes when at least one capability passes.
func AnyOf(caps ...Capability) Capability {
	names := make([]string, 0, len(caps))
	for _, c := range caps {
		names = append(names, c.name)
	}
	return Capability{
		name: strings.Join(names, " or "),
		allow: func(caller Caller) bool {
			for _, c := range caps {
				if c.allow(caller) {
					return true
				}
			}
			return false
		},
	}
}

func (c Capability) String() string { return c.name }

// Check returns nil when the caller has the capability. Anonymous callers
// always get UnauthenticatedError, others ForbiddenError.
func (c Capability) Check(caller Caller) error {
	if !caller.IsAuthenticated() {
		return errs.NewUnauthenticatedError("no verified identity")
	}
	if !c.allow(caller) {
		return errs.NewForbiddenError(c.name, caller.role.String())
	}
	return nil
}

// CanHandleParcel lets admins act on any parcel and riders only on parcels
// assigned to them.
func CanHandleParcel(caller Caller, p *parcel.Parcel) error {
	if err := AnyOf(RequireAdmin, RequireRider).Check(caller); err != nil {
		return err
	}
	if caller.IsAdmin() {
		return nil
	}
	if r := p.Rider(); r != nil && r.Email.IsEqual(caller.email) {
		return nil
	}
	return errs.NewForbiddenError("assigned rider", caller.role.String())
}

// CanViewParcel lets the owner, the assigned rider and admins read a parcel.
func CanViewParcel(caller Caller, p *parcel.Parcel) error {
	if err := RequireAuthenticated.Check(caller); err != nil {
		return err
	}
	if caller.IsAdmin() || p.IsOwnedBy(caller.email) {
		return nil
	}
	if r := p.Rider(); r != nil && r.Email.IsEqual(caller.email) {
		return nil
	}
	return errs.NewForbiddenError("parcel owner", caller.role.String())
}

// Resolver looks up the stored role of a verified e-mail.
type Resolver struct {
	users ports.UserRepository
}

func NewResolver(users ports.UserRepository) Resolver {
	return Resolver{users: users}
}

// Resolve returns the caller for email. Unknown users resolve to RoleUser;
// store failures are returned as is.
func (r Resolver) Resolve(ctx context.Context, email kernel.Email) (Caller, error) {
	if err := email.Validate(); err != nil {
		return Caller{}, errs.NewUnauthenticatedErrorWithCause("identity has no e-mail", err)
	}

	u, err := r.users.GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return NewCaller(email, user.RoleUser), nil
	}
	if err != nil {
		return Caller{}, err
	}
	return NewCaller(email, u.Role()), nil
}
