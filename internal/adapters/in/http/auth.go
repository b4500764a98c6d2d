package http

import (
	"context"
	"log/slog"
	"strings"

	"zapshift/internal/core/application/authz"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/ports"
	"zapshift/internal/generated/servers"
	"zapshift/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const callerKey = "zapshift.caller"

// CallerResolver maps a verified e-mail to its stored role.
type CallerResolver interface {
	Resolve(ctx context.Context, email kernel.Email) (authz.Caller, error)
}

// Authenticate verifies the bearer token when one is sent and stores the
// resolved caller on the echo context. Requests without a token continue as
// anonymous; routes that need an identity reject them later.
func Authenticate(verifier ports.IdentityVerifier, resolver CallerResolver, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(ctx)
			}

			token, ok := bearerToken(header)
			if !ok {
				return writeError(ctx, logger, errs.NewUnauthenticatedError("authorization header must use the Bearer scheme"))
			}

			reqCtx := ctx.Request().Context()
			email, err := verifier.Verify(reqCtx, token)
			if err != nil {
				return writeError(ctx, logger, err)
			}
			caller, err := resolver.Resolve(reqCtx, email)
			if err != nil {
				return writeError(ctx, logger, err)
			}

			ctx.Set(callerKey, caller)
			return next(ctx)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// CallerFrom returns the caller stored by Authenticate, or the anonymous caller.
func CallerFrom(ctx echo.Context) authz.Caller {
	caller, _ := ctx.Get(callerKey).(authz.Caller)
	return caller
}

// authorize checks the caller against the bearer scopes the router attached
// to the route. No scopes means any authenticated caller.
func authorize(ctx echo.Context) (authz.Caller, error) {
	caller := CallerFrom(ctx)
	if err := routeCapability(ctx).Check(caller); err != nil {
		return caller, err
	}
	return caller, nil
}

func routeCapability(ctx echo.Context) authz.Capability {
	scopes, _ := ctx.Get(servers.BearerAuthScopes).([]string)
	return scopeCapability(scopes)
}

// scopeCapability maps bearer scopes to the capability a caller needs.
func scopeCapability(scopes []string) authz.Capability {
	caps := make([]authz.Capability, 0, len(scopes))
	for _, scope := range scopes {
		switch scope {
		case "admin":
			caps = append(caps, authz.RequireAdmin)
		case "rider":
			caps = append(caps, authz.RequireRider)
		}
	}
	if len(caps) == 0 {
		return authz.RequireAuthenticated
	}
	return authz.AnyOf(caps...)
}
