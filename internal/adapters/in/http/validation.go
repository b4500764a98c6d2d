package http

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"zapshift/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

const bearerAuthScheme = "bearerAuth"

// ValidateRequests checks parameters and bodies against the OpenAPI document
// before a handler runs. The caller must satisfy the operation's security
// requirement first, so callers without access never see validation
// details. Paths the document does not describe pass through.
func ValidateRequests(doc *openapi3.T, logger *slog.Logger) (echo.MiddlewareFunc, error) {
	// Match on paths only; the server list is deployment specific.
	doc.Servers = nil

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			if scopes, secured := operationScopes(route); secured {
				if err := scopeCapability(scopes).Check(CallerFrom(ctx)); err != nil {
					return writeError(ctx, logger, err)
				}
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return writeError(ctx, logger, errs.NewValueIsInvalidErrorWithCause("request", validationCause(err)))
			}
			return next(ctx)
		}
	}, nil
}

// operationScopes returns the bearer scopes the matched operation requires.
// secured is false for operations that declare an empty security list.
func operationScopes(route *routers.Route) (scopes []string, secured bool) {
	security := route.Operation.Security
	if security == nil {
		security = &route.Spec.Security
	}
	if len(*security) == 0 {
		return nil, false
	}
	for _, requirement := range *security {
		if s, ok := requirement[bearerAuthScheme]; ok {
			return s, true
		}
	}
	return nil, true
}

// validationCause keeps the failing location and reason of a schema error and
// drops the schema and value dump kin-openapi appends.
func validationCause(err error) error {
	var reqErr *openapi3filter.RequestError
	var schemaErr *openapi3.SchemaError
	if !errors.As(err, &reqErr) || !errors.As(err, &schemaErr) {
		return err
	}

	where := "body"
	if reqErr.Parameter != nil {
		where = reqErr.Parameter.Name
	}
	if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
		where += "." + strings.Join(pointer, ".")
	}
	return fmt.Errorf("%s: %s", where, schemaErr.Reason)
}
