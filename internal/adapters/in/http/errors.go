package http

import (
	"errors"
	"log/slog"
	"net/http"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/generated/servers"
	"zapshift/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var badRequestErrors = []error{
	parcel.ErrInvalidTransition,
	parcel.ErrParcelNotAssignable,
	parcel.ErrNotDelivered,
	parcel.ErrAlreadyPaidOut,
	parcel.ErrAlreadyPaid,
	rider.ErrRiderUnavailable,
	errs.ErrValueIsInvalid,
	errs.ErrValueIsOutOfRange,
	errs.ErrValueIsRequired,
}

// statusFor maps an error returned by a use case to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrVersionIsInvalid), errors.Is(err, commands.ErrRiderAlreadyApplied):
		return http.StatusConflict
	case errors.Is(err, errs.ErrStoreUnavailable):
		return http.StatusInternalServerError
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as servers.Error. Server-side failures are logged
// and answered with a generic message.
func writeError(ctx echo.Context, logger *slog.Logger, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"requestId", ctx.Response().Header().Get(echo.HeaderXRequestID),
			"error", err,
		)
		message = http.StatusText(status)
	}
	return ctx.JSON(status, servers.Error{Code: status, Message: message})
}

// HTTPErrorHandler renders errors that escape the handlers, such as routing
// misses and parameter binding failures, in the same shape.
func HTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if !errors.As(err, &he) {
			_ = writeError(ctx, logger, err)
			return
		}

		message := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			message = m
		}
		if he.Code >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "request failed", "path", ctx.Path(), "error", err)
		}
		if ctx.Request().Method == http.MethodHead {
			_ = ctx.NoContent(he.Code)
			return
		}
		_ = ctx.JSON(he.Code, servers.Error{Code: he.Code, Message: message})
	}
}
