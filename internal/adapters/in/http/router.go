package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"zapshift/internal/core/ports"
	_ "zapshift/internal/generated/docs"
	"zapshift/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig carries what NewRouter needs besides the use cases.
type RouterConfig struct {
	Verifier     ports.IdentityVerifier
	Resolver     CallerResolver
	Tracking     http.Handler
	StoreTimeout time.Duration
	Logger       *slog.Logger
}

// NewRouter builds the echo instance serving the API, its documents and the
// live tracking socket.
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validate, err := ValidateRequests(doc, cfg.Logger)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = HTTPErrorHandler(cfg.Logger)

	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	if cfg.StoreTimeout > 0 {
		e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
			Skipper: func(ctx echo.Context) bool {
				return strings.HasPrefix(ctx.Request().URL.Path, "/ws/")
			},
			Timeout: cfg.StoreTimeout,
		}))
	}
	e.Use(Authenticate(cfg.Verifier, cfg.Resolver, cfg.Logger))
	e.Use(validate)

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(ctx echo.Context) error {
		spec, err := servers.GetSwagger()
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, spec)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if cfg.Tracking != nil {
		e.GET("/ws/tracking", echo.WrapHandler(cfg.Tracking))
	}

	servers.RegisterHandlers(e, server)
	return e, nil
}
