package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zapshift/cmd"
	httpadapter "zapshift/internal/adapters/in/http"
	"zapshift/internal/adapters/out/postgres"
	"zapshift/internal/adapters/out/realtime"
	"zapshift/internal/core/ports"
	"zapshift/internal/jobs"
	"zapshift/internal/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	loggers, err := logging.New(logging.Config{Level: configs.LogLevel, File: configs.LogFile})
	if err != nil {
		log.Fatalf("Error configuring logging: %v", err)
	}
	defer func() { _ = loggers.Close() }()
	logger := loggers.App

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustOpenDatabase(ctx, configs, loggers)

	hub := realtime.NewHub(logger)
	defer hub.Close()
	publisher := newPublisher(ctx, configs, hub, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)

	jobManager := jobs.NewJobManager(app.CreateDispatchRiderCommandHandler(), configs.DispatchSchedule, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs, hub, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.ParseConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

func mustOpenDatabase(ctx context.Context, configs cmd.Config, loggers logging.Loggers) *gorm.DB {
	dsn, err := configs.DSN()
	if err != nil {
		log.Fatalf("Invalid database configuration: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{Logger: loggers.Gorm})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := postgres.Migrate(ctx, gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	return gormDB
}

// newPublisher fans tracking updates out to the websocket hub and, when
// REDIS_URL is set, to the redis channel other instances subscribe to.
func newPublisher(ctx context.Context, configs cmd.Config, hub *realtime.Hub, logger *slog.Logger) ports.EventPublisher {
	if configs.RedisURL == "" {
		return realtime.Fanout{hub}
	}

	client, err := realtime.NewRedisClient(ctx, configs.RedisURL)
	if err != nil {
		log.Fatalf("Error connecting to redis: %v", err)
	}
	logger.Info("publishing tracking updates to redis", "channel", realtime.DefaultChannel)
	return realtime.Fanout{hub, realtime.NewRedisPublisher(client, realtime.DefaultChannel)}
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, hub http.Handler, logger *slog.Logger) {
	verifier, err := app.CreateIdentityVerifier()
	if err != nil {
		log.Fatalf("Error configuring token verification: %v", err)
	}
	server, err := app.CreateHTTPServer()
	if err != nil {
		log.Fatalf("Error configuring handlers: %v", err)
	}

	e, err := httpadapter.NewRouter(server, httpadapter.RouterConfig{
		Verifier:     verifier,
		Resolver:     app.CreateCallerResolver(),
		Tracking:     hub,
		StoreTimeout: configs.StoreTimeout,
		Logger:       logger,
	})
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting web server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("web server shutdown", "error", err)
	}
}
