package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"zapshift/internal/core/application/usecases/commands"

	"github.com/lib/pq"
)

const (
	defaultHTTPPort     = "8080"
	defaultStoreTimeout = 5 * time.Second
)

type Config struct {
	HTTPPort    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSslMode   string
	DatabaseURL string

	JWTSecret         string
	PaymentGatewayKey string
	PaymentAPIURL     string
	RedisURL          string

	ReleaseRiderOnDelivery bool
	StoreTimeout           time.Duration
	AssignMaxAttempts      int
	DispatchSchedule       string

	LogFile  string
	LogLevel string
}

// ParseConfig reads the configuration through getenv. Unset keys take their
// defaults; malformed values are reported together.
func ParseConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:          withDefault(getenv("HTTP_PORT"), defaultHTTPPort),
		DBHost:            getenv("DB_HOST"),
		DBPort:            withDefault(getenv("DB_PORT"), "5432"),
		DBUser:            getenv("DB_USER"),
		DBPassword:        getenv("DB_PASSWORD"),
		DBName:            getenv("DB_NAME"),
		DBSslMode:         withDefault(getenv("DB_SSLMODE"), "disable"),
		DatabaseURL:       getenv("DATABASE_URL"),
		JWTSecret:         getenv("JWT_SECRET"),
		PaymentGatewayKey: getenv("PAYMENT_GATEWAY_KEY"),
		PaymentAPIURL:     getenv("PAYMENT_API_URL"),
		RedisURL:          getenv("REDIS_URL"),
		DispatchSchedule:  strings.TrimSpace(getenv("DISPATCH_SCHEDULE")),
		LogFile:           getenv("LOG_FILE"),
		LogLevel:          getenv("LOG_LEVEL"),
	}

	var problems []error
	var err error

	cfg.ReleaseRiderOnDelivery = true
	if v := getenv("RELEASE_RIDER_ON_DELIVERY"); v != "" {
		if cfg.ReleaseRiderOnDelivery, err = strconv.ParseBool(v); err != nil {
			problems = append(problems, fmt.Errorf("RELEASE_RIDER_ON_DELIVERY: %w", err))
		}
	}

	cfg.StoreTimeout = defaultStoreTimeout
	if v := getenv("STORE_TIMEOUT"); v != "" {
		if cfg.StoreTimeout, err = time.ParseDuration(v); err != nil {
			problems = append(problems, fmt.Errorf("STORE_TIMEOUT: %w", err))
		}
	}

	cfg.AssignMaxAttempts = commands.DefaultMaxAttempts
	if v := getenv("ASSIGN_MAX_ATTEMPTS"); v != "" {
		cfg.AssignMaxAttempts, err = strconv.Atoi(v)
		if err == nil && cfg.AssignMaxAttempts < 1 {
			err = errors.New("must be at least 1")
		}
		if err != nil {
			problems = append(problems, fmt.Errorf("ASSIGN_MAX_ATTEMPTS: %w", err))
		}
	}

	if cfg.DatabaseURL == "" && cfg.DBHost == "" {
		problems = append(problems, errors.New("DATABASE_URL or DB_HOST is required"))
	}
	if cfg.JWTSecret == "" {
		problems = append(problems, errors.New("JWT_SECRET is required"))
	}
	if cfg.PaymentGatewayKey == "" {
		problems = append(problems, errors.New("PAYMENT_GATEWAY_KEY is required"))
	}

	if err := errors.Join(problems...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN returns the postgres connection string. DATABASE_URL wins over the
// DB_* keys.
func (c Config) DSN() (string, error) {
	if c.DatabaseURL != "" {
		dsn, err := pq.ParseURL(c.DatabaseURL)
		if err != nil {
			return "", fmt.Errorf("DATABASE_URL: %w", err)
		}
		return dsn, nil
	}

	return fmt.Sprintf(
		"host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	), nil
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
