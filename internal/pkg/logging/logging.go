// Package logging builds the process loggers: a JSON slog logger for the
// application and a logrus logger that GORM writes its SQL traces to. Both go
// to stdout and, when a file is configured, to a size-rotated log file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

// Config selects level and destination.
type Config struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// File, when set, receives a copy of every record and is rotated at
	// MaxSizeMB.
	File      string
	MaxSizeMB int
}

// Loggers are the configured outputs. Close flushes and closes the log file.
type Loggers struct {
	App  *slog.Logger
	SQL  *logrus.Logger
	Gorm gormlogger.Interface

	closer io.Closer
}

func (l Loggers) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// New builds the loggers described by cfg, writing to stdout and cfg.File.
func New(cfg Config) (Loggers, error) {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter is New with a custom primary output.
func NewWithWriter(cfg Config, out io.Writer) (Loggers, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return Loggers{}, err
	}

	var closer io.Closer
	if cfg.File != "" {
		maxSize := cfg.MaxSizeMB
		if maxSize <= 0 {
			maxSize = 10
		}
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    maxSize,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   true,
		}
		out = io.MultiWriter(out, rotator)
		closer = rotator
	}

	app := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))

	sql := logrus.New()
	sql.SetOutput(out)
	sql.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	sql.SetLevel(logrus.InfoLevel)

	return Loggers{
		App:    app,
		SQL:    sql,
		Gorm:   NewGormLogger(sql, level),
		closer: closer,
	}, nil
}

// ParseLevel accepts the slog level names, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// NewGormLogger routes GORM output through w. SQL statements are traced only
// at debug level; otherwise slow queries and errors are logged.
func NewGormLogger(w gormlogger.Writer, level slog.Level) gormlogger.Interface {
	gormLevel := gormlogger.Warn
	if level <= slog.LevelDebug {
		gormLevel = gormlogger.Info
	}
	if level >= slog.LevelError {
		gormLevel = gormlogger.Error
	}

	return gormlogger.New(w, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormLevel,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
