package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelInfo},
		{in: "debug", want: slog.LevelDebug},
		{in: "WARN", want: slog.LevelWarn},
		{in: " error ", want: slog.LevelError},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWithWriter_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	loggers, err := NewWithWriter(Config{Level: "warn"}, &buf)
	require.NoError(t, err)

	loggers.App.Info("hidden")
	loggers.App.Warn("rider unavailable", "riderEmail", "rafi@zapshift.test")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "rider unavailable", record["msg"])
	assert.Equal(t, "rafi@zapshift.test", record["riderEmail"])
	assert.NoError(t, loggers.Close())
}

func TestNewWithWriter_CopiesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "zapshift.log")
	loggers, err := NewWithWriter(Config{File: file}, &bytes.Buffer{})
	require.NoError(t, err)

	loggers.App.Info("parcel booked", "trackingNumber", "ZS-1")
	require.NoError(t, loggers.Close())

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(content), "parcel booked")
}

func TestNewWithWriter_RejectsUnknownLevel(t *testing.T) {
	_, err := NewWithWriter(Config{Level: "chatty"}, &bytes.Buffer{})

	assert.Error(t, err)
}

func TestGormLogger(t *testing.T) {
	var buf bytes.Buffer
	loggers, err := NewWithWriter(Config{Level: "info"}, &buf)
	require.NoError(t, err)
	ctx := context.Background()
	begin := time.Now()

	loggers.Gorm.Trace(ctx, begin, func() (string, int64) { return "SELECT 1", 1 }, nil)
	assert.NotContains(t, buf.String(), "SELECT 1", "statements are traced at debug only")

	loggers.Gorm.Trace(ctx, begin, func() (string, int64) { return "SELECT 2", 0 }, gorm.ErrRecordNotFound)
	assert.NotContains(t, buf.String(), "SELECT 2")

	loggers.Gorm.Trace(ctx, begin, func() (string, int64) { return "UPDATE parcels", 0 }, errors.New("deadlock detected"))
	assert.Contains(t, buf.String(), "deadlock detected")
}

func TestGormLogger_DebugTracesStatements(t *testing.T) {
	var buf bytes.Buffer
	loggers, err := NewWithWriter(Config{Level: "debug"}, &buf)
	require.NoError(t, err)

	loggers.Gorm.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)

	assert.Contains(t, buf.String(), "SELECT 1")
}
