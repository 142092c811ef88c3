package sl_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/hrms-lite/internal/lib/logger/sl"
	"github.com/stretchr/testify/assert"
)

func TestErr(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	testLogger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{}))

	testLogger.Warn("expected result:", sl.Err(assert.AnError))

	assert.Contains(t, logBuf.String(), assert.AnError.Error())
}

func TestErr_Nil(t *testing.T) {
	t.Parallel()

	attr := sl.Err(nil)

	assert.Equal(t, "error", attr.Key)
	assert.Empty(t, attr.Value.String())
}

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env     string
		enabled slog.Level
		muted   slog.Level
	}{
		{sl.EnvLocal, slog.LevelDebug, slog.LevelDebug - 1},
		{sl.EnvDev, slog.LevelInfo, slog.LevelDebug},
		{sl.EnvProd, slog.LevelWarn, slog.LevelInfo},
		{"unknown", slog.LevelError, slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := sl.New(tt.env, &buf)

			assert.True(t, log.Enabled(context.Background(), tt.enabled))
			assert.False(t, log.Enabled(context.Background(), tt.muted))
		})
	}
}

func TestNew_UnknownEnvWarns(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_ = sl.New("", &buf)

	assert.Contains(t, buf.String(), "The env parameter was not specified")
}
