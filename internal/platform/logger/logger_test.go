package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(Config{Level: "warn", Format: "json"}, &buf)

	l.Info("dropped")
	l.Warn("kept", "user_id", 7)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, float64(7), entry["user_id"])
	assert.NotContains(t, buf.String(), "dropped")
}

func TestNew_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(Config{}, &buf).Info("no people found")

	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), `msg="no people found"`)
}
