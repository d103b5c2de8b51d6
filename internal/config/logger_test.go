package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartlisting/smartlisting/internal/config"
)

func TestParseLevel(t *testing.T) {
	uu := map[string]struct {
		s string
		e slog.Level
	}{
		"debug":   {s: "debug", e: slog.LevelDebug},
		"upper":   {s: "WARN", e: slog.LevelWarn},
		"error":   {s: " error ", e: slog.LevelError},
		"unknown": {s: "loud", e: slog.LevelInfo},
		"empty":   {e: slog.LevelInfo},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, config.ParseLevel(u.s))
		})
	}
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "smartlisting.log")

	l, closer, err := config.NewLogger(path, "debug")
	require.NoError(t, err)
	l.Debug("Loaded", "screen", "menu")
	require.NoError(t, closer.Close())

	bb, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(bb), "msg=Loaded")
	assert.Contains(t, string(bb), "app=smartlisting")
	assert.Contains(t, string(bb), "screen=menu")
}
