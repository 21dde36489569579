package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// TestLoadMissingFileUsesDefaults verifies a fresh install needs no config file.
func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "127.0.0.1:8787", cfg.Server.Addr())
}

// TestLoadFileOverDefaults verifies unset keys keep their defaults.
func TestLoadFileOverDefaults(t *testing.T) {
	path := writeConfig(t, "units: KG\nshare:\n  url: https://lifts.example.com\nnotifications: false\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "kg", cfg.Units)
	assert.Equal(t, "https://lifts.example.com", cfg.Share.URL)
	assert.False(t, cfg.Notifications)
	assert.Equal(t, 8787, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
}

// TestLoadEnvOverrides verifies LIFTSCRIPT_ variables win over the file.
func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\n")
	t.Setenv("LIFTSCRIPT_SERVER_PORT", "9100")
	t.Setenv("LIFTSCRIPT_SERVER_HOST", "0.0.0.0")
	t.Setenv("LIFTSCRIPT_LOG_LEVEL", "debug")
	t.Setenv("LIFTSCRIPT_NOTIFICATIONS", "0")
	t.Setenv("LIFTSCRIPT_SHARE_URL", "http://share.local")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9100", cfg.Server.Addr())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Notifications)
	assert.Equal(t, "http://share.local", cfg.Share.URL)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad units", "units: stone\n"},
		{"bad port", "server:\n  port: 70000\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"bad yaml", "units: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
