package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	// Keep real user config files out of the test.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "auto", cfg.Region)
	require.Equal(t, "en_GB", cfg.Language)
	require.Equal(t, 60*time.Second, cfg.Timeout)
	require.True(t, cfg.Verify)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("CATLINK_REGION", "usa")
	t.Setenv("CATLINK_LANGUAGE", "zh_CN")
	t.Setenv("CATLINK_TIMEOUT", "10s")
	t.Setenv("CATLINK_VERIFY", "false")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "usa", cfg.Region)
	require.Equal(t, "zh_CN", cfg.Language)
	require.Equal(t, 10*time.Second, cfg.Timeout)
	require.False(t, cfg.Verify)
}

func TestLoad_ConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dir := filepath.Join(home, "catlink")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("region: singapore\ntimeout: 30s\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "singapore", cfg.Region)
	require.Equal(t, 30*time.Second, cfg.Timeout)
	require.Equal(t, "en_GB", cfg.Language, "unset keys keep their defaults")
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dir := filepath.Join(home, "catlink")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("region: singapore\n"), 0o600))
	t.Setenv("CATLINK_REGION", "china")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "china", cfg.Region)
}

func TestLoad_InvalidTimeoutFallsBack(t *testing.T) {
	isolate(t)
	t.Setenv("CATLINK_TIMEOUT", "-5s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 60*time.Second, cfg.Timeout)
}
