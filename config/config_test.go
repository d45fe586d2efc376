package config

import (
	"circuitsketch/types"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, types.DefaultSnapTolerance, cfg.SnapTolerance)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "circuit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("snap_tolerance: 8\nlog_format: json\n"), 0o644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, 8.0, cfg.SnapTolerance)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "info", cfg.LogLevel)

	t.Setenv("CIRCUIT_CONFIG", path)
	cfg, err = Load("")
	require.NoError(t, err)
	require.Equal(t, 8.0, cfg.SnapTolerance)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadFromPath(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("snap_tolerance: -1\n"), 0o644))
	_, err = LoadFromPath(bad)
	require.Error(t, err)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("snap_tolerance: [\n"), 0o644))
	_, err = LoadFromPath(broken)
	require.Error(t, err)
}
