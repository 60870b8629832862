package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverridesLayerOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
window:
  width: 640
camera:
  speed: 5
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 640, cfg.Window.Width)
	require.Equal(t, float32(5), cfg.Camera.Speed)
	// Untouched keys keep their defaults.
	require.Equal(t, 800, cfg.Window.Height)
	require.Equal(t, float32(80), cfg.Camera.Zoom)
	require.Equal(t, float32(0.05), cfg.Arcade.PaddleSpeed)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: ["), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
