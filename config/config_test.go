package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "glribbon.yaml")
	require.NoError(t, os.WriteFile(p, []byte(contents), 0o644))
	return p
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadPartialOverride(t *testing.T) {

	cfg, err := Load(writeConfig(t, `
scene: cube
window:
  width: 1280
  backend: glfw
shaders:
  on_failure: abort
  watch: true
ribbon:
  curves: 3
`))
	require.NoError(t, err)

	assert.Equal(t, "cube", cfg.Scene)
	assert.EqualValues(t, 1280, cfg.Window.Width)
	assert.EqualValues(t, 400, cfg.Window.Height)
	assert.Equal(t, Backend_GLFW, cfg.Window.Backend)
	assert.Equal(t, "Hello World", cfg.Window.Title)
	assert.Equal(t, FailurePolicy_Abort, cfg.Shaders.OnFailure)
	assert.True(t, cfg.Shaders.Watch)
	assert.Equal(t, 3, cfg.Ribbon.Curves)
	assert.Equal(t, 100000, cfg.Ribbon.SamplePoints)
	assert.Equal(t, Default().Cube, cfg.Cube)
}

func TestLoadInvalid(t *testing.T) {

	_, err := Load(writeConfig(t, "window: [this is not a map"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `
window:
  width: -1
  backend: vulkan
shaders:
  on_failure: shrug
ribbon:
  sample_points: 1
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window size")
	assert.Contains(t, err.Error(), "vulkan")
	assert.Contains(t, err.Error(), "shrug")
	assert.Contains(t, err.Error(), "sample points")
}
