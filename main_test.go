package main

import (
	"testing"

	"github.com/bloeys/glribbon/config"
	"github.com/bloeys/glribbon/gpu/gputest"
	"github.com/bloeys/glribbon/scenes"
	"github.com/stretchr/testify/assert"
)

func TestShaderFilesToReload(t *testing.T) {

	cfg := config.Default()
	ribbon := scenes.NewRibbon(gputest.NewRecorder(), cfg.Ribbon, cfg.Shaders.OnFailure)

	polled := []string{"/abs/res/shaders/cube.frag.glsl"}

	assert.Equal(t, polled, shaderFilesToReload(polled, false, ribbon))
	assert.Nil(t, shaderFilesToReload(nil, false, ribbon))

	// A manual reload keeps the watched changes of other scenes
	assert.Equal(t, []string{
		"/abs/res/shaders/cube.frag.glsl",
		cfg.Ribbon.Vertex,
		cfg.Ribbon.Fragment,
	}, shaderFilesToReload(polled, true, ribbon))

	assert.Equal(t, []string{cfg.Ribbon.Vertex, cfg.Ribbon.Fragment}, shaderFilesToReload(nil, true, ribbon))
}
