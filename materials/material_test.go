package materials

import (
	"image/color"
	"io"
	"os"
	"testing"

	"github.com/bloeys/glribbon/assets"
	"github.com/bloeys/glribbon/gpu"
	"github.com/bloeys/glribbon/gpu/gputest"
	"github.com/bloeys/glribbon/logging"
	"github.com/bloeys/glribbon/shaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vertSrc = `#version 410 core
layout (location = 0) in vec3 aPos;
uniform mat4 mvp;
void main() { gl_Position = mvp * vec4(aPos, 1.0); }
`

const fragSrc = `#version 410 core
out vec4 FragColor;
uniform sampler2D diffTex;
uniform float tint;
void main() { FragColor = vec4(tint); }
`

func TestMain(m *testing.M) {
	logging.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestMaterial(t *testing.T) {

	rec := gputest.NewRecorder()
	prog, err := shaders.LoadShaderProgramSrc(rec, []byte(vertSrc), []byte(fragSrc))
	require.NoError(t, err)

	tex := assets.NewCheckerTexture(rec, 8, 2, color.NRGBA{A: 255}, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	rec.BindTexture(gpu.Texture2D, 0)

	m1 := NewMaterial("a", prog)
	m2 := NewMaterial("b", prog)
	assert.NotEqual(t, m1.Id, m2.Id)

	m1.SetDiffuseTex(&tex)
	m1.SetUnifFloat32("tint", 0.5)

	u := rec.Programs[prog.Id].Uniforms
	assert.Equal(t, int32(TextureSlot_Diffuse), u["diffTex"])
	assert.Equal(t, float32(0.5), u["tint"])

	m1.Bind()
	assert.Equal(t, prog.Id, rec.CurrentProgram)
	assert.Equal(t, tex.TexID, rec.BoundTextures[uint32(TextureSlot_Diffuse)])

	m1.UnBind()
	assert.Zero(t, rec.CurrentProgram)

	progId, texId := prog.Id, tex.TexID
	m1.Delete()
	assert.Equal(t, 1, rec.Programs[progId].DeleteCount)
	assert.Equal(t, 1, rec.Textures[texId].DeleteCount)
}
