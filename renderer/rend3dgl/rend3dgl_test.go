package rend3dgl

import (
	"io"
	"os"
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glribbon/buffers"
	"github.com/bloeys/glribbon/gpu/gputest"
	"github.com/bloeys/glribbon/logging"
	"github.com/bloeys/glribbon/materials"
	"github.com/bloeys/glribbon/meshes"
	"github.com/bloeys/glribbon/shaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vertSrc = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aUv;
uniform mat4 mvp;
void main() { gl_Position = mvp * vec4(aPos, 1.0); }
`

const fragSrc = `#version 410 core
out vec4 FragColor;
uniform sampler2D diffTex;
void main() { FragColor = vec4(1.0); }
`

func TestMain(m *testing.M) {
	logging.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestDrawBufferObject(t *testing.T) {

	rec := gputest.NewRecorder()
	prog, err := shaders.LoadShaderProgramSrc(rec, []byte(vertSrc), []byte(fragSrc))
	require.NoError(t, err)

	bo := buffers.NewBufferObject(rec)
	bo.AddData(make([]float32, 9), 3, 12)
	bo.AddAttrib(3)

	r := NewRend3DGL()
	r.DrawBufferObject(bo, prog)
	r.DrawBufferObject(bo, prog)

	require.Len(t, rec.Draws, 2)
	for _, d := range rec.Draws {
		assert.Equal(t, prog.Id, d.Program)
		assert.Equal(t, bo.Vao.Id, d.VertexArray)
		assert.EqualValues(t, 3, d.Count)
	}

	r.FrameEnd()
	assert.Zero(t, r.BoundProgId)
}

func TestDrawMesh(t *testing.T) {

	rec := gputest.NewRecorder()
	prog, err := shaders.LoadShaderProgramSrc(rec, []byte(vertSrc), []byte(fragSrc))
	require.NoError(t, err)

	mat := materials.NewMaterial("cube", prog)
	cube := meshes.NewCubeMesh(rec)

	r := NewRend3DGL()
	proj := gglm.NewTrMatWithPos(0, 0, -3)
	r.SetProjViewMat(&proj.Mat4)

	model := gglm.NewTrMatWithPos(1, 2, 3)
	r.DrawMesh(&cube, &model, mat)

	want := proj.Mat4.Clone().Mul(&model.Mat4)
	assert.Equal(t, want.Data, rec.Programs[prog.Id].Uniforms["mvp"])

	require.Len(t, rec.Draws, 1)
	assert.Equal(t, prog.Id, rec.Draws[0].Program)
	assert.EqualValues(t, 36, rec.Draws[0].Count)
}
