package scenes

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glribbon/config"
	"github.com/bloeys/glribbon/gpu"
	"github.com/bloeys/glribbon/gpu/gputest"
	"github.com/bloeys/glribbon/logging"
	"github.com/bloeys/glribbon/renderer/rend3dgl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logging.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func testRibbonCfg() config.Ribbon {
	return config.Ribbon{
		Curves:       3,
		SamplePoints: 10,
		Vertex:       "../res/shaders/ribbon.vert.glsl",
		Fragment:     "../res/shaders/ribbon.frag.glsl",
	}
}

func TestCurveBounce(t *testing.T) {

	c := Curve{
		Trans:     gglm.NewVec3(1.01, 0, 0),
		TransStep: gglm.NewVec3(0.01, 0.01, 0.01),
	}

	c.Step()
	assert.InDelta(t, -0.01, c.TransStep.X(), 1e-6)
	assert.InDelta(t, 1.00, c.Trans.X(), 1e-6)

	// Only x moves
	assert.Equal(t, float32(0), c.Trans.Y())
	assert.Equal(t, float32(0.01), c.TransStep.Y())

	// Inside the bounds the direction is kept
	c.Step()
	assert.InDelta(t, -0.01, c.TransStep.X(), 1e-6)
	assert.InDelta(t, 0.99, c.Trans.X(), 1e-6)

	// Past the left edge but already moving right: no flip
	c = Curve{
		Trans:     gglm.NewVec3(-1.5, 0, 0),
		TransStep: gglm.NewVec3(0.01, 0, 0),
	}
	c.Step()
	assert.InDelta(t, 0.01, c.TransStep.X(), 1e-6)
	assert.InDelta(t, -1.49, c.Trans.X(), 1e-6)

	// Past the left edge moving left: flip
	c.TransStep.Data[0] = -0.01
	c.Step()
	assert.InDelta(t, 0.01, c.TransStep.X(), 1e-6)
	assert.InDelta(t, -1.48, c.Trans.X(), 1e-6)
}

func TestNewCurve(t *testing.T) {

	c := NewCurve(0.5)
	assert.Equal(t, float32(0), c.Color)
	assert.Equal(t, float32(0.01), c.ColorStep)
	assert.Equal(t, [3]float32{0, 0, 0.5}, c.Trans.Data)
	assert.Equal(t, [3]float32{0.001, 0.001, 0.001}, c.TransStep.Data)

	c = NewCurve(0)
	assert.Equal(t, [3]float32{0, -1, 0}, c.Trans.Data)
	assert.Equal(t, [3]float32{0, 0, 0}, c.TransStep.Data)
}

func TestGenSineCurve(t *testing.T) {

	verts, count := GenSineCurve(2)
	require.EqualValues(t, 6, count)
	require.Len(t, verts, 18)

	y1 := float32(math.Sin(-45) / 5)
	assert.Equal(t, []float32{
		-3, y1, 0,
		-3, -1, 0,
		0, -1, 0,
		0, 0, 0,
		-3, y1, 0,
		0, -1, 0,
	}, verts)

	verts, count = GenSineCurve(100)
	assert.EqualValues(t, 99*6, count)
	assert.Len(t, verts, 99*6*3)
	for i := 0; i < len(verts); i += 3 {
		assert.GreaterOrEqual(t, verts[i], float32(-3))
		assert.Less(t, verts[i], float32(3))
		assert.Equal(t, float32(0), verts[i+2])
	}

	verts, count = GenSineCurve(1)
	assert.Empty(t, verts)
	assert.Zero(t, count)
}

func TestRibbonRender(t *testing.T) {

	rec := gputest.NewRecorder()
	r := NewRibbon(rec, testRibbonCfg(), config.FailurePolicy_Abort)
	require.NoError(t, r.Init())
	require.True(t, r.Prog.Linked())
	require.Len(t, r.Curves, 3)

	assert.Equal(t, []string{"../res/shaders/ribbon.vert.glsl", "../res/shaders/ribbon.frag.glsl"}, r.ShaderPaths())

	vao := rec.VertexArrays[r.Bo.Vao.Id]
	require.NotNil(t, vao)
	assert.EqualValues(t, 3, vao.Attribs[0].Size)
	assert.EqualValues(t, 12, vao.Attribs[0].Stride)
	assert.True(t, vao.Attribs[0].Enabled)

	lastCurve := r.Curves[2]
	wantTransform := gglm.NewTrMatWithPos(lastCurve.Trans.X(), lastCurve.Trans.Y(), lastCurve.Trans.Z())

	rend := rend3dgl.NewRend3DGL()
	r.Update(1.0 / 60)
	r.Render(rend)

	assert.Equal(t, [4]float32{1, 1, 1, 1}, rec.ClearRGBA)
	assert.Equal(t, []uint32{gpu.ColorBufferBit | gpu.DepthBufferBit}, rec.Clears)

	require.Len(t, rec.Draws, 3)
	for _, d := range rec.Draws {
		assert.Equal(t, gpu.Triangles, d.Mode)
		assert.EqualValues(t, 9*6, d.Count)
		assert.Equal(t, r.Prog.Id, d.Program)
		assert.Equal(t, r.Bo.Vao.Id, d.VertexArray)
	}

	// Uniforms hold what the last curve was drawn with, before it stepped
	progState := rec.Programs[r.Prog.Id]
	assert.Equal(t, wantTransform.Data, progState.Uniforms["transform"])
	assert.Equal(t, float32(0), progState.Uniforms["color"])
	assert.InDelta(t, lastCurve.Trans.X()+lastCurve.TransStep.X(), r.Curves[2].Trans.X(), 1e-6)

	r.DeInit()
	assert.Equal(t, 1, rec.Programs[progState.Id].DeleteCount)
	assert.Equal(t, 1, rec.VertexArrays[vao.Id].DeleteCount)
}

func TestRibbonShaderFailurePolicy(t *testing.T) {

	cfg := testRibbonCfg()
	cfg.Fragment = "../res/shaders/does-not-exist.frag.glsl"

	rec := gputest.NewRecorder()
	r := NewRibbon(rec, cfg, config.FailurePolicy_Abort)
	assert.Error(t, r.Init())
	assert.Nil(t, r.Prog)
	assert.Nil(t, r.Bo)

	rec = gputest.NewRecorder()
	r = NewRibbon(rec, cfg, config.FailurePolicy_Degrade)
	require.NoError(t, r.Init())
	require.NotNil(t, r.Prog)
	assert.False(t, r.Prog.Linked())

	// A degraded program still draws, it just renders nothing useful
	r.Render(rend3dgl.NewRend3DGL())
	assert.Len(t, rec.Draws, 3)
	assert.Empty(t, rec.Programs[r.Prog.Id].Uniforms)

	r.DeInit()
}

func TestRibbonReloadShaders(t *testing.T) {

	rec := gputest.NewRecorder()
	r := NewRibbon(rec, testRibbonCfg(), config.FailurePolicy_Abort)
	require.NoError(t, r.Init())

	oldId := r.Prog.Id
	require.NoError(t, r.ReloadShaders())
	assert.NotEqual(t, oldId, r.Prog.Id)
	assert.True(t, r.Prog.Linked())
	assert.Equal(t, 1, rec.Programs[oldId].DeleteCount)

	r.DeInit()
}

func TestReloadChangedShaders(t *testing.T) {

	rec := gputest.NewRecorder()

	r := NewRibbon(rec, testRibbonCfg(), config.FailurePolicy_Abort)
	require.NoError(t, r.Init())
	c := NewCube(rec, testCubeCfg(), config.FailurePolicy_Abort, 600, 400)
	require.NoError(t, c.Init())

	ribbonProg, cubeProg := r.Prog.Id, c.Mat.ShaderProg.Id
	scs := []Scene{r, c}

	reloaded, err := ReloadChangedShaders(scs, []string{"../res/textures/crate.png"})
	require.NoError(t, err)
	assert.Zero(t, reloaded)

	abs, err := filepath.Abs("../res/shaders/ribbon.frag.glsl")
	require.NoError(t, err)

	reloaded, err = ReloadChangedShaders(scs, []string{abs})
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded)
	assert.NotEqual(t, ribbonProg, r.Prog.Id)
	assert.Equal(t, cubeProg, c.Mat.ShaderProg.Id)

	// A failing reload keeps the old program
	rec.Compile = func(shaderType uint32, src string) (bool, string) {
		return false, "0:1(1): error: broken on purpose"
	}

	ribbonProg = r.Prog.Id
	reloaded, err = ReloadChangedShaders(scs, []string{abs, "../res/shaders/cube.vert.glsl"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ribbon")
	assert.Contains(t, err.Error(), "cube")
	assert.Zero(t, reloaded)
	assert.Equal(t, ribbonProg, r.Prog.Id)
	assert.True(t, r.Prog.Linked())
	assert.Equal(t, cubeProg, c.Mat.ShaderProg.Id)

	r.DeInit()
	c.DeInit()
}
