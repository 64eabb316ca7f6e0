package scenes

import (
	"image/color"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glribbon/assets"
	"github.com/bloeys/glribbon/config"
	"github.com/bloeys/glribbon/gpu"
	"github.com/bloeys/glribbon/logging"
	"github.com/bloeys/glribbon/materials"
	"github.com/bloeys/glribbon/meshes"
	"github.com/bloeys/glribbon/renderer"
	"github.com/bloeys/glribbon/shaders"
)

const (
	cubeFovDeg = 45
	cubeNear   = 0.1
	cubeFar    = 100
	cubeCamZ   = -3
)

var (
	// Normalized (0.5, 1, 0)
	cubeRotAxis = gglm.NewVec3(0.4472136, 0.8944272, 0)

	checkerDark  = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	checkerLight = color.NRGBA{R: 220, G: 120, B: 40, A: 255}
)

type Cube struct {
	Mat      *materials.Material
	Mesh     meshes.Mesh
	Tex      assets.Texture
	ModelMat gglm.TrMat

	AspectRatio float32

	cfg    config.Cube
	policy config.FailurePolicy
	ctx    gpu.Context
}

func NewCube(ctx gpu.Context, cfg config.Cube, policy config.FailurePolicy, width, height int32) *Cube {
	return &Cube{
		ModelMat:    gglm.NewTrMatId(),
		AspectRatio: float32(width) / float32(height),
		cfg:         cfg,
		policy:      policy,
		ctx:         ctx,
	}
}

func (c *Cube) Name() string {
	return "cube"
}

func (c *Cube) Init() error {

	prog, err := shaders.LoadShaderProgram(c.ctx, c.cfg.Vertex, c.cfg.Fragment)
	if err := checkShaderErr(c.policy, c.Name(), prog, err); err != nil {
		if prog != nil {
			prog.Release()
		}
		return err
	}

	c.Tex, err = assets.LoadTexture(c.ctx, c.cfg.Texture, assets.TextureLoadOptions{FlipY: true})
	if err != nil {
		logging.WarnLog.Printf("Failed to load cube texture, using a checkerboard instead. Err: %v\n", err)
		c.Tex = assets.NewCheckerTexture(c.ctx, 64, 8, checkerDark, checkerLight)
	}

	c.Mat = materials.NewMaterial("cube", prog)
	c.Mat.SetDiffuseTex(&c.Tex)

	if c.cfg.Model == "" {
		c.Mesh = meshes.NewCubeMesh(c.ctx)
		return nil
	}

	c.Mesh, err = meshes.NewMeshFromFile(c.ctx, "cube", c.cfg.Model, meshes.DefaultMeshLoadFlags)
	if err != nil {
		logging.WarnLog.Printf("Failed to load cube model '%s', using the built-in cube instead. Err: %v\n", c.cfg.Model, err)
		c.Mesh = meshes.NewCubeMesh(c.ctx)
	}

	return nil
}

func (c *Cube) Update(dt float32) {
	c.ModelMat.Rotate(c.cfg.RotateSpeedDeg*gglm.Deg2Rad*dt, cubeRotAxis.X(), cubeRotAxis.Y(), cubeRotAxis.Z())
}

func (c *Cube) Render(rend renderer.Render) {

	c.ctx.ClearColor(0.2, 0.3, 0.3, 1)
	c.ctx.Clear(gpu.ColorBufferBit | gpu.DepthBufferBit)

	projMat := gglm.Perspective(cubeFovDeg*gglm.Deg2Rad, c.AspectRatio, cubeNear, cubeFar)
	viewMat := gglm.NewTrMatWithPos(0, 0, cubeCamZ)

	rend.SetProjViewMat(projMat.Mul(&viewMat.Mat4))
	rend.DrawMesh(&c.Mesh, &c.ModelMat, c.Mat)
}

func (c *Cube) Resize(width, height int32) {

	if height == 0 {
		return
	}

	c.AspectRatio = float32(width) / float32(height)
}

func (c *Cube) ShaderPaths() []string {
	return []string{c.cfg.Vertex, c.cfg.Fragment}
}

func (c *Cube) ReloadShaders() error {

	prog, err := shaders.ReloadShaderProgram(c.ctx, c.Mat.ShaderProg)
	if prog != c.Mat.ShaderProg {
		c.Mat.ShaderProg = prog
		c.Mat.SetDiffuseTex(&c.Tex)
	}

	return err
}

func (c *Cube) DeInit() {

	if c.Mesh.Bo != nil {
		c.Mesh.Release()
	}

	if c.Mat != nil {
		c.Mat.Delete()
	}
}
