package scenes

import (
	"math"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glribbon/buffers"
	"github.com/bloeys/glribbon/config"
	"github.com/bloeys/glribbon/gpu"
	"github.com/bloeys/glribbon/renderer"
	"github.com/bloeys/glribbon/shaders"
)

const (
	sineCurveHalfWidth = 3.0
	// Factor the x-axis is stretched by before taking the sine
	sineCurveXStretch   = 15
	sineCurveYScale     = 5
	sineCurveFloatCount = 3
)

// Curve is one copy of the sine ribbon, bouncing left and right across the screen
type Curve struct {
	Color     float32
	ColorStep float32

	Trans     gglm.Vec3
	TransStep gglm.Vec3
}

// NewCurve creates a curve from its relative position pos in [0, 1).
// Curves further along start higher and further back, and move faster.
func NewCurve(pos float32) Curve {

	speed := pos / 500

	return Curve{
		Color:     0,
		ColorStep: 0.01,
		Trans:     gglm.NewVec3(0, -1+2*pos, pos),
		TransStep: gglm.NewVec3(speed, speed, speed),
	}
}

// Step moves the curve along x, reversing direction once it is past either edge and still moving outwards
func (c *Curve) Step() {

	x, stepX := c.Trans.X(), c.TransStep.X()
	if (x > 1 && stepX > 0) || (x < -1 && stepX < 0) {
		c.TransStep.Data[0] = -stepX
	}

	c.Trans.Data[0] += c.TransStep.Data[0]
}

// GenSineCurve returns triangles covering the area between a sine curve and y=-1,
// as a list of vec3 positions. The curve is sampled at the given number of points,
// and every pair of neighboring points makes a quad of two triangles.
func GenSineCurve(points int) (vertices []float32, vertexCount int32) {

	rects := points - 1
	if rects < 1 {
		return []float32{}, 0
	}

	vertexCount = int32(rects * 2 * 3)
	vertices = make([]float32, 0, int(vertexCount)*sineCurveFloatCount)

	for i := 0; i < rects; i++ {

		x1 := float32(-sineCurveHalfWidth + 2*sineCurveHalfWidth*float64(i)/float64(points))
		x2 := float32(-sineCurveHalfWidth + 2*sineCurveHalfWidth*float64(i+1)/float64(points))
		y1 := float32(math.Sin(float64(x1)*sineCurveXStretch) / sineCurveYScale)
		y2 := float32(math.Sin(float64(x2)*sineCurveXStretch) / sineCurveYScale)

		vertices = append(vertices,
			// (x1, y1), (x1, -1), (x2, -1)
			x1, y1, 0,
			x1, -1, 0,
			x2, -1, 0,

			// (x2, y2), (x1, y1), (x2, -1)
			x2, y2, 0,
			x1, y1, 0,
			x2, -1, 0,
		)
	}

	return vertices, vertexCount
}

type Ribbon struct {
	Prog   *shaders.ShaderProgram
	Bo     *buffers.BufferObject
	Curves []Curve

	cfg    config.Ribbon
	policy config.FailurePolicy
	ctx    gpu.Context
}

func NewRibbon(ctx gpu.Context, cfg config.Ribbon, policy config.FailurePolicy) *Ribbon {
	return &Ribbon{
		cfg:    cfg,
		policy: policy,
		ctx:    ctx,
	}
}

func (r *Ribbon) Name() string {
	return "ribbon"
}

func (r *Ribbon) Init() error {

	prog, err := shaders.LoadShaderProgram(r.ctx, r.cfg.Vertex, r.cfg.Fragment)
	if err := checkShaderErr(r.policy, r.Name(), prog, err); err != nil {
		if prog != nil {
			prog.Release()
		}
		return err
	}
	r.Prog = prog

	vertices, vertexCount := GenSineCurve(r.cfg.SamplePoints)

	r.Bo = buffers.NewBufferObject(r.ctx)
	r.Bo.AddData(vertices, vertexCount, sineCurveFloatCount*4)
	r.Bo.AddAttrib(sineCurveFloatCount)

	r.Curves = make([]Curve, r.cfg.Curves)
	for i := 0; i < len(r.Curves); i++ {
		r.Curves[i] = NewCurve(float32(i) / float32(len(r.Curves)))
	}

	return nil
}

// Update does nothing; curves step as they are drawn so each frame moves them exactly once.
func (r *Ribbon) Update(dt float32) {
}

func (r *Ribbon) Render(rend renderer.Render) {

	r.ctx.ClearColor(1, 1, 1, 1)
	r.ctx.Clear(gpu.ColorBufferBit | gpu.DepthBufferBit)

	for i := 0; i < len(r.Curves); i++ {

		c := &r.Curves[i]

		transform := gglm.NewTrMatWithPos(c.Trans.X(), c.Trans.Y(), c.Trans.Z())
		r.Prog.SetMat4("transform", &transform.Mat4)
		r.Prog.SetFloat("color", c.Color)

		c.Step()

		rend.DrawBufferObject(r.Bo, r.Prog)
	}
}

func (r *Ribbon) Resize(width, height int32) {
}

func (r *Ribbon) ShaderPaths() []string {
	return []string{r.cfg.Vertex, r.cfg.Fragment}
}

func (r *Ribbon) ReloadShaders() error {

	prog, err := shaders.ReloadShaderProgram(r.ctx, r.Prog)
	r.Prog = prog
	return err
}

func (r *Ribbon) DeInit() {

	if r.Bo != nil {
		r.Bo.Release()
	}

	if r.Prog != nil {
		r.Prog.Release()
	}
}
