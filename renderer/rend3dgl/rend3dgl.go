package rend3dgl

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glribbon/buffers"
	"github.com/bloeys/glribbon/materials"
	"github.com/bloeys/glribbon/meshes"
	"github.com/bloeys/glribbon/renderer"
	"github.com/bloeys/glribbon/shaders"
)

var _ renderer.Render = &Rend3DGL{}

// Rend3DGL avoids rebinding programs and materials that are already bound within a frame
type Rend3DGL struct {
	BoundProgId uint32
	BoundMatId  uint32

	ProjViewMat gglm.Mat4
}

func (r *Rend3DGL) DrawBufferObject(bo *buffers.BufferObject, prog *shaders.ShaderProgram) {

	if prog.Id != r.BoundProgId {
		prog.Use()
		r.BoundProgId = prog.Id
		r.BoundMatId = 0
	}

	bo.Draw()
}

func (r *Rend3DGL) DrawMesh(mesh *meshes.Mesh, modelMat *gglm.TrMat, mat *materials.Material) {

	if mat.Id != r.BoundMatId {
		mat.Bind()
		r.BoundMatId = mat.Id
		r.BoundProgId = mat.ShaderProg.Id
	}

	mvp := r.ProjViewMat.Clone().Mul(&modelMat.Mat4)
	mat.SetUnifMat4("mvp", mvp)

	mesh.Draw()
}

func (r *Rend3DGL) SetProjViewMat(projViewMat *gglm.Mat4) {
	r.ProjViewMat = *projViewMat
}

func (r *Rend3DGL) FrameEnd() {
	r.BoundProgId = 0
	r.BoundMatId = 0
}

func NewRend3DGL() *Rend3DGL {
	return &Rend3DGL{
		ProjViewMat: gglm.NewTrMatId().Mat4,
	}
}
