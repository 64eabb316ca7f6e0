package renderer

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glribbon/buffers"
	"github.com/bloeys/glribbon/materials"
	"github.com/bloeys/glribbon/meshes"
	"github.com/bloeys/glribbon/shaders"
)

type Render interface {
	// DrawBufferObject draws bo using whatever uniforms are currently set on prog
	DrawBufferObject(bo *buffers.BufferObject, prog *shaders.ShaderProgram)
	// DrawMesh sets the 'mvp' uniform of mat from the current projection-view matrix and modelMat, then draws
	DrawMesh(mesh *meshes.Mesh, modelMat *gglm.TrMat, mat *materials.Material)
	SetProjViewMat(projViewMat *gglm.Mat4)
	FrameEnd()
}
