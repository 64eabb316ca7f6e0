package materials

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glribbon/assets"
	"github.com/bloeys/glribbon/shaders"
)

var (
	lastMatId uint32
)

type TextureSlot uint32

const (
	TextureSlot_Diffuse TextureSlot = 0
)

// Material is a shader program plus the textures it samples from.
type Material struct {
	Id         uint32
	Name       string
	ShaderProg *shaders.ShaderProgram

	// DiffuseTex is optional
	DiffuseTex *assets.Texture
}

func (m *Material) Bind() {

	m.ShaderProg.Use()

	if m.DiffuseTex != nil {
		m.DiffuseTex.Bind(uint32(TextureSlot_Diffuse))
	}
}

func (m *Material) UnBind() {
	m.ShaderProg.UnUse()
}

// SetDiffuseTex sets the diffuse texture and points the 'diffTex' sampler at its slot
func (m *Material) SetDiffuseTex(tex *assets.Texture) {
	m.DiffuseTex = tex
	m.ShaderProg.SetInt("diffTex", int32(TextureSlot_Diffuse))
}

func (m *Material) SetUnifInt32(uniformName string, val int32) {
	m.ShaderProg.SetInt(uniformName, val)
}

func (m *Material) SetUnifFloat32(uniformName string, val float32) {
	m.ShaderProg.SetFloat(uniformName, val)
}

func (m *Material) SetUnifMat4(uniformName string, mat4 *gglm.Mat4) {
	m.ShaderProg.SetMat4(uniformName, mat4)
}

// Delete releases the shader program and the textures of the material
func (m *Material) Delete() {

	m.ShaderProg.Release()

	if m.DiffuseTex != nil {
		m.DiffuseTex.Delete()
	}
}

func getNewMatId() uint32 {
	lastMatId++
	return lastMatId
}

// NewMaterial wraps an already loaded shader program
func NewMaterial(matName string, shaderProg *shaders.ShaderProgram) *Material {
	return &Material{
		Id:         getNewMatId(),
		Name:       matName,
		ShaderProg: shaderProg,
	}
}
