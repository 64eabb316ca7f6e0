package shaders

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glribbon/gpu"
	"github.com/bloeys/glribbon/logging"
)

type LinkError struct {
	ProgramId uint32
	InfoLog   string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("linking of shader program with id %d failed. Err: %s", e.ProgramId, strings.TrimSpace(e.InfoLog))
}

// LinkResult is the outcome of linking a program
type LinkResult struct {
	Ok      bool
	InfoLog string
}

func (lr *LinkResult) Err(programId uint32) error {

	if lr.Ok {
		return nil
	}

	return &LinkError{ProgramId: programId, InfoLog: lr.InfoLog}
}

// ShaderProgram is a linked vertex+fragment program.
//
// A program is always linked exactly once, even if reading or compiling its stages failed,
// in which case Linked returns false and drawing with it produces nothing useful.
type ShaderProgram struct {
	Id           uint32
	VertShaderId uint32
	FragShaderId uint32

	VertPath string
	FragPath string

	linked bool
	ctx    gpu.Context
}

func (sp *ShaderProgram) AttachShader(shader Shader) {

	sp.ctx.AttachShader(sp.Id, shader.Id)
	switch shader.Type {
	case ShaderType_Vertex:
		sp.VertShaderId = shader.Id
	case ShaderType_Fragment:
		sp.FragShaderId = shader.Id
	default:
		logging.ErrLog.Fatalf("Unknown shader type '%d' for shader id '%d'\n", shader.Type, shader.Id)
	}
}

// Link links the attached shaders then deletes them, as they are no longer needed once linked
func (sp *ShaderProgram) Link() LinkResult {

	sp.ctx.LinkProgram(sp.Id)

	lr := LinkResult{Ok: sp.ctx.ProgramLinked(sp.Id)}
	if !lr.Ok {
		lr.InfoLog = sp.ctx.ProgramInfoLog(sp.Id)
		logging.ErrLog.Println("Linking of shader program with id", sp.Id, "failed. Err:", lr.InfoLog)
	}
	sp.linked = lr.Ok

	if sp.VertShaderId != 0 {
		sp.ctx.DeleteShader(sp.VertShaderId)
		sp.VertShaderId = 0
	}

	if sp.FragShaderId != 0 {
		sp.ctx.DeleteShader(sp.FragShaderId)
		sp.FragShaderId = 0
	}

	return lr
}

// Linked reports whether the program linked successfully and has not been released
func (sp *ShaderProgram) Linked() bool {
	return sp.linked && sp.Id != 0
}

// Use makes this the current program for following draw calls
func (sp *ShaderProgram) Use() {
	sp.ctx.UseProgram(sp.Id)
}

func (sp *ShaderProgram) UnUse() {
	sp.ctx.UseProgram(0)
}

// Bind makes this the current program and returns a func that unbinds it,
// which makes scoped use simple:
//
//	defer prog.Bind()()
func (sp *ShaderProgram) Bind() (unbind func()) {
	sp.Use()
	return sp.UnUse
}

// Uniform locations are looked up on every set. Writes target this program directly,
// so they never leak into whatever other program is currently in use.
// Names that aren't active uniforms of the program are silently ignored.

func (sp *ShaderProgram) SetBool(name string, val bool) {

	var v int32
	if val {
		v = 1
	}

	sp.ctx.ProgramUniform1i(sp.Id, sp.ctx.UniformLocation(sp.Id, name), v)
}

func (sp *ShaderProgram) SetInt(name string, val int32) {
	sp.ctx.ProgramUniform1i(sp.Id, sp.ctx.UniformLocation(sp.Id, name), val)
}

func (sp *ShaderProgram) SetFloat(name string, val float32) {
	sp.ctx.ProgramUniform1f(sp.Id, sp.ctx.UniformLocation(sp.Id, name), val)
}

func (sp *ShaderProgram) SetMat4(name string, mat4 *gglm.Mat4) {
	sp.ctx.ProgramUniformMatrix4(sp.Id, sp.ctx.UniformLocation(sp.Id, name), &mat4.Data)
}

// Release deletes the program. Releasing more than once is a no-op.
func (sp *ShaderProgram) Release() {

	if sp.Id == 0 {
		return
	}

	sp.ctx.DeleteProgram(sp.Id)
	sp.Id = 0
	sp.linked = false
}

func NewShaderProgram(ctx gpu.Context) (*ShaderProgram, error) {

	id := ctx.CreateProgram()
	if id == 0 {
		return nil, errors.New("failed to create shader program")
	}

	return &ShaderProgram{Id: id, ctx: ctx}, nil
}

// LoadShaderProgram reads, compiles, and links a vertex and a fragment shader.
//
// Failures along the way don't stop the process: an unreadable file is treated as an empty source,
// and a stage that fails to compile is still attached. So unless the program object itself
// couldn't be created, a non-nil program is always returned, and the error (if any) joins
// every read, compile, and link failure that happened. Callers decide whether that is fatal.
func LoadShaderProgram(ctx gpu.Context, vertPath, fragPath string) (*ShaderProgram, error) {

	vertSrc, vertReadErr := ReadShaderSource(vertPath, ShaderType_Vertex)
	fragSrc, fragReadErr := ReadShaderSource(fragPath, ShaderType_Fragment)

	sp, err := LoadShaderProgramSrc(ctx, vertSrc, fragSrc)
	if sp == nil {
		return nil, errors.Join(vertReadErr, fragReadErr, err)
	}

	sp.VertPath = vertPath
	sp.FragPath = fragPath

	return sp, errors.Join(vertReadErr, fragReadErr, err)
}

// LoadShaderProgramSrc is like LoadShaderProgram but with in-memory sources
func LoadShaderProgramSrc(ctx gpu.Context, vertSrc, fragSrc []byte) (*ShaderProgram, error) {

	sp, err := NewShaderProgram(ctx)
	if err != nil {
		return nil, err
	}

	vert := CompileShaderOfType(ctx, vertSrc, ShaderType_Vertex)
	frag := CompileShaderOfType(ctx, fragSrc, ShaderType_Fragment)

	if vert.Shader.Id != 0 {
		sp.AttachShader(vert.Shader)
	}

	if frag.Shader.Id != 0 {
		sp.AttachShader(frag.Shader)
	}

	lr := sp.Link()

	return sp, errors.Join(vert.Err(), frag.Err(), lr.Err(sp.Id))
}

// ReloadShaderProgram builds a fresh program from the files old was loaded from.
//
// If the new program links, old is released and the new one returned.
// Otherwise the new program is released and old is returned untouched along with the error.
func ReloadShaderProgram(ctx gpu.Context, old *ShaderProgram) (*ShaderProgram, error) {

	sp, err := LoadShaderProgram(ctx, old.VertPath, old.FragPath)
	if sp == nil {
		return old, err
	}

	if !sp.Linked() {
		sp.Release()
		if err == nil {
			err = errors.New("reloaded shader program did not link")
		}
		return old, err
	}

	old.Release()
	return sp, err
}
