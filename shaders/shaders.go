package shaders

import (
	"fmt"
	"os"
	"strings"

	"github.com/bloeys/glribbon/gpu"
	"github.com/bloeys/glribbon/logging"
)

type Shader struct {
	Id   uint32
	Type ShaderType

	ctx gpu.Context
}

func (s *Shader) Delete() {

	if s.Id == 0 {
		return
	}

	s.ctx.DeleteShader(s.Id)
	s.Id = 0
}

// CompileResult is the outcome of compiling a single shader stage.
// The shader object exists even when compilation failed, so it can still be attached and linked.
type CompileResult struct {
	Shader Shader
	// Path is the file the source came from, if any
	Path    string
	Ok      bool
	InfoLog string
}

// Err returns a *CompileError when compilation failed, and nil otherwise
func (cr *CompileResult) Err() error {

	if cr.Ok {
		return nil
	}

	return &CompileError{Type: cr.Shader.Type, Path: cr.Path, InfoLog: cr.InfoLog}
}

type CompileError struct {
	Type    ShaderType
	Path    string
	InfoLog string
}

func (e *CompileError) Error() string {

	if e.Path == "" {
		return fmt.Sprintf("compilation of %s shader failed. Err: %s", e.Type, strings.TrimSpace(e.InfoLog))
	}

	return fmt.Sprintf("compilation of %s shader '%s' failed. Err: %s", e.Type, e.Path, strings.TrimSpace(e.InfoLog))
}

// ReadShaderSource reads a shader file. On failure the error is logged and an empty source is returned
// alongside it, so the caller can carry on and produce a (broken) program.
func ReadShaderSource(shaderPath string, shaderType ShaderType) ([]byte, error) {

	src, err := os.ReadFile(shaderPath)
	if err != nil {
		logging.ErrLog.Printf("Failed to read %s shader at '%s'. Err: %v\n", shaderType, shaderPath, err)
		return []byte{}, fmt.Errorf("failed to read %s shader '%s': %w", shaderType, shaderPath, err)
	}

	return src, nil
}

// CompileShaderOfType creates and compiles a shader. The returned result holds the shader
// even if compilation failed, in which case the driver diagnostics are logged and stored in InfoLog.
func CompileShaderOfType(ctx gpu.Context, shaderSource []byte, shaderType ShaderType) CompileResult {

	shaderId := ctx.CreateShader(shaderType.ToGl())
	if shaderId == 0 {
		infoLog := fmt.Sprintf("failed to create OpenGL shader. OpenGL Error=%d", ctx.GetError())
		logging.ErrLog.Println(infoLog)
		return CompileResult{Shader: Shader{Type: shaderType, ctx: ctx}, InfoLog: infoLog}
	}

	ctx.ShaderSource(shaderId, string(shaderSource))
	ctx.CompileShader(shaderId)

	cr := CompileResult{
		Shader: Shader{Id: shaderId, Type: shaderType, ctx: ctx},
		Ok:     ctx.ShaderCompiled(shaderId),
	}

	if !cr.Ok {
		cr.InfoLog = ctx.ShaderInfoLog(shaderId)
		logging.ErrLog.Println("Compilation of", shaderType, "shader with id", shaderId, "failed. Err:", cr.InfoLog)
	}

	return cr
}
