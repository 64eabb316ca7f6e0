package shaders

import (
	"github.com/bloeys/glribbon/gpu"
	"github.com/bloeys/glribbon/logging"
)

type ShaderType int32

const (
	ShaderType_Unknown ShaderType = iota
	ShaderType_Vertex
	ShaderType_Fragment
)

func (s ShaderType) ToGl() uint32 {

	switch s {
	case ShaderType_Vertex:
		return gpu.VertexShader
	case ShaderType_Fragment:
		return gpu.FragmentShader
	default:
		logging.ErrLog.Fatalf("Unknown shader type '%d'\n", s)
		return 0
	}
}

func (s ShaderType) String() string {

	switch s {
	case ShaderType_Vertex:
		return "vertex"
	case ShaderType_Fragment:
		return "fragment"
	default:
		return "unknown"
	}
}
