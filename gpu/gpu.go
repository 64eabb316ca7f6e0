// The gpu package defines Context, the handle through which every other package
// talks to the graphics driver.
//
// OpenGL keeps the currently bound objects as hidden global state. Passing a
// Context explicitly makes that dependency visible, and lets tests swap in a
// recording implementation (see gpu/gputest) that needs no window or driver.
//
// A Context must only be used from the thread that owns the GL context.
package gpu

import "github.com/go-gl/gl/v4.1-core/gl"

// Common GL enums re-exported so callers don't need to import the gl package
// just for constants.
const (
	ArrayBuffer = gl.ARRAY_BUFFER
	StaticDraw  = gl.STATIC_DRAW

	Triangles = gl.TRIANGLES

	VertexShader   = gl.VERTEX_SHADER
	FragmentShader = gl.FRAGMENT_SHADER

	Texture2D = gl.TEXTURE_2D

	DepthTest       = gl.DEPTH_TEST
	FramebufferSRGB = gl.FRAMEBUFFER_SRGB

	ColorBufferBit = gl.COLOR_BUFFER_BIT
	DepthBufferBit = gl.DEPTH_BUFFER_BIT
)

type Context interface {

	// Buffers
	GenVertexArray() uint32
	GenBuffer() uint32
	BindVertexArray(vao uint32)
	BindBuffer(target, buf uint32)
	BufferData(target uint32, data []float32, usage uint32)
	VertexAttribPointer(index uint32, size int32, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)
	DrawArrays(mode uint32, first, count int32)
	DeleteVertexArray(vao uint32)
	DeleteBuffer(buf uint32)

	// Shaders
	CreateShader(shaderType uint32) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(prog, shader uint32)
	LinkProgram(prog uint32)
	ProgramLinked(prog uint32) bool
	ProgramInfoLog(prog uint32) string
	UseProgram(prog uint32)
	DeleteProgram(prog uint32)

	// Uniforms. Writes are addressed to a program rather than to whatever is bound.
	UniformLocation(prog uint32, name string) int32
	ProgramUniform1i(prog uint32, loc int32, v int32)
	ProgramUniform1f(prog uint32, loc int32, v float32)
	ProgramUniformMatrix4(prog uint32, loc int32, m *[4][4]float32)

	// Textures
	GenTexture() uint32
	ActiveTexture(unit uint32)
	BindTexture(target, tex uint32)
	TexImage2DRGBA(width, height int32, pixels []uint8)
	DeleteTexture(tex uint32)

	// State
	Enable(capability uint32)
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	GetError() uint32
}
