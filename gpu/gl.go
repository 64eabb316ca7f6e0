package gpu

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ Context = &GL{}

// GL is the Context backed by the real OpenGL 4.1 core driver.
// gl.Init must have been called (see engine) before any method is used.
type GL struct{}

func NewGL() *GL {
	return &GL{}
}

func (*GL) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (*GL) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (*GL) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (*GL) BindBuffer(target, buf uint32) {
	gl.BindBuffer(target, buf)
}

func (*GL) BufferData(target uint32, data []float32, usage uint32) {

	sizeInBytes := len(data) * 4
	if sizeInBytes == 0 {
		gl.BufferData(target, 0, gl.Ptr(nil), usage)
		return
	}

	gl.BufferData(target, sizeInBytes, gl.Ptr(&data[0]), usage)
}

func (*GL) VertexAttribPointer(index uint32, size int32, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, stride, offset)
}

func (*GL) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (*GL) DrawArrays(mode uint32, first, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (*GL) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (*GL) DeleteBuffer(buf uint32) {
	gl.DeleteBuffers(1, &buf)
}

func (*GL) CreateShader(shaderType uint32) uint32 {
	return gl.CreateShader(shaderType)
}

func (*GL) ShaderSource(shader uint32, src string) {
	shaderCStr, shaderFree := gl.Strs(src + "\x00")
	defer shaderFree()
	gl.ShaderSource(shader, 1, shaderCStr, nil)
}

func (*GL) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (*GL) ShaderCompiled(shader uint32) bool {
	var compiledSuccessfully int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &compiledSuccessfully)
	return compiledSuccessfully == gl.TRUE
}

func (*GL) ShaderInfoLog(shader uint32) string {

	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}

	log := gl.Str(strings.Repeat("\x00", int(logLength)))
	gl.GetShaderInfoLog(shader, logLength, nil, log)
	return gl.GoStr(log)
}

func (*GL) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (*GL) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (*GL) AttachShader(prog, shader uint32) {
	gl.AttachShader(prog, shader)
}

func (*GL) LinkProgram(prog uint32) {
	gl.LinkProgram(prog)
}

func (*GL) ProgramLinked(prog uint32) bool {
	var linkedSuccessfully int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &linkedSuccessfully)
	return linkedSuccessfully == gl.TRUE
}

func (*GL) ProgramInfoLog(prog uint32) string {

	var logLength int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}

	log := gl.Str(strings.Repeat("\x00", int(logLength)))
	gl.GetProgramInfoLog(prog, logLength, nil, log)
	return gl.GoStr(log)
}

func (*GL) UseProgram(prog uint32) {
	gl.UseProgram(prog)
}

func (*GL) DeleteProgram(prog uint32) {
	gl.DeleteProgram(prog)
}

func (*GL) UniformLocation(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

func (*GL) ProgramUniform1i(prog uint32, loc int32, v int32) {
	gl.ProgramUniform1i(prog, loc, v)
}

func (*GL) ProgramUniform1f(prog uint32, loc int32, v float32) {
	gl.ProgramUniform1f(prog, loc, v)
}

func (*GL) ProgramUniformMatrix4(prog uint32, loc int32, m *[4][4]float32) {
	gl.ProgramUniformMatrix4fv(prog, loc, 1, false, &m[0][0])
}

func (*GL) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (*GL) ActiveTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
}

func (*GL) BindTexture(target, tex uint32) {
	gl.BindTexture(target, tex)
}

// TexImage2DRGBA uploads 8-bit RGBA pixels into the currently bound 2D texture
// and generates its mipmaps.
func (*GL) TexImage2DRGBA(width, height int32, pixels []uint8) {

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	var ptr = gl.Ptr(nil)
	if len(pixels) > 0 {
		ptr = gl.Ptr(&pixels[0])
	}

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.SRGB_ALPHA, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, ptr)
	gl.GenerateMipmap(gl.TEXTURE_2D)
}

func (*GL) DeleteTexture(tex uint32) {
	gl.DeleteTextures(1, &tex)
}

func (*GL) Enable(capability uint32) {
	gl.Enable(capability)
}

func (*GL) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (*GL) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (*GL) Clear(mask uint32) {
	gl.Clear(mask)
}

func (*GL) GetError() uint32 {
	return gl.GetError()
}
