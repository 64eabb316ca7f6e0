// Package gputest provides a gpu.Context that records every call into plain
// Go state instead of talking to a driver. It models just enough of OpenGL's
// binding rules for tests to assert on what the real driver would have seen.
package gputest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bloeys/glribbon/gpu"
)

var _ gpu.Context = &Recorder{}

var uniformDeclRegex = regexp.MustCompile(`uniform\s+\w+\s+(\w+)\s*;`)

type Attrib struct {
	Index   uint32
	Size    int32
	Stride  int32
	Offset  uintptr
	Buffer  uint32
	Enabled bool
}

type VertexArray struct {
	Id          uint32
	Attribs     map[uint32]*Attrib
	DeleteCount int
}

type Buffer struct {
	Id          uint32
	Target      uint32
	Data        []float32
	Usage       uint32
	DeleteCount int
}

type Shader struct {
	Id          uint32
	Type        uint32
	Source      string
	Compiled    bool
	InfoLog     string
	DeleteCount int
}

type Program struct {
	Id          uint32
	Attached    []uint32
	Linked      bool
	InfoLog     string
	DeleteCount int

	// Uniforms holds the last value written to each active uniform by name
	Uniforms map[string]any

	locations map[string]int32
	names     map[int32]string
}

type Texture struct {
	Id          uint32
	Width       int32
	Height      int32
	Pixels      []uint8
	DeleteCount int
}

type Draw struct {
	Mode        uint32
	First       int32
	Count       int32
	VertexArray uint32
	Program     uint32
}

// CompileFunc decides whether a shader source compiles, returning the info log on failure
type CompileFunc func(shaderType uint32, src string) (ok bool, infoLog string)

type Recorder struct {
	VertexArrays map[uint32]*VertexArray
	Buffers      map[uint32]*Buffer
	Shaders      map[uint32]*Shader
	Programs     map[uint32]*Program
	Textures     map[uint32]*Texture

	BoundVertexArray  uint32
	BoundArrayBuffer  uint32
	CurrentProgram    uint32
	ActiveTextureUnit uint32
	BoundTextures     map[uint32]uint32

	Draws        []Draw
	Enabled      map[uint32]bool
	ViewportXYWH [4]int32
	ClearRGBA    [4]float32
	Clears       []uint32

	Compile CompileFunc

	lastId uint32
}

func NewRecorder() *Recorder {
	return &Recorder{
		VertexArrays:  map[uint32]*VertexArray{},
		Buffers:       map[uint32]*Buffer{},
		Shaders:       map[uint32]*Shader{},
		Programs:      map[uint32]*Program{},
		Textures:      map[uint32]*Texture{},
		BoundTextures: map[uint32]uint32{},
		Enabled:       map[uint32]bool{},
		Compile:       DefaultCompile,
	}
}

// DefaultCompile fails empty sources and sources containing an '#error' directive
func DefaultCompile(shaderType uint32, src string) (bool, string) {

	if strings.TrimSpace(src) == "" {
		return false, "0:1(1): error: syntax error, unexpected end of file"
	}

	if i := strings.Index(src, "#error"); i != -1 {
		line := src[i:]
		if nl := strings.IndexByte(line, '\n'); nl != -1 {
			line = line[:nl]
		}
		return false, "0:1(1): error: " + strings.TrimSpace(line)
	}

	return true, ""
}

func (r *Recorder) newId() uint32 {
	r.lastId++
	return r.lastId
}

func (r *Recorder) GenVertexArray() uint32 {
	id := r.newId()
	r.VertexArrays[id] = &VertexArray{Id: id, Attribs: map[uint32]*Attrib{}}
	return id
}

func (r *Recorder) GenBuffer() uint32 {
	id := r.newId()
	r.Buffers[id] = &Buffer{Id: id}
	return id
}

func (r *Recorder) BindVertexArray(vao uint32) {
	r.BoundVertexArray = vao
}

func (r *Recorder) BindBuffer(target, buf uint32) {
	if target == gpu.ArrayBuffer {
		r.BoundArrayBuffer = buf
	}
}

func (r *Recorder) BufferData(target uint32, data []float32, usage uint32) {

	if target != gpu.ArrayBuffer {
		return
	}

	b, ok := r.Buffers[r.BoundArrayBuffer]
	if !ok {
		return
	}

	b.Target = target
	b.Usage = usage
	b.Data = append([]float32(nil), data...)
}

func (r *Recorder) VertexAttribPointer(index uint32, size int32, stride int32, offset uintptr) {

	vao, ok := r.VertexArrays[r.BoundVertexArray]
	if !ok {
		return
	}

	a := vao.attrib(index)
	a.Size = size
	a.Stride = stride
	a.Offset = offset
	a.Buffer = r.BoundArrayBuffer
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {

	vao, ok := r.VertexArrays[r.BoundVertexArray]
	if !ok {
		return
	}

	vao.attrib(index).Enabled = true
}

func (va *VertexArray) attrib(index uint32) *Attrib {

	a, ok := va.Attribs[index]
	if !ok {
		a = &Attrib{Index: index}
		va.Attribs[index] = a
	}

	return a
}

func (r *Recorder) DrawArrays(mode uint32, first, count int32) {
	r.Draws = append(r.Draws, Draw{
		Mode:        mode,
		First:       first,
		Count:       count,
		VertexArray: r.BoundVertexArray,
		Program:     r.CurrentProgram,
	})
}

func (r *Recorder) DeleteVertexArray(vao uint32) {
	if va, ok := r.VertexArrays[vao]; ok {
		va.DeleteCount++
	}
}

func (r *Recorder) DeleteBuffer(buf uint32) {
	if b, ok := r.Buffers[buf]; ok {
		b.DeleteCount++
	}
}

func (r *Recorder) CreateShader(shaderType uint32) uint32 {
	id := r.newId()
	r.Shaders[id] = &Shader{Id: id, Type: shaderType}
	return id
}

func (r *Recorder) ShaderSource(shader uint32, src string) {
	if s, ok := r.Shaders[shader]; ok {
		s.Source = src
	}
}

func (r *Recorder) CompileShader(shader uint32) {

	s, ok := r.Shaders[shader]
	if !ok {
		return
	}

	s.Compiled, s.InfoLog = r.Compile(s.Type, s.Source)
}

func (r *Recorder) ShaderCompiled(shader uint32) bool {
	s, ok := r.Shaders[shader]
	return ok && s.Compiled
}

func (r *Recorder) ShaderInfoLog(shader uint32) string {
	if s, ok := r.Shaders[shader]; ok {
		return s.InfoLog
	}
	return ""
}

func (r *Recorder) DeleteShader(shader uint32) {
	if s, ok := r.Shaders[shader]; ok {
		s.DeleteCount++
	}
}

func (r *Recorder) CreateProgram() uint32 {
	id := r.newId()
	r.Programs[id] = &Program{
		Id:        id,
		Uniforms:  map[string]any{},
		locations: map[string]int32{},
		names:     map[int32]string{},
	}
	return id
}

func (r *Recorder) AttachShader(prog, shader uint32) {
	if p, ok := r.Programs[prog]; ok {
		p.Attached = append(p.Attached, shader)
	}
}

func (r *Recorder) LinkProgram(prog uint32) {

	p, ok := r.Programs[prog]
	if !ok {
		return
	}

	clear(p.locations)
	clear(p.names)

	hasVert, hasFrag := false, false
	for _, shaderId := range p.Attached {

		s := r.Shaders[shaderId]
		if s == nil || !s.Compiled {
			p.Linked = false
			p.InfoLog = fmt.Sprintf("error: linking with uncompiled/unspecialized shader %d", shaderId)
			return
		}

		hasVert = hasVert || s.Type == gpu.VertexShader
		hasFrag = hasFrag || s.Type == gpu.FragmentShader

		for _, m := range uniformDeclRegex.FindAllStringSubmatch(s.Source, -1) {

			name := m[1]
			if _, ok := p.locations[name]; ok {
				continue
			}

			loc := int32(len(p.locations))
			p.locations[name] = loc
			p.names[loc] = name
		}
	}

	if !hasVert || !hasFrag {
		p.Linked = false
		p.InfoLog = "error: program needs both a vertex and a fragment shader"
		clear(p.locations)
		clear(p.names)
		return
	}

	p.Linked = true
	p.InfoLog = ""
}

func (r *Recorder) ProgramLinked(prog uint32) bool {
	p, ok := r.Programs[prog]
	return ok && p.Linked
}

func (r *Recorder) ProgramInfoLog(prog uint32) string {
	if p, ok := r.Programs[prog]; ok {
		return p.InfoLog
	}
	return ""
}

func (r *Recorder) UseProgram(prog uint32) {
	r.CurrentProgram = prog
}

func (r *Recorder) DeleteProgram(prog uint32) {
	if p, ok := r.Programs[prog]; ok {
		p.DeleteCount++
	}
}

func (r *Recorder) UniformLocation(prog uint32, name string) int32 {

	p, ok := r.Programs[prog]
	if !ok || !p.Linked {
		return -1
	}

	loc, ok := p.locations[name]
	if !ok {
		return -1
	}

	return loc
}

func (r *Recorder) setUniform(prog uint32, loc int32, v any) {

	if loc == -1 {
		return
	}

	p, ok := r.Programs[prog]
	if !ok {
		return
	}

	name, ok := p.names[loc]
	if !ok {
		return
	}

	p.Uniforms[name] = v
}

func (r *Recorder) ProgramUniform1i(prog uint32, loc int32, v int32) {
	r.setUniform(prog, loc, v)
}

func (r *Recorder) ProgramUniform1f(prog uint32, loc int32, v float32) {
	r.setUniform(prog, loc, v)
}

func (r *Recorder) ProgramUniformMatrix4(prog uint32, loc int32, m *[4][4]float32) {
	r.setUniform(prog, loc, *m)
}

func (r *Recorder) GenTexture() uint32 {
	id := r.newId()
	r.Textures[id] = &Texture{Id: id}
	return id
}

func (r *Recorder) ActiveTexture(unit uint32) {
	r.ActiveTextureUnit = unit
}

func (r *Recorder) BindTexture(target, tex uint32) {
	if target == gpu.Texture2D {
		r.BoundTextures[r.ActiveTextureUnit] = tex
	}
}

func (r *Recorder) TexImage2DRGBA(width, height int32, pixels []uint8) {

	t, ok := r.Textures[r.BoundTextures[r.ActiveTextureUnit]]
	if !ok {
		return
	}

	t.Width = width
	t.Height = height
	t.Pixels = append([]uint8(nil), pixels...)
}

func (r *Recorder) DeleteTexture(tex uint32) {
	if t, ok := r.Textures[tex]; ok {
		t.DeleteCount++
	}
}

func (r *Recorder) Enable(capability uint32) {
	r.Enabled[capability] = true
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.ViewportXYWH = [4]int32{x, y, width, height}
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.ClearRGBA = [4]float32{red, green, blue, alpha}
}

func (r *Recorder) Clear(mask uint32) {
	r.Clears = append(r.Clears, mask)
}

func (r *Recorder) GetError() uint32 {
	return 0
}
