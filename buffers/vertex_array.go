package buffers

import (
	"github.com/bloeys/glribbon/gpu"
	"github.com/bloeys/glribbon/logging"
)

type VertexArray struct {
	Id uint32

	ctx gpu.Context
}

func (va *VertexArray) Bind() {
	va.ctx.BindVertexArray(va.Id)
}

func (va *VertexArray) UnBind() {
	va.ctx.BindVertexArray(0)
}

// SetLayout describes how the vertices of vbo are split into attributes.
// Attribute i of the vao is layout[i]. The vbo stride is used as-is, so the
// vbo should have data (and therefore a stride) before this is called.
func (va *VertexArray) SetLayout(vbo *VertexBuffer, layout []Element) {

	// NOTE: VBOs are only bound to the VAO at 'VertexAttribPointer' (and related) calls

	va.Bind()
	vbo.Bind()

	for i := 0; i < len(layout); i++ {

		l := &layout[i]

		va.ctx.VertexAttribPointer(uint32(i), l.CompCount, vbo.Stride, uintptr(l.Offset))
		va.ctx.EnableVertexAttribArray(uint32(i))
	}

	va.UnBind()
}

func (va *VertexArray) Delete() {

	if va.Id == 0 {
		return
	}

	va.ctx.DeleteVertexArray(va.Id)
	va.Id = 0
}

func NewVertexArray(ctx gpu.Context) VertexArray {

	vao := VertexArray{ctx: ctx}

	vao.Id = ctx.GenVertexArray()
	if vao.Id == 0 {
		logging.ErrLog.Println("Failed to create OpenGL vertex array object")
	}

	return vao
}
