package buffers

import (
	"github.com/bloeys/glribbon/gpu"
	"github.com/bloeys/glribbon/logging"
)

type VertexBuffer struct {
	Id uint32
	// Stride is the number of bytes between consecutive vertices. Updated in VertexBuffer.SetData
	Stride int32

	ctx gpu.Context
}

func (vb *VertexBuffer) Bind() {
	vb.ctx.BindBuffer(gpu.ArrayBuffer, vb.Id)
}

func (vb *VertexBuffer) UnBind() {
	vb.ctx.BindBuffer(gpu.ArrayBuffer, 0)
}

func (vb *VertexBuffer) SetData(values []float32, stride int32, usage BufUsage) {

	vb.Bind()

	vb.Stride = stride
	vb.ctx.BufferData(gpu.ArrayBuffer, values, usage.ToGL())
}

func (vb *VertexBuffer) Delete() {

	if vb.Id == 0 {
		return
	}

	vb.ctx.DeleteBuffer(vb.Id)
	vb.Id = 0
}

func NewVertexBuffer(ctx gpu.Context) VertexBuffer {

	vb := VertexBuffer{ctx: ctx}

	vb.Id = ctx.GenBuffer()
	if vb.Id == 0 {
		logging.ErrLog.Println("Failed to create OpenGL buffer")
	}

	return vb
}
