package buffers

import (
	"github.com/bloeys/glribbon/assert"
	"github.com/bloeys/glribbon/gpu"
)

// BufferObject owns one vertex array and the single vertex buffer that feeds it,
// and draws the whole buffer as a list of triangles.
//
// Usage is always: AddData, then AddAttrib, then any number of Draw calls,
// and finally Release. Attributes depend on the stride given to AddData.
type BufferObject struct {
	Vao VertexArray
	Vbo VertexBuffer

	// VertexCount is the number of vertices drawn by Draw. Updated in BufferObject.AddData
	VertexCount int32
	// Layout is the attribute layout set by the last AddAttrib call
	Layout []Element
}

// AddData uploads vertices as static data.
// stride is the size of one vertex in bytes.
//
// No check is done that vertices actually holds vertexCount vertices of stride bytes each.
func (bo *BufferObject) AddData(vertices []float32, vertexCount, stride int32) {

	bo.Vao.Bind()

	bo.VertexCount = vertexCount
	bo.Vbo.SetData(vertices, stride, BufUsage_Static_Draw)

	bo.Vao.UnBind()
}

// AddAttrib defines attribute i as attribSizes[i] floats, laid out one after the other inside each vertex.
func (bo *BufferObject) AddAttrib(attribSizes ...int32) {

	assert.T(bo.Vbo.Stride != 0, "BufferObject.AddAttrib called before BufferObject.AddData (vao=%d)", bo.Vao.Id)

	bo.Layout = Layout(attribSizes...)
	bo.Vao.SetLayout(&bo.Vbo, bo.Layout)
}

func (bo *BufferObject) Draw() {
	bo.Vao.Bind()
	bo.Vao.ctx.DrawArrays(gpu.Triangles, 0, bo.VertexCount)
	bo.Vao.UnBind()
}

// Release frees the GPU objects. Releasing more than once is a no-op.
func (bo *BufferObject) Release() {
	bo.Vao.Delete()
	bo.Vbo.Delete()
	bo.VertexCount = 0
}

func NewBufferObject(ctx gpu.Context) *BufferObject {

	bo := &BufferObject{
		Vao: NewVertexArray(ctx),
		Vbo: NewVertexBuffer(ctx),
	}

	// Attach the vbo to the vao straight away, like the layout calls would
	bo.Vao.Bind()
	bo.Vbo.Bind()
	bo.Vao.UnBind()

	return bo
}
