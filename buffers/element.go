package buffers

import "github.com/bloeys/glribbon/assert"

const float32Size = 4

// Element represents one vertex attribute inside an interleaved vertex buffer,
// for example a vec3 position made of 3 float32s starting at byte 12.
type Element struct {
	// Offset is the byte offset of the element from the start of its vertex
	Offset int32
	// CompCount is the number of float32 components (e.g. 3 for a vec3)
	CompCount int32
}

// Size returns the size of the element in bytes
func (e Element) Size() int32 {
	return e.CompCount * float32Size
}

// Layout turns a list of attribute sizes (in floats) into elements with running byte offsets.
// Element i starts at the sum of the sizes in bytes of all elements before it.
func Layout(attribSizes ...int32) []Element {

	layout := make([]Element, len(attribSizes))

	var offset int32
	for i := 0; i < len(attribSizes); i++ {

		assert.T(attribSizes[i] > 0 && attribSizes[i] <= 4, "Attribute %d has invalid component count %d; must be in [1, 4]", i, attribSizes[i])

		layout[i] = Element{Offset: offset, CompCount: attribSizes[i]}
		offset += layout[i].Size()
	}

	return layout
}

// LayoutSize returns the number of bytes one vertex of the layout occupies
func LayoutSize(layout []Element) int32 {

	var size int32
	for i := 0; i < len(layout); i++ {
		size += layout[i].Size()
	}

	return size
}
