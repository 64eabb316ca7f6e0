package buffers

import (
	"github.com/bloeys/glribbon/assert"
	"github.com/bloeys/glribbon/gpu"
)

// BufUsage is a hint to the driver about how often buffer data changes.
// Vertex data here is uploaded once and drawn every frame, so static draw is the only usage.
//
// Full docs: https://registry.khronos.org/OpenGL-Refpages/gl4/html/glBufferData.xhtml
type BufUsage int

const (
	BufUsage_Unknown BufUsage = iota

	// Set once, drawn many times
	BufUsage_Static_Draw
)

func (b BufUsage) ToGL() uint32 {

	switch b {
	case BufUsage_Static_Draw:
		return gpu.StaticDraw
	}

	assert.T(false, "Unexpected BufUsage value '%d'", b)
	return gpu.StaticDraw
}

func (b BufUsage) String() string {

	switch b {
	case BufUsage_Static_Draw:
		return "StaticDraw"
	default:
		return "Unknown"
	}
}
