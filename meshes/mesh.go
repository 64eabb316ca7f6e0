package meshes

import (
	"errors"

	"github.com/bloeys/assimp-go/asig"
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glribbon/assert"
	"github.com/bloeys/glribbon/buffers"
	"github.com/bloeys/glribbon/gpu"
)

const (
	// PosUvFloatCount is the number of floats in one vertex of a pos+uv triangle list
	PosUvFloatCount = 3 + 2
	// PosUvStride is the byte size of one vertex of a pos+uv triangle list
	PosUvStride = PosUvFloatCount * 4
)

type Mesh struct {
	Name string
	/*
		Bo has the following shader attribute layout:
			- Loc0: Pos (vec3)
			- Loc1: UV0 (vec2)
	*/
	Bo *buffers.BufferObject
}

func (m *Mesh) Draw() {
	m.Bo.Draw()
}

func (m *Mesh) Release() {
	m.Bo.Release()
}

var (
	// DefaultMeshLoadFlags are the flags always applied when loading a new mesh regardless
	// of what post process flags are used when loading a mesh.
	//
	// Triangulation is required since meshes are drawn as plain triangle lists.
	DefaultMeshLoadFlags asig.PostProcess = asig.PostProcessTriangulate
)

// NewMesh uploads a pos+uv triangle list into a new buffer object
func NewMesh(ctx gpu.Context, name string, vertices []float32) Mesh {

	assert.T(len(vertices)%PosUvFloatCount == 0, "Vertex data of mesh '%s' has %d floats, which isn't a multiple of %d", name, len(vertices), PosUvFloatCount)

	bo := buffers.NewBufferObject(ctx)
	bo.AddData(vertices, int32(len(vertices)/PosUvFloatCount), PosUvStride)
	bo.AddAttrib(3, 2)

	return Mesh{
		Name: name,
		Bo:   bo,
	}
}

// NewCubeMesh returns a unit cube centered at the origin
func NewCubeMesh(ctx gpu.Context) Mesh {
	return NewMesh(ctx, "cube", CubeVertices)
}

// NewMeshFromFile loads every sub-mesh in a model file into a single pos+uv triangle list
func NewMeshFromFile(ctx gpu.Context, name, modelPath string, postProcessFlags asig.PostProcess) (Mesh, error) {

	vertices, err := LoadTriangleList(modelPath, postProcessFlags)
	if err != nil {
		return Mesh{}, err
	}

	return NewMesh(ctx, name, vertices), nil
}

// LoadTriangleList imports a model file and returns its vertices as an
// interleaved pos(3)+uv(2) list where every 3 vertices make one triangle.
// Meshes without UVs get zero UVs.
func LoadTriangleList(modelPath string, postProcessFlags asig.PostProcess) ([]float32, error) {

	scene, release, err := asig.ImportFile(modelPath, DefaultMeshLoadFlags|postProcessFlags)
	if err != nil {
		return nil, errors.New("Failed to load model. Err: " + err.Error())
	}
	defer release()

	if len(scene.Meshes) == 0 {
		return nil, errors.New("No meshes found in file: " + modelPath)
	}

	var vertices []float32
	for i := 0; i < len(scene.Meshes); i++ {

		sceneMesh := scene.Meshes[i]
		if len(sceneMesh.Faces) == 0 {
			continue
		}

		uvs := sceneMesh.TexCoords[0]
		if len(uvs) == 0 {
			uvs = make([]gglm.Vec3, len(sceneMesh.Vertices))
		}

		vertices = append(vertices, triangleList(sceneMesh.Vertices, uvs, flattenFaces(sceneMesh.Faces))...)
	}

	if len(vertices) == 0 {
		return nil, errors.New("No triangles found in file: " + modelPath)
	}

	return vertices, nil
}

// triangleList expands indexed vertices into a flat pos+uv list, one vertex per index
func triangleList(positions, uvs []gglm.Vec3, indices []uint32) []float32 {

	assert.T(len(positions) == len(uvs), "Positions and UVs are not the same length. Positions: %d; UVs: %d", len(positions), len(uvs))

	out := make([]float32, 0, len(indices)*PosUvFloatCount)
	for _, idx := range indices {

		pos := &positions[idx]
		uv := &uvs[idx]
		out = append(out, pos.X(), pos.Y(), pos.Z(), uv.X(), uv.Y())
	}

	return out
}

// flattenFaces returns the indices of all triangle faces.
// Triangulation leaves point and line primitives as they are, so those are skipped.
func flattenFaces(faces []asig.Face) []uint32 {

	uints := make([]uint32, 0, len(faces)*3)
	for i := 0; i < len(faces); i++ {

		indices := faces[i].Indices
		if len(indices) != 3 {
			continue
		}

		uints = append(uints, uint32(indices[0]), uint32(indices[1]), uint32(indices[2]))
	}

	return uints
}
