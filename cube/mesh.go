package cube

import (
	"structs"

	"github.com/oliverbestmann/spincube/glm"
)

const VerticesPerFace = 4

const VertexCount = FaceCount * VerticesPerFace

// two triangles per face
const IndexCount = FaceCount * 2 * 3

// Vertex is the interleaved vertex layout uploaded to the gpu.
type Vertex struct {
	_ structs.HostLayout

	Position glm.Vec3f
	Color    glm.Vec3f
}

// ColorFunc picks the color of a face.
type ColorFunc func(face Face) glm.Vec3f

var positions = [VertexCount]glm.Vec3f{
	// left
	{-1, -1, -1},
	{-1, -1, 1},
	{-1, 1, 1},
	{-1, 1, -1},

	// right
	{1, 1, -1},
	{1, 1, 1},
	{1, -1, 1},
	{1, -1, -1},

	// top
	{-1, 1, -1},
	{-1, 1, 1},
	{1, 1, 1},
	{1, 1, -1},

	// bottom
	{-1, -1, 1},
	{-1, -1, -1},
	{1, -1, -1},
	{1, -1, 1},

	// front
	{-1, 1, -1},
	{1, 1, -1},
	{1, -1, -1},
	{-1, -1, -1},

	// back
	{-1, -1, 1},
	{1, -1, 1},
	{1, 1, 1},
	{-1, 1, 1},
}

// Positions returns the corners of the cube, four per face. Corners are
// duplicated between faces so each face can carry its own color.
func Positions() [VertexCount]glm.Vec3f {
	return positions
}

// FacePositions returns the four corners of a single face.
func FacePositions(face Face) [VerticesPerFace]glm.Vec3f {
	base := int(face) * VerticesPerFace
	return [VerticesPerFace]glm.Vec3f(positions[base : base+VerticesPerFace])
}

// Indices returns the triangle list of the cube, each face is split
// into the triangles (0, 1, 2) and (0, 2, 3) of its own vertices.
func Indices() [IndexCount]uint16 {
	var indices [IndexCount]uint16

	for _, face := range Faces {
		base := uint16(face) * VerticesPerFace
		offset := int(face) * 6

		copy(indices[offset:offset+6], []uint16{
			base, base + 1, base + 2,
			base, base + 2, base + 3,
		})
	}

	return indices
}

// Vertices builds the interleaved vertex data, colors is called once per face
// and its result is shared by all vertices of that face.
func Vertices(colors ColorFunc) []Vertex {
	vertices := make([]Vertex, 0, VertexCount)

	for _, face := range Faces {
		color := colors(face)

		for _, pos := range FacePositions(face) {
			vertices = append(vertices, Vertex{Position: pos, Color: color})
		}
	}

	return vertices
}

// RandomColors returns a ColorFunc that assigns a random color to each face.
// The colors are drawn once, repeated calls for a face return the same color.
func RandomColors() ColorFunc {
	var colors [FaceCount]glm.Vec3f
	for idx := range colors {
		colors[idx] = glm.RandomVec3[float32]()
	}

	return PaletteColors(colors)
}

// PaletteColors maps each face to the color at its index.
func PaletteColors(palette [FaceCount]glm.Vec3f) ColorFunc {
	return func(face Face) glm.Vec3f {
		return palette[face]
	}
}
