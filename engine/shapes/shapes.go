// package shapes provides procedural mesh generators for common primitives.
// Every generator returns a ready-to-upload geometry.Mesh with a
// Position/Normal/TexCoord0 vertex format and triangle-list parts.
package shapes

import (
	"fmt"

	"github.com/Carmen-Shannon/mesh-go/engine/geometry"
)

// Format returns the vertex format shared by all generated shapes:
// Position(3), Normal(3), TexCoord0(2) — an 8-component stride.
//
// Returns:
//   - geometry.VertexFormat: the shape vertex format
func Format() geometry.VertexFormat {
	return geometry.NewVertexFormatFromTypes(
		geometry.VertexElementPosition,
		geometry.VertexElementNormal,
		geometry.VertexElementTexCoord0,
	)
}

// Quad generates a unit quad in the XY plane, centered on the origin, facing +Z.
//
// Returns:
//   - geometry.Mesh: a mesh with 4 vertices and one 6-index triangle-list part
func Quad() geometry.Mesh {
	m := geometry.NewMesh(geometry.WithVertexFormat(Format()))
	m.AddVertices([]float32{
		-0.5, -0.5, 0, 0, 0, 1, 0, 0,
		0.5, -0.5, 0, 0, 0, 1, 1, 0,
		0.5, 0.5, 0, 0, 0, 1, 1, 1,
		-0.5, 0.5, 0, 0, 0, 1, 0, 1,
	})
	m.AddPartIndices(geometry.PrimitiveTriangleList, 0, 1, 2, 2, 3, 0)
	return m
}

// cubeFace pairs four corner positions with the face normal they share.
type cubeFace struct {
	positions [4][3]float32
	normal    [3]float32
}

// cubeFaces defines the six faces of a unit cube, four corners per face in
// counter-clockwise order when viewed from outside.
var cubeFaces = [6]cubeFace{
	{positions: [4][3]float32{{0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}, {0.5, -0.5, 0.5}}, normal: [3]float32{1, 0, 0}},
	{positions: [4][3]float32{{-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}, {-0.5, -0.5, -0.5}}, normal: [3]float32{-1, 0, 0}},
	{positions: [4][3]float32{{-0.5, 0.5, -0.5}, {-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}}, normal: [3]float32{0, 1, 0}},
	{positions: [4][3]float32{{-0.5, -0.5, 0.5}, {-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}}, normal: [3]float32{0, -1, 0}},
	{positions: [4][3]float32{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}, normal: [3]float32{0, 0, 1}},
	{positions: [4][3]float32{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}, normal: [3]float32{0, 0, -1}},
}

// faceUVs are the texture coordinates assigned to each face corner in order.
var faceUVs = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// Cube generates a unit cube centered on the origin with per-face normals.
//
// Returns:
//   - geometry.Mesh: a mesh with 24 vertices and one 36-index triangle-list part
func Cube() geometry.Mesh {
	m := geometry.NewMesh(geometry.WithVertexFormat(Format()))
	part := geometry.NewMeshPart(geometry.PrimitiveTriangleList)
	for _, face := range cubeFaces {
		base := uint16(m.VertexCount())
		for i, pos := range face.positions {
			m.AddVertex([]float32{
				pos[0], pos[1], pos[2],
				face.normal[0], face.normal[1], face.normal[2],
				faceUVs[i][0], faceUVs[i][1],
			})
		}
		part.Add(base, base+1, base+2, base+2, base+3, base)
	}
	m.AddPart(part)
	return m
}

// Grid generates a flat grid of cols×rows cells in the XZ plane, centered on
// the origin, facing +Y, with each cell cellSize units on a side. Texture
// coordinates span the full grid once. The generated vertex count must fit the
// mesh's 16-bit index range; exceeding it is a contract violation and panics.
//
// Parameters:
//   - cols: the number of cells along X (must be >= 1)
//   - rows: the number of cells along Z (must be >= 1)
//   - cellSize: the edge length of one cell
//
// Returns:
//   - geometry.Mesh: a mesh with (cols+1)*(rows+1) vertices and one triangle-list part
func Grid(cols, rows int, cellSize float32) geometry.Mesh {
	if cols < 1 || rows < 1 {
		panic("shapes: Grid requires at least one cell in each direction")
	}
	vertexCount := (cols + 1) * (rows + 1)
	if vertexCount > 1<<16 {
		panic(fmt.Sprintf("shapes: Grid of %dx%d cells needs %d vertices, exceeding the 16-bit index range",
			cols, rows, vertexCount))
	}

	m := geometry.NewMesh(geometry.WithVertexFormat(Format()))
	width := float32(cols) * cellSize
	depth := float32(rows) * cellSize

	for z := 0; z <= rows; z++ {
		for x := 0; x <= cols; x++ {
			m.AddVertex([]float32{
				float32(x)*cellSize - width/2, 0, float32(z)*cellSize - depth/2,
				0, 1, 0,
				float32(x) / float32(cols), float32(z) / float32(rows),
			})
		}
	}

	part := geometry.NewMeshPart(geometry.PrimitiveTriangleList)
	stride := uint16(cols + 1)
	for z := 0; z < rows; z++ {
		for x := 0; x < cols; x++ {
			topLeft := uint16(z)*stride + uint16(x)
			bottomLeft := topLeft + stride
			part.Add(
				topLeft, bottomLeft, bottomLeft+1,
				bottomLeft+1, topLeft+1, topLeft,
			)
		}
	}
	m.AddPart(part)
	return m
}
