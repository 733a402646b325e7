package geometry

import (
	"fmt"

	"github.com/Carmen-Shannon/mesh-go/common"
)

// mesh is the unexported implementation of Mesh.
type mesh struct {
	vertexFormat VertexFormat
	vertexData   []float32
	vertexCount  int
	parts        []MeshPart
}

// Mesh owns one vertex format, a flat scalar buffer holding all vertex data,
// and an ordered collection of indexed parts. It is the unit handed to a
// device-binding backend for upload.
//
// The format is set-once: assigning a vertex format to a mesh that already
// holds vertex data is a contract violation and panics. Vertex and index
// storage grow append-only; vertices and parts are never removed.
//
// A Mesh is not internally synchronized. The design assumes a single writer;
// callers sharing a Mesh across goroutines must supply their own mutual
// exclusion, and readers must not overlap with writers.
type Mesh interface {
	// VertexFormat returns the mesh's vertex layout.
	//
	// Returns:
	//   - VertexFormat: the current format (zero value if never set)
	VertexFormat() VertexFormat

	// SetVertexFormat assigns the mesh's vertex layout. Allowed only while the
	// mesh holds no vertex data; panics once VertexCount() > 0. Callers that
	// may be late must check VertexCount first.
	//
	// Parameters:
	//   - format: the vertex layout to assign
	SetVertexFormat(format VertexFormat)

	// VertexCount returns the number of vertices currently in the mesh.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// VertexData returns the flat scalar buffer holding all vertex data, with
	// length VertexCount() * VertexFormat().VertexFloats(). The returned slice
	// is the mesh's backing storage — callers must not mutate it.
	//
	// Returns:
	//   - []float32: the vertex components
	VertexData() []float32

	// VertexBytes returns the vertex data packed little-endian for GPU upload.
	//
	// Returns:
	//   - []byte: the packed vertex buffer
	VertexBytes() []byte

	// AddVertex appends one vertex. The format must be valid and the component
	// count must equal VertexFormat().VertexFloats() exactly; panics otherwise.
	//
	// Parameters:
	//   - components: the vertex's scalar components, one full stride
	//
	// Returns:
	//   - int: the zero-based index assigned to the vertex
	AddVertex(components []float32) int

	// AddVertices appends one or more vertices in a single call. The format
	// must be valid and the component count must be a positive exact multiple
	// of VertexFormat().VertexFloats(); panics otherwise.
	//
	// Parameters:
	//   - components: the scalar components for N whole vertices
	//
	// Returns:
	//   - int: the zero-based index of the first appended vertex
	AddVertices(components []float32) int

	// AddPart appends a part to the ordered parts list. Part indices are not
	// validated against the mesh's vertex count.
	//
	// Parameters:
	//   - part: the part to append
	//
	// Returns:
	//   - MeshPart: the appended part
	AddPart(part MeshPart) MeshPart

	// AddPartIndices constructs a part from a topology and raw indices and
	// appends it to the ordered parts list.
	//
	// Parameters:
	//   - primitiveType: the drawing topology for the new part
	//   - indices: the part's initial indices
	//
	// Returns:
	//   - MeshPart: the appended part
	AddPartIndices(primitiveType PrimitiveType, indices ...uint16) MeshPart

	// PartCount returns the number of parts in the mesh.
	//
	// Returns:
	//   - int: the part count
	PartCount() int

	// PartAt returns the part at the given index. Bounds are
	// caller-guaranteed: an out-of-range index panics.
	//
	// Parameters:
	//   - index: the part index, 0 <= index < PartCount()
	//
	// Returns:
	//   - MeshPart: the part at that index
	PartAt(index int) MeshPart

	// IndexData returns the concatenation of every part's index sequence in
	// part-insertion order, each part's run contiguous and unmodified — no
	// renumbering, no de-duplication, no gaps. With zero parts the result is
	// empty; with exactly one part the part's own sequence may be returned
	// directly, so callers must not mutate the result.
	//
	// Returns:
	//   - []uint16: the aggregated index sequence
	IndexData() []uint16

	// IndexBytes returns the aggregated index data packed little-endian for
	// GPU upload.
	//
	// Returns:
	//   - []byte: the packed index buffer
	IndexBytes() []byte

	// IndexCount returns the total number of indices across all parts.
	//
	// Returns:
	//   - int: the aggregated index count
	IndexCount() int
}

// Compile-time check that mesh implements Mesh.
var _ Mesh = &mesh{}

// NewMesh creates an empty Mesh with the provided options applied.
//
// Parameters:
//   - options: a variadic list of MeshBuilderOption functions to configure the Mesh
//
// Returns:
//   - Mesh: a new instance of Mesh configured with the provided options
func NewMesh(options ...MeshBuilderOption) Mesh {
	m := &mesh{}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *mesh) VertexFormat() VertexFormat {
	return m.vertexFormat
}

func (m *mesh) SetVertexFormat(format VertexFormat) {
	if m.vertexCount > 0 {
		panic("geometry: vertex format may not change once the mesh holds vertex data")
	}
	m.vertexFormat = format
}

func (m *mesh) VertexCount() int {
	return m.vertexCount
}

func (m *mesh) VertexData() []float32 {
	return m.vertexData
}

func (m *mesh) VertexBytes() []byte {
	return common.Float32Bytes(m.vertexData)
}

func (m *mesh) AddVertex(components []float32) int {
	if !m.vertexFormat.IsValid() {
		panic("geometry: AddVertex requires a valid vertex format")
	}
	if len(components) != m.vertexFormat.VertexFloats() {
		panic(fmt.Sprintf("geometry: AddVertex requires exactly %d components, got %d",
			m.vertexFormat.VertexFloats(), len(components)))
	}
	index := m.vertexCount
	m.vertexData = append(m.vertexData, components...)
	m.vertexCount++
	return index
}

func (m *mesh) AddVertices(components []float32) int {
	if !m.vertexFormat.IsValid() {
		panic("geometry: AddVertices requires a valid vertex format")
	}
	stride := m.vertexFormat.VertexFloats()
	if len(components) == 0 || len(components)%stride != 0 {
		panic(fmt.Sprintf("geometry: AddVertices requires a positive multiple of %d components, got %d",
			stride, len(components)))
	}
	index := m.vertexCount
	m.vertexData = append(m.vertexData, components...)
	m.vertexCount += len(components) / stride
	return index
}

func (m *mesh) AddPart(part MeshPart) MeshPart {
	m.parts = append(m.parts, part)
	return part
}

func (m *mesh) AddPartIndices(primitiveType PrimitiveType, indices ...uint16) MeshPart {
	return m.AddPart(NewMeshPart(primitiveType, WithIndices(indices...)))
}

func (m *mesh) PartCount() int {
	return len(m.parts)
}

func (m *mesh) PartAt(index int) MeshPart {
	return m.parts[index]
}

func (m *mesh) IndexData() []uint16 {
	if len(m.parts) == 1 {
		return m.parts[0].IndexData()
	}
	// Size the aggregate to the full index count before copying any part.
	total := 0
	for _, p := range m.parts {
		total += p.Len()
	}
	aggregated := make([]uint16, 0, total)
	for _, p := range m.parts {
		aggregated = append(aggregated, p.IndexData()...)
	}
	return aggregated
}

func (m *mesh) IndexBytes() []byte {
	return common.Uint16Bytes(m.IndexData())
}

func (m *mesh) IndexCount() int {
	total := 0
	for _, p := range m.parts {
		total += p.Len()
	}
	return total
}
