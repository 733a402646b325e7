// package geometry is the graphics-API-agnostic mesh data model: vertex attribute
// layouts, growable format-locked vertex buffers, and indexed sub-mesh parts.
// It describes geometry in memory only; device upload is handled by the renderer
// package through the VertexBuffer contract.
package geometry

// PrimitiveType identifies the drawing topology applied to an index range.
type PrimitiveType int

const (
	// PrimitiveTriangleList draws independent triangles from each group of three indices.
	PrimitiveTriangleList PrimitiveType = iota

	// PrimitiveTriangleStrip draws a connected strip where each index after the second forms a triangle.
	PrimitiveTriangleStrip

	// PrimitiveLineList draws independent line segments from each pair of indices.
	PrimitiveLineList

	// PrimitiveLineStrip draws a connected polyline where each index after the first extends the line.
	PrimitiveLineStrip

	// PrimitivePointList draws one point per index.
	PrimitivePointList
)

// String returns a human-readable name for the primitive type, used in debug labels.
//
// Returns:
//   - string: the topology name
func (t PrimitiveType) String() string {
	switch t {
	case PrimitiveTriangleList:
		return "TriangleList"
	case PrimitiveTriangleStrip:
		return "TriangleStrip"
	case PrimitiveLineList:
		return "LineList"
	case PrimitiveLineStrip:
		return "LineStrip"
	case PrimitivePointList:
		return "PointList"
	default:
		return "Unknown"
	}
}
