package geometry

// ComponentByteSize is the size in bytes of a single vertex scalar component (float32).
const ComponentByteSize = 4

// VertexElementType identifies the semantic role of one vertex attribute.
type VertexElementType int

const (
	// VertexElementPosition is the vertex position attribute. A format without a
	// position element is never valid — geometry without positions cannot be rasterized.
	VertexElementPosition VertexElementType = iota

	// VertexElementNormal is the vertex normal attribute used for lighting.
	VertexElementNormal

	// VertexElementColor is the per-vertex RGBA color attribute.
	VertexElementColor

	// VertexElementTexCoord0 through VertexElementTexCoord7 are UV texture
	// coordinate attributes for up to eight texture channels.
	VertexElementTexCoord0
	VertexElementTexCoord1
	VertexElementTexCoord2
	VertexElementTexCoord3
	VertexElementTexCoord4
	VertexElementTexCoord5
	VertexElementTexCoord6
	VertexElementTexCoord7
)

// DefaultSize returns the default component count for the element type:
// 3 for positions and normals, 4 for colors, 2 for texture coordinates.
//
// Returns:
//   - uint8: the default number of float32 components
func (t VertexElementType) DefaultSize() uint8 {
	switch t {
	case VertexElementPosition, VertexElementNormal:
		return 3
	case VertexElementColor:
		return 4
	default:
		return 2
	}
}

// String returns a human-readable name for the element type, used in debug labels.
//
// Returns:
//   - string: the attribute name
func (t VertexElementType) String() string {
	switch t {
	case VertexElementPosition:
		return "Position"
	case VertexElementNormal:
		return "Normal"
	case VertexElementColor:
		return "Color"
	case VertexElementTexCoord0, VertexElementTexCoord1, VertexElementTexCoord2,
		VertexElementTexCoord3, VertexElementTexCoord4, VertexElementTexCoord5,
		VertexElementTexCoord6, VertexElementTexCoord7:
		return "TexCoord" + string(rune('0'+int(t-VertexElementTexCoord0)))
	default:
		return "Unknown"
	}
}

// VertexElement describes one vertex attribute: its semantic role and its
// component count. Elements are immutable once constructed.
type VertexElement struct {
	// Type is the semantic role of the attribute.
	Type VertexElementType

	// Size is the attribute's component count (float32 components).
	Size uint8
}

// NewVertexElement creates a VertexElement for the given type. A size of 0
// applies the type's default component count. Always succeeds.
//
// Parameters:
//   - elementType: the semantic role of the attribute
//   - size: the component count, or 0 to use the type's default
//
// Returns:
//   - VertexElement: the constructed element
func NewVertexElement(elementType VertexElementType, size uint8) VertexElement {
	if size == 0 {
		size = elementType.DefaultSize()
	}
	return VertexElement{Type: elementType, Size: size}
}

// ByteSize returns the attribute's size in bytes.
//
// Returns:
//   - int: Size * ComponentByteSize
func (e VertexElement) ByteSize() int {
	return int(e.Size) * ComponentByteSize
}
