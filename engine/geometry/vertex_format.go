package geometry

// VertexFormat is an ordered sequence of vertex elements describing the
// in-memory layout of one vertex record. Order is significant: it is the
// attribute order within the vertex's stride. A VertexFormat is a value type
// and is never mutated in place — build a new one to change the layout.
type VertexFormat struct {
	elements     []VertexElement
	vertexFloats int
}

// NewVertexFormat creates a VertexFormat from an explicit element list. The
// list is copied. No duplicate or ordering validation is performed — duplicate
// attribute types are permitted and simply occupy separate stride slots.
//
// Parameters:
//   - elements: the ordered attribute elements
//
// Returns:
//   - VertexFormat: the constructed format
func NewVertexFormat(elements ...VertexElement) VertexFormat {
	f := VertexFormat{elements: make([]VertexElement, len(elements))}
	copy(f.elements, elements)
	for _, e := range f.elements {
		f.vertexFloats += int(e.Size)
	}
	return f
}

// NewVertexFormatFromTypes creates a VertexFormat with one default-sized
// element per type, in the given order.
//
// Parameters:
//   - types: the ordered attribute types
//
// Returns:
//   - VertexFormat: the constructed format
func NewVertexFormatFromTypes(types ...VertexElementType) VertexFormat {
	elements := make([]VertexElement, len(types))
	for i, t := range types {
		elements[i] = NewVertexElement(t, 0)
	}
	return NewVertexFormat(elements...)
}

// Len returns the number of elements in the format.
//
// Returns:
//   - int: the element count
func (f VertexFormat) Len() int {
	return len(f.elements)
}

// ElementAt returns the element at the given index. Bounds are
// caller-guaranteed: an out-of-range index panics.
//
// Parameters:
//   - index: the element index, 0 <= index < Len()
//
// Returns:
//   - VertexElement: the element at that index
func (f VertexFormat) ElementAt(index int) VertexElement {
	return f.elements[index]
}

// VertexFloats returns the vertex stride in scalar components — the sum of
// every element's size.
//
// Returns:
//   - int: the component stride
func (f VertexFormat) VertexFloats() int {
	return f.vertexFloats
}

// VertexSize returns the vertex stride in bytes.
//
// Returns:
//   - int: VertexFloats() * ComponentByteSize
func (f VertexFormat) VertexSize() int {
	return f.vertexFloats * ComponentByteSize
}

// IsValid reports whether the format describes rasterizable geometry: the
// stride must be non-zero and at least one element must be a position.
//
// Returns:
//   - bool: true if the format is valid
func (f VertexFormat) IsValid() bool {
	if f.vertexFloats == 0 {
		return false
	}
	for _, e := range f.elements {
		if e.Type == VertexElementPosition {
			return true
		}
	}
	return false
}

// Equals reports whether two formats have identical stride and
// element-by-element equality in order.
//
// Parameters:
//   - other: the format to compare against
//
// Returns:
//   - bool: true if the formats are equal
func (f VertexFormat) Equals(other VertexFormat) bool {
	if f.vertexFloats != other.vertexFloats || len(f.elements) != len(other.elements) {
		return false
	}
	for i, e := range f.elements {
		if e != other.elements[i] {
			return false
		}
	}
	return true
}
