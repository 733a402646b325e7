package geometry

// meshPart is the unexported implementation of MeshPart.
type meshPart struct {
	primitiveType PrimitiveType
	indexData     []uint16
}

// MeshPart is one drawable sub-range of a Mesh: an ordered, append-only
// sequence of 16-bit vertex indices drawn with a single primitive topology.
// A part is owned by exactly one Mesh and has no existence independent of it.
// Indices are caller-trusted — they are never validated against the owning
// Mesh's vertex count.
type MeshPart interface {
	// PrimitiveType returns the drawing topology for this part.
	//
	// Returns:
	//   - PrimitiveType: the topology
	PrimitiveType() PrimitiveType

	// SetPrimitiveType changes the drawing topology without touching the
	// part's index data. The topology of an existing part is mutable.
	//
	// Parameters:
	//   - primitiveType: the topology to set
	SetPrimitiveType(primitiveType PrimitiveType)

	// Add appends indices to the end of the existing sequence. An empty call
	// is a no-op. Indices are not validated against any vertex count.
	//
	// Parameters:
	//   - indices: the indices to append
	Add(indices ...uint16)

	// Len returns the number of indices in the part.
	//
	// Returns:
	//   - int: the index count
	Len() int

	// IndexData returns the part's index sequence. The returned slice is the
	// part's backing storage — callers must not mutate it.
	//
	// Returns:
	//   - []uint16: the ordered indices
	IndexData() []uint16
}

// Compile-time check that meshPart implements MeshPart.
var _ MeshPart = &meshPart{}

// NewMeshPart creates a MeshPart with the given topology and the provided
// options applied.
//
// Parameters:
//   - primitiveType: the drawing topology for the part
//   - options: a variadic list of MeshPartBuilderOption functions to configure the part
//
// Returns:
//   - MeshPart: a new instance of MeshPart configured with the provided options
func NewMeshPart(primitiveType PrimitiveType, options ...MeshPartBuilderOption) MeshPart {
	p := &meshPart{primitiveType: primitiveType}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *meshPart) PrimitiveType() PrimitiveType {
	return p.primitiveType
}

func (p *meshPart) SetPrimitiveType(primitiveType PrimitiveType) {
	p.primitiveType = primitiveType
}

func (p *meshPart) Add(indices ...uint16) {
	if len(indices) == 0 {
		return
	}
	p.indexData = append(p.indexData, indices...)
}

func (p *meshPart) Len() int {
	return len(p.indexData)
}

func (p *meshPart) IndexData() []uint16 {
	return p.indexData
}
