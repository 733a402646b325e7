package geometry

// MeshPartBuilderOption is a functional option for configuring a MeshPart via NewMeshPart.
type MeshPartBuilderOption func(*meshPart)

// WithIndices is an option builder that seeds the part with initial index data.
// The indices are appended in order, exactly as a subsequent Add call would.
//
// Parameters:
//   - indices: the initial indices for the part
//
// Returns:
//   - MeshPartBuilderOption: a function that applies the indices option to a mesh part
func WithIndices(indices ...uint16) MeshPartBuilderOption {
	return func(p *meshPart) {
		p.Add(indices...)
	}
}
