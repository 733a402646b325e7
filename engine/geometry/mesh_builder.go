package geometry

// MeshBuilderOption is a functional option for configuring a Mesh via NewMesh.
type MeshBuilderOption func(*mesh)

// WithVertexFormat is an option builder that sets the initial vertex layout of the Mesh.
// Equivalent to calling SetVertexFormat on the empty mesh.
//
// Parameters:
//   - format: the vertex layout to assign
//
// Returns:
//   - MeshBuilderOption: a function that applies the vertex format option to a mesh
func WithVertexFormat(format VertexFormat) MeshBuilderOption {
	return func(m *mesh) {
		m.SetVertexFormat(format)
	}
}

// WithParts is an option builder that appends initial parts to the Mesh in order.
//
// Parameters:
//   - parts: the parts to append
//
// Returns:
//   - MeshBuilderOption: a function that applies the parts option to a mesh
func WithParts(parts ...MeshPart) MeshBuilderOption {
	return func(m *mesh) {
		for _, p := range parts {
			m.AddPart(p)
		}
	}
}
