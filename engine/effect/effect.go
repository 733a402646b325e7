// package effect defines the attribute-location resolver contract consumed by
// device-binding backends: given a vertex attribute's semantic role, an Effect
// answers which shader binding location the attribute feeds, or reports that
// the attribute has no binding at all.
package effect

import (
	"github.com/Carmen-Shannon/mesh-go/engine/geometry"
)

// AttributeLocationNotFound is the sentinel returned by AttributeLocation for
// an attribute the effect does not bind. It is the sole recoverable, in-band
// error signal at this boundary — callers must branch on it explicitly; it is
// the backend's decision whether an unmapped attribute is an error.
const AttributeLocationNotFound = -1

// Effect resolves vertex attribute roles to shader binding locations.
// Backends hold an Effect opaquely; the geometry layer never depends on a
// concrete implementation.
type Effect interface {
	// AttributeLocation returns the non-negative binding location for the
	// given attribute role, or AttributeLocationNotFound if the effect does
	// not bind it.
	//
	// Parameters:
	//   - elementType: the attribute role to resolve
	//
	// Returns:
	//   - int: the binding location, or AttributeLocationNotFound
	AttributeLocation(elementType geometry.VertexElementType) int
}

// staticEffect is the unexported implementation of Effect backed by a fixed
// role-to-location table.
type staticEffect struct {
	locations map[geometry.VertexElementType]int
}

// Compile-time check that staticEffect implements Effect.
var _ Effect = &staticEffect{}

// NewStaticEffect creates an Effect backed by a fixed attribute-location table
// built from the provided options. Roles absent from the table resolve to
// AttributeLocationNotFound.
//
// Parameters:
//   - options: a variadic list of StaticEffectBuilderOption functions to configure the effect
//
// Returns:
//   - Effect: a new table-driven Effect configured with the provided options
func NewStaticEffect(options ...StaticEffectBuilderOption) Effect {
	e := &staticEffect{
		locations: make(map[geometry.VertexElementType]int),
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

func (e *staticEffect) AttributeLocation(elementType geometry.VertexElementType) int {
	loc, ok := e.locations[elementType]
	if !ok {
		return AttributeLocationNotFound
	}
	return loc
}
