package effect

import (
	"github.com/Carmen-Shannon/mesh-go/engine/geometry"
)

// StaticEffectBuilderOption is a functional option for configuring an Effect via NewStaticEffect.
type StaticEffectBuilderOption func(*staticEffect)

// WithAttributeLocation is an option builder that binds one attribute role to
// a shader location. A later option for the same role overrides an earlier one.
//
// Parameters:
//   - elementType: the attribute role to bind
//   - location: the non-negative shader binding location
//
// Returns:
//   - StaticEffectBuilderOption: a function that applies the binding to the effect
func WithAttributeLocation(elementType geometry.VertexElementType, location int) StaticEffectBuilderOption {
	return func(e *staticEffect) {
		e.locations[elementType] = location
	}
}

// WithSequentialLocations is an option builder that binds the given attribute
// roles to sequential shader locations 0..n-1 in order. This matches the
// common shader convention where vertex inputs are declared in attribute order.
//
// Parameters:
//   - elementTypes: the attribute roles to bind, in location order
//
// Returns:
//   - StaticEffectBuilderOption: a function that applies the bindings to the effect
func WithSequentialLocations(elementTypes ...geometry.VertexElementType) StaticEffectBuilderOption {
	return func(e *staticEffect) {
		for i, t := range elementTypes {
			e.locations[t] = i
		}
	}
}
