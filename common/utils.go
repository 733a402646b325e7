// package common contains small helpers shared across the geometry layer. They are not
// interface-wrapped components, just plain functions over commonly used data-types.
package common

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
// Builders use this to fall back to defaults when an option was left unset.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
