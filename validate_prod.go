//go:build !debug_vector_utils

package vector

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_vector_utils build tag is present
func DebugValidate(validatable Validatable) {
}

// DebugAssertIndex verifies that index addresses a live element in a range of the
// provided length. This method no-ops unless the debug_vector_utils build tag is present.
func DebugAssertIndex(index, length int, name string) {
}

// DebugAssertPosition verifies that index is a legal insertion position in a range of the
// provided length (one-past-end is a legal position). This method no-ops unless the
// debug_vector_utils build tag is present.
func DebugAssertPosition(index, length int, name string) {
}
