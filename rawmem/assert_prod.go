//go:build !debug_vector_utils

package rawmem

// debugAssertSlot verifies that index is a legal slot address for a block of
// the provided capacity (the one-past-end address is legal to form). This
// method no-ops unless the debug_vector_utils build tag is present.
func debugAssertSlot(index, capacity int) {
}
