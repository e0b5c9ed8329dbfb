//go:build debug_vector_utils

package rawmem

import "fmt"

// debugAssertSlot verifies that index is a legal slot address for a block of
// the provided capacity (the one-past-end address is legal to form). This
// method no-ops unless the debug_vector_utils build tag is present.
func debugAssertSlot(index, capacity int) {
	if index < 0 || index > capacity {
		panic(fmt.Sprintf("slot index %d is outside the legal range [0, %d]", index, capacity))
	}
}
