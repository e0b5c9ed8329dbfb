package vector

import "golang.org/x/exp/constraints"

func maxOf[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func minOf[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// grownCapacity returns the capacity to allocate when implicit growth is
// triggered: double the current capacity, or 1 when the vector was empty,
// but never less than required.
func grownCapacity(current, required int) int {
	return maxOf(required, maxOf(1, current*2))
}
