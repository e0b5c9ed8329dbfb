package vector

// Iterator is a lightweight position within a vector's live range. Iterators
// support bidirectional traversal over [Begin, End) and are invalidated by
// any operation that reallocates or shifts elements (growth, positional
// insert, erase)- no invalidation tracking is performed, so using a stale
// iterator falls under the same unchecked contract as At.
type Iterator[T any] struct {
	vector *Vector[T]
	index  int
}

// Begin returns an iterator at the first live element. On an empty vector
// the result equals End and is not valid.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{vector: v, index: 0}
}

// End returns the one-past-end iterator. It is never valid to dereference.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{vector: v, index: v.length}
}

// IteratorAt returns an iterator positioned at index.
func (v *Vector[T]) IteratorAt(index int) Iterator[T] {
	DebugAssertPosition(index, v.length, "index")
	return Iterator[T]{vector: v, index: index}
}

// Valid reports whether the iterator addresses a live element.
func (it Iterator[T]) Valid() bool {
	return it.vector != nil && it.index >= 0 && it.index < it.vector.length
}

// Index returns the position this iterator addresses.
func (it Iterator[T]) Index() int {
	return it.index
}

// Ptr returns the address of the element at the iterator's position. Same
// contract as Vector.At.
func (it Iterator[T]) Ptr() *T {
	return it.vector.At(it.index)
}

// Value returns a copy of the element at the iterator's position.
func (it Iterator[T]) Value() T {
	return *it.Ptr()
}

// Next advances the iterator one position toward End.
func (it *Iterator[T]) Next() {
	it.index++
}

// Prev retreats the iterator one position toward Begin.
func (it *Iterator[T]) Prev() {
	it.index--
}

// Range will call the provided callback once for each live element in
// order, stopping early when the callback returns false. The callback must
// not mutate the vector in ways that reallocate or shift elements.
func (v *Vector[T]) Range(handleElement func(index int, elem *T) bool) {
	for i := 0; i < v.length; i++ {
		if !handleElement(i, v.storage.ElementPointer(i)) {
			return
		}
	}
}
