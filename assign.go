package vector

// Clone duplicates exactly the live elements into a fresh vector whose
// capacity equals the source length. A failed copy destroys the partially
// built clone and returns the error; the source is never modified.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	clone := &Vector[T]{
		lifecycle:       v.lifecycle,
		relocatesByMove: v.relocatesByMove,
		logger:          v.logger,
	}

	if v.length == 0 {
		return clone, nil
	}

	err := clone.storage.Init(v.length)
	if err != nil {
		return nil, err
	}

	for i := 0; i < v.length; i++ {
		err = clone.copyConstruct(clone.storage.ElementPointer(i), v.storage.ElementPointer(i))
		if err != nil {
			clone.destroyRange(0, i)
			clone.length = 0
			clone.storage.Release()
			return nil, err
		}
		clone.length++
	}

	DebugValidate(clone)
	return clone, nil
}

// CloneFrom replaces this vector's contents with duplicates of src's
// elements. When src is larger than the current capacity a full clone is
// built and swapped in, so a failure leaves this vector untouched. When
// capacity already suffices the existing storage is reused: the overlapping
// prefix is overwritten by copy assignment, then the excess tail is either
// destroyed (src shorter) or copy-constructed (src longer). A failure on the
// in-place path may leave already-overwritten prefix elements behind- the
// length is never left inconsistent.
func (v *Vector[T]) CloneFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}

	if src.length > v.storage.Capacity() {
		clone, err := src.Clone()
		if err != nil {
			return err
		}
		v.Swap(clone)
		clone.Destroy()
		return nil
	}

	overlap := minOf(src.length, v.length)
	for i := 0; i < overlap; i++ {
		err := v.copyAssign(v.storage.ElementPointer(i), src.storage.ElementPointer(i))
		if err != nil {
			return err
		}
	}

	if src.length < v.length {
		v.destroyRange(src.length, v.length-src.length)
	} else {
		for i := v.length; i < src.length; i++ {
			err := v.copyConstruct(v.storage.ElementPointer(i), src.storage.ElementPointer(i))
			if err != nil {
				v.destroyRange(v.length, i-v.length)
				return err
			}
		}
	}

	v.length = src.length
	DebugValidate(v)
	return nil
}

// TakeFrom transfers src's block and elements to this vector in constant
// time, destroying this vector's previous elements. src is left valid and
// empty, though it may retain superseded slot storage until destroyed.
func (v *Vector[T]) TakeFrom(src *Vector[T]) {
	if v == src {
		return
	}

	v.destroyRange(0, v.length)
	v.length = 0
	v.Swap(src)
}

// Swap exchanges the blocks and lengths of two vectors in constant time. No
// element is constructed or destroyed and the operation cannot fail. Both
// vectors must manage their elements with the same lifecycle.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.storage.Swap(&other.storage)
	v.length, other.length = other.length, v.length
}
