package vector

import (
	"github.com/vkngwrapper/vector/rawmem"
)

// PushBack appends a duplicate of value via the copy hook. On error the
// vector is unchanged.
func (v *Vector[T]) PushBack(value T) error {
	_, err := v.EmplaceBack(func(dst *T) error {
		return v.copyConstruct(dst, &value)
	})
	return err
}

// PushBackMove appends by relocating value into the vector. value is left
// in a destructible state. On error the vector is unchanged.
func (v *Vector[T]) PushBackMove(value *T) error {
	_, err := v.EmplaceBack(func(dst *T) error {
		return v.moveConstruct(dst, value)
	})
	return err
}

// EmplaceBack constructs a new element directly in its final slot and
// returns its address. A nil constructor default-constructs. When the block
// is full, the new element is constructed into its slot in the doubled block
// before any existing element is relocated, so a failed construction leaves
// the vector untouched. The returned address is invalidated by any
// operation that reallocates or shifts elements.
func (v *Vector[T]) EmplaceBack(ctor Constructor[T]) (*T, error) {
	if v.length == v.storage.Capacity() {
		return v.emplaceBackGrow(ctor)
	}

	ptr := v.storage.ElementPointer(v.length)
	err := v.construct(ptr, ctor)
	if err != nil {
		return nil, err
	}

	v.length++
	DebugValidate(v)
	return ptr, nil
}

func (v *Vector[T]) emplaceBackGrow(ctor Constructor[T]) (*T, error) {
	var newBlock rawmem.Block[T]
	err := newBlock.Init(grownCapacity(v.storage.Capacity(), v.length+1))
	if err != nil {
		return nil, err
	}

	ptr := newBlock.ElementPointer(v.length)
	err = v.construct(ptr, ctor)
	if err != nil {
		newBlock.Release()
		return nil, err
	}

	err = v.relocateRange(&newBlock, 0, 0, v.length)
	if err != nil {
		v.destroyAt(ptr)
		newBlock.Release()
		return nil, err
	}

	v.adoptBlock(&newBlock)
	v.length++
	DebugValidate(v)
	return ptr, nil
}

// PopBack destroys the last live element. It is a defensive no-op on an
// empty vector and never fails.
func (v *Vector[T]) PopBack() {
	if v.length == 0 {
		return
	}

	v.length--
	v.destroyAt(v.storage.ElementPointer(v.length))
	DebugValidate(v)
}

// Insert places a duplicate of value at index, shifting the elements at or
// after index one slot toward the tail. index must lie in [0, Len()]-
// inserting at Len() is an append.
func (v *Vector[T]) Insert(index int, value T) error {
	_, err := v.Emplace(index, func(dst *T) error {
		return v.copyConstruct(dst, &value)
	})
	return err
}

// InsertMove is the relocating variant of Insert. value is left in a
// destructible state.
func (v *Vector[T]) InsertMove(index int, value *T) error {
	_, err := v.Emplace(index, func(dst *T) error {
		return v.moveConstruct(dst, value)
	})
	return err
}

// Emplace constructs a new element at index, shifting the elements at or
// after index one slot toward the tail, and returns the new element's
// address. A nil constructor default-constructs. index must lie in
// [0, Len()]- emplacing at Len() is an append.
//
// With capacity available the new element is built in a temporary first, so
// a failed construction leaves the vector unmodified; the shift itself works
// backward from the tail to avoid overlap corruption. At capacity, the
// prefix, the new element, and the suffix are each relocated into their
// final offsets in a doubled block, and any failure destroys whatever was
// constructed in the not-yet-adopted block before the error propagates.
func (v *Vector[T]) Emplace(index int, ctor Constructor[T]) (*T, error) {
	DebugAssertPosition(index, v.length, "index")

	if v.length == v.storage.Capacity() {
		return v.emplaceGrow(index, ctor)
	}

	if index == v.length {
		return v.EmplaceBack(ctor)
	}

	var tmp T
	err := v.construct(&tmp, ctor)
	if err != nil {
		return nil, err
	}

	// Move-construct the tail element into the one-past-end raw slot, then
	// shift the rest back by move assignment.
	err = v.moveConstruct(v.storage.ElementPointer(v.length), v.storage.ElementPointer(v.length-1))
	if err != nil {
		v.destroyAt(&tmp)
		return nil, err
	}

	for i := v.length - 1; i > index; i-- {
		err = v.moveAssign(v.storage.ElementPointer(i), v.storage.ElementPointer(i-1))
		if err != nil {
			return nil, err
		}
	}

	ptr := v.storage.ElementPointer(index)
	err = v.moveAssign(ptr, &tmp)
	if err != nil {
		return nil, err
	}

	v.length++
	DebugValidate(v)
	return ptr, nil
}

func (v *Vector[T]) emplaceGrow(index int, ctor Constructor[T]) (*T, error) {
	var newBlock rawmem.Block[T]
	err := newBlock.Init(grownCapacity(v.storage.Capacity(), v.length+1))
	if err != nil {
		return nil, err
	}

	ptr := newBlock.ElementPointer(index)
	err = v.construct(ptr, ctor)
	if err != nil {
		newBlock.Release()
		return nil, err
	}

	err = v.relocateRange(&newBlock, 0, 0, index)
	if err != nil {
		v.destroyAt(ptr)
		newBlock.Release()
		return nil, err
	}

	err = v.relocateRange(&newBlock, index+1, index, v.length-index)
	if err != nil {
		v.destroyRangeIn(&newBlock, 0, index)
		v.destroyAt(ptr)
		newBlock.Release()
		return nil, err
	}

	v.adoptBlock(&newBlock)
	v.length++
	DebugValidate(v)
	return ptr, nil
}

// Erase removes the element at index, shifting every element after it one
// slot toward the front by move assignment and destroying the vacated tail
// slot. index must lie in [0, Len())- erasing at Len() is undefined.
func (v *Vector[T]) Erase(index int) error {
	DebugAssertIndex(index, v.length, "index")

	for i := index; i < v.length-1; i++ {
		err := v.moveAssign(v.storage.ElementPointer(i), v.storage.ElementPointer(i+1))
		if err != nil {
			return err
		}
	}

	v.length--
	v.destroyAt(v.storage.ElementPointer(v.length))
	DebugValidate(v)
	return nil
}
