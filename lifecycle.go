package vector

import "github.com/vkngwrapper/vector/rawmem"

// Constructor builds a value of T in place at dst. The slot at dst is zeroed
// before the constructor runs. On error the slot is treated as never having
// been constructed.
type Constructor[T any] func(dst *T) error

// Lifecycle describes how values of T are constructed, duplicated, relocated,
// and destroyed within a Vector. Every hook is optional- a nil hook degrades
// to shallow value semantics, which cannot fail:
//
//   - Construct: zero-value construction
//   - Copy: plain assignment
//   - Move: plain assignment, with the source slot zeroed afterward
//   - Destroy: the slot is zeroed
//
// A Move hook must leave the source value in a destructible state. When a
// Move hook is provided and cannot return an error under any circumstances,
// set MoveCannotFail so the vector relocates by moving rather than copying
// during growth.
type Lifecycle[T any] struct {
	Construct      func(dst *T) error
	Copy           func(dst *T, src *T) error
	Move           func(dst *T, src *T) error
	MoveCannotFail bool
	Destroy        func(ptr *T)
}

// relocateByMove decides, once per vector, how live elements travel into a
// freshly allocated block during growth. Elements are moved when the move
// path cannot fail, or when there is no copy path at all; otherwise they are
// copied, so that a failure partway through construction into the new block
// leaves the original block fully intact.
func (lc *Lifecycle[T]) relocateByMove() bool {
	if lc.Move == nil || lc.MoveCannotFail {
		return true
	}
	return lc.Copy == nil
}

// supportsSafeRelocation reports whether growth can uphold the vector's
// failure contract: either moves cannot fail, or copies exist as a rollback-
// safe fallback.
func (lc *Lifecycle[T]) supportsSafeRelocation() bool {
	if lc.Move == nil || lc.MoveCannotFail {
		return true
	}
	return lc.Copy != nil
}

// construct builds a value at dst, preferring the provided constructor and
// falling back to the lifecycle's default construction.
func (v *Vector[T]) construct(dst *T, ctor Constructor[T]) error {
	var zero T
	*dst = zero
	if ctor != nil {
		return ctor(dst)
	}
	if v.lifecycle.Construct != nil {
		return v.lifecycle.Construct(dst)
	}
	return nil
}

// copyConstruct duplicates src into the raw slot at dst.
func (v *Vector[T]) copyConstruct(dst *T, src *T) error {
	if v.lifecycle.Copy != nil {
		var zero T
		*dst = zero
		return v.lifecycle.Copy(dst, src)
	}
	*dst = *src
	return nil
}

// moveConstruct relocates src into the raw slot at dst, leaving src
// destructible.
func (v *Vector[T]) moveConstruct(dst *T, src *T) error {
	if v.lifecycle.Move != nil {
		var zero T
		*dst = zero
		return v.lifecycle.Move(dst, src)
	}
	*dst = *src
	var zero T
	*src = zero
	return nil
}

// copyAssign duplicates src over the live value at dst.
func (v *Vector[T]) copyAssign(dst *T, src *T) error {
	if v.lifecycle.Copy != nil {
		v.destroyAt(dst)
		return v.lifecycle.Copy(dst, src)
	}
	*dst = *src
	return nil
}

// moveAssign relocates src over the live value at dst, leaving src
// destructible.
func (v *Vector[T]) moveAssign(dst *T, src *T) error {
	if v.lifecycle.Move != nil {
		v.destroyAt(dst)
		return v.lifecycle.Move(dst, src)
	}
	*dst = *src
	var zero T
	*src = zero
	return nil
}

// destroyAt destroys the live value at ptr and zeroes the slot so stale
// references do not keep dead objects reachable.
func (v *Vector[T]) destroyAt(ptr *T) {
	if v.lifecycle.Destroy != nil {
		v.lifecycle.Destroy(ptr)
	}
	var zero T
	*ptr = zero
}

// destroyRange destroys count live values in the vector's own storage
// starting at index.
func (v *Vector[T]) destroyRange(index, count int) {
	for i := 0; i < count; i++ {
		v.destroyAt(v.storage.ElementPointer(index + i))
	}
}

// destroyRangeIn destroys count constructed values in a not-yet-adopted
// block starting at index. Used to unwind partially migrated blocks before
// an error propagates.
func (v *Vector[T]) destroyRangeIn(block *rawmem.Block[T], index, count int) {
	for i := 0; i < count; i++ {
		v.destroyAt(block.ElementPointer(index + i))
	}
}

// relocateRange constructs count elements into dst beginning at dstIndex
// from this vector's live slots beginning at srcIndex, following the
// relocation policy chosen at construction. On a failed copy, every element
// this call constructed in dst is destroyed before the error is returned and
// the source slots are untouched. The move path cannot fail by policy.
func (v *Vector[T]) relocateRange(dst *rawmem.Block[T], dstIndex, srcIndex, count int) error {
	if v.relocatesByMove {
		for i := 0; i < count; i++ {
			err := v.moveConstruct(dst.ElementPointer(dstIndex+i), v.storage.ElementPointer(srcIndex+i))
			if err != nil {
				v.destroyRangeIn(dst, dstIndex, i)
				return err
			}
		}
		v.moveRelocations += count
		return nil
	}

	for i := 0; i < count; i++ {
		err := v.copyConstruct(dst.ElementPointer(dstIndex+i), v.storage.ElementPointer(srcIndex+i))
		if err != nil {
			v.destroyRangeIn(dst, dstIndex, i)
			return err
		}
	}
	v.copyRelocations += count
	return nil
}
