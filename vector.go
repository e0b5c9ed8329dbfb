// Package vector implements a growable contiguous array built on raw slot
// storage from the rawmem package. The vector alone decides when elements
// are constructed and destroyed inside its block, when the block must grow,
// and how live elements are relocated into a larger block.
package vector

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/vector/rawmem"
)

// Options controls optional vector behavior at construction time.
type Options struct {
	// InitialCapacity preallocates slot storage for this many elements. 0
	// leaves the vector with the empty sentinel block until the first growth.
	InitialCapacity int
	// Logger receives debug-level diagnostics about growth and relocation.
	// May be nil.
	Logger *slog.Logger
}

// Vector is a growable contiguous array of T. Slots [0, Len()) of its block
// hold live elements, slots [Len(), Cap()) are raw storage. Elements are
// exclusively owned by the vector.
//
// A Vector is not safe for concurrent use- callers that share an instance
// across goroutines must serialize access themselves.
type Vector[T any] struct {
	storage rawmem.Block[T]
	length  int

	lifecycle       Lifecycle[T]
	relocatesByMove bool
	logger          *slog.Logger

	growthCount     int
	moveRelocations int
	copyRelocations int
}

// New creates a vector of T with shallow value semantics: elements are
// duplicated and relocated by assignment and destroyed by zeroing their
// slot. These operations cannot fail, so growth always relocates by moving.
func New[T any](options Options) (*Vector[T], error) {
	return NewWithLifecycle[T](Lifecycle[T]{}, options)
}

// NewWithLifecycle creates a vector whose elements are managed through the
// provided lifecycle hooks. It returns ErrUnsafeLifecycle when the lifecycle
// has a move hook that may fail and no copy hook: such a type leaves growth
// no relocation path that can preserve the vector on failure.
func NewWithLifecycle[T any](lifecycle Lifecycle[T], options Options) (*Vector[T], error) {
	if !lifecycle.supportsSafeRelocation() {
		return nil, errors.WithStack(ErrUnsafeLifecycle)
	}

	v := &Vector[T]{
		lifecycle:       lifecycle,
		relocatesByMove: lifecycle.relocateByMove(),
		logger:          options.Logger,
	}

	if options.InitialCapacity > 0 {
		err := v.storage.Init(options.InitialCapacity)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

// NewWithSize creates a vector holding size default-constructed elements.
// On a constructor failure the partially built vector is destroyed before
// the error is returned.
func NewWithSize[T any](size int, options Options) (*Vector[T], error) {
	v, err := New[T](options)
	if err != nil {
		return nil, err
	}

	err = v.Resize(size)
	if err != nil {
		v.Destroy()
		return nil, err
	}
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.length
}

// Cap returns the number of slots in the current block.
func (v *Vector[T]) Cap() int {
	return v.storage.Capacity()
}

// IsEmpty will return true if this vector has no live elements
func (v *Vector[T]) IsEmpty() bool {
	return v.length == 0
}

// At returns the address of the live element at index. The address is
// invalidated by any operation that reallocates or shifts elements. Indices
// outside [0, Len()) panic when built with the debug_vector_utils tag and
// are undefined otherwise- this preserves the unchecked raw-array contract.
func (v *Vector[T]) At(index int) *T {
	DebugAssertIndex(index, v.length, "index")
	return v.storage.ElementPointer(index)
}

// Get returns a copy of the element value at index. Same index contract as At.
func (v *Vector[T]) Get(index int) T {
	return *v.At(index)
}

// Set replaces the live element at index with value via copy assignment.
// Same index contract as At.
func (v *Vector[T]) Set(index int, value T) error {
	return v.copyAssign(v.At(index), &value)
}

// Reserve grows the block to hold at least newCapacity slots. It is a no-op
// when the current block is already large enough- capacity never shrinks.
// Live elements are relocated into the new block per the relocation policy;
// a failed copy destroys whatever was constructed in the new block, releases
// it, and returns the error with the vector untouched.
func (v *Vector[T]) Reserve(newCapacity int) error {
	if newCapacity <= v.storage.Capacity() {
		return nil
	}

	var newBlock rawmem.Block[T]
	err := newBlock.Init(newCapacity)
	if err != nil {
		return err
	}

	err = v.relocateRange(&newBlock, 0, 0, v.length)
	if err != nil {
		newBlock.Release()
		return err
	}

	v.adoptBlock(&newBlock)
	DebugValidate(v)
	return nil
}

// Resize makes the vector hold exactly newSize elements. Growth reserves
// capacity and default-constructs the newly exposed tail; a constructor
// failure destroys the partially built tail and leaves the length unchanged.
// Shrinking destroys the excess tail in place.
func (v *Vector[T]) Resize(newSize int) error {
	if newSize < 0 {
		return errors.Wrapf(ErrInvalidSize, "requested size %d", newSize)
	}

	if newSize > v.length {
		err := v.Reserve(newSize)
		if err != nil {
			return err
		}

		for i := v.length; i < newSize; i++ {
			err = v.construct(v.storage.ElementPointer(i), nil)
			if err != nil {
				v.destroyRange(v.length, i-v.length)
				return err
			}
		}
	} else {
		v.destroyRange(newSize, v.length-newSize)
	}

	v.length = newSize
	DebugValidate(v)
	return nil
}

// Destroy destroys every live element and releases the block, returning the
// vector to its initial empty state. Safe to call more than once.
func (v *Vector[T]) Destroy() {
	v.destroyRange(0, v.length)
	v.length = 0
	v.storage.Release()
}

// Validate performs internal consistency checks on the vector. When the
// implementation is functioning correctly it should not be possible for
// this method to return an error.
func (v *Vector[T]) Validate() error {
	if v.length < 0 {
		return errors.Errorf("vector has a negative length %d", v.length)
	}
	if v.length > v.storage.Capacity() {
		return errors.Errorf("vector length %d exceeds its block capacity %d", v.length, v.storage.Capacity())
	}
	return v.storage.Validate()
}

// adoptBlock destroys the originals left in the current block, swaps the
// fully migrated block in, and releases the superseded block immediately.
func (v *Vector[T]) adoptBlock(newBlock *rawmem.Block[T]) {
	v.destroyRange(0, v.length)
	v.storage.Swap(newBlock)
	newBlock.Release()
	v.growthCount++

	if v.logger != nil {
		v.logger.Debug("vector block grown",
			slog.Int("capacity", v.storage.Capacity()),
			slog.Int("length", v.length),
			slog.Bool("movedElements", v.relocatesByMove),
		)
	}
}
