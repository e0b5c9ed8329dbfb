// Package rawmem provides raw, fixed-capacity slot storage for a single
// element type. A Block hands out addresses into its storage but never
// constructs or destroys values- deciding which slots hold live values is
// entirely the responsibility of the owning container.
package rawmem

import (
	"sync/atomic"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

var nextBlockID uint64

// Block owns storage for exactly Capacity() slots of T. The backing
// allocation is made once at Init and addressed through a cached base
// pointer. Slots are raw: the Block does not know which of them, if any,
// hold live values, and Release will not destroy anything- the owner must
// have destroyed all live values beforehand.
//
// The backing storage is allocated as []T rather than raw bytes so that
// pointer-typed fields in not-yet-live slots remain visible to the garbage
// collector. The Block still treats every slot as uninterpreted storage.
//
// A Block must not be duplicated- two Blocks sharing storage without a
// shared notion of which slots are live is unsafe by construction. Transfer
// ownership with Swap or TakeFrom instead.
type Block[T any] struct {
	noCopy noCopy

	storage  []T
	base     unsafe.Pointer
	stride   uintptr
	capacity int
	id       uint64
}

// Init allocates storage for the requested number of slots of T. A capacity
// of 0 produces the empty sentinel block (nil base, no allocation). Init
// returns an error for a negative capacity or when the block already owns
// storage.
func (b *Block[T]) Init(capacity int) error {
	if capacity < 0 {
		return errors.Wrapf(ErrInvalidCapacity, "requested capacity %d", capacity)
	}
	if b.storage != nil {
		return errors.New("attempting to initialize a block that is already in use")
	}

	var zero T
	b.stride = unsafe.Sizeof(zero)
	b.capacity = capacity
	b.id = atomic.AddUint64(&nextBlockID, 1)

	if capacity == 0 {
		return nil
	}

	b.storage = make([]T, capacity)
	b.base = unsafe.Pointer(unsafe.SliceData(b.storage))
	trackInit(b.id, capacity*int(b.stride))
	return nil
}

// Capacity returns the number of slots the block was sized for.
func (b *Block[T]) Capacity() int {
	return b.capacity
}

// ID returns an identifier for this block's storage, unique for the life of
// the process. The empty sentinel block has ID 0.
func (b *Block[T]) ID() uint64 {
	if b.storage == nil {
		return 0
	}
	return b.id
}

// Base returns the address of slot 0, or nil for the empty sentinel block.
func (b *Block[T]) Base() unsafe.Pointer {
	return b.base
}

// ElementPointer returns the address of the slot at index. Indices from 0
// through Capacity() are legal- the one-past-end address may be obtained but
// never dereferenced. Out-of-range indices panic when built with the
// debug_vector_utils tag and are undefined otherwise.
func (b *Block[T]) ElementPointer(index int) *T {
	debugAssertSlot(index, b.capacity)
	return (*T)(unsafe.Add(b.base, uintptr(index)*b.stride))
}

// Swap exchanges the storage of two blocks in constant time. No allocation
// occurs and no slot contents are touched.
func (b *Block[T]) Swap(other *Block[T]) {
	b.storage, other.storage = other.storage, b.storage
	b.base, other.base = other.base, b.base
	b.stride, other.stride = other.stride, b.stride
	b.capacity, other.capacity = other.capacity, b.capacity
	b.id, other.id = other.id, b.id
}

// TakeFrom releases this block's storage and adopts other's, leaving other
// as the empty sentinel block. Never allocates.
func (b *Block[T]) TakeFrom(other *Block[T]) {
	if b == other {
		return
	}
	b.Release()
	b.Swap(other)
}

// Release drops the backing storage, returning the block to its empty
// sentinel state. Any live values in the storage must already have been
// destroyed by the owner- Release does not know about them and will not
// destroy them.
func (b *Block[T]) Release() {
	if b.storage != nil {
		trackRelease(b.id)
	}
	b.storage = nil
	b.base = nil
	b.capacity = 0
	b.id = 0
}

// Validate performs internal consistency checks on the block. When the
// implementation is functioning correctly it should not be possible for
// this method to return an error.
func (b *Block[T]) Validate() error {
	if b.capacity < 0 {
		return errors.Errorf("block has a negative capacity %d", b.capacity)
	}
	if b.capacity == 0 {
		if b.storage != nil || b.base != nil {
			return errors.New("block has a zero capacity but owns storage")
		}
		return nil
	}
	if b.storage == nil || b.base == nil {
		return errors.Errorf("block has capacity %d but owns no storage", b.capacity)
	}
	if len(b.storage) != b.capacity {
		return errors.Errorf("block capacity %d does not match its storage size %d", b.capacity, len(b.storage))
	}
	if unsafe.Pointer(unsafe.SliceData(b.storage)) != b.base {
		return errors.New("block base pointer does not point at its storage")
	}
	return nil
}

// BlockJsonData populates a json object with information about this block
func (b *Block[T]) BlockJsonData(json jwriter.ObjectState) {
	json.Name("Capacity").Int(b.capacity)
	json.Name("CapacityBytes").Int(b.capacity * int(b.stride))
}

// noCopy triggers the go vet copylocks check when a Block is duplicated by
// assignment.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
