package rawmem

import (
	"sync"

	"github.com/dolthub/swiss"
)

// blockTracker records the storage of every live Block while tracking is
// enabled. It exists to diagnose leaked blocks- a container that destroys
// its elements but forgets to release its block will show up here.
type blockTracker struct {
	mutex   sync.Mutex
	enabled bool
	blocks  *swiss.Map[uint64, int]
}

var tracker blockTracker

// EnableTracking begins recording every block allocation and release in a
// process-wide registry. Tracking starts with an empty registry- blocks
// allocated before this call are not visible to it.
func EnableTracking() {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()

	tracker.enabled = true
	tracker.blocks = swiss.NewMap[uint64, int](16)
}

// DisableTracking stops recording block allocations and drops the registry.
func DisableTracking() {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()

	tracker.enabled = false
	tracker.blocks = nil
}

// OutstandingBlocks returns the number of tracked blocks that have been
// initialized but not yet released. Always 0 when tracking is disabled.
func OutstandingBlocks() int {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()

	if !tracker.enabled {
		return 0
	}
	return tracker.blocks.Count()
}

// OutstandingBytes returns the total backing storage size in bytes of
// tracked blocks that have been initialized but not yet released. Always 0
// when tracking is disabled.
func OutstandingBytes() int {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()

	if !tracker.enabled {
		return 0
	}

	var total int
	tracker.blocks.Iter(func(id uint64, size int) bool {
		total += size
		return false
	})
	return total
}

func trackInit(id uint64, sizeBytes int) {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()

	if tracker.enabled {
		tracker.blocks.Put(id, sizeBytes)
	}
}

func trackRelease(id uint64) {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()

	if tracker.enabled {
		tracker.blocks.Delete(id)
	}
}
