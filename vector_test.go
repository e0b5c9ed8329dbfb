package vector_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/vector"
	"github.com/vkngwrapper/vector/rawmem"
)

func gatherValues[T any](v *vector.Vector[T]) []T {
	var values []T
	v.Range(func(index int, elem *T) bool {
		values = append(values, *elem)
		return true
	})
	return values
}

func TestPushBackGrowthSequence(t *testing.T) {
	v, err := vector.New[int](vector.Options{})
	require.NoError(t, err)
	defer v.Destroy()

	require.True(t, v.IsEmpty())
	require.Equal(t, 0, v.Len())
	require.Equal(t, 0, v.Cap())

	expectedCaps := []int{1, 2, 2, 4, 4, 4, 4, 8}
	for i := 0; i < len(expectedCaps); i++ {
		require.NoError(t, v.PushBack(i))
		require.Equal(t, i+1, v.Len())
		require.Equal(t, expectedCaps[i], v.Cap())
	}

	for i := 0; i < v.Len(); i++ {
		require.Equal(t, i, v.Get(i))
	}
	require.NoError(t, v.Validate())
}

func TestConcreteScenario(t *testing.T) {
	v, err := vector.New[int](vector.Options{})
	require.NoError(t, err)
	defer v.Destroy()

	require.NoError(t, v.PushBack(1))
	require.Equal(t, 1, v.Cap())
	require.NoError(t, v.PushBack(2))
	require.Equal(t, 2, v.Cap())
	require.NoError(t, v.PushBack(3))
	require.Equal(t, 4, v.Cap())
	require.Equal(t, 3, v.Len())

	require.NoError(t, v.Insert(1, 9))
	require.Equal(t, []int{1, 9, 2, 3}, gatherValues(v))
	require.Equal(t, 4, v.Cap())

	require.NoError(t, v.Erase(1))
	require.Equal(t, []int{1, 2, 3}, gatherValues(v))
	require.Equal(t, 4, v.Cap())
}

func TestGrowthPreservesOrder(t *testing.T) {
	v, err := vector.New[string](vector.Options{})
	require.NoError(t, err)
	defer v.Destroy()

	words := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	for _, word := range words {
		require.NoError(t, v.PushBack(word))
	}
	require.Equal(t, words, gatherValues(v))
}

func TestReserve(t *testing.T) {
	v, err := vector.New[int](vector.Options{})
	require.NoError(t, err)
	defer v.Destroy()

	require.NoError(t, v.PushBack(5))
	require.NoError(t, v.Reserve(10))
	require.Equal(t, 10, v.Cap())
	require.Equal(t, 1, v.Len())
	require.Equal(t, 5, v.Get(0))

	// Capacity never shrinks
	require.NoError(t, v.Reserve(3))
	require.Equal(t, 10, v.Cap())

	// Reserved space absorbs appends without further growth
	for i := 0; i < 9; i++ {
		require.NoError(t, v.PushBack(i))
	}
	require.Equal(t, 10, v.Cap())
}

func TestResize(t *testing.T) {
	v, err := vector.New[int](vector.Options{})
	require.NoError(t, err)
	defer v.Destroy()

	require.NoError(t, v.PushBack(7))
	require.NoError(t, v.Resize(4))
	require.Equal(t, []int{7, 0, 0, 0}, gatherValues(v))

	// Resizing to the current size is a no-op on contents
	require.NoError(t, v.Set(2, 9))
	require.NoError(t, v.Resize(4))
	require.Equal(t, []int{7, 0, 9, 0}, gatherValues(v))

	require.NoError(t, v.Resize(1))
	require.Equal(t, []int{7}, gatherValues(v))
	require.Equal(t, 4, v.Cap())

	require.NoError(t, v.Resize(0))
	require.True(t, v.IsEmpty())

	err = v.Resize(-1)
	require.ErrorIs(t, err, vector.ErrInvalidSize)
}

func TestNewWithSize(t *testing.T) {
	v, err := vector.NewWithSize[int](3, vector.Options{})
	require.NoError(t, err)
	defer v.Destroy()

	require.Equal(t, 3, v.Len())
	require.Equal(t, []int{0, 0, 0}, gatherValues(v))
}

func TestInitialCapacity(t *testing.T) {
	v, err := vector.New[int](vector.Options{InitialCapacity: 8})
	require.NoError(t, err)
	defer v.Destroy()

	require.Equal(t, 0, v.Len())
	require.Equal(t, 8, v.Cap())

	for i := 0; i < 8; i++ {
		require.NoError(t, v.PushBack(i))
	}
	require.Equal(t, 8, v.Cap())
}

func TestPopBack(t *testing.T) {
	v, err := vector.New[int](vector.Options{})
	require.NoError(t, err)
	defer v.Destroy()

	// Defensive no-op on an empty vector
	v.PopBack()
	require.Equal(t, 0, v.Len())

	require.NoError(t, v.PushBack(1))
	require.NoError(t, v.PushBack(2))
	v.PopBack()
	require.Equal(t, []int{1}, gatherValues(v))
	require.Equal(t, 2, v.Cap())
}

func TestInsertEraseRoundTrip(t *testing.T) {
	base := []int{10, 20, 30}

	for pos := 0; pos <= len(base); pos++ {
		v, err := vector.New[int](vector.Options{})
		require.NoError(t, err)

		for _, value := range base {
			require.NoError(t, v.PushBack(value))
		}

		require.NoError(t, v.Insert(pos, 99))
		require.Equal(t, len(base)+1, v.Len())
		require.Equal(t, 99, v.Get(pos))

		require.NoError(t, v.Erase(pos))
		require.Equal(t, base, gatherValues(v))

		v.Destroy()
	}
}

func TestInsertTriggersGrowth(t *testing.T) {
	v, err := vector.New[int](vector.Options{})
	require.NoError(t, err)
	defer v.Destroy()

	for i := 1; i <= 4; i++ {
		require.NoError(t, v.PushBack(i * 10))
	}
	require.Equal(t, 4, v.Cap())

	// Block is full- inserting mid-range must relocate prefix and suffix
	// around the new element
	require.NoError(t, v.Insert(2, 25))
	require.Equal(t, []int{10, 20, 25, 30, 40}, gatherValues(v))
	require.Equal(t, 8, v.Cap())
}

func TestEmplaceBackReturnsElement(t *testing.T) {
	v, err := vector.New[int](vector.Options{})
	require.NoError(t, err)
	defer v.Destroy()

	ptr, err := v.EmplaceBack(func(dst *int) error {
		*dst = 42
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 42, *ptr)

	// nil constructor default-constructs
	ptr, err = v.EmplaceBack(nil)
	require.NoError(t, err)
	require.Equal(t, 0, *ptr)
	require.Equal(t, 2, v.Len())
}

func TestEmplaceAtEndIsAppend(t *testing.T) {
	v, err := vector.New[int](vector.Options{})
	require.NoError(t, err)
	defer v.Destroy()

	require.NoError(t, v.PushBack(1))
	_, err = v.Emplace(v.Len(), func(dst *int) error {
		*dst = 2
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, gatherValues(v))
}

func TestStatistics(t *testing.T) {
	v, err := vector.New[int](vector.Options{})
	require.NoError(t, err)
	defer v.Destroy()

	for i := 0; i < 5; i++ {
		require.NoError(t, v.PushBack(i))
	}

	var stats vector.Statistics
	stats.Clear()
	v.AddStatistics(&stats)

	require.Equal(t, vector.Statistics{
		Length:          5,
		Capacity:        8,
		GrowthCount:     4,
		MoveRelocations: 1 + 2 + 4,
		CopyRelocations: 0,
	}, stats)

	var combined vector.Statistics
	combined.Clear()
	combined.AddStatistics(&stats)
	combined.AddStatistics(&stats)
	require.Equal(t, 10, combined.Length)
}

func TestBuildStatsString(t *testing.T) {
	v, err := vector.New[int](vector.Options{})
	require.NoError(t, err)
	defer v.Destroy()

	require.NoError(t, v.PushBack(1))
	require.NoError(t, v.PushBack(2))

	statsString := v.BuildStatsString()
	require.NotEmpty(t, statsString)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(statsString), &parsed))
	require.Equal(t, float64(2), parsed["Length"])
	require.Equal(t, float64(2), parsed["Capacity"])
	require.Contains(t, parsed, "Block")
}

func TestNoBlockLeaks(t *testing.T) {
	rawmem.EnableTracking()
	defer rawmem.DisableTracking()

	v, err := vector.New[int](vector.Options{})
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		require.NoError(t, v.PushBack(i))
	}
	require.NoError(t, v.Insert(50, -1))
	require.NoError(t, v.Erase(0))
	require.NoError(t, v.Resize(10))

	clone, err := v.Clone()
	require.NoError(t, err)

	// Every superseded block was released as soon as it was replaced
	require.Equal(t, 2, rawmem.OutstandingBlocks())

	clone.Destroy()
	v.Destroy()
	require.Equal(t, 0, rawmem.OutstandingBlocks())
	require.Equal(t, 0, rawmem.OutstandingBytes())
}

func TestDestroyIsIdempotent(t *testing.T) {
	v, err := vector.New[int](vector.Options{})
	require.NoError(t, err)

	require.NoError(t, v.PushBack(1))
	v.Destroy()
	require.Equal(t, 0, v.Len())
	require.Equal(t, 0, v.Cap())
	v.Destroy()

	// A destroyed vector is reusable
	require.NoError(t, v.PushBack(5))
	require.Equal(t, []int{5}, gatherValues(v))
	v.Destroy()
}
