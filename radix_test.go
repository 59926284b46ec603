package radixheap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUnindexedScenarioHeap(t *testing.T) *RadixHeap[int, uint64] {
	t.Helper()
	values := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}
	keys := []uint64{7, 58, 59, 13, 8, 49, 51, 23, 30, 16, 39, 11, 10, 9, 63, 33, 48, 57}
	h := NewRadixHeap[int, uint64](DefaultConfig())
	for i := range values {
		require.NoError(t, h.Push(values[i], keys[i]))
	}
	return h
}

func drainUnindexedKeys(t *testing.T, h *RadixHeap[int, uint64]) []uint64 {
	t.Helper()
	var got []uint64
	for !h.Empty() {
		_, k, err := h.Pop()
		require.NoError(t, err)
		got = append(got, k)
	}
	return got
}

func TestRadixHeapDrainYieldsAscendingKeys(t *testing.T) {
	h := seedUnindexedScenarioHeap(t)
	got := drainUnindexedKeys(t, h)
	want := []uint64{7, 8, 9, 10, 11, 13, 16, 23, 30, 33, 39, 48, 49, 51, 57, 58, 59, 63}
	assert.Equal(t, want, got)
}

func TestScenarioS6PushAfterPop(t *testing.T) {
	h := seedUnindexedScenarioHeap(t)

	value, key, err := h.Pop()
	require.NoError(t, err)
	assert.Equal(t, 0, value)
	assert.Equal(t, uint64(7), key)

	require.NoError(t, h.Push(0xF0, 8))

	value, key, err = h.Pop()
	require.NoError(t, err)
	assert.Equal(t, 4, value)
	assert.Equal(t, uint64(8), key)

	value, key, err = h.Pop()
	require.NoError(t, err)
	assert.Equal(t, 0xF0, value)
	assert.Equal(t, uint64(8), key)

	assert.Equal(t, 16, h.Len())
}

func TestRadixHeapPushRejectsKeyBelowWatermark(t *testing.T) {
	h := NewRadixHeap[string, uint64](DefaultConfig())
	require.NoError(t, h.Push("a", 10))
	_, _, err := h.Pop()
	require.NoError(t, err)

	err = h.Push("b", 5)
	assert.ErrorIs(t, err, ErrPriorityBelowWatermark)
}

func TestRadixHeapPopEmptyReturnsError(t *testing.T) {
	h := NewRadixHeap[string, uint32](DefaultConfig())
	_, _, err := h.Pop()
	assert.ErrorIs(t, err, ErrHeapEmpty)
}

func TestRadixHeapPeekDoesNotRemove(t *testing.T) {
	h := NewRadixHeap[string, uint32](DefaultConfig())
	require.NoError(t, h.Push("x", 42))
	require.NoError(t, h.Push("y", 7))

	value, key, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, "y", value)
	assert.Equal(t, uint32(7), key)
	assert.Equal(t, 2, h.Len())
}

func TestRadixHeapLenAndEmpty(t *testing.T) {
	h := NewRadixHeap[int, uint32](DefaultConfig())
	assert.True(t, h.Empty())
	require.NoError(t, h.Push(1, 1))
	assert.False(t, h.Empty())
	assert.Equal(t, 1, h.Len())
}

func TestRadixHeapClearResetsState(t *testing.T) {
	h := seedUnindexedScenarioHeap(t)
	h.Clear()
	assert.True(t, h.Empty())
	assert.Equal(t, uint64(0), h.Last())
}

func TestRadixHeapCloneIsIndependent(t *testing.T) {
	h := seedUnindexedScenarioHeap(t)
	clone := h.Clone()

	_, _, err := h.Pop()
	require.NoError(t, err)
	assert.Equal(t, 17, h.Len())
	assert.Equal(t, 18, clone.Len())

	gotOriginal := drainUnindexedKeys(t, h)
	gotClone := drainUnindexedKeys(t, clone)
	want := []uint64{7, 8, 9, 10, 11, 13, 16, 23, 30, 33, 39, 48, 49, 51, 57, 58, 59, 63}
	assert.Equal(t, want[1:], gotOriginal)
	assert.Equal(t, want, gotClone)
}

func TestRadixHeapRebalanceReportsNoneNeeded(t *testing.T) {
	h := NewRadixHeap[int, uint32](DefaultConfig())
	require.NoError(t, h.Push(1, 0))
	err := h.Rebalance()
	assert.ErrorIs(t, err, ErrNoRebalancingNeeded)
}

func TestRadixHeapRebalanceOnEmptyHeap(t *testing.T) {
	h := NewRadixHeap[int, uint32](DefaultConfig())
	err := h.Rebalance()
	assert.ErrorIs(t, err, ErrHeapEmpty)
}

func TestRadixHeapFromElementsSeedsWatermarkAtMinimum(t *testing.T) {
	data := []Element[string, uint32]{
		NewElement("a", 30),
		NewElement("b", 10),
		NewElement("c", 20),
	}
	h := NewRadixHeapFromElements(data, DefaultConfig())
	assert.Equal(t, uint32(10), h.Last())

	value, key, err := h.Pop()
	require.NoError(t, err)
	assert.Equal(t, "b", value)
	assert.Equal(t, uint32(10), key)
}

func TestRadixHeapWithoutBucketMinCache(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableBucketMinCache = false
	h := NewRadixHeap[int, uint32](cfg)

	require.NoError(t, h.Push(0, 10))
	require.NoError(t, h.Push(1, 3))
	require.NoError(t, h.Push(2, 7))

	got := drainUint32Keys(t, h)
	assert.Equal(t, []uint32{3, 7, 10}, got)
}

func drainUint32Keys(t *testing.T, h *RadixHeap[int, uint32]) []uint32 {
	t.Helper()
	var got []uint32
	for !h.Empty() {
		_, k, err := h.Pop()
		require.NoError(t, err)
		got = append(got, k)
	}
	return got
}

func TestRadixHeapPortableBitScanMatchesHardware(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UseHardwareLeadingZeroCount = false
	h := NewRadixHeap[int, uint32](cfg)

	require.NoError(t, h.Push(0, 20))
	require.NoError(t, h.Push(1, 5))
	require.NoError(t, h.Push(2, 15))

	got := drainUint32Keys(t, h)
	assert.Equal(t, []uint32{5, 15, 20}, got)
}

func TestRadixHeapMonotoneSmokeAscending(t *testing.T) {
	const n = 100_000
	h := NewRadixHeap[int, uint64](DefaultConfig())
	for i := 0; i < n; i++ {
		require.NoError(t, h.Push(i, uint64(i)))
	}

	prev := uint64(0)
	for i := 0; i < n; i++ {
		value, key, err := h.Pop()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, key, prev)
		assert.Equal(t, uint64(value), key)
		prev = key
	}
	assert.True(t, h.Empty())
}

func TestRadixHeapMonotoneSmokeDescendingPush(t *testing.T) {
	const n = 100_000
	h := NewRadixHeap[int, uint64](DefaultConfig())
	for i := n - 1; i >= 0; i-- {
		require.NoError(t, h.Push(i, uint64(i)))
	}

	prev := uint64(0)
	for i := 0; i < n; i++ {
		value, key, err := h.Pop()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, key, prev)
		assert.Equal(t, uint64(value), key)
		prev = key
	}
	assert.True(t, h.Empty())
}
