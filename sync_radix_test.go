package radixheap

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncIndexedRadixHeapPushAndPop(t *testing.T) {
	h, err := NewSyncIndexedRadixHeap(10, DefaultConfig())
	require.NoError(t, err)

	require.NoError(t, h.Push(0, 5))
	require.NoError(t, h.Push(1, 3))

	value, key, err := h.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1, value)
	assert.Equal(t, uint64(3), key)
}

func TestSyncIndexedRadixHeapConcurrentPushes(t *testing.T) {
	h, err := NewSyncIndexedRadixHeap(1000, DefaultConfig())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				value := base*100 + i
				_ = h.Push(value, uint64(value))
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, 1000, h.Len())

	prev := uint64(0)
	for !h.Empty() {
		_, key, err := h.Pop()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, key, prev)
		prev = key
	}
}

func TestSyncIndexedRadixHeapReducePriority(t *testing.T) {
	h, err := NewSyncIndexedRadixHeap(5, DefaultConfig())
	require.NoError(t, err)

	require.NoError(t, h.Push(0, 20))
	require.NoError(t, h.Push(1, 10))
	require.NoError(t, h.ReducePriority(0, 5))

	value, key, err := h.Pop()
	require.NoError(t, err)
	assert.Equal(t, 0, value)
	assert.Equal(t, uint64(5), key)
}

func TestSyncIndexedRadixHeapClearAndEmpty(t *testing.T) {
	h, err := NewSyncIndexedRadixHeap(5, DefaultConfig())
	require.NoError(t, err)

	require.NoError(t, h.Push(0, 1))
	h.Clear()
	assert.True(t, h.Empty())
	assert.Equal(t, uint64(0), h.Last())
}
