package radixheap

import "sync"

// SyncIndexedRadixHeap wraps an IndexedRadixHeap with a sync.RWMutex so it
// can be shared across goroutines. The core heap types carry no locking of
// their own; callers that need concurrent access opt into it explicitly by
// constructing this wrapper instead.
type SyncIndexedRadixHeap struct {
	mu   sync.RWMutex
	heap *IndexedRadixHeap
}

// NewSyncIndexedRadixHeap wraps a freshly constructed IndexedRadixHeap.
func NewSyncIndexedRadixHeap(capacity int, cfg Config) (*SyncIndexedRadixHeap, error) {
	h, err := NewIndexedRadixHeap(capacity, cfg)
	if err != nil {
		return nil, err
	}
	return &SyncIndexedRadixHeap{heap: h}, nil
}

// Push inserts value with the given key.
func (s *SyncIndexedRadixHeap) Push(value int, key uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heap.Push(value, key)
}

// Pop removes and returns the value and key with the smallest key.
func (s *SyncIndexedRadixHeap) Pop() (int, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heap.Pop()
}

// Peek returns the value and key with the smallest key, without removing it.
func (s *SyncIndexedRadixHeap) Peek() (int, uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.heap.Peek()
}

// ReducePriority lowers value's key to newKey.
func (s *SyncIndexedRadixHeap) ReducePriority(value int, newKey uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heap.ReducePriority(value, newKey)
}

// InHeap reports whether value is currently stored in the heap.
func (s *SyncIndexedRadixHeap) InHeap(value int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.heap.InHeap(value)
}

// Priority returns value's current key.
func (s *SyncIndexedRadixHeap) Priority(value int) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.heap.Priority(value)
}

// Len returns the number of values currently stored in the heap.
func (s *SyncIndexedRadixHeap) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.heap.Len()
}

// Empty returns true if the heap contains no values.
func (s *SyncIndexedRadixHeap) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.heap.Empty()
}

// Last returns the current watermark.
func (s *SyncIndexedRadixHeap) Last() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.heap.Last()
}

// Clear reinitializes the wrapped heap.
func (s *SyncIndexedRadixHeap) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heap.Clear()
}
