package radixheap

import (
	"fmt"

	"github.com/mohae/deepcopy"
	"golang.org/x/exp/constraints"
)

// RadixHeap is a monotone priority queue over unsigned keys, implementing
// the unindexed mode of the radix heap discipline: V may be any type, since
// there is no lookup table tying a value to a bucket position. Use
// IndexedRadixHeap instead when ReducePriority/InHeap are needed.
//
//   - buckets: one growable sequence per bucket, holding elements whose keys
//     fall within a range defined by last.
//   - bucketMin / bucketMinSet: optional cached minimum per bucket.
//   - size: the count of elements in the heap.
//   - last: the most recently extracted minimum key (the watermark).
type RadixHeap[V any, K constraints.Unsigned] struct {
	buckets      [][]Element[V, K]
	bucketMin    []K
	bucketMinSet []bool
	size         int
	last         K
	cfg          Config
	pool         pool[Element[V, K]]
}

// NewRadixHeap creates an empty RadixHeap using the given Config.
func NewRadixHeap[V any, K constraints.Unsigned](cfg Config) *RadixHeap[V, K] {
	nb := numBuckets[K]()
	buckets := make([][]Element[V, K], nb)

	var bucketMin []K
	var bucketMinSet []bool
	if cfg.EnableBucketMinCache {
		bucketMin = make([]K, nb)
		bucketMinSet = make([]bool, nb)
	}

	p := newPool(cfg.UsePool, func() Element[V, K] { return Element[V, K]{} })
	return &RadixHeap[V, K]{
		buckets:      buckets,
		bucketMin:    bucketMin,
		bucketMinSet: bucketMinSet,
		cfg:          cfg,
		pool:         p,
	}
}

// NewRadixHeapFromElements creates a RadixHeap seeded with data. The
// watermark starts at the minimum key among data so every element is
// admissible under the monotone property.
func NewRadixHeapFromElements[V any, K constraints.Unsigned](data []Element[V, K], cfg Config) *RadixHeap[V, K] {
	h := NewRadixHeap[V, K](cfg)
	if len(data) == 0 {
		return h
	}

	min := data[0].key
	for _, el := range data[1:] {
		if el.key < min {
			min = el.key
		}
	}
	h.last = min

	for _, el := range data {
		_ = h.push(el.value, el.key)
	}
	return h
}

// newElement pulls an element from the pool and fills it in.
func (r *RadixHeap[V, K]) newElement(value V, key K) Element[V, K] {
	e := r.pool.Get()
	e.value = value
	e.key = key
	return e
}

// updateBucketMin records key as the cached minimum of bucket b if it is
// lower than what's cached, or if bucket b had no cached minimum yet.
func (r *RadixHeap[V, K]) updateBucketMin(b int, key K) {
	if !r.cfg.EnableBucketMinCache {
		return
	}
	if !r.bucketMinSet[b] || key < r.bucketMin[b] {
		r.bucketMin[b] = key
		r.bucketMinSet[b] = true
	}
}

// minKeyInBucket scans a bucket for its smallest key. Used by redistribute
// when the bucket-min cache is disabled.
func minKeyInBucket[V any, K constraints.Unsigned](bucket []Element[V, K]) K {
	min := bucket[0].key
	for _, el := range bucket[1:] {
		if el.key < min {
			min = el.key
		}
	}
	return min
}

// push is the unexported helper shared by Push and the seeding constructor.
func (r *RadixHeap[V, K]) push(value V, key K) error {
	if key < r.last {
		return fmt.Errorf("%w: key %v, last %v", ErrPriorityBelowWatermark, key, r.last)
	}
	b := bucketOf(key, r.last, r.cfg.UseHardwareLeadingZeroCount)
	el := r.newElement(value, key)
	r.buckets[b] = append(r.buckets[b], el)
	r.updateBucketMin(b, key)
	r.size++
	return nil
}

// Push adds a new value and key pair into the heap. Returns an error if key
// is less than the watermark, which would violate the monotonic property.
func (r *RadixHeap[V, K]) Push(value V, key K) error {
	return r.push(value, key)
}

// extractBucketZeroTail removes and returns the tail of bucket 0. The
// caller must ensure bucket 0 is non-empty.
func (r *RadixHeap[V, K]) extractBucketZeroTail() Element[V, K] {
	n := len(r.buckets[0])
	removed := r.buckets[0][n-1]
	r.buckets[0] = r.buckets[0][:n-1]
	if r.cfg.EnableBucketMinCache && n-1 == 0 {
		r.bucketMinSet[0] = false
	}
	r.size--
	r.pool.Put(removed)
	return removed
}

// redistribute finds the smallest non-empty bucket above 0, promotes its
// minimum key to be the new watermark, and reinserts every one of its
// elements by repeatedly popping the tail and recomputing the destination
// bucket under the updated watermark. After this, the element whose key
// equals the new watermark lands in bucket 0.
func (r *RadixHeap[V, K]) redistribute() {
	i := 1
	for len(r.buckets[i]) == 0 {
		i++
	}

	var m K
	if r.cfg.EnableBucketMinCache {
		m = r.bucketMin[i]
	} else {
		m = minKeyInBucket(r.buckets[i])
	}
	r.last = m
	if r.cfg.EnableBucketMinCache {
		r.bucketMinSet[i] = false
	}

	for len(r.buckets[i]) > 0 {
		n := len(r.buckets[i])
		el := r.buckets[i][n-1]
		r.buckets[i] = r.buckets[i][:n-1]

		nb := bucketOf(el.key, r.last, r.cfg.UseHardwareLeadingZeroCount)
		r.buckets[nb] = append(r.buckets[nb], el)
		r.updateBucketMin(nb, el.key)
	}
}

// pop is the unexported helper behind Pop.
func (r *RadixHeap[V, K]) pop() (Element[V, K], error) {
	if r.size == 0 {
		return Element[V, K]{}, ErrHeapEmpty
	}
	if len(r.buckets[0]) > 0 {
		return r.extractBucketZeroTail(), nil
	}
	r.redistribute()
	return r.extractBucketZeroTail(), nil
}

// Pop removes and returns the value and key with the smallest key. Returns
// ErrHeapEmpty if the heap has no elements.
func (r *RadixHeap[V, K]) Pop() (V, K, error) {
	el, err := r.pop()
	if err != nil {
		v, k := zeroPair[V, K]()
		return v, k, err
	}
	return el.value, el.key, nil
}

// peek is the unexported helper behind Peek.
func (r *RadixHeap[V, K]) peek() (Element[V, K], error) {
	if r.size == 0 {
		return Element[V, K]{}, ErrHeapEmpty
	}
	if n := len(r.buckets[0]); n > 0 {
		return r.buckets[0][n-1], nil
	}
	for i := 1; i < len(r.buckets); i++ {
		if len(r.buckets[i]) == 0 {
			continue
		}
		min := r.buckets[i][0]
		for _, el := range r.buckets[i][1:] {
			if el.key < min.key {
				min = el
			}
		}
		return min, nil
	}
	return Element[V, K]{}, ErrHeapEmpty
}

// Peek returns the value and key with the smallest key, without removing it.
// Returns ErrHeapEmpty if the heap has no elements.
func (r *RadixHeap[V, K]) Peek() (V, K, error) {
	el, err := r.peek()
	if err != nil {
		v, k := zeroPair[V, K]()
		return v, k, err
	}
	return el.value, el.key, nil
}

// Rebalance refills bucket 0 from the next non-empty bucket if bucket 0 is
// currently empty. Returns ErrHeapEmpty if the heap is empty, or
// ErrNoRebalancingNeeded if bucket 0 already has elements.
func (r *RadixHeap[V, K]) Rebalance() error {
	if r.size == 0 {
		return ErrHeapEmpty
	}
	if len(r.buckets[0]) != 0 {
		return ErrNoRebalancingNeeded
	}
	r.redistribute()
	return nil
}

// Len returns the number of items currently stored in the heap.
func (r *RadixHeap[V, K]) Len() int { return r.size }

// Empty returns true if the heap contains no items.
func (r *RadixHeap[V, K]) Empty() bool { return r.size == 0 }

// Last returns the current watermark: the most recently extracted minimum
// key (or the zero value if nothing has been popped yet).
func (r *RadixHeap[V, K]) Last() K { return r.last }

// Clear reinitializes the heap: fresh buckets, size reset to zero, and the
// watermark reset to its zero value.
func (r *RadixHeap[V, K]) Clear() {
	nb := len(r.buckets)
	r.buckets = make([][]Element[V, K], nb)
	if r.cfg.EnableBucketMinCache {
		r.bucketMin = make([]K, nb)
		r.bucketMinSet = make([]bool, nb)
	}
	r.size = 0
	r.last = 0
}

// Clone creates a deep copy of the heap. Values are copied with
// mohae/deepcopy; if V is a reference type whose fields alias shared state,
// that state is still shared between the original and the clone.
func (r *RadixHeap[V, K]) Clone() *RadixHeap[V, K] {
	newBuckets := make([][]Element[V, K], len(r.buckets))
	for i, bucket := range r.buckets {
		nb := make([]Element[V, K], len(bucket))
		for j, el := range bucket {
			copiedValue := deepcopy.Copy(el.value)
			nb[j] = Element[V, K]{value: copiedValue.(V), key: el.key}
		}
		newBuckets[i] = nb
	}

	var bucketMin []K
	var bucketMinSet []bool
	if r.cfg.EnableBucketMinCache {
		bucketMin = make([]K, len(r.bucketMin))
		copy(bucketMin, r.bucketMin)
		bucketMinSet = make([]bool, len(r.bucketMinSet))
		copy(bucketMinSet, r.bucketMinSet)
	}

	return &RadixHeap[V, K]{
		buckets:      newBuckets,
		bucketMin:    bucketMin,
		bucketMinSet: bucketMinSet,
		size:         r.size,
		last:         r.last,
		cfg:          r.cfg,
		pool:         newPool(r.cfg.UsePool, func() Element[V, K] { return Element[V, K]{} }),
	}
}
