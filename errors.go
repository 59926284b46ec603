package radixheap

import "errors"

var (
	// ErrHeapEmpty is returned when attempting to access elements from an empty heap.
	ErrHeapEmpty = errors.New("the heap is empty and contains no elements")

	// ErrPriorityBelowWatermark is returned when a push or a reduce-priority would
	// insert a key lower than the last extracted minimum, which would violate the
	// monotonic property of the radix heap.
	ErrPriorityBelowWatermark = errors.New("key is less than the last extracted minimum")

	// ErrPriorityIncrease is returned when ReducePriority is called with a key
	// greater than the value's current priority. This queue only supports
	// monotone decreases.
	ErrPriorityIncrease = errors.New("reduce priority called with a key greater than the current priority")

	// ErrValueOutOfRange is returned when a lookup-mode operation is given a value
	// outside the declared [0, capacity) domain.
	ErrValueOutOfRange = errors.New("value is outside the declared heap capacity")

	// ErrValueNotPresent is returned when ReducePriority or Priority is called
	// for a value that is not currently stored.
	ErrValueNotPresent = errors.New("value is not currently present in the heap")

	// ErrValueAlreadyPresent is returned when Push is called with a value that is
	// already stored in an indexed (lookup-mode) heap.
	ErrValueAlreadyPresent = errors.New("value is already present in the heap")

	// ErrNoRebalancingNeeded is returned when Rebalance is called on a radix heap
	// that doesn't need rebalancing (bucket 0 already contains elements).
	ErrNoRebalancingNeeded = errors.New("no rebalancing needed")
)
