package radixheap

import "golang.org/x/exp/constraints"

// Element binds a value to its priority (key) for seeding a heap or for
// describing one of its members to a caller.
type Element[V any, K constraints.Unsigned] struct {
	value V
	key   K
}

// NewElement constructs a new Element from the given value and key.
func NewElement[V any, K constraints.Unsigned](value V, key K) Element[V, K] {
	return Element[V, K]{value: value, key: key}
}

// Value returns the value carried by the element.
func (e Element[V, K]) Value() V { return e.value }

// Key returns the priority (key) carried by the element.
func (e Element[V, K]) Key() K { return e.key }

// zeroPair returns the zero values for V and K, used when an operation fails
// and no real element can be returned.
func zeroPair[V any, K constraints.Unsigned]() (V, K) {
	var v V
	var k K
	return v, k
}
