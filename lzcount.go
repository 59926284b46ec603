package radixheap

import (
	"math/bits"
	"reflect"

	"golang.org/x/exp/constraints"
)

// keyBits returns the bit width of K, e.g. 32 for uint32. It mirrors the
// reflect-based approach the teacher library uses to size its bucket array
// from the key type alone.
func keyBits[K constraints.Unsigned]() int {
	var zero K
	return reflect.TypeOf(zero).Bits()
}

// numBuckets returns B = W + 1, the bucket count for a key type of width W.
func numBuckets[K constraints.Unsigned]() int {
	return keyBits[K]() + 1
}

// highestSetBitPortable returns the index of the highest set bit of a
// non-zero x without touching any hardware-specific instruction: a binary
// search over the 64 bit positions, halving the search range on every step.
// This is the fallback selected when Config.UseHardwareLeadingZeroCount is
// false, and is exercised by the same test table as the hardware path.
func highestSetBitPortable(x uint64) int {
	r := 0
	if x&0xFFFFFFFF00000000 != 0 {
		x >>= 32
		r += 32
	}
	if x&0xFFFF0000 != 0 {
		x >>= 16
		r += 16
	}
	if x&0xFF00 != 0 {
		x >>= 8
		r += 8
	}
	if x&0xF0 != 0 {
		x >>= 4
		r += 4
	}
	if x&0xC != 0 {
		x >>= 2
		r += 2
	}
	if x&0x2 != 0 {
		r++
	}
	return r
}

// highestSetBitHW returns the index of the highest set bit of a non-zero x
// using math/bits, which the Go compiler recognizes as an intrinsic and
// lowers to a single BSR/LZCNT instruction on amd64 and arm64.
func highestSetBitHW(x uint64) int {
	return bits.Len64(x) - 1
}

// highestSetBit dispatches to the hardware or portable implementation
// according to useHardware.
func highestSetBit(x uint64, useHardware bool) int {
	if useHardware {
		return highestSetBitHW(x)
	}
	return highestSetBitPortable(x)
}

// bucketOf computes which bucket a key belongs to relative to the current
// watermark last. Two keys whose highest differing bit is at position i
// land in the same bucket exactly when i is below last's next-unmasked bit;
// since last only grows, every surviving element's bucket index is
// non-increasing over the heap's lifetime.
func bucketOf[K constraints.Unsigned](key, last K, useHardware bool) int {
	if key == last {
		return 0
	}
	diff := uint64(key ^ last)
	return 1 + highestSetBit(diff, useHardware)
}
