// Command radixbench compares draining a radix heap against draining a
// d-ary heap over the same randomly generated key sequence, as a
// quick sanity check that the radix heap's bucket discipline pays off over
// a comparison-based baseline at scale.
package main

import (
	"flag"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/galactixx/radixheap"
	"github.com/galactixx/radixheap/internal/dary"
)

func runRadixHeap(n int, keys []uint64) time.Duration {
	start := time.Now()
	h := radixheap.NewRadixHeap[int, uint64](radixheap.DefaultConfig())
	for i, k := range keys {
		_ = h.Push(i, k)
	}
	for !h.Empty() {
		_, _, _ = h.Pop()
	}
	return time.Since(start)
}

func runDaryHeap(arity int, keys []uint64) time.Duration {
	start := time.Now()
	h := dary.New[int](arity)
	for i, k := range keys {
		h.Push(i, k)
	}
	for h.Len() > 0 {
		_, _, _ = h.Pop()
	}
	return time.Since(start)
}

func main() {
	n := flag.Int("n", 200_000, "number of keys to push")
	arity := flag.Int("arity", 4, "arity of the d-ary baseline")
	seed := flag.Int64("seed", 1, "random seed for key generation")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	rng := rand.New(rand.NewSource(*seed))
	keys := make([]uint64, *n)
	for i := range keys {
		keys[i] = uint64(rng.Intn(*n * 4))
	}

	radixElapsed := runRadixHeap(*n, keys)
	daryElapsed := runDaryHeap(*arity, keys)

	logger.Info("benchmark complete",
		zap.Int("n", *n),
		zap.Int("dary_arity", *arity),
		zap.Duration("radix_heap", radixElapsed),
		zap.Duration("dary_heap", daryElapsed))
}
