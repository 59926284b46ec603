package graph

import (
	"fmt"
	"math"

	"github.com/galactixx/radixheap"
)

// Unreachable marks a node that Dijkstra never reached from the source.
const Unreachable = math.MaxUint64

// ShortestPaths runs Dijkstra's algorithm from source over g, using an
// indexed radix heap as the frontier so that edge relaxations become
// ReducePriority calls instead of reinserting a stale duplicate. Returns the
// distance to every node (Unreachable for nodes never reached) and the
// predecessor of each node on its shortest path (-1 for source and
// unreached nodes).
func ShortestPaths(g *Graph, source int) (dist []uint64, prev []int, err error) {
	n := g.Nodes()
	if source < 0 || source >= n {
		return nil, nil, fmt.Errorf("graph: source %d out of range [0, %d)", source, n)
	}

	dist = make([]uint64, n)
	prev = make([]int, n)
	for i := range dist {
		dist[i] = Unreachable
		prev[i] = -1
	}
	dist[source] = 0

	cfg := radixheap.DefaultConfig()
	frontier, err := radixheap.NewIndexedRadixHeap(n, cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := frontier.Push(source, 0); err != nil {
		return nil, nil, err
	}

	settled := make([]bool, n)

	for !frontier.Empty() {
		u, d, err := frontier.Pop()
		if err != nil {
			return nil, nil, err
		}
		if settled[u] {
			continue
		}
		settled[u] = true
		dist[u] = d

		for _, e := range g.Neighbors(u) {
			if settled[e.To] {
				continue
			}
			candidate := d + e.Weight

			present, err := frontier.InHeap(e.To)
			if err != nil {
				return nil, nil, err
			}

			switch {
			case present:
				current, err := frontier.Priority(e.To)
				if err != nil {
					return nil, nil, err
				}
				if candidate < current {
					if err := frontier.ReducePriority(e.To, candidate); err != nil {
						return nil, nil, err
					}
					prev[e.To] = u
				}
			default:
				if err := frontier.Push(e.To, candidate); err != nil {
					return nil, nil, err
				}
				prev[e.To] = u
			}
		}
	}

	return dist, prev, nil
}

// PathTo reconstructs the shortest path from the Dijkstra source to target
// using the predecessor slice returned by ShortestPaths. Returns an empty
// slice if target is unreachable.
func PathTo(prev []int, source, target int) []int {
	if target != source && prev[target] == -1 {
		return nil
	}

	var path []int
	for at := target; ; {
		path = append(path, at)
		if at == source {
			break
		}
		at = prev[at]
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
