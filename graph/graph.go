// Package graph implements weighted shortest-path search over dense
// integer-labeled nodes, using an indexed radix heap as its frontier.
package graph

import "fmt"

// Edge is a directed, weighted connection from one node to another.
type Edge struct {
	To     int
	Weight uint64
}

// Graph is an adjacency-list graph over nodes numbered [0, N).
type Graph struct {
	adj [][]Edge
}

// New creates an empty graph with n nodes and no edges.
func New(n int) *Graph {
	return &Graph{adj: make([][]Edge, n)}
}

// Nodes returns the number of nodes in the graph.
func (g *Graph) Nodes() int { return len(g.adj) }

// AddEdge adds a directed edge from -> to with the given weight. Returns an
// error if either endpoint is out of range.
func (g *Graph) AddEdge(from, to int, weight uint64) error {
	if from < 0 || from >= len(g.adj) {
		return fmt.Errorf("graph: from node %d out of range [0, %d)", from, len(g.adj))
	}
	if to < 0 || to >= len(g.adj) {
		return fmt.Errorf("graph: to node %d out of range [0, %d)", to, len(g.adj))
	}
	g.adj[from] = append(g.adj[from], Edge{To: to, Weight: weight})
	return nil
}

// AddUndirectedEdge adds edges in both directions with the same weight.
func (g *Graph) AddUndirectedEdge(a, b int, weight uint64) error {
	if err := g.AddEdge(a, b, weight); err != nil {
		return err
	}
	return g.AddEdge(b, a, weight)
}

// Neighbors returns the outgoing edges of node.
func (g *Graph) Neighbors(node int) []Edge { return g.adj[node] }
