// Package spanning defines configuration options, result types and sentinel
// errors for minimum spanning tree computation over index-addressed graphs.
// It supports selecting between Kruskal and Prim algorithms via Options.
package spanning

import (
	"errors"
)

// ErrNegativeVertices indicates a negative vertex count.
var ErrNegativeVertices = errors.New("spanning: vertex count must be non-negative")

// ErrVertexRange indicates an edge endpoint or root outside [0, n).
var ErrVertexRange = errors.New("spanning: vertex index out of range")

// ErrDisconnected indicates that Prim could not reach every vertex from its root.
// Kruskal never returns it: a disconnected input yields a spanning forest.
var ErrDisconnected = errors.New("spanning: graph is disconnected")

// ErrUnknownMethod indicates an Options.Method other than MethodKruskal or MethodPrim.
var ErrUnknownMethod = errors.New("spanning: unknown method")

// Method names an MST algorithm.
type Method string

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal Method = "kruskal"

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim Method = "prim"

// Edge is an undirected weighted edge between vertices U and V.
type Edge struct {
	U, V int
	W    float64
}

// Forest is the result of a spanning computation.
//
// Edges lists accepted edges in acceptance order, Weight is their sum and
// Vertices the vertex count the forest was built over. A connected input of
// n ≥ 1 vertices yields exactly n-1 edges.
type Forest struct {
	Edges    []Edge
	Weight   float64
	Vertices int
}

// Components returns the number of trees in the forest.
func (f Forest) Components() int {
	return f.Vertices - len(f.Edges)
}

// Spanning reports whether the forest is a single tree covering every vertex.
func (f Forest) Spanning() bool {
	return f.Vertices > 0 && len(f.Edges) == f.Vertices-1
}

// Adjacency returns, for each vertex, the neighbor indices joined by forest edges.
func (f Forest) Adjacency() [][]int {
	adj := make([][]int, f.Vertices)
	for _, e := range f.Edges {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	return adj
}

// Options configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method: one of MethodPrim or MethodKruskal.
//	Root:   start vertex for Prim; ignored when Method == MethodKruskal.
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type Options struct {
	Method Method
	Root   int
}

// Option configures Options.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m Method) Option {
	return func(opts *Options) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *Options) {
		opts.Root = root
	}
}

// DefaultOptions returns Options initialized for Kruskal with Root 0.
func DefaultOptions() Options {
	return Options{
		Method: MethodKruskal,
		Root:   0,
	}
}

// Build selects and runs the MST algorithm based on the options.
//
//	– MethodKruskal: Kruskal(n, edges).
//	– MethodPrim:    Prim(n, edges, Root).
//	– Otherwise:     ErrUnknownMethod.
func Build(n int, edges []Edge, opts ...Option) (Forest, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(n, edges)
	case MethodPrim:
		return Prim(n, edges, cfg.Root)
	default:
		return Forest{}, ErrUnknownMethod
	}
}

func validate(n int, edges []Edge) error {
	if n < 0 {
		return ErrNegativeVertices
	}
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return ErrVertexRange
		}
	}

	return nil
}
