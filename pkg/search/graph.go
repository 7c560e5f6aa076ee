// Package search provides single-source shortest-path search over a
// non-negative-weighted directed graph with pluggable per-edge weight
// functions. It is layer-agnostic: callers attach an arbitrary attribute to
// each edge and supply a WeightFunc that turns the attribute into a cost,
// which lets one Dijkstra implementation serve both the original network
// (greedy strategies) and the expanded graphs (exact strategies).
package search

import "errors"

// Common sentinel errors
var (
	ErrNoPath         = errors.New("no path")
	ErrNodeNotFound   = errors.New("node not found in graph")
	ErrNegativeWeight = errors.New("negative edge weight")
	ErrNilGraph       = errors.New("nil graph")
)

// Arc is a directed edge of a search graph. Attr carries whatever the
// caller's WeightFunc needs to price the traversal.
type Arc struct {
	From string
	To   string
	Attr any
}

// WeightFunc prices the traversal of a single arc. Weights must be
// non-negative; Dijkstra aborts with ErrNegativeWeight otherwise.
type WeightFunc func(a Arc) (float64, error)

// Graph is a mutable adjacency-list directed graph used as search input.
// Build it up with AddNode/AddEdge, then treat it as read-only during
// search. Nodes keep insertion order.
type Graph struct {
	order []string
	adj   map[string][]Arc
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[string][]Arc)}
}

// AddNode registers a node id. Adding an existing node is a no-op.
func (g *Graph) AddNode(id string) {
	if _, ok := g.adj[id]; ok {
		return
	}
	g.order = append(g.order, id)
	g.adj[id] = nil
}

// AddEdge adds a directed arc, registering both endpoints.
func (g *Graph) AddEdge(from, to string, attr any) {
	g.AddNode(from)
	g.AddNode(to)
	g.adj[from] = append(g.adj[from], Arc{From: from, To: to, Attr: attr})
}

// HasNode reports whether id was added to the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// Out returns the arcs leaving a node in insertion order.
func (g *Graph) Out(id string) []Arc {
	return g.adj[id]
}

// Nodes returns the node ids in insertion order. The slice is a copy.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of arcs.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, arcs := range g.adj {
		total += len(arcs)
	}
	return total
}

// Arcs calls fn for every arc in node insertion order. It stops and returns
// the first error.
func (g *Graph) Arcs(fn func(a Arc) error) error {
	for _, id := range g.order {
		for _, a := range g.adj[id] {
			if err := fn(a); err != nil {
				return err
			}
		}
	}
	return nil
}

// StaticWeight returns a WeightFunc that prices every arc from a numeric
// attribute attached at AddEdge time. Untyped constants arrive through the
// `any` parameter as int, so both int and float64 are accepted.
func StaticWeight() WeightFunc {
	return func(a Arc) (float64, error) {
		switch w := a.Attr.(type) {
		case float64:
			return w, nil
		case int:
			return float64(w), nil
		default:
			return 0, errors.New("arc attribute is not a numeric weight")
		}
	}
}
