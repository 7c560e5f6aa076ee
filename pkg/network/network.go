// Package network holds the immutable network model consumed by the offload
// strategies: nodes, attributed directed edges, compute-capable nodes with
// capacities, and the flow request. All topology validation happens at
// construction so the search layer never sees a malformed graph.
package network

import "fmt"

// DefaultCapacity is assigned to a compute node that has no entry in the
// capacity map, matching the behavior of network files that list compute
// nodes without capacities.
const DefaultCapacity = 1.0

// New validates and builds a Network. Nodes and compute nodes keep their
// given order; that order is the canonical tie-break order used by the
// greedy strategies. Capacities for compute nodes absent from the map
// default to DefaultCapacity.
func New(nodes []string, edges []Edge, computeNodes []string, capacities map[string]float64) (*Network, error) {
	n := &Network{
		nodes:        make([]string, 0, len(nodes)),
		nodeSet:      make(map[string]struct{}, len(nodes)),
		edges:        make([]Edge, 0, len(edges)),
		out:          make(map[string][]Edge, len(nodes)),
		computeNodes: make([]string, 0, len(computeNodes)),
		capacities:   make(map[string]float64, len(computeNodes)),
	}

	for _, id := range nodes {
		if id == "" {
			return nil, &TopologyError{Element: "node", Reason: "empty id"}
		}
		if _, dup := n.nodeSet[id]; dup {
			continue
		}
		n.nodeSet[id] = struct{}{}
		n.nodes = append(n.nodes, id)
	}

	seen := make(map[[2]string]struct{}, len(edges))
	for _, e := range edges {
		if err := validateEdge(e, n.nodeSet); err != nil {
			return nil, err
		}
		key := [2]string{e.From, e.To}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %s->%s", ErrDuplicateEdge, e.From, e.To)
		}
		seen[key] = struct{}{}
		n.edges = append(n.edges, e)
		n.out[e.From] = append(n.out[e.From], e)
	}

	for _, id := range computeNodes {
		if _, ok := n.nodeSet[id]; !ok {
			return nil, &TopologyError{Element: "compute node", Node: id, Reason: "not a network node"}
		}
		if _, dup := n.capacities[id]; dup {
			continue
		}
		cap, ok := capacities[id]
		if !ok {
			cap = DefaultCapacity
		}
		if cap <= 0 {
			return nil, &TopologyError{Element: "compute node", Node: id, Reason: fmt.Sprintf("capacity %v is not positive", cap)}
		}
		n.computeNodes = append(n.computeNodes, id)
		n.capacities[id] = cap
	}

	return n, nil
}

func validateEdge(e Edge, nodeSet map[string]struct{}) error {
	if _, ok := nodeSet[e.From]; !ok {
		return &TopologyError{Element: "edge", From: e.From, To: e.To, Reason: "tail is not a network node"}
	}
	if _, ok := nodeSet[e.To]; !ok {
		return &TopologyError{Element: "edge", From: e.From, To: e.To, Reason: "head is not a network node"}
	}
	if e.From == e.To {
		return &TopologyError{Element: "edge", From: e.From, To: e.To, Reason: "self loop"}
	}
	if e.Bandwidth <= 0 {
		return &TopologyError{Element: "edge", From: e.From, To: e.To, Reason: fmt.Sprintf("bandwidth %v is not positive", e.Bandwidth)}
	}
	if e.PropagationDelay < 0 || e.ProcessingDelay < 0 || e.QueuingDelay < 0 || e.Jitter < 0 {
		return &TopologyError{Element: "edge", From: e.From, To: e.To, Reason: "negative delay attribute"}
	}
	return nil
}

// Nodes returns the node ids in canonical (insertion) order.
// The returned slice is a copy.
func (n *Network) Nodes() []string {
	out := make([]string, len(n.nodes))
	copy(out, n.nodes)
	return out
}

// Edges returns all directed edges. The returned slice is a copy.
func (n *Network) Edges() []Edge {
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)
	return out
}

// ComputeNodes returns the compute-capable node ids in canonical order.
// The returned slice is a copy.
func (n *Network) ComputeNodes() []string {
	out := make([]string, len(n.computeNodes))
	copy(out, n.computeNodes)
	return out
}

// Capacities returns a copy of the compute-node capacity map.
func (n *Network) Capacities() map[string]float64 {
	out := make(map[string]float64, len(n.capacities))
	for k, v := range n.capacities {
		out[k] = v
	}
	return out
}

// Capacity returns the processing capacity of a compute node.
func (n *Network) Capacity(id string) (float64, bool) {
	c, ok := n.capacities[id]
	return c, ok
}

// HasNode reports whether id is a node of the network.
func (n *Network) HasNode(id string) bool {
	_, ok := n.nodeSet[id]
	return ok
}

// IsComputeNode reports whether id is in the compute-node set.
func (n *Network) IsComputeNode(id string) bool {
	_, ok := n.capacities[id]
	return ok
}

// Out returns the edges leaving a node in insertion order. The returned
// slice must not be modified.
func (n *Network) Out(id string) []Edge {
	return n.out[id]
}

// EdgeBetween returns the directed edge from->to, if one exists.
func (n *Network) EdgeBetween(from, to string) (Edge, bool) {
	for _, e := range n.out[from] {
		if e.To == to {
			return e, true
		}
	}
	return Edge{}, false
}

// NodeCount returns the number of nodes.
func (n *Network) NodeCount() int { return len(n.nodes) }

// EdgeCount returns the number of directed edges.
func (n *Network) EdgeCount() int { return len(n.edges) }
