package offload

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-offload/pkg/delay"
	"github.com/dd0wney/cluso-offload/pkg/network"
	"github.com/dd0wney/cluso-offload/pkg/search"
)

// Layer tags each expanded-graph arc with its delay semantics, so a single
// weight function can price the whole graph and the search stays
// layer-agnostic.
type Layer int

const (
	// LayerUpstream carries forward (source-side) link delay.
	LayerUpstream Layer = iota
	// LayerDownstream carries gamma-amplified return link delay.
	LayerDownstream
	// LayerComputeEnter carries the compute delay of one compute node.
	LayerComputeEnter
	// LayerComputeLink is the zero-weight bridge into the downstream copy.
	LayerComputeLink
	// LayerAggregate is a zero-weight edge into the super destination
	// (replica expansion only).
	LayerAggregate
)

// String returns the string representation of a layer.
func (l Layer) String() string {
	switch l {
	case LayerUpstream:
		return "upstream"
	case LayerDownstream:
		return "downstream"
	case LayerComputeEnter:
		return "compute-enter"
	case LayerComputeLink:
		return "compute-link"
	case LayerAggregate:
		return "aggregate"
	default:
		return "unknown"
	}
}

// Variant selects the expansion technique.
type Variant int

const (
	// Layered builds one upstream copy and one downstream copy of the
	// network, joined by one pair of edges per compute node; node and edge
	// counts stay O(|V| + |compute nodes|) above the original.
	Layered Variant = iota
	// Replica builds one full copy of the network per compute node plus a
	// super destination, O(|compute nodes| * |V|); kept to document the
	// trade-off the layered expansion improves upon.
	Replica
)

// String returns the string representation of a variant.
func (v Variant) String() string {
	switch v {
	case Layered:
		return "layered"
	case Replica:
		return "replica"
	default:
		return "unknown"
	}
}

// Expanded-node id suffixes. The '#' separator cannot appear in original
// node ids (Expand rejects such networks), so stripping at the first '#'
// always recovers the original id.
const (
	midSuffix  = "#mid"
	downSuffix = "#dn"
	replicaTag = "#r"
	superDest  = "#agg"
)

// layerArc is the attribute attached to every expanded-graph arc.
type layerArc struct {
	layer   Layer
	link    network.Edge // set for upstream/downstream arcs
	compute string       // set for compute-enter arcs
}

// ExpandedGraph is the ephemeral product of one Expand call: a derived
// graph whose arcs carry layer tags, plus the endpoints of the search that
// consumes it. It is never mutated after construction.
type ExpandedGraph struct {
	Graph  *search.Graph
	Source string
	Target string
	weight search.WeightFunc
}

// Weight returns the layer-aware weight function for this expansion.
func (eg *ExpandedGraph) Weight() search.WeightFunc { return eg.weight }

// NodeCount returns the number of expanded nodes.
func (eg *ExpandedGraph) NodeCount() int { return eg.Graph.NodeCount() }

// EdgeCount returns the number of expanded arcs.
func (eg *ExpandedGraph) EdgeCount() int { return eg.Graph.EdgeCount() }

// Expander builds expanded graphs for the exact strategies.
type Expander struct {
	Variant Variant
}

// Expand builds the expanded graph for one (Network, FlowRequest) pair and
// verifies every arc weight is non-negative and evaluable, so the search
// that follows can only fail with no-path.
func (x Expander) Expand(n *network.Network, req network.FlowRequest) (*ExpandedGraph, error) {
	for _, id := range n.Nodes() {
		if strings.ContainsRune(id, '#') {
			return nil, fmt.Errorf("%w: node id %q contains reserved separator '#'", network.ErrInvalidTopology, id)
		}
	}

	var eg *ExpandedGraph
	switch x.Variant {
	case Layered:
		eg = expandLayered(n, req)
	case Replica:
		eg = expandReplica(n, req)
	default:
		return nil, fmt.Errorf("unknown expansion variant %d", x.Variant)
	}

	eg.weight = layerWeight(req, n.Capacities())

	// every layer produces non-negative weights by construction; verify at
	// build time so Dijkstra never sees a bad arc
	err := eg.Graph.Arcs(func(a search.Arc) error {
		w, err := eg.weight(a)
		if err != nil {
			return err
		}
		if w < 0 {
			return fmt.Errorf("%w: expanded arc %s->%s weight=%v", search.ErrNegativeWeight, a.From, a.To, w)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return eg, nil
}

// layerWeight maps (layer, arc attributes) to a delay cost.
func layerWeight(req network.FlowRequest, capacities map[string]float64) search.WeightFunc {
	return func(a search.Arc) (float64, error) {
		la, ok := a.Attr.(layerArc)
		if !ok {
			return 0, fmt.Errorf("arc %s->%s has no layer attribute", a.From, a.To)
		}
		switch la.layer {
		case LayerUpstream:
			return delay.Link(la.link, req.FlowSize, req.Gamma, delay.Forward)
		case LayerDownstream:
			return delay.Link(la.link, req.FlowSize, req.Gamma, delay.Return)
		case LayerComputeEnter:
			return delay.Compute(la.compute, req.FlowSize, req.Omega, capacities)
		case LayerComputeLink, LayerAggregate:
			return 0, nil
		default:
			return 0, fmt.Errorf("arc %s->%s has unknown layer %d", a.From, a.To, la.layer)
		}
	}
}

// expandLayered builds the three-part expansion: an upstream copy of the
// network without edges entering the destination, a downstream copy without
// the source, and per compute node c the pair c -> c#mid (compute delay)
// and c#mid -> c#dn (zero). The search target is the downstream copy of the
// destination, which forces every path through exactly one compute node.
func expandLayered(n *network.Network, req network.FlowRequest) *ExpandedGraph {
	g := search.NewGraph()

	for _, id := range n.Nodes() {
		g.AddNode(id)
	}
	for _, e := range n.Edges() {
		if e.To != req.Destination {
			g.AddEdge(e.From, e.To, layerArc{layer: LayerUpstream, link: e})
		}
	}

	for _, c := range n.ComputeNodes() {
		g.AddEdge(c, c+midSuffix, layerArc{layer: LayerComputeEnter, compute: c})
		g.AddEdge(c+midSuffix, c+downSuffix, layerArc{layer: LayerComputeLink})
	}

	for _, id := range n.Nodes() {
		if id != req.Source {
			g.AddNode(id + downSuffix)
		}
	}
	for _, e := range n.Edges() {
		if e.From != req.Source && e.To != req.Source {
			g.AddEdge(e.From+downSuffix, e.To+downSuffix, layerArc{layer: LayerDownstream, link: e})
		}
	}

	return &ExpandedGraph{
		Graph:  g,
		Source: req.Source,
		Target: req.Destination + downSuffix,
	}
}

// expandReplica builds the per-compute-node expansion: the base network
// (minus edges entering the destination, as in the layered form), one full
// copy of the network per compute node reached through that node's compute
// edge, and a super destination aggregating every copy's destination.
func expandReplica(n *network.Network, req network.FlowRequest) *ExpandedGraph {
	g := search.NewGraph()

	for _, id := range n.Nodes() {
		g.AddNode(id)
	}
	for _, e := range n.Edges() {
		if e.To != req.Destination {
			g.AddEdge(e.From, e.To, layerArc{layer: LayerUpstream, link: e})
		}
	}

	super := req.Destination + superDest
	g.AddNode(super)

	for i, c := range n.ComputeNodes() {
		suffix := replicaTag + strconv.Itoa(i+1)
		for _, id := range n.Nodes() {
			if id != req.Source {
				g.AddNode(id + suffix)
			}
		}
		for _, e := range n.Edges() {
			if e.From != req.Source && e.To != req.Source {
				g.AddEdge(e.From+suffix, e.To+suffix, layerArc{layer: LayerDownstream, link: e})
			}
		}
		g.AddEdge(c, c+suffix, layerArc{layer: LayerComputeEnter, compute: c})
		g.AddEdge(req.Destination+suffix, super, layerArc{layer: LayerAggregate})
	}

	return &ExpandedGraph{
		Graph:  g,
		Source: req.Source,
		Target: super,
	}
}

// unexpandPath maps an expanded-graph path back to original node ids and
// reveals which compute node the path passed through. Suffixed copies
// collapse onto their original node; the compute node is the prefix of the
// first suffixed id on the path.
func unexpandPath(path []string) (computeNode string, original []string) {
	original = make([]string, 0, len(path))
	for _, id := range path {
		orig := id
		if cut := strings.IndexByte(id, '#'); cut >= 0 {
			if computeNode == "" {
				computeNode = id[:cut]
			}
			orig = id[:cut]
		}
		if len(original) > 0 && original[len(original)-1] == orig {
			continue
		}
		original = append(original, orig)
	}
	return computeNode, original
}
