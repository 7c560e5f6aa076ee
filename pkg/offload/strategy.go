// Package offload selects, for a single flow, the compute node that should
// execute its workload and the route through the network, minimizing
// end-to-end delay under the pkg/delay cost model.
//
// Four strategies are provided. CCN and MPCN are cheap greedy heuristics:
// CCN picks the compute node nearest to the source by propagation delay,
// MPCN the one with the largest processing capacity. CPEG and CNE are exact
// with respect to the cost model: they transform the network into an
// expanded graph whose edge weights already encode per-segment delay
// semantics, so a single shortest-path search jointly optimizes node and
// route. CPEG's layered expansion grows linearly in the number of compute
// nodes; CNE's per-node replica expansion is the asymptotically heavier
// sibling it improves upon.
package offload

import (
	"fmt"
	"math"

	"github.com/dd0wney/cluso-offload/pkg/delay"
	"github.com/dd0wney/cluso-offload/pkg/network"
	"github.com/dd0wney/cluso-offload/pkg/search"
)

// Result is the outcome of one strategy evaluation. A flow with no feasible
// compute assignment is reported as Node == "", Delay == +Inf and an empty
// path, not as an error; callers distinguish infeasibility from failures
// such as an invalid capacity.
type Result struct {
	Node  string
	Delay float64
	Path  []string
}

// NoAssignment is the Result returned when no compute node is reachable.
func NoAssignment() Result {
	return Result{Delay: math.Inf(1), Path: []string{}}
}

// Feasible reports whether the strategy found a compute assignment.
func (r Result) Feasible() bool {
	return r.Node != "" && !math.IsInf(r.Delay, 1)
}

// Strategy evaluates one (Network, FlowRequest) pair. Implementations are
// stateless and safe for concurrent use; every call validates the request
// and computes from scratch.
type Strategy interface {
	Name() string
	Evaluate(n *network.Network, req network.FlowRequest) (Result, error)
}

// All returns one instance of every strategy in canonical comparison order.
func All() []Strategy {
	return []Strategy{NewCCN(), NewMPCN(), NewCPEG(), NewCNE()}
}

// ByName returns the strategy registered under the given canonical name.
func ByName(name string) (Strategy, error) {
	for _, s := range All() {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown strategy %q", name)
}

// searchGraph builds the search view of the original network, attaching the
// full edge to every arc so weight closures can price either direction.
func searchGraph(n *network.Network) *search.Graph {
	g := search.NewGraph()
	for _, id := range n.Nodes() {
		g.AddNode(id)
	}
	for _, e := range n.Edges() {
		g.AddEdge(e.From, e.To, e)
	}
	return g
}

// propagationWeight prices an arc by propagation delay alone, the cheap
// closeness proxy CCN selects with.
func propagationWeight() search.WeightFunc {
	return func(a search.Arc) (float64, error) {
		return a.Attr.(network.Edge).PropagationDelay, nil
	}
}

// linkWeight prices an arc by the full five-term delay in the given
// direction.
func linkWeight(req network.FlowRequest, dir delay.Direction) search.WeightFunc {
	return func(a search.Arc) (float64, error) {
		return delay.Link(a.Attr.(network.Edge), req.FlowSize, req.Gamma, dir)
	}
}

// joinPath concatenates the forward and return legs, which share the
// compute node as the forward leg's last and the return leg's first entry.
func joinPath(forward, ret []string) []string {
	path := make([]string, 0, len(forward)+len(ret)-1)
	path = append(path, forward[:len(forward)-1]...)
	path = append(path, ret...)
	return path
}
