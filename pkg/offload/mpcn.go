package offload

import (
	"errors"

	"github.com/dd0wney/cluso-offload/pkg/delay"
	"github.com/dd0wney/cluso-offload/pkg/network"
	"github.com/dd0wney/cluso-offload/pkg/search"
)

// MPCN is the max-processing-capacity heuristic: it fixes the compute node
// with the strictly largest capacity before any path is known, then routes
// both legs under the full delay weights. Because the node is fixed first,
// MPCN can report no assignment even when another compute node would have
// been reachable; that is the documented greedy trade-off, not a defect.
type MPCN struct{}

// NewMPCN returns the max-capacity strategy.
func NewMPCN() *MPCN { return &MPCN{} }

// Name returns the canonical strategy name.
func (s *MPCN) Name() string { return "MPCN" }

// Evaluate picks the largest-capacity compute node (ties resolve to the
// first in canonical order), routes source->node under the forward weight
// and node->destination under the return weight, and adds compute delay.
func (s *MPCN) Evaluate(n *network.Network, req network.FlowRequest) (Result, error) {
	if err := network.ValidateRequest(n, req); err != nil {
		return Result{}, err
	}

	chosen := ""
	best := 0.0
	for _, c := range n.ComputeNodes() {
		if cap, _ := n.Capacity(c); cap > best {
			chosen, best = c, cap
		}
	}
	if chosen == "" {
		return NoAssignment(), nil
	}

	g := searchGraph(n)

	fwdPath, forwardDelay, err := search.Dijkstra(g, req.Source, chosen, linkWeight(req, delay.Forward))
	if errors.Is(err, search.ErrNoPath) {
		return NoAssignment(), nil
	}
	if err != nil {
		return Result{}, err
	}

	retPath, returnDelay, err := search.Dijkstra(g, chosen, req.Destination, linkWeight(req, delay.Return))
	if errors.Is(err, search.ErrNoPath) {
		return NoAssignment(), nil
	}
	if err != nil {
		return Result{}, err
	}

	computeDelay, err := delay.Compute(chosen, req.FlowSize, req.Omega, n.Capacities())
	if err != nil {
		return Result{}, err
	}

	return Result{
		Node:  chosen,
		Delay: forwardDelay + returnDelay + computeDelay,
		Path:  joinPath(fwdPath, retPath),
	}, nil
}
