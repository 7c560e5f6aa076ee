package offload

import (
	"errors"
	"sort"

	"github.com/dd0wney/cluso-offload/pkg/delay"
	"github.com/dd0wney/cluso-offload/pkg/network"
	"github.com/dd0wney/cluso-offload/pkg/search"
)

// CCN is the closest-compute-node heuristic: among compute nodes reachable
// from the source and able to reach the destination, it picks the one with
// the smallest cumulative propagation delay from the source. Propagation
// delay is a deliberate cheap proxy for closeness; the forward leg is then
// re-measured under the full five-term delay along that same
// propagation-shortest path (not re-optimized), the return leg is optimized
// under the full return weight, and the node's compute delay is added.
// It can therefore exceed the exact strategies' delay.
type CCN struct{}

// NewCCN returns the closest-compute-node strategy.
func NewCCN() *CCN { return &CCN{} }

// Name returns the canonical strategy name.
func (s *CCN) Name() string { return "CCN" }

// candidate is a bidirectionally reachable compute node with its
// source-side propagation distance and path.
type candidate struct {
	node     string
	propDist float64
	fwdPath  []string
}

// Evaluate runs the heuristic. Ties on propagation distance resolve to the
// compute node that appears first in the network's canonical order.
func (s *CCN) Evaluate(n *network.Network, req network.FlowRequest) (Result, error) {
	if err := network.ValidateRequest(n, req); err != nil {
		return Result{}, err
	}

	g := searchGraph(n)
	prop := propagationWeight()

	candidates := make([]candidate, 0, len(n.ComputeNodes()))
	for _, c := range n.ComputeNodes() {
		fwdPath, propDist, err := search.Dijkstra(g, req.Source, c, prop)
		if errors.Is(err, search.ErrNoPath) {
			continue
		}
		if err != nil {
			return Result{}, err
		}
		// the node must also be able to reach the destination
		if _, _, err := search.Dijkstra(g, c, req.Destination, prop); err != nil {
			if errors.Is(err, search.ErrNoPath) {
				continue
			}
			return Result{}, err
		}
		candidates = append(candidates, candidate{node: c, propDist: propDist, fwdPath: fwdPath})
	}
	if len(candidates) == 0 {
		return NoAssignment(), nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].propDist < candidates[j].propDist
	})
	chosen := candidates[0]

	forwardDelay, err := delay.Path(n, chosen.fwdPath, req.FlowSize, req.Gamma, delay.Forward)
	if err != nil {
		return Result{}, err
	}

	retPath, returnDelay, err := search.Dijkstra(g, chosen.node, req.Destination, linkWeight(req, delay.Return))
	if err != nil {
		// reachability was established above, so any error here is fatal
		return Result{}, err
	}

	computeDelay, err := delay.Compute(chosen.node, req.FlowSize, req.Omega, n.Capacities())
	if err != nil {
		return Result{}, err
	}

	return Result{
		Node:  chosen.node,
		Delay: forwardDelay + returnDelay + computeDelay,
		Path:  joinPath(chosen.fwdPath, retPath),
	}, nil
}
