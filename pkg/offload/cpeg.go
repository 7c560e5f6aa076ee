package offload

import (
	"errors"

	"github.com/dd0wney/cluso-offload/pkg/network"
	"github.com/dd0wney/cluso-offload/pkg/search"
)

// CPEG is the exact strategy over the layered expansion: one shortest-path
// run on the expanded graph jointly chooses the compute node and the route,
// so its delay is minimal with respect to the cost model. The expansion
// adds only two edges per compute node, keeping it linear in the number of
// compute nodes rather than replicating the whole graph per candidate.
type CPEG struct {
	expander Expander
}

// NewCPEG returns the layered-expansion exact strategy.
func NewCPEG() *CPEG { return &CPEG{expander: Expander{Variant: Layered}} }

// Name returns the canonical strategy name.
func (s *CPEG) Name() string { return "CPEG" }

// Evaluate expands the network, searches source -> downstream destination,
// and maps the expanded path back to original node ids.
func (s *CPEG) Evaluate(n *network.Network, req network.FlowRequest) (Result, error) {
	if err := network.ValidateRequest(n, req); err != nil {
		return Result{}, err
	}
	return evaluateExpansion(s.expander, n, req)
}

// evaluateExpansion runs the expand-and-search pipeline shared by CPEG and
// CNE; the two strategies differ only in the expansion variant.
func evaluateExpansion(x Expander, n *network.Network, req network.FlowRequest) (Result, error) {
	eg, err := x.Expand(n, req)
	if err != nil {
		return Result{}, err
	}

	path, dist, err := search.Dijkstra(eg.Graph, eg.Source, eg.Target, eg.Weight())
	if errors.Is(err, search.ErrNoPath) {
		return NoAssignment(), nil
	}
	if err != nil {
		return Result{}, err
	}

	node, original := unexpandPath(path)
	return Result{Node: node, Delay: dist, Path: original}, nil
}
