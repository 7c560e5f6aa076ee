package offload

import (
	"github.com/dd0wney/cluso-offload/pkg/network"
)

// CNE is the exact strategy over the replica expansion: one full copy of
// the network per compute node, aggregated by a super destination. It finds
// the same optimal delay as CPEG but its expanded graph is
// O(|compute nodes| * |V|) nodes against CPEG's O(|V| + |compute nodes|),
// which is the construction cost CPEG was designed to avoid.
type CNE struct {
	expander Expander
}

// NewCNE returns the replica-expansion exact strategy.
func NewCNE() *CNE { return &CNE{expander: Expander{Variant: Replica}} }

// Name returns the canonical strategy name.
func (s *CNE) Name() string { return "CNE" }

// Evaluate expands the network, searches source -> super destination, and
// maps the expanded path back to original node ids.
func (s *CNE) Evaluate(n *network.Network, req network.FlowRequest) (Result, error) {
	if err := network.ValidateRequest(n, req); err != nil {
		return Result{}, err
	}
	return evaluateExpansion(s.expander, n, req)
}
