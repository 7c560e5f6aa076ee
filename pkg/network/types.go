package network

// Edge is a directed, attributed link between two nodes. An undirected link
// is represented as two Edges. All delay attributes are in milliseconds,
// bandwidth in Mbps. Loss is carried through from network files but is not
// part of the delay model.
type Edge struct {
	From             string  `yaml:"source"`
	To               string  `yaml:"destination"`
	Bandwidth        float64 `yaml:"bandwidth"`
	PropagationDelay float64 `yaml:"propagation_delay"`
	ProcessingDelay  float64 `yaml:"processing_delay"`
	QueuingDelay     float64 `yaml:"queuing_delay"`
	Jitter           float64 `yaml:"jitter"`
	Loss             float64 `yaml:"loss,omitempty"`
}

// FlowRequest describes a single flow to be routed through a compute node.
// FlowSize is the request payload size, Gamma scales the response payload on
// the compute->destination leg, and Omega scales processing time per unit of
// flow per unit of compute capacity.
type FlowRequest struct {
	Source      string  `yaml:"source_node" validate:"required"`
	Destination string  `yaml:"destination_node" validate:"required,nefield=Source"`
	FlowSize    float64 `yaml:"flow_size" validate:"gt=0"`
	Gamma       float64 `yaml:"gamma" validate:"gte=1"`
	Omega       float64 `yaml:"omega" validate:"gte=0"`
}

// Network is an immutable directed graph plus the set of compute-capable
// nodes and their capacities. Build one with New; a constructed Network is
// safe for concurrent read-only use by any number of strategies.
type Network struct {
	nodes        []string
	nodeSet      map[string]struct{}
	edges        []Edge
	out          map[string][]Edge
	computeNodes []string
	capacities   map[string]float64
}
