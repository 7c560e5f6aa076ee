// Package delay implements the cost model shared by every offload strategy:
// per-link delay for the two traversal directions and processing delay at a
// compute node. All functions are pure and deterministic.
//
// A link traversed on the source side ("forward") costs
//
//	propagation + processing + queuing + jitter + flowSize/bandwidth
//
// and on the compute->destination side ("return") the transmission term is
// amplified by gamma, modeling a response larger than the request:
//
//	propagation + processing + queuing + jitter + gamma*flowSize/bandwidth
package delay

import (
	"errors"
	"fmt"

	"github.com/dd0wney/cluso-offload/pkg/network"
)

// Direction selects which transmission term a link traversal pays.
type Direction int

const (
	// Forward is the source->compute ("uplink") direction.
	Forward Direction = iota
	// Return is the compute->destination ("downlink") direction; its
	// transmission term is scaled by the flow's gamma.
	Return
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Return:
		return "return"
	default:
		return "unknown"
	}
}

// Common sentinel errors
var (
	ErrInvalidCapacity = errors.New("invalid compute capacity")
	ErrZeroBandwidth   = errors.New("zero or negative bandwidth")
)

// Link returns the delay contribution of traversing e in the given
// direction. Bandwidth must be positive; network construction guarantees
// that, but the division is still guarded so a hand-built edge can never
// silently produce an infinite weight.
func Link(e network.Edge, flowSize, gamma float64, dir Direction) (float64, error) {
	if e.Bandwidth <= 0 {
		return 0, fmt.Errorf("%w: edge %s->%s", ErrZeroBandwidth, e.From, e.To)
	}
	transmission := flowSize / e.Bandwidth
	if dir == Return {
		transmission *= gamma
	}
	return e.PropagationDelay + e.ProcessingDelay + e.QueuingDelay + e.Jitter + transmission, nil
}

// Compute returns the processing delay omega*flowSize/capacity at the given
// compute node. A node missing from the capacity map, or carrying a
// non-positive capacity, is ErrInvalidCapacity; defaulting here would
// silently corrupt comparability across strategies.
func Compute(node string, flowSize, omega float64, capacities map[string]float64) (float64, error) {
	cap, ok := capacities[node]
	if !ok {
		return 0, fmt.Errorf("%w: node %s has no capacity", ErrInvalidCapacity, node)
	}
	if cap <= 0 {
		return 0, fmt.Errorf("%w: node %s capacity %v", ErrInvalidCapacity, node, cap)
	}
	return omega * flowSize / cap, nil
}

// Path sums the per-link delay of a walk over the network in the given
// direction. The walk must follow existing directed edges.
func Path(n *network.Network, path []string, flowSize, gamma float64, dir Direction) (float64, error) {
	var total float64
	for i := 0; i+1 < len(path); i++ {
		e, ok := n.EdgeBetween(path[i], path[i+1])
		if !ok {
			return 0, fmt.Errorf("%w: no edge %s->%s", network.ErrInvalidTopology, path[i], path[i+1])
		}
		d, err := Link(e, flowSize, gamma, dir)
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total, nil
}
