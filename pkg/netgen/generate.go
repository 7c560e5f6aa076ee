package netgen

import (
	"fmt"
	"math/rand"
	"strconv"
)

// Generation parameter ranges, matching the reference scenario generator:
// bandwidth in Mbps, delays in ms, capacities in processing units.
const (
	minBandwidth   = 1000
	maxBandwidth   = 5000
	minPropagation = 1.0
	maxPropagation = 5.0
	minProcessing  = 0.1
	maxProcessing  = 0.5
	maxQueuing     = 5.0
	maxJitter      = 2.0
	minLoss        = 0.001
	maxLoss        = 0.01
	minCapacity    = 10000
	maxCapacity    = 100000
	minFlowSize    = 100
	maxFlowSize    = 1000

	computeShare = 0.6
)

// Generate builds a random scenario document with numNodes candidate node
// ids and up to numEdges distinct directed edges. About 60% of the nodes
// that ended up with an edge become compute nodes; source and destination
// are drawn from the remaining ones. It fails when fewer than two
// non-compute nodes remain to serve as flow endpoints.
func Generate(rng *rand.Rand, numNodes, numEdges int) (*File, error) {
	if numNodes < 3 {
		return nil, fmt.Errorf("need at least 3 nodes, got %d", numNodes)
	}
	maxPairs := numNodes * (numNodes - 1)
	if numEdges < 1 || numEdges > maxPairs {
		return nil, fmt.Errorf("edge count %d out of range [1, %d]", numEdges, maxPairs)
	}

	type pair struct{ from, to int }
	seen := make(map[pair]struct{}, numEdges)
	pairs := make([]pair, 0, numEdges)
	for len(pairs) < numEdges {
		p := pair{from: 1 + rng.Intn(numNodes), to: 1 + rng.Intn(numNodes)}
		if p.from == p.to {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		pairs = append(pairs, p)
	}

	// only nodes that participate in an edge are part of the scenario
	used := make(map[int]struct{})
	var nodes []int
	for _, p := range pairs {
		for _, id := range []int{p.from, p.to} {
			if _, ok := used[id]; !ok {
				used[id] = struct{}{}
				nodes = append(nodes, id)
			}
		}
	}

	numCompute := int(float64(len(nodes)) * computeShare)
	perm := rng.Perm(len(nodes))
	compute := make([]int, numCompute)
	for i := range compute {
		compute[i] = nodes[perm[i]]
	}
	rest := make([]int, 0, len(nodes)-numCompute)
	for _, idx := range perm[numCompute:] {
		rest = append(rest, nodes[idx])
	}
	if len(rest) < 2 {
		return nil, fmt.Errorf("not enough non-compute nodes for flow endpoints")
	}
	source, dest := rest[0], rest[1]

	f := &File{
		SourceNode:      strconv.Itoa(source),
		DestinationNode: strconv.Itoa(dest),
		FlowSize:        float64(minFlowSize + rng.Intn(maxFlowSize-minFlowSize+1)),
		Gamma:           2,
		Omega:           10,
	}
	for _, id := range nodes {
		f.Nodes = append(f.Nodes, strconv.Itoa(id))
	}
	caps := make([]any, 0, numCompute)
	for _, id := range compute {
		f.ComputeNodes = append(f.ComputeNodes, strconv.Itoa(id))
		caps = append(caps, minCapacity+rng.Intn(maxCapacity-minCapacity+1))
	}
	f.ComputeNodeCapacity = caps

	for _, p := range pairs {
		f.Edges = append(f.Edges, EdgeSpec{
			Source:           strconv.Itoa(p.from),
			Destination:      strconv.Itoa(p.to),
			Bandwidth:        float64(minBandwidth + rng.Intn(maxBandwidth-minBandwidth+1)),
			PropagationDelay: round2(minPropagation + (maxPropagation-minPropagation)*rng.Float64()),
			ProcessingDelay:  round2(minProcessing + (maxProcessing-minProcessing)*rng.Float64()),
			QueuingDelay:     round2(maxQueuing * rng.Float64()),
			Jitter:           round2(maxJitter * rng.Float64()),
			Loss:             round3(minLoss + (maxLoss-minLoss)*rng.Float64()),
		})
	}
	return f, nil
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

func round3(v float64) float64 {
	return float64(int(v*1000+0.5)) / 1000
}
