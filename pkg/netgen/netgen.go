// Package netgen loads, saves and generates network description files in
// the YAML layout used by the planning scenarios: a flat document with the
// flow endpoints and parameters, the node list, the compute-node list with
// capacities, and per-edge delay attributes.
package netgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-offload/pkg/network"
)

// EdgeSpec is one edge entry of a network file. Endpoints are declared as
// `any` because scenario files freely mix integer and string node ids; both
// are coerced to strings, as the consumers do.
type EdgeSpec struct {
	Source           any     `yaml:"source"`
	Destination      any     `yaml:"destination"`
	Bandwidth        float64 `yaml:"bandwidth"`
	PropagationDelay float64 `yaml:"propagation_delay"`
	ProcessingDelay  float64 `yaml:"processing_delay"`
	QueuingDelay     float64 `yaml:"queuing_delay"`
	Jitter           float64 `yaml:"jitter"`
	Loss             float64 `yaml:"loss,omitempty"`
}

// File is the YAML document for one scenario. ComputeNodeCapacity accepts
// either a list (positionally matching ComputeNodes) or a map keyed by node
// id, as both forms occur in the wild.
type File struct {
	SourceNode          any        `yaml:"source_node"`
	DestinationNode     any        `yaml:"destination_node"`
	FlowSize            float64    `yaml:"flow_size"`
	Gamma               float64    `yaml:"gamma"`
	Omega               float64    `yaml:"omega"`
	Nodes               []any      `yaml:"nodes"`
	ComputeNodes        []any      `yaml:"compute_nodes"`
	ComputeNodeCapacity any        `yaml:"compute_node_capacity"`
	Edges               []EdgeSpec `yaml:"edges"`
}

func coerceID(v any) string {
	return fmt.Sprint(v)
}

func coerceIDs(vs []any) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = coerceID(v)
	}
	return out
}

func coerceFloat(v any) (float64, error) {
	switch x := v.(type) {
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case float64:
		return x, nil
	default:
		return 0, fmt.Errorf("capacity %v (%T) is not numeric", v, v)
	}
}

// capacities normalizes the list and map capacity forms to a map keyed by
// node id. Entries beyond the compute-node list are ignored in the list
// form, and a short list leaves the remaining nodes on the default
// capacity.
func (f *File) capacities(computeNodes []string) (map[string]float64, error) {
	caps := make(map[string]float64, len(computeNodes))
	switch v := f.ComputeNodeCapacity.(type) {
	case nil:
		return caps, nil
	case []any:
		for i, raw := range v {
			if i >= len(computeNodes) {
				break
			}
			c, err := coerceFloat(raw)
			if err != nil {
				return nil, err
			}
			caps[computeNodes[i]] = c
		}
		return caps, nil
	case map[string]any:
		for key, raw := range v {
			c, err := coerceFloat(raw)
			if err != nil {
				return nil, err
			}
			caps[key] = c
		}
		return caps, nil
	case map[any]any:
		for key, raw := range v {
			c, err := coerceFloat(raw)
			if err != nil {
				return nil, err
			}
			caps[coerceID(key)] = c
		}
		return caps, nil
	default:
		return nil, fmt.Errorf("compute_node_capacity has unsupported type %T", v)
	}
}

// Build validates the document into a Network and FlowRequest.
func (f *File) Build() (*network.Network, network.FlowRequest, error) {
	nodes := coerceIDs(f.Nodes)
	computeNodes := coerceIDs(f.ComputeNodes)

	caps, err := f.capacities(computeNodes)
	if err != nil {
		return nil, network.FlowRequest{}, err
	}

	edges := make([]network.Edge, len(f.Edges))
	for i, e := range f.Edges {
		edges[i] = network.Edge{
			From:             coerceID(e.Source),
			To:               coerceID(e.Destination),
			Bandwidth:        e.Bandwidth,
			PropagationDelay: e.PropagationDelay,
			ProcessingDelay:  e.ProcessingDelay,
			QueuingDelay:     e.QueuingDelay,
			Jitter:           e.Jitter,
			Loss:             e.Loss,
		}
	}

	n, err := network.New(nodes, edges, computeNodes, caps)
	if err != nil {
		return nil, network.FlowRequest{}, err
	}

	req := network.FlowRequest{
		Source:      coerceID(f.SourceNode),
		Destination: coerceID(f.DestinationNode),
		FlowSize:    f.FlowSize,
		Gamma:       f.Gamma,
		Omega:       f.Omega,
	}
	if err := network.ValidateRequest(n, req); err != nil {
		return nil, network.FlowRequest{}, err
	}
	return n, req, nil
}

// Parse decodes a YAML document and builds the network and request.
func Parse(data []byte) (*network.Network, network.FlowRequest, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, network.FlowRequest{}, fmt.Errorf("decode network file: %w", err)
	}
	return f.Build()
}

// Load reads and parses a network file from disk.
func Load(path string) (*network.Network, network.FlowRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, network.FlowRequest{}, fmt.Errorf("read network file: %w", err)
	}
	return Parse(data)
}

// Save writes a File document to disk as YAML.
func (f *File) Save(path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode network file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
