package offload

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dd0wney/cluso-offload/pkg/network"
	"github.com/dd0wney/cluso-offload/pkg/search"
)

// TestExpandLayered_Shape checks node/edge bookkeeping of the layered
// expansion on the diamond network
func TestExpandLayered_Shape(t *testing.T) {
	n := diamondNetwork(t)
	req := diamondRequest()

	eg, err := Expander{Variant: Layered}.Expand(n, req)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}

	// 4 originals + 2 compute mids + 3 downstream copies (all but source A)
	if got := eg.NodeCount(); got != 9 {
		t.Errorf("Expected 9 expanded nodes, got %d", got)
	}
	// upstream: A->B, A->C (edges into D dropped); compute: 2*2;
	// downstream: B->D, C->D (edges touching A dropped)
	if got := eg.EdgeCount(); got != 8 {
		t.Errorf("Expected 8 expanded edges, got %d", got)
	}
	if eg.Source != "A" {
		t.Errorf("Expected source A, got %q", eg.Source)
	}
	if eg.Target != "D"+downSuffix {
		t.Errorf("Expected target %q, got %q", "D"+downSuffix, eg.Target)
	}
}

// TestExpandReplica_Shape: the replica expansion is one full copy per
// compute node plus the super destination
func TestExpandReplica_Shape(t *testing.T) {
	n := diamondNetwork(t)
	req := diamondRequest()

	eg, err := Expander{Variant: Replica}.Expand(n, req)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}

	// 4 originals + super + 2 replicas of 3 nodes each (all but source A)
	if got := eg.NodeCount(); got != 11 {
		t.Errorf("Expected 11 expanded nodes, got %d", got)
	}
	// base: A->B, A->C; per replica: B->D, C->D, the compute edge and the
	// aggregate edge = 4 each
	if got := eg.EdgeCount(); got != 10 {
		t.Errorf("Expected 10 expanded edges, got %d", got)
	}
	if eg.Target != "D"+superDest {
		t.Errorf("Expected target %q, got %q", "D"+superDest, eg.Target)
	}
}

// TestExpand_GrowthComparison: layered stays linear while replica grows
// with the compute-node count
func TestExpand_GrowthComparison(t *testing.T) {
	link := func(from, to string) network.Edge {
		return network.Edge{From: from, To: to, Bandwidth: 1000, PropagationDelay: 1}
	}
	nodes := []string{"S", "c1", "c2", "c3", "c4", "c5", "T"}
	edges := []network.Edge{link("S", "c1")}
	for i := 1; i < 5; i++ {
		edges = append(edges, link(nodes[i], nodes[i+1]))
	}
	edges = append(edges, link("c5", "T"))
	n, err := network.New(nodes, edges, []string{"c1", "c2", "c3", "c4", "c5"}, nil)
	if err != nil {
		t.Fatalf("network.New failed: %v", err)
	}
	req := network.FlowRequest{Source: "S", Destination: "T", FlowSize: 10, Gamma: 2, Omega: 1}

	layered, err := Expander{Variant: Layered}.Expand(n, req)
	if err != nil {
		t.Fatalf("layered Expand failed: %v", err)
	}
	replica, err := Expander{Variant: Replica}.Expand(n, req)
	if err != nil {
		t.Fatalf("replica Expand failed: %v", err)
	}

	if layered.NodeCount() >= replica.NodeCount() {
		t.Errorf("Expected layered (%d nodes) to be smaller than replica (%d nodes)",
			layered.NodeCount(), replica.NodeCount())
	}
	if layered.EdgeCount() >= replica.EdgeCount() {
		t.Errorf("Expected layered (%d edges) to be smaller than replica (%d edges)",
			layered.EdgeCount(), replica.EdgeCount())
	}
}

// TestExpand_WeightsNonNegative evaluates every expanded arc weight
func TestExpand_WeightsNonNegative(t *testing.T) {
	n := diamondNetwork(t)
	req := diamondRequest()

	for _, variant := range []Variant{Layered, Replica} {
		eg, err := Expander{Variant: variant}.Expand(n, req)
		if err != nil {
			t.Fatalf("%s Expand failed: %v", variant, err)
		}
		weight := eg.Weight()
		checked := 0
		if err := eg.Graph.Arcs(func(a search.Arc) error {
			w, err := weight(a)
			if err != nil {
				return err
			}
			if w < 0 {
				t.Errorf("Negative weight %v on %s->%s", w, a.From, a.To)
			}
			checked++
			return nil
		}); err != nil {
			t.Fatalf("Arc walk failed: %v", err)
		}
		if checked != eg.EdgeCount() {
			t.Errorf("Expected to price %d arcs, priced %d", eg.EdgeCount(), checked)
		}
	}
}

// TestExpand_RejectsReservedSeparator: node ids may not contain '#'
func TestExpand_RejectsReservedSeparator(t *testing.T) {
	n, err := network.New(
		[]string{"A", "B#x", "D"},
		[]network.Edge{
			{From: "A", To: "B#x", Bandwidth: 10},
			{From: "B#x", To: "D", Bandwidth: 10},
		},
		[]string{"B#x"},
		nil,
	)
	if err != nil {
		t.Fatalf("network.New failed: %v", err)
	}
	req := network.FlowRequest{Source: "A", Destination: "D", FlowSize: 1, Gamma: 1, Omega: 0}

	if _, err := (Expander{Variant: Layered}).Expand(n, req); !errors.Is(err, network.ErrInvalidTopology) {
		t.Errorf("Expected ErrInvalidTopology, got %v", err)
	}
}

// TestUnexpandPath collapses layer copies back onto original ids
func TestUnexpandPath(t *testing.T) {
	cases := []struct {
		name     string
		expanded []string
		node     string
		original []string
	}{
		{
			"layered",
			[]string{"A", "C", "C#mid", "C#dn", "D#dn"},
			"C",
			[]string{"A", "C", "D"},
		},
		{
			"replica",
			[]string{"A", "B", "B#r1", "D#r1", "D#agg"},
			"B",
			[]string{"A", "B", "D"},
		},
		{
			"multi hop",
			[]string{"A", "B", "C", "C#mid", "C#dn", "E#dn", "D#dn"},
			"C",
			[]string{"A", "B", "C", "E", "D"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			node, original := unexpandPath(tc.expanded)
			if node != tc.node {
				t.Errorf("Expected compute node %q, got %q", tc.node, node)
			}
			if !reflect.DeepEqual(original, tc.original) {
				t.Errorf("Expected path %v, got %v", tc.original, original)
			}
		})
	}
}
