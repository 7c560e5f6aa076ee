package delay

import (
	"errors"
	"math"
	"testing"

	"github.com/dd0wney/cluso-offload/pkg/network"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// TestLink_Forward checks the five forward delay terms
func TestLink_Forward(t *testing.T) {
	e := network.Edge{From: "A", To: "B", Bandwidth: 1000, PropagationDelay: 1, ProcessingDelay: 0.1, QueuingDelay: 0.5, Jitter: 0.2}

	got, err := Link(e, 100, 2, Forward)
	if err != nil {
		t.Fatalf("Link failed: %v", err)
	}
	// 1 + 0.1 + 0.5 + 0.2 + 100/1000
	if want := 1.9; !almostEqual(got, want) {
		t.Errorf("Expected forward delay %v, got %v", want, got)
	}
}

// TestLink_Return checks the gamma-amplified transmission term
func TestLink_Return(t *testing.T) {
	e := network.Edge{From: "B", To: "D", Bandwidth: 1000, PropagationDelay: 1, ProcessingDelay: 0.1}

	got, err := Link(e, 100, 2, Return)
	if err != nil {
		t.Fatalf("Link failed: %v", err)
	}
	// 1 + 0.1 + 2*100/1000
	if want := 1.3; !almostEqual(got, want) {
		t.Errorf("Expected return delay %v, got %v", want, got)
	}
}

// TestLink_GammaIgnoredForward verifies gamma does not leak into forward delay
func TestLink_GammaIgnoredForward(t *testing.T) {
	e := network.Edge{From: "A", To: "B", Bandwidth: 100}

	lo, err := Link(e, 50, 1, Forward)
	if err != nil {
		t.Fatalf("Link failed: %v", err)
	}
	hi, err := Link(e, 50, 1000, Forward)
	if err != nil {
		t.Fatalf("Link failed: %v", err)
	}
	if !almostEqual(lo, hi) {
		t.Errorf("Forward delay must not depend on gamma: %v vs %v", lo, hi)
	}
}

// TestLink_ZeroBandwidth must error, never return infinity
func TestLink_ZeroBandwidth(t *testing.T) {
	e := network.Edge{From: "A", To: "B", Bandwidth: 0}

	if _, err := Link(e, 100, 2, Forward); !errors.Is(err, ErrZeroBandwidth) {
		t.Errorf("Expected ErrZeroBandwidth, got %v", err)
	}
}

// TestCompute covers the capacity boundary cases from the model
func TestCompute(t *testing.T) {
	caps := map[string]float64{"B": 10000, "edge": 1000}

	got, err := Compute("B", 100, 10, caps)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if want := 0.1; !almostEqual(got, want) {
		t.Errorf("Expected compute delay %v, got %v", want, got)
	}

	// capacity exactly flowSize*omega yields delay 1
	got, err = Compute("edge", 100, 10, caps)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if !almostEqual(got, 1) {
		t.Errorf("Expected compute delay 1 at the capacity boundary, got %v", got)
	}
}

// TestCompute_InvalidCapacity: missing or non-positive capacities are errors
func TestCompute_InvalidCapacity(t *testing.T) {
	cases := []struct {
		name string
		node string
		caps map[string]float64
	}{
		{"missing node", "X", map[string]float64{"B": 10}},
		{"zero capacity", "B", map[string]float64{"B": 0}},
		{"negative capacity", "B", map[string]float64{"B": -1}},
		{"nil map", "B", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Compute(tc.node, 100, 10, tc.caps); !errors.Is(err, ErrInvalidCapacity) {
				t.Errorf("Expected ErrInvalidCapacity, got %v", err)
			}
		})
	}
}

// TestPath sums full per-link delay along a walk
func TestPath(t *testing.T) {
	n, err := network.New(
		[]string{"A", "B", "D"},
		chainEdges("A", "B", "D"),
		nil, nil,
	)
	if err != nil {
		t.Fatalf("network.New failed: %v", err)
	}

	got, err := Path(n, []string{"A", "B", "D"}, 100, 2, Return)
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if want := 2.6; !almostEqual(got, want) {
		t.Errorf("Expected path delay %v, got %v", want, got)
	}

	// A walk over a missing edge is a topology error
	if _, err := Path(n, []string{"B", "A"}, 100, 2, Forward); !errors.Is(err, network.ErrInvalidTopology) {
		t.Errorf("Expected ErrInvalidTopology, got %v", err)
	}
}

// chainEdges builds a chain of edges with the standard test attributes
func chainEdges(ids ...string) []network.Edge {
	edges := make([]network.Edge, 0, len(ids)-1)
	for i := 0; i+1 < len(ids); i++ {
		edges = append(edges, network.Edge{
			From: ids[i], To: ids[i+1],
			Bandwidth: 1000, PropagationDelay: 1, ProcessingDelay: 0.1,
		})
	}
	return edges
}
