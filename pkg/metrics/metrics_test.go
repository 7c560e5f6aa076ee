package metrics

import (
	"testing"
)

// gather returns the metric family names currently exposed by the registry
func gather(t *testing.T, r *Registry) map[string]bool {
	t.Helper()
	families, err := r.Gatherer().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	return names
}

// TestNewRegistry_RecordsEvaluations: observed metrics show up in gathers
func TestNewRegistry_RecordsEvaluations(t *testing.T) {
	r := NewRegistry()

	r.ObserveEvaluation("CPEG", "ok", 0.002)
	r.ObserveResult("CPEG", 2.52, 2)
	r.ObserveExpansion("layered", 9, 8, 0.0001)

	names := gather(t, r)
	for _, want := range []string{
		"offload_evaluations_total",
		"offload_evaluation_duration_seconds",
		"offload_end_to_end_delay_ms",
		"offload_path_length_hops",
		"offload_expansion_nodes",
		"offload_expansion_edges",
		"offload_expansion_duration_seconds",
	} {
		if !names[want] {
			t.Errorf("Expected metric family %q after observation", want)
		}
	}
}

// TestNewRegistry_Isolated: separate registries do not share state
func TestNewRegistry_Isolated(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()

	a.ObserveEvaluation("CCN", "ok", 0.001)

	if names := gather(t, b); names["offload_evaluations_total"] {
		t.Error("Expected fresh registry to have no recorded evaluations")
	}
}

// TestDefaultRegistry_Singleton returns the same instance
func TestDefaultRegistry_Singleton(t *testing.T) {
	if DefaultRegistry() != DefaultRegistry() {
		t.Error("Expected DefaultRegistry to be a singleton")
	}
}
