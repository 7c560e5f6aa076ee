package search

import (
	"container/heap"
	"fmt"
	"math"
)

// Dijkstra computes the minimum-weight path from source to target under the
// given weight function, using a min-heap with the lazy-decrease-key
// strategy: improved distances push duplicate heap entries, and stale
// entries are skipped when popped.
//
// Determinism: when several nodes share the same tentative distance, the
// heap breaks the tie on lexicographic node id, so repeated searches over
// the same graph return the same path.
//
// Returns the path (source first, target last) and its total weight, or
// ErrNoPath if target is unreachable. A negative weight reported by the
// weight function aborts the search with ErrNegativeWeight.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *Graph, source, target string, weight WeightFunc) ([]string, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, 0, fmt.Errorf("%w: source %q", ErrNodeNotFound, source)
	}
	if !g.HasNode(target) {
		return nil, 0, fmt.Errorf("%w: target %q", ErrNodeNotFound, target)
	}

	dist := make(map[string]float64, g.NodeCount())
	prev := make(map[string]string, g.NodeCount())
	visited := make(map[string]bool, g.NodeCount())

	dist[source] = 0
	pq := &nodeHeap{{id: source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true

		if u == target {
			return buildPath(prev, source, target), dist[target], nil
		}

		for _, a := range g.Out(u) {
			if visited[a.To] {
				continue
			}
			w, err := weight(a)
			if err != nil {
				return nil, 0, fmt.Errorf("weight of arc %s->%s: %w", a.From, a.To, err)
			}
			if w < 0 {
				return nil, 0, fmt.Errorf("%w: arc %s->%s weight=%v", ErrNegativeWeight, a.From, a.To, w)
			}

			newDist := dist[u] + w
			if old, seen := dist[a.To]; seen && newDist >= old {
				continue
			}
			dist[a.To] = newDist
			prev[a.To] = u
			heap.Push(pq, nodeItem{id: a.To, dist: newDist})
		}
	}

	return nil, math.Inf(1), fmt.Errorf("%w: %s -> %s", ErrNoPath, source, target)
}

// buildPath walks the predecessor map back from target to source.
func buildPath(prev map[string]string, source, target string) []string {
	path := []string{target}
	for node := target; node != source; {
		node = prev[node]
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// nodeItem is a heap entry: a node and its tentative distance from source.
type nodeItem struct {
	id   string
	dist float64
}

// nodeHeap is a min-heap of nodeItems ordered by distance, then id.
type nodeHeap []nodeItem

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].id < h[j].id
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)   { *h = append(*h, x.(nodeItem)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
