package doublepath

import "github.com/routeloop/routeloop/graph"

// tItem pairs a candidate turnaround vertex with its distance from source,
// for the max-heap.
type tItem struct {
	id   graph.NodeId
	dist float64
}

// tHeap is a max-heap of *tItem ordered by descending distance, mirroring
// distmap's min-heap plumbing with the comparison inverted.
type tHeap []*tItem

func (h tHeap) Len() int            { return len(h) }
func (h tHeap) Less(i, j int) bool  { return h[i].dist > h[j].dist }
func (h tHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *tHeap) Push(x interface{}) { *h = append(*h, x.(*tItem)) }
func (h *tHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
