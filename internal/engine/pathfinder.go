package engine

import (
	"container/heap"

	"github.com/biographdb/biograph/internal/graph"
)

// Pathfinder computes a shortest pathway (by hop count) between two nodes
// of a prepared graph, searching at most maxHops hops. Implementations
// are interchangeable; discovery depends only on this interface.
type Pathfinder interface {
	FindPath(g *graph.Graph, from, to string, maxHops int) []string
}

// NewRelationAwarePathfinder returns the default pathfinder: shortest by
// hop count, with ties broken by preferring edges of the listed relations
// (kinship links over looser associations, typically).
func NewRelationAwarePathfinder(preferred ...string) Pathfinder {
	set := make(map[string]bool, len(preferred))
	for _, r := range preferred {
		set[r] = true
	}

	return &relationAwarePathfinder{preferred: set}
}

// relationAwarePathfinder runs a Dijkstra search over a composite cost:
// hop count first, number of non-preferred edges second. The secondary
// cost only ever reorders equal-hop paths.
type relationAwarePathfinder struct {
	preferred map[string]bool
}

type pathCost struct {
	hops    int
	penalty int // non-preferred edges on the path
}

func (c pathCost) less(o pathCost) bool {
	if c.hops != o.hops {
		return c.hops < o.hops
	}

	return c.penalty < o.penalty
}

func (p *relationAwarePathfinder) FindPath(g *graph.Graph, from, to string, maxHops int) []string {
	if !g.HasNode(from) || !g.HasNode(to) {
		return nil
	}

	if from == to {
		return []string{from}
	}

	best := map[string]pathCost{from: {}}
	parent := map[string]string{}
	settled := map[string]bool{}

	pq := &costHeap{{id: from}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(costItem)
		if settled[item.id] {
			continue
		}

		settled[item.id] = true

		if item.id == to {
			break
		}

		if item.cost.hops >= maxHops {
			continue
		}

		for _, e := range g.AdjacentEdges(item.id) {
			nb := e.Opposite(item.id)
			if settled[nb] {
				continue
			}

			next := pathCost{hops: item.cost.hops + 1, penalty: item.cost.penalty}
			if len(p.preferred) > 0 && !p.preferred[e.Relation] {
				next.penalty++
			}

			if known, ok := best[nb]; !ok || next.less(known) {
				best[nb] = next
				parent[nb] = item.id
				heap.Push(pq, costItem{id: nb, cost: next})
			}
		}
	}

	if !settled[to] {
		return nil
	}

	trail := []string{to}
	for current := to; current != from; {
		current = parent[current]
		trail = append(trail, current)
	}

	for i, j := 0, len(trail)-1; i < j; i, j = i+1, j-1 {
		trail[i], trail[j] = trail[j], trail[i]
	}

	return trail
}

type costItem struct {
	id   string
	cost pathCost
}

type costHeap []costItem

func (h costHeap) Len() int            { return len(h) }
func (h costHeap) Less(i, j int) bool  { return h[i].cost.less(h[j].cost) }
func (h costHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *costHeap) Push(x any)         { *h = append(*h, x.(costItem)) }
func (h *costHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// NewBidirectionalPathfinder returns a higher-performance alternative
// that expands from both endpoints at once. It guarantees minimal hop
// count but applies no relation preference among equal-length paths.
func NewBidirectionalPathfinder() Pathfinder {
	return bidiPathfinder{}
}

type bidiPathfinder struct{}

func (bidiPathfinder) FindPath(g *graph.Graph, from, to string, maxHops int) []string {
	if !g.HasNode(from) || !g.HasNode(to) {
		return nil
	}

	if from == to {
		return []string{from}
	}

	// fwdParent/bwdParent double as visited sets; the sentinel "" marks
	// the two roots.
	fwdParent := map[string]string{from: ""}
	bwdParent := map[string]string{to: ""}
	fwdQueue := []string{from}
	bwdQueue := []string{to}

	var meeting string
	found := false

	for hop := 0; hop < maxHops && !found && (len(fwdQueue) > 0 || len(bwdQueue) > 0); hop++ {
		fwdQueue, meeting, found = expandFrontier(g, fwdQueue, fwdParent, bwdParent)
		if found {
			break
		}

		bwdQueue, meeting, found = expandFrontier(g, bwdQueue, bwdParent, fwdParent)
	}

	if !found {
		return nil
	}

	// Stitch the two half-paths together at the meeting node.
	var head []string
	for current := meeting; current != ""; current = fwdParent[current] {
		head = append(head, current)
	}

	for i, j := 0, len(head)-1; i < j; i, j = i+1, j-1 {
		head[i], head[j] = head[j], head[i]
	}

	for current := bwdParent[meeting]; current != ""; current = bwdParent[current] {
		head = append(head, current)
	}

	if len(head)-1 > maxHops {
		return nil
	}

	return head
}

// expandFrontier advances one BFS layer, recording parents and checking
// the opposite search's visited set for a meeting node.
func expandFrontier(g *graph.Graph, queue []string, parents, opposite map[string]string) ([]string, string, bool) {
	var next []string

	for _, id := range queue {
		if _, ok := opposite[id]; ok {
			return next, id, true
		}

		for _, e := range g.AdjacentEdges(id) {
			nb := e.Opposite(id)
			if _, seen := parents[nb]; seen {
				continue
			}

			parents[nb] = id
			next = append(next, nb)

			if _, ok := opposite[nb]; ok {
				return next, nb, true
			}
		}
	}

	return next, "", false
}
