package graph

// Walk is the verdict a BFSFrom visitor returns for a discovered node.
type Walk int

// Visitor verdicts.
const (
	// Continue keeps the node and expands its neighbors.
	Continue Walk = iota
	// Skip discards the node and does not expand it.
	Skip
	// Stop halts the walk immediately, keeping nodes visited so far.
	Stop
)

type bfsItem struct {
	id    string
	depth int
}

// BFSFrom walks the graph breadth-first from start up to maxDepth hops,
// calling visit once for every discovered node (including start at depth
// 0). It is the graph's native traversal primitive: no per-edge predicate
// evaluation happens here, which makes it the fast path for graphs whose
// edges were already reduced to the relevant subset.
//
// BFSFrom returns false if start is absent from the graph.
func (g *Graph) BFSFrom(start string, maxDepth int, visit func(id string, depth int) Walk) bool {
	if !g.HasNode(start) {
		return false
	}

	seen := map[string]bool{start: true}
	queue := []bfsItem{{id: start, depth: 0}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		switch visit(item.id, item.depth) {
		case Stop:
			return true
		case Skip:
			continue
		case Continue:
		}

		if item.depth >= maxDepth {
			continue
		}

		for _, e := range g.AdjacentEdges(item.id) {
			nb := e.Opposite(item.id)
			if !seen[nb] {
				seen[nb] = true
				queue = append(queue, bfsItem{id: nb, depth: item.depth + 1})
			}
		}
	}

	return true
}

// DistancesFrom returns the hop distance of every node reachable from
// start within maxDepth, including start itself at distance 0. An absent
// start yields an empty map.
func (g *Graph) DistancesFrom(start string, maxDepth int) map[string]int {
	distances := make(map[string]int)

	g.BFSFrom(start, maxDepth, func(id string, depth int) Walk {
		distances[id] = depth

		return Continue
	})

	return distances
}

// PathBetween returns the node sequence of a shortest path from one node
// to another, searching at most maxHops hops. It returns nil when no path
// exists within the bound or either endpoint is absent.
func (g *Graph) PathBetween(from, to string, maxHops int) []string {
	if !g.HasNode(from) || !g.HasNode(to) {
		return nil
	}

	if from == to {
		return []string{from}
	}

	// BFS with parent tracking, then reconstruct the trail backwards.
	parent := map[string]string{}
	found := false

	g.BFSFrom(from, maxHops, func(id string, depth int) Walk {
		if depth >= maxHops {
			return Continue
		}

		for _, e := range g.AdjacentEdges(id) {
			nb := e.Opposite(id)
			if nb == from {
				continue
			}

			if _, ok := parent[nb]; !ok {
				parent[nb] = id
			}

			if nb == to {
				found = true

				return Stop
			}
		}

		return Continue
	})

	if !found {
		return nil
	}

	trail := []string{to}
	for current := to; current != from; {
		p, ok := parent[current]
		if !ok {
			return nil
		}

		trail = append(trail, p)
		current = p
	}

	for i, j := 0, len(trail)-1; i < j; i, j = i+1, j-1 {
		trail[i], trail[j] = trail[j], trail[i]
	}

	return trail
}
