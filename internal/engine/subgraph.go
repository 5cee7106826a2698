package engine

import (
	"fmt"

	"github.com/biographdb/biograph/internal/graph"
)

// SubgraphOptions selects the slice of a graph to extract. The selection
// modes combine: explicit node ids and a radius-bounded neighborhood are
// unioned, the degree threshold then prunes that selection, and the
// edge-type allow-list is applied last, to the surviving edges only.
type SubgraphOptions struct {
	Nodes             []string
	CenterNode        string
	Radius            int
	MinDegree         int
	PreserveEdgeTypes []string
}

// ExtractSubgraph builds a bounded graph for downstream rendering. Node
// degrees are measured on the full input graph, not the extract. With no
// selection mode set, every node is selected.
func ExtractSubgraph(g *graph.Graph, opts SubgraphOptions) (*graph.Graph, error) {
	if opts.Radius < 0 {
		return nil, fmt.Errorf("%w: radius %d", ErrInvalidBound, opts.Radius)
	}

	if opts.CenterNode != "" && !g.HasNode(opts.CenterNode) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStartNode, opts.CenterNode)
	}

	selected := make(map[string]bool)

	switch {
	case len(opts.Nodes) == 0 && opts.CenterNode == "":
		for _, id := range g.Nodes() {
			selected[id] = true
		}
	default:
		for _, id := range opts.Nodes {
			if g.HasNode(id) {
				selected[id] = true
			}
		}

		if opts.CenterNode != "" {
			for id := range g.DistancesFrom(opts.CenterNode, opts.Radius) {
				selected[id] = true
			}
		}
	}

	keep := make([]string, 0, len(selected))

	for _, id := range g.Nodes() {
		if !selected[id] {
			continue
		}

		if opts.MinDegree > 0 && g.Degree(id) < opts.MinDegree {
			continue
		}

		keep = append(keep, id)
	}

	sub := g.Subgraph(keep)

	if len(opts.PreserveEdgeTypes) > 0 {
		allowed := make(map[string]bool, len(opts.PreserveEdgeTypes))
		for _, r := range opts.PreserveEdgeTypes {
			allowed[r] = true
		}

		sub = sub.FilterEdges(func(e *graph.Edge) bool { return allowed[e.Relation] })
	}

	return sub, nil
}
