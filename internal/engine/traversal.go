package engine

import (
	"fmt"

	"github.com/biographdb/biograph/internal/graph"
)

// Traversal caps.
const (
	// DefaultMaxNodes bounds a traversal when the caller sets no cap.
	DefaultMaxNodes = 500

	// maxResultNodes is the hard ceiling for any single traversal result.
	maxResultNodes = 5000
)

// NodeFilter decides whether a candidate node may enter a result. It is
// evaluated once per node, the first time the node is encountered.
type NodeFilter func(id string, attrs map[string]any) bool

// EdgeFilter decides whether a traversal may follow an edge. It is
// evaluated once per edge.
type EdgeFilter func(e *graph.Edge) bool

// TerminationFunc halts a traversal early when it returns true. Nodes
// discovered up to that point are kept.
type TerminationFunc func(id string, depth int) bool

// ExploreOptions configures a depth-bounded breadth-first exploration.
type ExploreOptions struct {
	StartNode        string
	MaxDepth         int
	MaxNodes         int // 0 means DefaultMaxNodes
	NodeFilter       NodeFilter
	EdgeFilter       EdgeFilter
	EarlyTermination TerminationFunc
}

// ExploreResult is the bounded outcome of an exploration. It is
// constructed fresh per call and must not be mutated afterwards.
type ExploreResult struct {
	StartNode       string           `json:"start_node"`
	NodesByDepth    map[int][]string `json:"nodes_by_depth"`
	Nodes           []string         `json:"nodes"`
	Edges           []*graph.Edge    `json:"edges"`
	TotalNodes      int              `json:"total_nodes"`
	MaxDepthReached int              `json:"max_depth_reached"`
	Truncated       bool             `json:"truncated"`
}

// ExploreByDepth performs a breadth-first exploration from StartNode.
// Depth 0 holds the start node only; a node lands at depth d when a
// d-length path of filter-approved edges and nodes reaches it. Discovery
// stops past MaxDepth, at the MaxNodes cap (flagged as truncation), or
// when EarlyTermination fires. The result's edges are exactly the
// filter-approved edges whose endpoints both survived.
func ExploreByDepth(g *graph.Graph, opts ExploreOptions) (*ExploreResult, error) {
	maxNodes, err := checkBounds(opts.MaxDepth, opts.MaxNodes)
	if err != nil {
		return nil, err
	}

	if !g.HasNode(opts.StartNode) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStartNode, opts.StartNode)
	}

	t := newTraversal(g, opts.NodeFilter, opts.EdgeFilter)

	depths := map[string]int{opts.StartNode: 0}
	order := []string{opts.StartNode}
	queue := []string{opts.StartNode}
	truncated := false

discover:
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		depth := depths[id]

		if opts.EarlyTermination != nil && opts.EarlyTermination(id, depth) {
			break
		}

		if depth >= opts.MaxDepth {
			continue
		}

		for _, e := range g.AdjacentEdges(id) {
			if !t.edgeOK(e) {
				continue
			}

			nb := e.Opposite(id)
			if _, seen := depths[nb]; seen {
				continue
			}

			if !t.nodeOK(nb) {
				continue
			}

			if len(depths) >= maxNodes {
				truncated = true

				break discover
			}

			depths[nb] = depth + 1
			order = append(order, nb)
			queue = append(queue, nb)
		}
	}

	return t.collect(opts.StartNode, depths, order, truncated), nil
}

// DegreesOptions restricts a traversal to a set of relationship types
// and/or a minimum edge weight.
type DegreesOptions struct {
	StartNode        string
	Degrees          int
	RelationTypes    []string
	WeightThreshold  float64
	MaxNodes         int
	NodeFilter       NodeFilter
	EarlyTermination TerminationFunc
}

// ExploreByDegrees explores up to Degrees hops following only edges whose
// relation is in RelationTypes (all relations when empty) and whose
// weight meets WeightThreshold. It is a specialization of ExploreByDepth
// with a derived edge filter.
func ExploreByDegrees(g *graph.Graph, opts DegreesOptions) (*ExploreResult, error) {
	var allowed map[string]bool
	if len(opts.RelationTypes) > 0 {
		allowed = make(map[string]bool, len(opts.RelationTypes))
		for _, r := range opts.RelationTypes {
			allowed[r] = true
		}
	}

	filter := func(e *graph.Edge) bool {
		if allowed != nil && !allowed[e.Relation] {
			return false
		}

		return opts.WeightThreshold <= 0 || e.Weight >= opts.WeightThreshold
	}

	return ExploreByDepth(g, ExploreOptions{
		StartNode:        opts.StartNode,
		MaxDepth:         opts.Degrees,
		MaxNodes:         opts.MaxNodes,
		NodeFilter:       opts.NodeFilter,
		EdgeFilter:       filter,
		EarlyTermination: opts.EarlyTermination,
	})
}

// PreFilteredOptions configures the fast path over a graph whose edges
// the caller already reduced to the relevant subset.
type PreFilteredOptions struct {
	StartNode        string
	MaxDepth         int
	MaxNodes         int
	NodeFilter       NodeFilter
	EarlyTermination TerminationFunc
}

// ExplorePreFiltered matches the ExploreByDepth contract but assumes the
// graph carries only followable edges, so it rides the graph's native BFS
// primitive instead of evaluating per-edge predicates. Given equivalent
// filters it yields the same node and edge sets as ExploreByDepth.
func ExplorePreFiltered(g *graph.Graph, opts PreFilteredOptions) (*ExploreResult, error) {
	maxNodes, err := checkBounds(opts.MaxDepth, opts.MaxNodes)
	if err != nil {
		return nil, err
	}

	if !g.HasNode(opts.StartNode) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStartNode, opts.StartNode)
	}

	t := newTraversal(g, opts.NodeFilter, nil)

	depths := make(map[string]int)
	var order []string
	truncated := false

	g.BFSFrom(opts.StartNode, opts.MaxDepth, func(id string, depth int) graph.Walk {
		if id != opts.StartNode && !t.nodeOK(id) {
			return graph.Skip
		}

		if len(depths) >= maxNodes {
			truncated = true

			return graph.Stop
		}

		depths[id] = depth
		order = append(order, id)

		if opts.EarlyTermination != nil && opts.EarlyTermination(id, depth) {
			return graph.Stop
		}

		return graph.Continue
	})

	return t.collect(opts.StartNode, depths, order, truncated), nil
}

// traversal memoizes filter verdicts so each node and edge is judged at
// most once per call.
type traversal struct {
	g          *graph.Graph
	nodeFilter NodeFilter
	edgeFilter EdgeFilter
	nodeSeen   map[string]bool
	edgeSeen   map[*graph.Edge]bool
}

func newTraversal(g *graph.Graph, nf NodeFilter, ef EdgeFilter) *traversal {
	return &traversal{
		g:          g,
		nodeFilter: nf,
		edgeFilter: ef,
		nodeSeen:   make(map[string]bool),
		edgeSeen:   make(map[*graph.Edge]bool),
	}
}

func (t *traversal) nodeOK(id string) bool {
	if t.nodeFilter == nil {
		return true
	}

	ok, seen := t.nodeSeen[id]
	if !seen {
		attrs, _ := t.g.NodeAttrs(id)
		ok = t.nodeFilter(id, attrs)
		t.nodeSeen[id] = ok
	}

	return ok
}

func (t *traversal) edgeOK(e *graph.Edge) bool {
	if t.edgeFilter == nil {
		return true
	}

	ok, seen := t.edgeSeen[e]
	if !seen {
		ok = t.edgeFilter(e)
		t.edgeSeen[e] = ok
	}

	return ok
}

// collect assembles an ExploreResult from the visited set: depth grouping
// in discovery order plus the approved edges induced on the final nodes.
func (t *traversal) collect(start string, depths map[string]int, order []string, truncated bool) *ExploreResult {
	result := &ExploreResult{
		StartNode:    start,
		NodesByDepth: make(map[int][]string),
		Nodes:        order,
		Edges:        make([]*graph.Edge, 0),
		TotalNodes:   len(order),
		Truncated:    truncated,
	}

	for _, id := range order {
		d := depths[id]
		result.NodesByDepth[d] = append(result.NodesByDepth[d], id)

		if d > result.MaxDepthReached {
			result.MaxDepthReached = d
		}
	}

	for _, e := range t.g.Edges() {
		_, hasSrc := depths[e.Source]
		_, hasDst := depths[e.Target]

		if hasSrc && hasDst && t.edgeOK(e) {
			result.Edges = append(result.Edges, e)
		}
	}

	return result
}

// checkBounds validates depth and node caps, resolving the effective
// node cap. Depth 0 is legal (a single-node result); negatives are not.
func checkBounds(maxDepth, maxNodes int) (int, error) {
	if maxDepth < 0 {
		return 0, fmt.Errorf("%w: maxDepth %d", ErrInvalidBound, maxDepth)
	}

	if maxNodes < 0 {
		return 0, fmt.Errorf("%w: maxNodes %d", ErrInvalidBound, maxNodes)
	}

	if maxNodes == 0 {
		maxNodes = DefaultMaxNodes
	}

	if maxNodes > maxResultNodes {
		maxNodes = maxResultNodes
	}

	return maxNodes, nil
}
