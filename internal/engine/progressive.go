package engine

import (
	"container/heap"
	"fmt"
	"math/rand/v2"

	"github.com/biographdb/biograph/internal/graph"
)

// Strategy selects how a progressive exploration expands the frontier.
type Strategy string

// Progressive exploration strategies.
const (
	StrategyBestFirst  Strategy = "best-first"
	StrategyRandomWalk Strategy = "random-walk"
	StrategyBreadth    Strategy = "breadth"
	StrategyDepth      Strategy = "depth"
)

// Random-walk defaults.
const (
	defaultWalkProbability     = 0.85
	defaultTeleportProbability = 0.15
)

// ScoreFunc ranks a node for best-first expansion. Higher is better.
// It must be pure and deterministic for identical input.
type ScoreFunc func(id string, attrs map[string]any) float64

// ProgressiveOptions configures ExploreProgressive. Scoring applies only
// to best-first; the probabilities only to random-walk. Rand may be set
// for reproducible walks and defaults to a time-seeded source.
type ProgressiveOptions struct {
	StartNode           string
	Strategy            Strategy
	MaxNodes            int
	Scoring             ScoreFunc
	WalkProbability     float64
	TeleportProbability float64
	Rand                *rand.Rand
}

// ProgressiveResult is the outcome of a progressive exploration. Visits
// carries per-node visit counts: for random walks a node may be visited
// many times, while the other strategies record one visit per node.
type ProgressiveResult struct {
	Strategy    Strategy       `json:"strategy"`
	Nodes       []string       `json:"nodes"`
	Edges       []*graph.Edge  `json:"edges"`
	Visits      map[string]int `json:"visits"`
	TotalVisits int            `json:"total_visits"`
	Truncated   bool           `json:"truncated"`
}

// ExploreProgressive explores from StartNode under the chosen strategy,
// capped at MaxNodes distinct nodes (or total visit events for random
// walks). Breadth and depth strategies ignore scoring and walk
// parameters.
func ExploreProgressive(g *graph.Graph, opts ProgressiveOptions) (*ProgressiveResult, error) {
	maxNodes, err := checkBounds(0, opts.MaxNodes)
	if err != nil {
		return nil, err
	}

	if !g.HasNode(opts.StartNode) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStartNode, opts.StartNode)
	}

	switch opts.Strategy {
	case StrategyBestFirst:
		return exploreBestFirst(g, opts, maxNodes), nil
	case StrategyRandomWalk:
		return exploreRandomWalk(g, opts, maxNodes), nil
	case StrategyDepth:
		return exploreDepthFirst(g, opts.StartNode, maxNodes), nil
	case StrategyBreadth, "":
		return exploreBreadth(g, opts.StartNode, maxNodes)
	default:
		return nil, fmt.Errorf("unknown exploration strategy %q", opts.Strategy)
	}
}

// exploreBreadth delegates to the plain depth-bounded traversal.
func exploreBreadth(g *graph.Graph, start string, maxNodes int) (*ProgressiveResult, error) {
	res, err := ExploreByDepth(g, ExploreOptions{
		StartNode: start,
		MaxDepth:  maxNodes, // depth can never exceed the node cap
		MaxNodes:  maxNodes,
	})
	if err != nil {
		return nil, err
	}

	return &ProgressiveResult{
		Strategy:    StrategyBreadth,
		Nodes:       res.Nodes,
		Edges:       res.Edges,
		Visits:      singleVisits(res.Nodes),
		TotalVisits: res.TotalNodes,
		Truncated:   res.Truncated,
	}, nil
}

// exploreDepthFirst runs an unbounded-depth iterative DFS capped at
// maxNodes nodes.
func exploreDepthFirst(g *graph.Graph, start string, maxNodes int) *ProgressiveResult {
	visited := map[string]bool{start: true}
	order := []string{start}
	stack := []string{start}
	truncated := false

	for len(stack) > 0 && !truncated {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Push in reverse so the first neighbor is expanded first.
		nbrs := g.Neighbors(id)
		for i := len(nbrs) - 1; i >= 0; i-- {
			nb := nbrs[i]
			if visited[nb] {
				continue
			}

			if len(visited) >= maxNodes {
				truncated = true

				break
			}

			visited[nb] = true
			order = append(order, nb)
			stack = append(stack, nb)
		}
	}

	return &ProgressiveResult{
		Strategy:    StrategyDepth,
		Nodes:       order,
		Edges:       inducedEdges(g, visited),
		Visits:      singleVisits(order),
		TotalVisits: len(order),
		Truncated:   truncated,
	}
}

// exploreBestFirst expands the highest-scoring frontier node first. A
// node is scored once, on first discovery; re-discovery from another path
// never re-enters the comparison.
func exploreBestFirst(g *graph.Graph, opts ProgressiveOptions, maxNodes int) *ProgressiveResult {
	scoring := opts.Scoring
	if scoring == nil {
		scoring = func(string, map[string]any) float64 { return 0 }
	}

	score := func(id string) float64 {
		attrs, _ := g.NodeAttrs(id)

		return scoring(id, attrs)
	}

	frontier := &scoreHeap{}
	heap.Init(frontier)

	seq := 0
	heap.Push(frontier, scoredNode{id: opts.StartNode, score: score(opts.StartNode), seq: seq})

	seen := map[string]bool{opts.StartNode: true}
	var order []string

	for frontier.Len() > 0 && len(order) < maxNodes {
		n := heap.Pop(frontier).(scoredNode)
		order = append(order, n.id)

		for _, nb := range g.Neighbors(n.id) {
			if seen[nb] {
				continue
			}

			seen[nb] = true
			seq++
			heap.Push(frontier, scoredNode{id: nb, score: score(nb), seq: seq})
		}
	}

	visited := make(map[string]bool, len(order))
	for _, id := range order {
		visited[id] = true
	}

	return &ProgressiveResult{
		Strategy:    StrategyBestFirst,
		Nodes:       order,
		Edges:       inducedEdges(g, visited),
		Visits:      singleVisits(order),
		TotalVisits: len(order),
		Truncated:   frontier.Len() > 0,
	}
}

// exploreRandomWalk performs a weighted random walk with restarts.
// MaxNodes caps total visit events, not distinct nodes.
func exploreRandomWalk(g *graph.Graph, opts ProgressiveOptions, maxVisits int) *ProgressiveResult {
	walkProb := opts.WalkProbability
	if walkProb <= 0 || walkProb > 1 {
		walkProb = defaultWalkProbability
	}

	teleport := opts.TeleportProbability
	if teleport < 0 || teleport >= 1 {
		teleport = defaultTeleportProbability
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	visits := make(map[string]int)
	var order []string
	current := opts.StartNode

	for total := 0; total < maxVisits; total++ {
		if visits[current] == 0 {
			order = append(order, current)
		}

		visits[current]++

		if rng.Float64() < teleport {
			current = opts.StartNode

			continue
		}

		nbrs := g.Neighbors(current)
		if len(nbrs) == 0 || rng.Float64() >= walkProb {
			current = opts.StartNode

			continue
		}

		current = nbrs[rng.IntN(len(nbrs))]
	}

	visited := make(map[string]bool, len(order))
	for _, id := range order {
		visited[id] = true
	}

	return &ProgressiveResult{
		Strategy:    StrategyRandomWalk,
		Nodes:       order,
		Edges:       inducedEdges(g, visited),
		Visits:      visits,
		TotalVisits: maxVisits,
	}
}

func singleVisits(ids []string) map[string]int {
	visits := make(map[string]int, len(ids))
	for _, id := range ids {
		visits[id] = 1
	}

	return visits
}

func inducedEdges(g *graph.Graph, visited map[string]bool) []*graph.Edge {
	edges := make([]*graph.Edge, 0)

	for _, e := range g.Edges() {
		if visited[e.Source] && visited[e.Target] {
			edges = append(edges, e)
		}
	}

	return edges
}

// scoredNode is a frontier entry: score wins, discovery order breaks
// ties (first seen first out).
type scoredNode struct {
	id    string
	score float64
	seq   int
}

type scoreHeap []scoredNode

func (h scoreHeap) Len() int { return len(h) }

func (h scoreHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score > h[j].score
	}

	return h[i].seq < h[j].seq
}

func (h scoreHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *scoreHeap) Push(x any) { *h = append(*h, x.(scoredNode)) }

func (h *scoreHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
