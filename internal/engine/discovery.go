package engine

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/biographdb/biograph/internal/graph"
)

// Discovery caps and scoring knobs.
const (
	// defaultDiscoveryCap bounds the discovered-node union when the
	// caller sets no cap of its own.
	defaultDiscoveryCap = 2000

	// relationDiversityBonus is the per-extra-relation-type increment on
	// a direct connection's strength.
	relationDiversityBonus = 0.5
)

// defaultPreferredRelation is the relation favoured when pathway lengths
// tie: kinship links rank above looser association links.
const defaultPreferredRelation = "kinship"

// DiscoveryOptions configures multi-entity network discovery.
type DiscoveryOptions struct {
	// QueryEntities are the starting points; at least two are required.
	QueryEntities []string
	// MaxHopDistance bounds every per-entity traversal and pathway.
	MaxHopDistance int
	// IncludeRelationTypes restricts traversal to these relations; empty
	// means all.
	IncludeRelationTypes []string
	// NodeFilter optionally prunes candidate nodes.
	NodeFilter NodeFilter
	// MaxBridgeEntities keeps only the top-N bridges; 0 keeps all.
	MaxBridgeEntities int
	// MaxNodes overrides the internal safety cap on the discovered union.
	MaxNodes int
	// PreferredPathRelations breaks pathway-length ties; defaults to
	// kinship.
	PreferredPathRelations []string
	// Pathfinder substitutes the pathway algorithm; defaults to the
	// relation-aware pathfinder.
	Pathfinder Pathfinder
}

// DiscoveredEntity classifies one node relative to the query entities.
type DiscoveredEntity struct {
	ID          string         `json:"id"`
	Distance    int            `json:"distance"`
	ConnectsTo  []string       `json:"connects_to"`
	QueryEntity bool           `json:"query_entity,omitempty"`
	Attrs       map[string]any `json:"attrs,omitempty"`
}

// DirectConnection records the edges directly linking two query entities
// and a strength score monotonic in their number and type diversity.
type DirectConnection struct {
	EntityA       string        `json:"entity_a"`
	EntityB       string        `json:"entity_b"`
	Relationships []*graph.Edge `json:"relationships"`
	Strength      float64       `json:"strength"`
}

// BridgeEntity is a non-query node reached from two or more query
// entities, ranked by how many it connects and how closely.
type BridgeEntity struct {
	ID              string   `json:"id"`
	ConnectsTo      []string `json:"connects_to"`
	AverageDistance float64  `json:"average_distance"`
	Score           float64  `json:"score"`
}

// Pathway is a concrete shortest route between two query entities.
type Pathway struct {
	From   string        `json:"from"`
	To     string        `json:"to"`
	Nodes  []string      `json:"nodes"`
	Edges  []*graph.Edge `json:"edges"`
	Length int           `json:"length"`
}

// NetworkMetrics aggregates the discovered subgraph.
type NetworkMetrics struct {
	NodeCount         int     `json:"node_count"`
	EdgeCount         int     `json:"edge_count"`
	Density           float64 `json:"density"`
	AveragePathLength float64 `json:"average_path_length"`
	Components        int     `json:"components"`
}

// DiscoveryResult is the complete output of multi-entity discovery. It
// owns all of its collections; nothing is shared with the input graph's
// caller beyond read-only edge values.
type DiscoveryResult struct {
	QueryEntities     []string                     `json:"query_entities"`
	Entities          map[string]*DiscoveredEntity `json:"entities"`
	Edges             []*graph.Edge                `json:"edges"`
	DirectConnections []DirectConnection           `json:"direct_connections"`
	BridgeEntities    []BridgeEntity               `json:"bridge_entities"`
	Pathways          []Pathway                    `json:"pathways"`
	Metrics           NetworkMetrics               `json:"metrics"`
	Truncated         bool                         `json:"truncated"`
}

// DiscoverNetwork explores outward from every query entity, classifies
// the union of reachable nodes, and derives direct connections, bridge
// entities, pathways and aggregate metrics.
func DiscoverNetwork(g *graph.Graph, opts DiscoveryOptions) (*DiscoveryResult, error) {
	queries := dedupe(opts.QueryEntities)
	if len(queries) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientQueryEntities, len(queries))
	}

	if opts.MaxHopDistance <= 0 {
		return nil, fmt.Errorf("%w: maxHopDistance %d", ErrInvalidBound, opts.MaxHopDistance)
	}

	if opts.MaxNodes < 0 {
		return nil, fmt.Errorf("%w: maxNodes %d", ErrInvalidBound, opts.MaxNodes)
	}

	for _, q := range queries {
		if !g.HasNode(q) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStartNode, q)
		}
	}

	working := g
	if len(opts.IncludeRelationTypes) > 0 {
		allowed := make(map[string]bool, len(opts.IncludeRelationTypes))
		for _, r := range opts.IncludeRelationTypes {
			allowed[r] = true
		}

		working = g.FilterEdges(func(e *graph.Edge) bool { return allowed[e.Relation] })
	}

	// Per-entity bounded traversals; reached maps node id to the hop
	// distance from each query entity that saw it.
	reached := make(map[string]map[string]int)
	var order []string

	for _, q := range queries {
		res, err := ExploreByDepth(working, ExploreOptions{
			StartNode:  q,
			MaxDepth:   opts.MaxHopDistance,
			MaxNodes:   maxResultNodes,
			NodeFilter: opts.NodeFilter,
		})
		if err != nil {
			return nil, err
		}

		for depth, ids := range res.NodesByDepth {
			for _, id := range ids {
				if reached[id] == nil {
					reached[id] = make(map[string]int, len(queries))
					order = append(order, id)
				}

				reached[id][q] = depth
			}
		}
	}

	nodeCap := opts.MaxNodes
	if nodeCap == 0 {
		nodeCap = defaultDiscoveryCap
	}

	retained, truncated := retainClosest(order, reached, nodeCap)

	result := &DiscoveryResult{
		QueryEntities: queries,
		Entities:      make(map[string]*DiscoveredEntity, len(retained)),
		Truncated:     truncated,
	}

	querySet := make(map[string]bool, len(queries))
	for _, q := range queries {
		querySet[q] = true
	}

	for _, id := range retained {
		result.Entities[id] = &DiscoveredEntity{
			ID:          id,
			Distance:    minDistance(reached[id], querySet, id),
			ConnectsTo:  connectedQueries(reached[id], queries),
			QueryEntity: querySet[id],
			Attrs:       copyAttrs(g, id),
		}
	}

	discovered := working.Subgraph(retained)
	result.Edges = discovered.Edges()

	result.DirectConnections = directConnections(working, queries)
	result.BridgeEntities = bridgeEntities(retained, reached, querySet, opts.MaxBridgeEntities)
	result.Pathways = pathways(discovered, queries, result.DirectConnections, opts)
	result.Metrics = networkMetrics(discovered, result.DirectConnections, result.Pathways)

	return result, nil
}

// retainClosest applies the safety cap, preferring nodes closest to any
// query entity and otherwise keeping discovery order.
func retainClosest(order []string, reached map[string]map[string]int, nodeCap int) ([]string, bool) {
	if len(order) <= nodeCap {
		return order, false
	}

	ranked := make([]string, len(order))
	copy(ranked, order)

	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		di := nearest(reached[ranked[i]])
		dj := nearest(reached[ranked[j]])

		if di != dj {
			return di < dj
		}

		return pos[ranked[i]] < pos[ranked[j]]
	})

	return ranked[:nodeCap], true
}

func nearest(dists map[string]int) int {
	best := -1
	for _, d := range dists {
		if best < 0 || d < best {
			best = d
		}
	}

	return best
}

// minDistance is the minimum hop distance to any query entity other than
// the node itself; query entities sit at distance 0.
func minDistance(dists map[string]int, querySet map[string]bool, id string) int {
	if querySet[id] {
		return 0
	}

	return nearest(dists)
}

// copyAttrs snapshots a node's attribute map so results stay detached
// from the caller's graph.
func copyAttrs(g *graph.Graph, id string) map[string]any {
	attrs, ok := g.NodeAttrs(id)
	if !ok || len(attrs) == 0 {
		return nil
	}

	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}

	return out
}

// connectedQueries lists the query entities that reached the node, in
// query order.
func connectedQueries(dists map[string]int, queries []string) []string {
	connects := make([]string, 0, len(dists))

	for _, q := range queries {
		if _, ok := dists[q]; ok {
			connects = append(connects, q)
		}
	}

	return connects
}

// directConnections collects, for every query pair, the edges directly
// linking them in either orientation. Strength grows with the number of
// relationships and with their type diversity.
func directConnections(g *graph.Graph, queries []string) []DirectConnection {
	connections := make([]DirectConnection, 0)

	for i := 0; i < len(queries); i++ {
		for j := i + 1; j < len(queries); j++ {
			edges := pairEdges(g, queries[i], queries[j])
			if len(edges) == 0 {
				continue
			}

			types := make(map[string]bool, len(edges))
			for _, e := range edges {
				types[e.Relation] = true
			}

			connections = append(connections, DirectConnection{
				EntityA:       queries[i],
				EntityB:       queries[j],
				Relationships: edges,
				Strength:      float64(len(edges)) + relationDiversityBonus*float64(len(types)-1),
			})
		}
	}

	return connections
}

// pairEdges gathers edges between a and b in both orientations without
// duplicates.
func pairEdges(g *graph.Graph, a, b string) []*graph.Edge {
	seen := make(map[*graph.Edge]bool)
	var edges []*graph.Edge

	for _, e := range append(g.EdgesBetween(a, b), g.EdgesBetween(b, a)...) {
		if !seen[e] {
			seen[e] = true
			edges = append(edges, e)
		}
	}

	return edges
}

// bridgeEntities ranks non-query nodes reached from two or more query
// entities: more connections and shorter connecting paths score higher.
func bridgeEntities(retained []string, reached map[string]map[string]int, querySet map[string]bool, topN int) []BridgeEntity {
	bridges := make([]BridgeEntity, 0)

	for _, id := range retained {
		if querySet[id] {
			continue
		}

		dists := reached[id]
		if len(dists) < 2 {
			continue
		}

		connects := make([]string, 0, len(dists))
		total := 0.0

		for q, d := range dists {
			connects = append(connects, q)
			total += float64(d)
		}

		sort.Strings(connects)
		avg := total / float64(len(dists))

		bridges = append(bridges, BridgeEntity{
			ID:              id,
			ConnectsTo:      connects,
			AverageDistance: avg,
			Score:           float64(len(connects)) / avg,
		})
	}

	sort.Slice(bridges, func(i, j int) bool {
		if bridges[i].Score != bridges[j].Score {
			return bridges[i].Score > bridges[j].Score
		}

		return bridges[i].ID < bridges[j].ID
	})

	if topN > 0 && len(bridges) > topN {
		bridges = bridges[:topN]
	}

	return bridges
}

// pathways finds a shortest route through the discovered subgraph for
// every query pair lacking a direct connection; unreachable pairs within
// the hop bound are omitted.
func pathways(discovered *graph.Graph, queries []string, direct []DirectConnection, opts DiscoveryOptions) []Pathway {
	directPair := make(map[[2]string]bool, len(direct))
	for _, dc := range direct {
		directPair[[2]string{dc.EntityA, dc.EntityB}] = true
	}

	pf := opts.Pathfinder
	if pf == nil {
		preferred := opts.PreferredPathRelations
		if len(preferred) == 0 {
			preferred = []string{defaultPreferredRelation}
		}

		pf = NewRelationAwarePathfinder(preferred...)
	}

	preferred := make(map[string]bool, len(opts.PreferredPathRelations))
	for _, r := range opts.PreferredPathRelations {
		preferred[r] = true
	}

	if len(preferred) == 0 {
		preferred[defaultPreferredRelation] = true
	}

	result := make([]Pathway, 0)

	for i := 0; i < len(queries); i++ {
		for j := i + 1; j < len(queries); j++ {
			if directPair[[2]string{queries[i], queries[j]}] {
				continue
			}

			trail := pf.FindPath(discovered, queries[i], queries[j], opts.MaxHopDistance)
			if len(trail) == 0 {
				continue
			}

			result = append(result, Pathway{
				From:   queries[i],
				To:     queries[j],
				Nodes:  trail,
				Edges:  trailEdges(discovered, trail, preferred),
				Length: len(trail) - 1,
			})
		}
	}

	return result
}

// trailEdges picks one edge per consecutive pair of trail nodes,
// preferring the favoured relations.
func trailEdges(g *graph.Graph, trail []string, preferred map[string]bool) []*graph.Edge {
	edges := make([]*graph.Edge, 0, len(trail)-1)

	for i := 0; i+1 < len(trail); i++ {
		candidates := pairEdges(g, trail[i], trail[i+1])
		if len(candidates) == 0 {
			continue
		}

		pick := candidates[0]
		for _, e := range candidates {
			if preferred[e.Relation] {
				pick = e

				break
			}
		}

		edges = append(edges, pick)
	}

	return edges
}

// networkMetrics aggregates the discovered subgraph plus the average
// path length among connected query pairs (direct pairs count as length
// one).
func networkMetrics(discovered *graph.Graph, direct []DirectConnection, paths []Pathway) NetworkMetrics {
	gm := discovered.Metrics()

	lengths := make([]float64, 0, len(direct)+len(paths))
	for range direct {
		lengths = append(lengths, 1)
	}

	for _, p := range paths {
		lengths = append(lengths, float64(p.Length))
	}

	avg := 0.0
	if len(lengths) > 0 {
		avg = stat.Mean(lengths, nil)
	}

	return NetworkMetrics{
		NodeCount:         gm.NodeCount,
		EdgeCount:         gm.EdgeCount,
		Density:           gm.Density,
		AveragePathLength: avg,
		Components:        countComponents(discovered),
	}
}

// countComponents counts connected components, treating every edge as
// traversable in both directions regardless of mode.
func countComponents(g *graph.Graph) int {
	adjacency := make(map[string][]string, g.NodeCount())
	for _, e := range g.Edges() {
		adjacency[e.Source] = append(adjacency[e.Source], e.Target)
		adjacency[e.Target] = append(adjacency[e.Target], e.Source)
	}

	visited := make(map[string]bool, g.NodeCount())
	components := 0

	for _, id := range g.Nodes() {
		if visited[id] {
			continue
		}

		components++

		stack := []string{id}
		visited[id] = true

		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for _, nb := range adjacency[current] {
				if !visited[nb] {
					visited[nb] = true
					stack = append(stack, nb)
				}
			}
		}
	}

	return components
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	result := make([]string, 0, len(ids))

	for _, id := range ids {
		if id != "" && !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}

	return result
}
