// Package graph provides the in-memory property multigraph that the
// exploration engine operates on.
//
// A Graph is built per request by the data-access layer and handed to the
// engine, which treats it as read-only. Nothing in this package is safe
// for concurrent mutation; concurrent reads are fine once construction is
// complete. Missing ids never produce errors — lookups return empty or
// zero results instead.
package graph

// Mode declares how edges are interpreted during traversal.
type Mode string

// Graph modes.
const (
	Directed   Mode = "directed"
	Undirected Mode = "undirected"
	Mixed      Mode = "mixed"
)

// Edge is a typed, optionally weighted connection between two nodes.
// Multiple edges between the same pair are permitted as long as their
// relations differ.
type Edge struct {
	Source   string         `json:"source"`
	Target   string         `json:"target"`
	Relation string         `json:"relation"`
	Weight   float64        `json:"weight,omitempty"`
	Attrs    map[string]any `json:"attrs,omitempty"`
}

// Graph is an in-memory multigraph with attribute maps on nodes and edges.
type Graph struct {
	mode  Mode
	nodes map[string]map[string]any
	order []string // node ids in insertion order, for deterministic iteration
	out   map[string][]*Edge
	in    map[string][]*Edge
	edges []*Edge
}

// New creates an empty graph with the given mode.
func New(mode Mode) *Graph {
	if mode == "" {
		mode = Mixed
	}

	return &Graph{
		mode:  mode,
		nodes: make(map[string]map[string]any),
		out:   make(map[string][]*Edge),
		in:    make(map[string][]*Edge),
	}
}

// Mode returns the graph's declared mode.
func (g *Graph) Mode() Mode { return g.mode }

// AddNode inserts a node or, if it already exists, merges attrs into its
// attribute map (incoming values win on key conflicts).
func (g *Graph) AddNode(id string, attrs map[string]any) {
	existing, ok := g.nodes[id]
	if !ok {
		existing = make(map[string]any, len(attrs))
		g.nodes[id] = existing
		g.order = append(g.order, id)
	}

	for k, v := range attrs {
		existing[k] = v
	}
}

// HasNode reports whether id is present.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// NodeAttrs returns the attribute map of id. The map is shared with the
// graph; callers must not mutate it.
func (g *Graph) NodeAttrs(id string) (map[string]any, bool) {
	attrs, ok := g.nodes[id]

	return attrs, ok
}

// AddEdge inserts an edge, auto-creating missing endpoints. If an edge
// with the same source, target and relation already exists, its attrs are
// merged and its weight replaced instead of adding a parallel edge.
// Self-loops are ignored. Returns the stored edge, or nil for a self-loop.
func (g *Graph) AddEdge(source, target, relation string, weight float64, attrs map[string]any) *Edge {
	if source == target {
		return nil
	}

	g.AddNode(source, nil)
	g.AddNode(target, nil)

	for _, e := range g.out[source] {
		if e.Target == target && e.Relation == relation {
			e.Weight = weight

			if e.Attrs == nil && len(attrs) > 0 {
				e.Attrs = make(map[string]any, len(attrs))
			}

			for k, v := range attrs {
				e.Attrs[k] = v
			}

			return e
		}
	}

	e := &Edge{Source: source, Target: target, Relation: relation, Weight: weight}
	if len(attrs) > 0 {
		e.Attrs = make(map[string]any, len(attrs))
		for k, v := range attrs {
			e.Attrs[k] = v
		}
	}

	g.out[source] = append(g.out[source], e)
	g.in[target] = append(g.in[target], e)
	g.edges = append(g.edges, e)

	return e
}

// HasEdge reports whether at least one edge connects source and target.
// In undirected and mixed graphs the reverse orientation also counts.
func (g *Graph) HasEdge(source, target string) bool {
	return len(g.EdgesBetween(source, target)) > 0
}

// EdgesBetween returns all edges connecting a and b, honouring the graph
// mode: directed graphs only report a→b, others include b→a as well.
func (g *Graph) EdgesBetween(a, b string) []*Edge {
	var result []*Edge

	for _, e := range g.out[a] {
		if e.Target == b {
			result = append(result, e)
		}
	}

	if g.mode != Directed {
		for _, e := range g.out[b] {
			if e.Target == a {
				result = append(result, e)
			}
		}
	}

	return result
}

// AdjacentEdges returns the edges a traversal may follow out of id.
// Directed graphs follow outgoing edges only; undirected and mixed graphs
// follow edges in both orientations.
func (g *Graph) AdjacentEdges(id string) []*Edge {
	if g.mode == Directed {
		return g.out[id]
	}

	outs := g.out[id]
	ins := g.in[id]

	if len(ins) == 0 {
		return outs
	}

	result := make([]*Edge, 0, len(outs)+len(ins))
	result = append(result, outs...)
	result = append(result, ins...)

	return result
}

// Opposite returns the endpoint of e that is not id.
func (e *Edge) Opposite(id string) string {
	if e.Source == id {
		return e.Target
	}

	return e.Source
}

// Neighbors returns the distinct nodes adjacent to id in first-seen edge
// order. An absent id yields an empty slice.
func (g *Graph) Neighbors(id string) []string {
	edges := g.AdjacentEdges(id)
	if len(edges) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(edges))
	result := make([]string, 0, len(edges))

	for _, e := range edges {
		nb := e.Opposite(id)
		if !seen[nb] {
			seen[nb] = true
			result = append(result, nb)
		}
	}

	return result
}

// Degree returns the number of edges incident to id, counting both
// orientations. An absent id has degree 0.
func (g *Graph) Degree(id string) int {
	return len(g.out[id]) + len(g.in[id])
}

// Nodes returns all node ids in insertion order.
func (g *Graph) Nodes() []string {
	result := make([]string, len(g.order))
	copy(result, g.order)

	return result
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []*Edge {
	result := make([]*Edge, len(g.edges))
	copy(result, g.edges)

	return result
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// RemoveEdge deletes all edges from source to target with the given
// relation; an empty relation deletes every parallel edge between the
// pair. Undirected and mixed graphs also drop the reverse orientation.
func (g *Graph) RemoveEdge(source, target, relation string) {
	match := func(e *Edge) bool {
		if relation != "" && e.Relation != relation {
			return false
		}

		if e.Source == source && e.Target == target {
			return true
		}

		return g.mode != Directed && e.Source == target && e.Target == source
	}

	g.dropEdges(match)
}

// RemoveNode deletes id and every edge incident to it.
func (g *Graph) RemoveNode(id string) {
	if !g.HasNode(id) {
		return
	}

	g.dropEdges(func(e *Edge) bool { return e.Source == id || e.Target == id })

	delete(g.nodes, id)
	delete(g.out, id)
	delete(g.in, id)

	for i, nid := range g.order {
		if nid == id {
			g.order = append(g.order[:i], g.order[i+1:]...)

			break
		}
	}
}

func (g *Graph) dropEdges(match func(*Edge) bool) {
	kept := g.edges[:0]
	dropped := make(map[*Edge]bool)

	for _, e := range g.edges {
		if match(e) {
			dropped[e] = true
		} else {
			kept = append(kept, e)
		}
	}

	if len(dropped) == 0 {
		return
	}

	g.edges = kept

	for id, list := range g.out {
		g.out[id] = filterOut(list, dropped)
	}

	for id, list := range g.in {
		g.in[id] = filterOut(list, dropped)
	}
}

func filterOut(list []*Edge, dropped map[*Edge]bool) []*Edge {
	kept := list[:0]

	for _, e := range list {
		if !dropped[e] {
			kept = append(kept, e)
		}
	}

	return kept
}

// Clear removes all nodes and edges, keeping the mode.
func (g *Graph) Clear() {
	g.nodes = make(map[string]map[string]any)
	g.order = nil
	g.out = make(map[string][]*Edge)
	g.in = make(map[string][]*Edge)
	g.edges = nil
}

// Subgraph returns a new graph containing the listed nodes (unknown ids
// are skipped) and only the edges whose endpoints are both retained.
func (g *Graph) Subgraph(ids []string) *Graph {
	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		if g.HasNode(id) {
			keep[id] = true
		}
	}

	sub := New(g.mode)

	// Preserve the parent graph's insertion order.
	for _, id := range g.order {
		if keep[id] {
			sub.AddNode(id, g.nodes[id])
		}
	}

	for _, e := range g.edges {
		if keep[e.Source] && keep[e.Target] {
			sub.AddEdge(e.Source, e.Target, e.Relation, e.Weight, e.Attrs)
		}
	}

	return sub
}

// FilterEdges returns a new graph with all nodes but only the edges for
// which keep returns true.
func (g *Graph) FilterEdges(keep func(*Edge) bool) *Graph {
	filtered := New(g.mode)

	for _, id := range g.order {
		filtered.AddNode(id, g.nodes[id])
	}

	for _, e := range g.edges {
		if keep(e) {
			filtered.AddEdge(e.Source, e.Target, e.Relation, e.Weight, e.Attrs)
		}
	}

	return filtered
}

// Merge returns the union of a and b as a new graph with a's mode.
// Attribute conflicts resolve in favour of b.
func Merge(a, b *Graph) *Graph {
	merged := New(a.mode)

	for _, g := range []*Graph{a, b} {
		for _, id := range g.order {
			merged.AddNode(id, g.nodes[id])
		}

		for _, e := range g.edges {
			merged.AddEdge(e.Source, e.Target, e.Relation, e.Weight, e.Attrs)
		}
	}

	return merged
}
