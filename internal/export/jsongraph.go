// Package export renders in-memory graphs into portable formats for
// visualization tools.
package export

import (
	"time"

	"github.com/biographdb/biograph/internal/graph"
)

// JSONGraph is the JSON-portable representation of a network.
type JSONGraph struct {
	ExportedAt time.Time  `json:"exported_at"`
	Directed   bool       `json:"directed"`
	Stats      JSONStats  `json:"stats"`
	Nodes      []JSONNode `json:"nodes"`
	Edges      []JSONEdge `json:"edges"`
}

// JSONStats summarises the contents of an export.
type JSONStats struct {
	NodeCount int `json:"node_count"`
	EdgeCount int `json:"edge_count"`
}

// JSONNode is one person in a JSON export.
type JSONNode struct {
	ID    string         `json:"id"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// JSONEdge is one relationship in a JSON export.
type JSONEdge struct {
	Source   string         `json:"source"`
	Target   string         `json:"target"`
	Relation string         `json:"relation"`
	Weight   float64        `json:"weight"`
	Attrs    map[string]any `json:"attrs,omitempty"`
}

// ToJSONGraph converts a graph into its portable JSON form. Node order
// follows insertion order so repeated exports of the same graph are
// deterministic.
func ToJSONGraph(g *graph.Graph) *JSONGraph {
	out := &JSONGraph{
		ExportedAt: time.Now().UTC(),
		Directed:   g.Mode() == graph.Directed,
		Stats: JSONStats{
			NodeCount: g.NodeCount(),
			EdgeCount: g.EdgeCount(),
		},
		Nodes: make([]JSONNode, 0, g.NodeCount()),
		Edges: make([]JSONEdge, 0, g.EdgeCount()),
	}

	for _, id := range g.Nodes() {
		attrs, _ := g.NodeAttrs(id)
		out.Nodes = append(out.Nodes, JSONNode{ID: id, Attrs: attrs})
	}

	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, JSONEdge{
			Source:   e.Source,
			Target:   e.Target,
			Relation: e.Relation,
			Weight:   e.Weight,
			Attrs:    e.Attrs,
		})
	}

	return out
}
