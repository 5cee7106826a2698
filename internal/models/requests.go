package models

// ExploreRequest is the payload for depth-bounded network exploration.
type ExploreRequest struct {
	StartNode       string   `json:"start_node"`
	MaxDepth        int      `json:"max_depth"`
	RelationTypes   []string `json:"relation_types,omitempty"`
	WeightThreshold float64  `json:"weight_threshold,omitempty"`
	MaxNodes        int      `json:"max_nodes,omitempty"`
	Strategy        string   `json:"strategy,omitempty"`
	StepBudget      int      `json:"step_budget,omitempty"`
}

// Validate checks required fields and limits on ExploreRequest. Bound
// semantics (negative depth, zero meaning default) are enforced by the
// engine; this only rejects payloads that are malformed on their face.
func (r *ExploreRequest) Validate() error {
	if r.StartNode == "" {
		return ErrMissingStartNode
	}

	if len(r.StartNode) > 255 {
		return ErrFieldTooLong("start_node", 255)
	}

	for _, rt := range r.RelationTypes {
		if len(rt) > 100 {
			return ErrFieldTooLong("relation_types", 100)
		}
	}

	return nil
}

// DiscoverRequest is the payload for multi-entity network discovery.
type DiscoverRequest struct {
	QueryEntities     []string `json:"query_entities"`
	MaxHopDistance    int      `json:"max_hop_distance,omitempty"`
	RelationTypes     []string `json:"relation_types,omitempty"`
	MaxBridgeEntities int      `json:"max_bridge_entities,omitempty"`
	MaxNodes          int      `json:"max_nodes,omitempty"`
	PreferredPaths    []string `json:"preferred_paths,omitempty"`
}

// Validate checks DiscoverRequest fields.
func (r *DiscoverRequest) Validate() error {
	if len(r.QueryEntities) == 0 {
		return ErrMissingQueryEntities
	}

	for _, id := range r.QueryEntities {
		if len(id) > 255 {
			return ErrFieldTooLong("query_entities", 255)
		}
	}

	return nil
}

// SubgraphRequest is the payload for subgraph extraction.
type SubgraphRequest struct {
	Nodes             []string `json:"nodes,omitempty"`
	CenterNode        string   `json:"center_node,omitempty"`
	Radius            int      `json:"radius,omitempty"`
	MinDegree         int      `json:"min_degree,omitempty"`
	PreserveEdgeTypes []string `json:"preserve_edge_types,omitempty"`
}

// Validate checks that at least one selection mechanism is present.
func (r *SubgraphRequest) Validate() error {
	if len(r.Nodes) == 0 && r.CenterNode == "" {
		return ErrMissingNodeSelection
	}

	if len(r.CenterNode) > 255 {
		return ErrFieldTooLong("center_node", 255)
	}

	for _, id := range r.Nodes {
		if len(id) > 255 {
			return ErrFieldTooLong("nodes", 255)
		}
	}

	return nil
}
