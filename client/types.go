package client

// Person is one biographical record.
type Person struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	NameAlt    string         `json:"name_alt,omitempty"`
	Dynasty    string         `json:"dynasty,omitempty"`
	Gender     string         `json:"gender,omitempty"`
	BirthYear  *int           `json:"birth_year,omitempty"`
	DeathYear  *int           `json:"death_year,omitempty"`
	IndexYear  *int           `json:"index_year,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Relationship is one typed, weighted link between two people.
type Relationship struct {
	Source     string         `json:"source"`
	Target     string         `json:"target"`
	Kind       string         `json:"kind"`
	Label      string         `json:"label,omitempty"`
	Weight     float64        `json:"weight"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Edge is a relationship as it appears inside exploration results.
type Edge struct {
	Source   string         `json:"source"`
	Target   string         `json:"target"`
	Relation string         `json:"relation"`
	Weight   float64        `json:"weight"`
	Attrs    map[string]any `json:"attrs,omitempty"`
}

// ExploreRequest is the payload for POST /api/v1/network/explore.
type ExploreRequest struct {
	StartNode       string   `json:"start_node"`
	MaxDepth        int      `json:"max_depth,omitempty"`
	RelationTypes   []string `json:"relation_types,omitempty"`
	WeightThreshold float64  `json:"weight_threshold,omitempty"`
	MaxNodes        int      `json:"max_nodes,omitempty"`
	Strategy        string   `json:"strategy,omitempty"`
	StepBudget      int      `json:"step_budget,omitempty"`
}

// ExploreResult is the response of a depth-bounded exploration.
type ExploreResult struct {
	StartNode       string           `json:"start_node"`
	NodesByDepth    map[int][]string `json:"nodes_by_depth"`
	Nodes           []string         `json:"nodes"`
	Edges           []Edge           `json:"edges"`
	TotalNodes      int              `json:"total_nodes"`
	MaxDepthReached int              `json:"max_depth_reached"`
	Truncated       bool             `json:"truncated"`
}

// ProgressiveResult is the response of a strategy-driven exploration.
type ProgressiveResult struct {
	Strategy    string         `json:"strategy"`
	Nodes       []string       `json:"nodes"`
	Edges       []Edge         `json:"edges"`
	Visits      map[string]int `json:"visits"`
	TotalVisits int            `json:"total_visits"`
	Truncated   bool           `json:"truncated"`
}

// DiscoverRequest is the payload for POST /api/v1/network/discover.
type DiscoverRequest struct {
	QueryEntities     []string `json:"query_entities"`
	MaxHopDistance    int      `json:"max_hop_distance,omitempty"`
	RelationTypes     []string `json:"relation_types,omitempty"`
	MaxBridgeEntities int      `json:"max_bridge_entities,omitempty"`
	MaxNodes          int      `json:"max_nodes,omitempty"`
	PreferredPaths    []string `json:"preferred_paths,omitempty"`
}

// DiscoveredEntity classifies one node relative to the query entities.
type DiscoveredEntity struct {
	ID          string         `json:"id"`
	Distance    int            `json:"distance"`
	ConnectsTo  []string       `json:"connects_to"`
	QueryEntity bool           `json:"query_entity,omitempty"`
	Attrs       map[string]any `json:"attrs,omitempty"`
}

// DirectConnection records the ties directly linking two query entities.
type DirectConnection struct {
	EntityA       string  `json:"entity_a"`
	EntityB       string  `json:"entity_b"`
	Relationships []Edge  `json:"relationships"`
	Strength      float64 `json:"strength"`
}

// BridgeEntity is a non-query node connecting several query entities.
type BridgeEntity struct {
	ID              string   `json:"id"`
	ConnectsTo      []string `json:"connects_to"`
	AverageDistance float64  `json:"average_distance"`
	Score           float64  `json:"score"`
}

// Pathway is one ranked route between two query entities.
type Pathway struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Nodes  []string `json:"nodes"`
	Edges  []Edge   `json:"edges"`
	Length int      `json:"length"`
}

// NetworkMetrics aggregates the discovered network.
type NetworkMetrics struct {
	NodeCount         int     `json:"node_count"`
	EdgeCount         int     `json:"edge_count"`
	Density           float64 `json:"density"`
	AveragePathLength float64 `json:"average_path_length"`
	Components        int     `json:"components"`
}

// DiscoveryResult is the response of a multi-entity discovery.
type DiscoveryResult struct {
	QueryEntities     []string                     `json:"query_entities"`
	Entities          map[string]*DiscoveredEntity `json:"entities"`
	Edges             []Edge                       `json:"edges"`
	DirectConnections []DirectConnection           `json:"direct_connections"`
	BridgeEntities    []BridgeEntity               `json:"bridge_entities"`
	Pathways          []Pathway                    `json:"pathways"`
	Metrics           NetworkMetrics               `json:"metrics"`
	Truncated         bool                         `json:"truncated"`
}

// SubgraphRequest is the payload for POST /api/v1/network/subgraph.
type SubgraphRequest struct {
	Nodes             []string `json:"nodes,omitempty"`
	CenterNode        string   `json:"center_node,omitempty"`
	Radius            int      `json:"radius,omitempty"`
	MinDegree         int      `json:"min_degree,omitempty"`
	PreserveEdgeTypes []string `json:"preserve_edge_types,omitempty"`
}

// GraphStats summarises an exported graph.
type GraphStats struct {
	NodeCount int `json:"node_count"`
	EdgeCount int `json:"edge_count"`
}

// GraphNode is one node in an exported graph.
type GraphNode struct {
	ID    string         `json:"id"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Graph is the JSON form of an extracted subgraph.
type Graph struct {
	Directed bool        `json:"directed"`
	Stats    GraphStats  `json:"stats"`
	Nodes    []GraphNode `json:"nodes"`
	Edges    []Edge      `json:"edges"`
}

// GraphMetrics carries the density summary returned with subgraphs.
type GraphMetrics struct {
	NodeCount     int     `json:"node_count"`
	EdgeCount     int     `json:"edge_count"`
	Density       float64 `json:"density"`
	AverageDegree float64 `json:"average_degree"`
}

// SubgraphResult is the response of a subgraph extraction.
type SubgraphResult struct {
	Graph   Graph        `json:"graph"`
	Metrics GraphMetrics `json:"metrics"`
}

// SearchResult is the response of a people search.
type SearchResult struct {
	People []Person `json:"people"`
	Count  int      `json:"count"`
}

// RelationshipList is the response of a relationships lookup.
type RelationshipList struct {
	Relationships []Relationship `json:"relationships"`
	Count         int            `json:"count"`
}

// HealthResponse is the liveness check payload.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Database      string  `json:"database"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}
