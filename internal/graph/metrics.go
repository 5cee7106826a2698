package graph

// Metrics summarises the size and connectivity of a graph.
type Metrics struct {
	NodeCount     int     `json:"node_count"`
	EdgeCount     int     `json:"edge_count"`
	Density       float64 `json:"density"`
	AverageDegree float64 `json:"average_degree"`
}

// Metrics computes node/edge counts, density (edges over the maximum
// possible for the graph's mode) and average degree.
func (g *Graph) Metrics() Metrics {
	m := Metrics{
		NodeCount: len(g.nodes),
		EdgeCount: len(g.edges),
	}

	n := float64(m.NodeCount)
	if m.NodeCount > 0 {
		m.AverageDegree = 2 * float64(m.EdgeCount) / n
	}

	if m.NodeCount < 2 {
		return m
	}

	possible := n * (n - 1)
	if g.mode == Undirected {
		possible /= 2
	}

	m.Density = float64(m.EdgeCount) / possible

	return m
}
