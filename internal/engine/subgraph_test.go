package engine_test

import (
	"errors"
	"testing"

	"github.com/biographdb/biograph/internal/engine"
)

func TestExtractSubgraphByNodeSet(t *testing.T) {
	g := familyTree()

	sub, err := engine.ExtractSubgraph(g, engine.SubgraphOptions{
		Nodes: []string{"1", "2", "3", "5"},
	})
	if err != nil {
		t.Fatalf("ExtractSubgraph: %v", err)
	}

	if sub.NodeCount() != 4 {
		t.Fatalf("NodeCount = %d, want 4", sub.NodeCount())
	}

	for _, pair := range [][2]string{{"1", "2"}, {"1", "3"}, {"2", "5"}} {
		if !sub.HasEdge(pair[0], pair[1]) {
			t.Errorf("edge (%s,%s) missing", pair[0], pair[1])
		}
	}
	if sub.HasEdge("1", "4") {
		t.Error("edge (1,4) present, want excluded")
	}
}

func TestExtractSubgraphByRadius(t *testing.T) {
	g := familyTree()

	sub, err := engine.ExtractSubgraph(g, engine.SubgraphOptions{
		CenterNode: "2",
		Radius:     1,
	})
	if err != nil {
		t.Fatalf("ExtractSubgraph: %v", err)
	}

	// 2 plus its direct neighborhood: parent 1, children 5 and 6.
	if sub.NodeCount() != 4 {
		t.Errorf("NodeCount = %d, want 4", sub.NodeCount())
	}
	if sub.HasNode("3") {
		t.Error("node 3 beyond the radius was retained")
	}
}

func TestExtractSubgraphCombinesNodeSetAndRadius(t *testing.T) {
	g := familyTree()

	sub, err := engine.ExtractSubgraph(g, engine.SubgraphOptions{
		Nodes:      []string{"10"},
		CenterNode: "2",
		Radius:     1,
	})
	if err != nil {
		t.Fatalf("ExtractSubgraph: %v", err)
	}

	if !sub.HasNode("10") || !sub.HasNode("2") {
		t.Error("union of explicit set and radius selection incomplete")
	}
	if sub.NodeCount() != 5 {
		t.Errorf("NodeCount = %d, want 5", sub.NodeCount())
	}
}

func TestExtractSubgraphMinDegree(t *testing.T) {
	g := familyTree()

	sub, err := engine.ExtractSubgraph(g, engine.SubgraphOptions{MinDegree: 3})
	if err != nil {
		t.Fatalf("ExtractSubgraph: %v", err)
	}

	// Only the root and the three internal nodes have degree >= 3 on
	// the full tree.
	if sub.NodeCount() != 4 {
		t.Errorf("NodeCount = %d, want 4", sub.NodeCount())
	}
	if sub.HasNode("5") {
		t.Error("leaf 5 retained despite degree 1")
	}
}

func TestExtractSubgraphEdgeTypeAllowList(t *testing.T) {
	g := familyTree()

	sub, err := engine.ExtractSubgraph(g, engine.SubgraphOptions{
		PreserveEdgeTypes: []string{"association"},
	})
	if err != nil {
		t.Fatalf("ExtractSubgraph: %v", err)
	}

	// Node selection runs first, so all nodes remain; only the edge set
	// shrinks.
	if sub.NodeCount() != 10 {
		t.Errorf("NodeCount = %d, want 10", sub.NodeCount())
	}
	if sub.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", sub.EdgeCount())
	}
}

func TestExtractSubgraphValidation(t *testing.T) {
	g := familyTree()

	if _, err := engine.ExtractSubgraph(g, engine.SubgraphOptions{CenterNode: "ghost", Radius: 1}); !errors.Is(err, engine.ErrUnknownStartNode) {
		t.Errorf("absent center: err = %v, want ErrUnknownStartNode", err)
	}

	if _, err := engine.ExtractSubgraph(g, engine.SubgraphOptions{CenterNode: "1", Radius: -1}); !errors.Is(err, engine.ErrInvalidBound) {
		t.Errorf("negative radius: err = %v, want ErrInvalidBound", err)
	}
}
