package graph_test

import (
	"testing"

	"github.com/biographdb/biograph/internal/graph"
)

func TestBFSFromAbsentStart(t *testing.T) {
	g := graph.New(graph.Mixed)

	ok := g.BFSFrom("ghost", 3, func(string, int) graph.Walk { return graph.Continue })
	if ok {
		t.Error("BFSFrom reported true for an absent start")
	}
}

func TestDistancesFrom(t *testing.T) {
	g := familyTree()

	distances := g.DistancesFrom("1", 2)

	if len(distances) != 10 {
		t.Fatalf("reachable = %d, want 10", len(distances))
	}
	if distances["1"] != 0 {
		t.Errorf("distance(1) = %d, want 0", distances["1"])
	}
	if distances["4"] != 1 {
		t.Errorf("distance(4) = %d, want 1", distances["4"])
	}
	if distances["10"] != 2 {
		t.Errorf("distance(10) = %d, want 2", distances["10"])
	}

	// Tighter bound cuts the second generation off.
	if got := len(g.DistancesFrom("1", 1)); got != 4 {
		t.Errorf("reachable within 1 hop = %d, want 4", got)
	}
}

func TestBFSFromStopAndSkip(t *testing.T) {
	g := familyTree()

	var visited []string
	g.BFSFrom("1", 2, func(id string, depth int) graph.Walk {
		if id == "3" {
			return graph.Skip // prune this branch
		}

		visited = append(visited, id)

		if len(visited) >= 6 {
			return graph.Stop
		}

		return graph.Continue
	})

	for _, id := range visited {
		if id == "3" || id == "7" || id == "8" {
			t.Errorf("visited pruned node %s", id)
		}
	}
	if len(visited) != 6 {
		t.Errorf("visited = %d nodes, want 6 (stopped)", len(visited))
	}
}

func TestPathBetween(t *testing.T) {
	g := familyTree()

	path := g.PathBetween("5", "6", 5)

	want := []string{"5", "2", "6"}
	if len(path) != len(want) {
		t.Fatalf("path = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("path = %v, want %v", path, want)
		}
	}
}

func TestPathBetweenRespectsHopBound(t *testing.T) {
	g := familyTree()

	// 5 to 10 needs four hops (5-2-1-4-10).
	if path := g.PathBetween("5", "10", 3); path != nil {
		t.Errorf("path within 3 hops = %v, want nil", path)
	}
	if path := g.PathBetween("5", "10", 4); len(path) != 5 {
		t.Errorf("path within 4 hops = %v, want 5 nodes", path)
	}
}

func TestPathBetweenTrivialAndMissing(t *testing.T) {
	g := familyTree()

	if path := g.PathBetween("1", "1", 3); len(path) != 1 || path[0] != "1" {
		t.Errorf("path(1,1) = %v, want [1]", path)
	}
	if path := g.PathBetween("1", "ghost", 3); path != nil {
		t.Errorf("path to absent node = %v, want nil", path)
	}
}
