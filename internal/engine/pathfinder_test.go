package engine_test

import (
	"testing"

	"github.com/biographdb/biograph/internal/engine"
	"github.com/biographdb/biograph/internal/graph"
)

// pathfinders under test; both must agree on hop counts.
func pathfinders() map[string]engine.Pathfinder {
	return map[string]engine.Pathfinder{
		"relation-aware": engine.NewRelationAwarePathfinder("kinship"),
		"bidirectional":  engine.NewBidirectionalPathfinder(),
	}
}

func TestPathfindersAgreeOnHopCount(t *testing.T) {
	g := familyTree()

	cases := []struct {
		from, to string
		hops     int
	}{
		{"1", "1", 0},
		{"1", "5", 2},
		{"5", "6", 2},
		{"5", "10", 4},
	}

	for name, pf := range pathfinders() {
		for _, tc := range cases {
			path := pf.FindPath(g, tc.from, tc.to, 6)
			if len(path)-1 != tc.hops {
				t.Errorf("%s: FindPath(%s,%s) = %v, want %d hops", name, tc.from, tc.to, path, tc.hops)
			}
			if path[0] != tc.from || path[len(path)-1] != tc.to {
				t.Errorf("%s: FindPath(%s,%s) endpoints wrong: %v", name, tc.from, tc.to, path)
			}
		}
	}
}

func TestPathfindersRespectHopBound(t *testing.T) {
	g := familyTree()

	for name, pf := range pathfinders() {
		if path := pf.FindPath(g, "5", "10", 3); path != nil {
			t.Errorf("%s: path within 3 hops = %v, want nil", name, path)
		}
	}
}

func TestPathfindersHandleMissingNodes(t *testing.T) {
	g := familyTree()

	for name, pf := range pathfinders() {
		if path := pf.FindPath(g, "1", "ghost", 3); path != nil {
			t.Errorf("%s: path to absent node = %v, want nil", name, path)
		}
	}
}

func TestRelationAwareTieBreak(t *testing.T) {
	g := graph.New(graph.Mixed)
	g.AddEdge("a", "x", "association", 1, nil)
	g.AddEdge("x", "b", "association", 1, nil)
	g.AddEdge("a", "y", "kinship", 1, nil)
	g.AddEdge("y", "b", "kinship", 1, nil)

	pf := engine.NewRelationAwarePathfinder("kinship")

	path := pf.FindPath(g, "a", "b", 3)
	if len(path) != 3 || path[1] != "y" {
		t.Errorf("path = %v, want route through the kinship middle node", path)
	}
}

func TestRelationAwareNeverTradesLengthForPreference(t *testing.T) {
	g := graph.New(graph.Mixed)

	// Short association route vs a longer all-kinship detour.
	g.AddEdge("a", "b", "association", 1, nil)
	g.AddEdge("a", "k1", "kinship", 1, nil)
	g.AddEdge("k1", "k2", "kinship", 1, nil)
	g.AddEdge("k2", "b", "kinship", 1, nil)

	pf := engine.NewRelationAwarePathfinder("kinship")

	path := pf.FindPath(g, "a", "b", 5)
	if len(path) != 2 {
		t.Errorf("path = %v, want the direct 1-hop route", path)
	}
}
