package engine_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/biographdb/biograph/internal/engine"
	"github.com/biographdb/biograph/internal/graph"
)

// familyTree builds the three-generation scenario tree: 1 is the root,
// 2-4 its children, 5-10 grandchildren. Child 4 hangs off an association
// link; everything else is kinship.
func familyTree() *graph.Graph {
	g := graph.New(graph.Mixed)

	links := []struct{ from, to, kind string }{
		{"1", "2", "kinship"},
		{"1", "3", "kinship"},
		{"1", "4", "association"},
		{"2", "5", "kinship"},
		{"2", "6", "kinship"},
		{"3", "7", "kinship"},
		{"3", "8", "kinship"},
		{"4", "9", "kinship"},
		{"4", "10", "kinship"},
	}
	for _, l := range links {
		g.AddEdge(l.from, l.to, l.kind, 1, nil)
	}

	return g
}

func TestExploreByDepthZeroReturnsStartOnly(t *testing.T) {
	g := familyTree()

	res, err := engine.ExploreByDepth(g, engine.ExploreOptions{StartNode: "1", MaxDepth: 0})
	if err != nil {
		t.Fatalf("ExploreByDepth: %v", err)
	}

	if res.TotalNodes != 1 {
		t.Errorf("TotalNodes = %d, want 1", res.TotalNodes)
	}
	if len(res.NodesByDepth[0]) != 1 || res.NodesByDepth[0][0] != "1" {
		t.Errorf("NodesByDepth[0] = %v, want [1]", res.NodesByDepth[0])
	}
	if len(res.Edges) != 0 {
		t.Errorf("Edges = %d, want 0", len(res.Edges))
	}
}

func TestExploreByDepthTreeScenario(t *testing.T) {
	g := familyTree()

	r1, err := engine.ExploreByDepth(g, engine.ExploreOptions{StartNode: "1", MaxDepth: 1})
	if err != nil {
		t.Fatalf("ExploreByDepth depth 1: %v", err)
	}

	if r1.TotalNodes != 4 {
		t.Errorf("depth 1 TotalNodes = %d, want 4", r1.TotalNodes)
	}
	if len(r1.NodesByDepth[0]) != 1 {
		t.Errorf("depth 0 size = %d, want 1", len(r1.NodesByDepth[0]))
	}
	if len(r1.NodesByDepth[1]) != 3 {
		t.Errorf("depth 1 size = %d, want 3", len(r1.NodesByDepth[1]))
	}

	r2, err := engine.ExploreByDepth(g, engine.ExploreOptions{StartNode: "1", MaxDepth: 2})
	if err != nil {
		t.Fatalf("ExploreByDepth depth 2: %v", err)
	}

	if r2.TotalNodes != 10 {
		t.Errorf("depth 2 TotalNodes = %d, want 10", r2.TotalNodes)
	}
	if len(r2.NodesByDepth[2]) != 6 {
		t.Errorf("depth 2 size = %d, want 6", len(r2.NodesByDepth[2]))
	}
	if r2.MaxDepthReached != 2 {
		t.Errorf("MaxDepthReached = %d, want 2", r2.MaxDepthReached)
	}
	if len(r2.Edges) != 9 {
		t.Errorf("Edges = %d, want 9", len(r2.Edges))
	}
}

func TestExploreByDepthMonotonicity(t *testing.T) {
	g := familyTree()

	var previous map[string]bool

	for depth := 0; depth <= 3; depth++ {
		res, err := engine.ExploreByDepth(g, engine.ExploreOptions{StartNode: "1", MaxDepth: depth})
		if err != nil {
			t.Fatalf("ExploreByDepth depth %d: %v", depth, err)
		}

		current := make(map[string]bool, res.TotalNodes)
		for _, id := range res.Nodes {
			current[id] = true
		}

		for id := range previous {
			if !current[id] {
				t.Errorf("depth %d lost node %s present at depth %d", depth, id, depth-1)
			}
		}

		previous = current
	}
}

func TestExploreByDepthMaxNodesCap(t *testing.T) {
	g := familyTree()

	res, err := engine.ExploreByDepth(g, engine.ExploreOptions{StartNode: "1", MaxDepth: 2, MaxNodes: 5})
	if err != nil {
		t.Fatalf("ExploreByDepth: %v", err)
	}

	if res.TotalNodes > 5 {
		t.Errorf("TotalNodes = %d, want <= 5", res.TotalNodes)
	}
	if !res.Truncated {
		t.Error("Truncated = false, want true")
	}
}

func TestExploreByDepthEarlyTermination(t *testing.T) {
	g := familyTree()

	res, err := engine.ExploreByDepth(g, engine.ExploreOptions{
		StartNode:        "1",
		MaxDepth:         2,
		EarlyTermination: func(id string, depth int) bool { return id == "2" },
	})
	if err != nil {
		t.Fatalf("ExploreByDepth: %v", err)
	}

	// Node 2 is visited first at depth 1, halting the traversal with
	// the whole first generation already discovered.
	if res.TotalNodes != 4 {
		t.Errorf("TotalNodes = %d, want 4", res.TotalNodes)
	}
	if res.MaxDepthReached != 1 {
		t.Errorf("MaxDepthReached = %d, want 1", res.MaxDepthReached)
	}
}

func TestExploreByDepthNodeFilter(t *testing.T) {
	g := familyTree()

	res, err := engine.ExploreByDepth(g, engine.ExploreOptions{
		StartNode:  "1",
		MaxDepth:   2,
		NodeFilter: func(id string, attrs map[string]any) bool { return id != "2" },
	})
	if err != nil {
		t.Fatalf("ExploreByDepth: %v", err)
	}

	for _, id := range res.Nodes {
		if id == "2" || id == "5" || id == "6" {
			t.Errorf("filtered branch leaked node %s", id)
		}
	}
	if res.TotalNodes != 7 {
		t.Errorf("TotalNodes = %d, want 7", res.TotalNodes)
	}
}

func TestExploreByDepthUnknownStart(t *testing.T) {
	g := familyTree()

	_, err := engine.ExploreByDepth(g, engine.ExploreOptions{StartNode: "ghost", MaxDepth: 1})
	if !errors.Is(err, engine.ErrUnknownStartNode) {
		t.Errorf("err = %v, want ErrUnknownStartNode", err)
	}
}

func TestExploreByDepthInvalidBounds(t *testing.T) {
	g := familyTree()

	if _, err := engine.ExploreByDepth(g, engine.ExploreOptions{StartNode: "1", MaxDepth: -1}); !errors.Is(err, engine.ErrInvalidBound) {
		t.Errorf("negative depth: err = %v, want ErrInvalidBound", err)
	}

	if _, err := engine.ExploreByDepth(g, engine.ExploreOptions{StartNode: "1", MaxDepth: 1, MaxNodes: -5}); !errors.Is(err, engine.ErrInvalidBound) {
		t.Errorf("negative cap: err = %v, want ErrInvalidBound", err)
	}
}

func TestExploreByDegreesRelationRestriction(t *testing.T) {
	g := familyTree()

	res, err := engine.ExploreByDegrees(g, engine.DegreesOptions{
		StartNode:     "1",
		Degrees:       2,
		RelationTypes: []string{"kinship"},
	})
	if err != nil {
		t.Fatalf("ExploreByDegrees: %v", err)
	}

	// Node 4 hangs off an association edge, so it and its children 9,
	// 10 are unreachable through kinship alone.
	if res.TotalNodes != 7 {
		t.Errorf("TotalNodes = %d, want 7", res.TotalNodes)
	}

	for _, id := range res.Nodes {
		if id == "4" || id == "9" || id == "10" {
			t.Errorf("association branch leaked node %s", id)
		}
	}
}

func TestExploreByDegreesWeightThreshold(t *testing.T) {
	g := graph.New(graph.Mixed)
	g.AddEdge("a", "b", "association", 0.9, nil)
	g.AddEdge("a", "c", "association", 0.2, nil)

	res, err := engine.ExploreByDegrees(g, engine.DegreesOptions{
		StartNode:       "a",
		Degrees:         1,
		WeightThreshold: 0.5,
	})
	if err != nil {
		t.Fatalf("ExploreByDegrees: %v", err)
	}

	if res.TotalNodes != 2 {
		t.Errorf("TotalNodes = %d, want 2 (weak edge excluded)", res.TotalNodes)
	}
}

func TestPreFilteredEquivalence(t *testing.T) {
	g := familyTree()
	filter := func(e *graph.Edge) bool { return e.Relation == "kinship" }

	for depth := 0; depth <= 3; depth++ {
		filtered, err := engine.ExploreByDepth(g, engine.ExploreOptions{
			StartNode:  "1",
			MaxDepth:   depth,
			EdgeFilter: filter,
		})
		if err != nil {
			t.Fatalf("ExploreByDepth: %v", err)
		}

		fast, err := engine.ExplorePreFiltered(g.FilterEdges(filter), engine.PreFilteredOptions{
			StartNode: "1",
			MaxDepth:  depth,
		})
		if err != nil {
			t.Fatalf("ExplorePreFiltered: %v", err)
		}

		if got, want := sortedCopy(fast.Nodes), sortedCopy(filtered.Nodes); !equalStrings(got, want) {
			t.Errorf("depth %d: node sets differ: fast=%v filtered=%v", depth, got, want)
		}
		if len(fast.Edges) != len(filtered.Edges) {
			t.Errorf("depth %d: edge counts differ: fast=%d filtered=%d", depth, len(fast.Edges), len(filtered.Edges))
		}
	}
}

func TestPreFilteredUnknownStart(t *testing.T) {
	g := familyTree()

	_, err := engine.ExplorePreFiltered(g, engine.PreFilteredOptions{StartNode: "ghost", MaxDepth: 1})
	if !errors.Is(err, engine.ErrUnknownStartNode) {
		t.Errorf("err = %v, want ErrUnknownStartNode", err)
	}
}

func sortedCopy(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	sort.Strings(out)

	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
