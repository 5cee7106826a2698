package models_test

import (
	"strings"
	"testing"

	"github.com/biographdb/biograph/internal/models"
)

func ptr[T any](v T) *T { return &v }

func assertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func assertErrorContains(t *testing.T, err error, want string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error containing %q, got nil", want)
	}

	if !strings.Contains(err.Error(), want) {
		t.Errorf("expected error containing %q, got %q", want, err.Error())
	}
}

func TestExploreRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     models.ExploreRequest
		wantErr string
	}{
		{name: "valid", req: models.ExploreRequest{StartNode: "p1", MaxDepth: 2}},
		{name: "valid with filters", req: models.ExploreRequest{StartNode: "p1", MaxDepth: 3, RelationTypes: []string{"kinship"}, WeightThreshold: 0.5}},
		{name: "missing start node", req: models.ExploreRequest{MaxDepth: 2}, wantErr: "start_node is required"},
		{name: "start node too long", req: models.ExploreRequest{StartNode: strings.Repeat("x", 256)}, wantErr: "exceeds maximum length"},
		{name: "relation type too long", req: models.ExploreRequest{StartNode: "p1", RelationTypes: []string{strings.Repeat("x", 101)}}, wantErr: "exceeds maximum length"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr != "" {
				assertErrorContains(t, err, tc.wantErr)
				return
			}
			assertNoError(t, err)
		})
	}
}

func TestDiscoverRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     models.DiscoverRequest
		wantErr string
	}{
		{name: "valid", req: models.DiscoverRequest{QueryEntities: []string{"p1", "p2"}}},
		{name: "single entity passes payload check", req: models.DiscoverRequest{QueryEntities: []string{"p1"}}},
		{name: "empty entities", req: models.DiscoverRequest{}, wantErr: "query_entities is required"},
		{name: "entity too long", req: models.DiscoverRequest{QueryEntities: []string{strings.Repeat("x", 256)}}, wantErr: "exceeds maximum length"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr != "" {
				assertErrorContains(t, err, tc.wantErr)
				return
			}
			assertNoError(t, err)
		})
	}
}

func TestSubgraphRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     models.SubgraphRequest
		wantErr string
	}{
		{name: "explicit nodes", req: models.SubgraphRequest{Nodes: []string{"p1", "p2"}}},
		{name: "center node", req: models.SubgraphRequest{CenterNode: "p1", Radius: 2}},
		{name: "no selection", req: models.SubgraphRequest{MinDegree: 2}, wantErr: "either nodes or center_node is required"},
		{name: "center too long", req: models.SubgraphRequest{CenterNode: strings.Repeat("x", 256)}, wantErr: "exceeds maximum length"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr != "" {
				assertErrorContains(t, err, tc.wantErr)
				return
			}
			assertNoError(t, err)
		})
	}
}

func TestSearchQuery_Validate(t *testing.T) {
	q := models.SearchQuery{Query: "wang"}
	assertNoError(t, q.Validate())
	if q.Limit != 20 {
		t.Errorf("expected default limit 20, got %d", q.Limit)
	}

	q = models.SearchQuery{Query: "wang", Limit: 1000}
	assertNoError(t, q.Validate())
	if q.Limit != 200 {
		t.Errorf("expected clamped limit 200, got %d", q.Limit)
	}

	assertErrorContains(t, (&models.SearchQuery{}).Validate(), "query is required")
}

func TestPersonGraphAttrs(t *testing.T) {
	p := models.Person{
		ID:        "p1",
		Name:      "Wang Anshi",
		Dynasty:   "Song",
		BirthYear: ptr(1021),
		Properties: map[string]any{
			"hometown": "Linchuan",
		},
	}

	attrs := p.GraphAttrs()

	if attrs["name"] != "Wang Anshi" {
		t.Errorf("expected name attr, got %v", attrs["name"])
	}
	if attrs["dynasty"] != "Song" {
		t.Errorf("expected dynasty attr, got %v", attrs["dynasty"])
	}
	if attrs["birth_year"] != 1021 {
		t.Errorf("expected birth_year attr, got %v", attrs["birth_year"])
	}
	if attrs["hometown"] != "Linchuan" {
		t.Errorf("expected property passthrough, got %v", attrs["hometown"])
	}
	if _, ok := attrs["death_year"]; ok {
		t.Error("expected absent death_year to be omitted")
	}
}
