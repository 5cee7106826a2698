package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/biographdb/biograph/internal/engine"
	"github.com/biographdb/biograph/internal/graph"
	"github.com/biographdb/biograph/internal/models"
)

func testLog() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newNetworkRouter(repo NetworkRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewNetworkHandler(repo, testLog())
	r.POST("/network/explore", h.Explore)
	r.POST("/network/discover", h.Discover)
	r.POST("/network/subgraph", h.Subgraph)
	r.GET("/network/export", h.Export)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNetworkHandler_Explore(t *testing.T) {
	repo := &mockNetworkRepo{
		explore: func(_ context.Context, req models.ExploreRequest) (*engine.ExploreResult, error) {
			if req.StartNode != "p1" {
				t.Errorf("expected start p1, got %q", req.StartNode)
			}
			return &engine.ExploreResult{
				StartNode:  "p1",
				Nodes:      []string{"p1", "p2"},
				TotalNodes: 2,
			}, nil
		},
	}

	w := doJSON(t, newNetworkRouter(repo), http.MethodPost, "/network/explore",
		`{"start_node":"p1","max_depth":2}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp engine.ExploreResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if resp.TotalNodes != 2 {
		t.Errorf("expected 2 nodes, got %d", resp.TotalNodes)
	}
}

func TestNetworkHandler_ExploreValidation(t *testing.T) {
	repo := &mockNetworkRepo{}
	r := newNetworkRouter(repo)

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{`},
		{name: "missing start", body: `{"max_depth":2}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/network/explore", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestNetworkHandler_ExploreUnknownStart(t *testing.T) {
	repo := &mockNetworkRepo{
		explore: func(_ context.Context, _ models.ExploreRequest) (*engine.ExploreResult, error) {
			return nil, engine.ErrUnknownStartNode
		},
	}

	w := doJSON(t, newNetworkRouter(repo), http.MethodPost, "/network/explore",
		`{"start_node":"ghost"}`)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestNetworkHandler_ExploreStrategyDispatch(t *testing.T) {
	called := false
	repo := &mockNetworkRepo{
		progressive: func(_ context.Context, req models.ExploreRequest) (*engine.ProgressiveResult, error) {
			called = true
			return &engine.ProgressiveResult{
				Strategy: engine.Strategy(req.Strategy),
				Nodes:    []string{"p1"},
			}, nil
		},
	}

	w := doJSON(t, newNetworkRouter(repo), http.MethodPost, "/network/explore",
		`{"start_node":"p1","strategy":"best-first"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if !called {
		t.Error("expected progressive exploration to be invoked")
	}
}

func TestNetworkHandler_Discover(t *testing.T) {
	repo := &mockNetworkRepo{
		discover: func(_ context.Context, req models.DiscoverRequest) (*engine.DiscoveryResult, error) {
			return &engine.DiscoveryResult{
				QueryEntities: req.QueryEntities,
				Entities: map[string]*engine.DiscoveredEntity{
					"p1": {ID: "p1", QueryEntity: true},
					"p2": {ID: "p2", QueryEntity: true},
				},
			}, nil
		},
	}

	w := doJSON(t, newNetworkRouter(repo), http.MethodPost, "/network/discover",
		`{"query_entities":["p1","p2"]}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestNetworkHandler_DiscoverTooFew(t *testing.T) {
	repo := &mockNetworkRepo{
		discover: func(_ context.Context, _ models.DiscoverRequest) (*engine.DiscoveryResult, error) {
			return nil, engine.ErrInsufficientQueryEntities
		},
	}

	w := doJSON(t, newNetworkRouter(repo), http.MethodPost, "/network/discover",
		`{"query_entities":["p1"]}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestNetworkHandler_Subgraph(t *testing.T) {
	g := graph.New(graph.Undirected)
	g.AddEdge("p1", "p2", "kinship", 1, nil)

	repo := &mockNetworkRepo{
		subgraph: func(_ context.Context, _ models.SubgraphRequest) (*graph.Graph, error) {
			return g, nil
		},
	}

	w := doJSON(t, newNetworkRouter(repo), http.MethodPost, "/network/subgraph",
		`{"center_node":"p1","radius":1}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Graph struct {
			Stats struct {
				NodeCount int `json:"node_count"`
			} `json:"stats"`
		} `json:"graph"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if resp.Graph.Stats.NodeCount != 2 {
		t.Errorf("expected 2 nodes, got %d", resp.Graph.Stats.NodeCount)
	}
}

func TestNetworkHandler_ExportGEXF(t *testing.T) {
	g := graph.New(graph.Undirected)
	g.AddEdge("p1", "p2", "kinship", 1, nil)

	repo := &mockNetworkRepo{
		subgraph: func(_ context.Context, req models.SubgraphRequest) (*graph.Graph, error) {
			if req.CenterNode != "p1" {
				t.Errorf("expected center p1, got %q", req.CenterNode)
			}
			return g, nil
		},
	}

	w := doJSON(t, newNetworkRouter(repo), http.MethodGet, "/network/export?center=p1&format=gexf", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if !strings.Contains(w.Body.String(), "gexf") {
		t.Error("expected gexf payload")
	}

	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "xml") {
		t.Errorf("expected xml content type, got %q", ct)
	}
}

func TestNetworkHandler_ExportBadFormat(t *testing.T) {
	repo := &mockNetworkRepo{
		subgraph: func(_ context.Context, _ models.SubgraphRequest) (*graph.Graph, error) {
			return graph.New(graph.Undirected), nil
		},
	}

	w := doJSON(t, newNetworkRouter(repo), http.MethodGet, "/network/export?center=p1&format=csv", "")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
