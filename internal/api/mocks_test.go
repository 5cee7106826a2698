package api

import (
	"context"

	"github.com/biographdb/biograph/internal/engine"
	"github.com/biographdb/biograph/internal/graph"
	"github.com/biographdb/biograph/internal/models"
)

// mockNetworkRepo returns configured responses for NetworkHandler tests.
type mockNetworkRepo struct {
	explore     func(ctx context.Context, req models.ExploreRequest) (*engine.ExploreResult, error)
	progressive func(ctx context.Context, req models.ExploreRequest) (*engine.ProgressiveResult, error)
	discover    func(ctx context.Context, req models.DiscoverRequest) (*engine.DiscoveryResult, error)
	subgraph    func(ctx context.Context, req models.SubgraphRequest) (*graph.Graph, error)
}

func (m *mockNetworkRepo) Explore(ctx context.Context, req models.ExploreRequest) (*engine.ExploreResult, error) {
	return m.explore(ctx, req)
}

func (m *mockNetworkRepo) ExploreProgressive(ctx context.Context, req models.ExploreRequest) (*engine.ProgressiveResult, error) {
	return m.progressive(ctx, req)
}

func (m *mockNetworkRepo) Discover(ctx context.Context, req models.DiscoverRequest) (*engine.DiscoveryResult, error) {
	return m.discover(ctx, req)
}

func (m *mockNetworkRepo) Subgraph(ctx context.Context, req models.SubgraphRequest) (*graph.Graph, error) {
	return m.subgraph(ctx, req)
}

// mockPersonRepo returns configured responses for PersonHandler tests.
type mockPersonRepo struct {
	get           func(ctx context.Context, id string) (*models.Person, error)
	search        func(ctx context.Context, q models.SearchQuery) ([]models.Person, error)
	relationships func(ctx context.Context, id string) ([]models.Relationship, error)
}

func (m *mockPersonRepo) Get(ctx context.Context, id string) (*models.Person, error) {
	return m.get(ctx, id)
}

func (m *mockPersonRepo) Search(ctx context.Context, q models.SearchQuery) ([]models.Person, error) {
	return m.search(ctx, q)
}

func (m *mockPersonRepo) Relationships(ctx context.Context, id string) ([]models.Relationship, error) {
	return m.relationships(ctx, id)
}
