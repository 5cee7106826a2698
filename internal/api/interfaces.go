package api

import (
	"context"

	"github.com/biographdb/biograph/internal/engine"
	"github.com/biographdb/biograph/internal/graph"
	"github.com/biographdb/biograph/internal/models"
)

// NetworkRepository defines network exploration operations used by NetworkHandler.
type NetworkRepository interface {
	Explore(ctx context.Context, req models.ExploreRequest) (*engine.ExploreResult, error)
	ExploreProgressive(ctx context.Context, req models.ExploreRequest) (*engine.ProgressiveResult, error)
	Discover(ctx context.Context, req models.DiscoverRequest) (*engine.DiscoveryResult, error)
	Subgraph(ctx context.Context, req models.SubgraphRequest) (*graph.Graph, error)
}

// PersonRepository defines person lookup operations used by PersonHandler.
type PersonRepository interface {
	Get(ctx context.Context, id string) (*models.Person, error)
	Search(ctx context.Context, q models.SearchQuery) ([]models.Person, error)
	Relationships(ctx context.Context, id string) ([]models.Relationship, error)
}
