package client

import (
	"context"
	"net/url"
	"strconv"
)

// NetworkService handles network exploration operations.
type NetworkService struct {
	c *Client
}

// Explore performs a depth-bounded exploration around one person.
func (s *NetworkService) Explore(ctx context.Context, req ExploreRequest) (*ExploreResult, error) {
	var resp ExploreResult
	if err := s.c.post(ctx, "/api/v1/network/explore", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ExploreProgressive explores under a named strategy. The server
// dispatches on the Strategy field of the same endpoint.
func (s *NetworkService) ExploreProgressive(ctx context.Context, req ExploreRequest) (*ProgressiveResult, error) {
	var resp ProgressiveResult
	if err := s.c.post(ctx, "/api/v1/network/explore", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Discover maps the network connecting several people.
func (s *NetworkService) Discover(ctx context.Context, req DiscoverRequest) (*DiscoveryResult, error) {
	var resp DiscoveryResult
	if err := s.c.post(ctx, "/api/v1/network/discover", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Subgraph extracts a bounded rendering graph.
func (s *NetworkService) Subgraph(ctx context.Context, req SubgraphRequest) (*SubgraphResult, error) {
	var resp SubgraphResult
	if err := s.c.post(ctx, "/api/v1/network/subgraph", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Export downloads a neighborhood in the requested format ("json" or
// "gexf") and returns the raw payload.
func (s *NetworkService) Export(ctx context.Context, center string, radius int, format string) ([]byte, error) {
	params := url.Values{}
	params.Set("center", center)
	if radius > 0 {
		params.Set("radius", strconv.Itoa(radius))
	}
	if format != "" {
		params.Set("format", format)
	}

	return s.c.getRaw(ctx, "/api/v1/network/export", params)
}
