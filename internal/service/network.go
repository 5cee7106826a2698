// Package service provides business logic between API handlers and data stores.
package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/biographdb/biograph/internal/engine"
	"github.com/biographdb/biograph/internal/graph"
	"github.com/biographdb/biograph/internal/models"
)

// Default bounds applied when a request leaves them unset.
const (
	defaultExploreDepth   = 2
	defaultDiscoverHops   = 3
	defaultSubgraphRadius = 1

	// defaultMaxExploreDepth is the server-side depth ceiling used when
	// configuration supplies none.
	defaultMaxExploreDepth = 6
)

// NetworkLoader is the data-access interface NetworkService depends on.
type NetworkLoader interface {
	LoadNetwork(ctx context.Context, seeds []string, maxHops int) (*graph.Graph, error)
}

// NetworkService materializes relationship neighborhoods and runs the
// exploration engine over them, with context-aware logging.
type NetworkService struct {
	loader   NetworkLoader
	log      *logrus.Logger
	maxDepth int
}

// NewNetworkService creates a NetworkService. maxDepth is the server-side
// ceiling on exploration depth, discovery hops and subgraph radius;
// non-positive values fall back to the built-in ceiling.
func NewNetworkService(loader NetworkLoader, log *logrus.Logger, maxDepth int) *NetworkService {
	if maxDepth <= 0 {
		maxDepth = defaultMaxExploreDepth
	}

	return &NetworkService{loader: loader, log: log, maxDepth: maxDepth}
}

// clampDepth applies the request default and the server-side ceiling.
// Negative values pass through so the engine can reject them.
func (s *NetworkService) clampDepth(requested, fallback int) int {
	if requested == 0 {
		requested = fallback
	}

	if requested > s.maxDepth {
		return s.maxDepth
	}

	return requested
}

// Explore performs a depth-bounded exploration around a single person.
// Relation type and weight filters narrow which ties are followed.
func (s *NetworkService) Explore(ctx context.Context, req models.ExploreRequest) (*engine.ExploreResult, error) {
	depth := s.clampDepth(req.MaxDepth, defaultExploreDepth)

	s.log.WithFields(logrus.Fields{
		"start_node": req.StartNode,
		"max_depth":  depth,
		"relations":  req.RelationTypes,
	}).Debug("network.explore")

	g, err := s.loader.LoadNetwork(ctx, []string{req.StartNode}, depth)
	if err != nil {
		return nil, err
	}

	if len(req.RelationTypes) > 0 || req.WeightThreshold > 0 {
		return engine.ExploreByDegrees(g, engine.DegreesOptions{
			StartNode:       req.StartNode,
			Degrees:         depth,
			RelationTypes:   req.RelationTypes,
			WeightThreshold: req.WeightThreshold,
			MaxNodes:        req.MaxNodes,
		})
	}

	return engine.ExploreByDepth(g, engine.ExploreOptions{
		StartNode: req.StartNode,
		MaxDepth:  depth,
		MaxNodes:  req.MaxNodes,
	})
}

// ExploreProgressive explores under a named strategy (best-first,
// random-walk, breadth or depth).
func (s *NetworkService) ExploreProgressive(ctx context.Context, req models.ExploreRequest) (*engine.ProgressiveResult, error) {
	depth := s.clampDepth(req.MaxDepth, defaultExploreDepth)

	s.log.WithFields(logrus.Fields{
		"start_node": req.StartNode,
		"strategy":   req.Strategy,
	}).Debug("network.explore_progressive")

	g, err := s.loader.LoadNetwork(ctx, []string{req.StartNode}, depth)
	if err != nil {
		return nil, err
	}

	maxNodes := req.MaxNodes
	if req.StepBudget > 0 {
		maxNodes = req.StepBudget
	}

	return engine.ExploreProgressive(g, engine.ProgressiveOptions{
		StartNode: req.StartNode,
		Strategy:  engine.Strategy(req.Strategy),
		MaxNodes:  maxNodes,
		Scoring:   degreeScoring(g),
	})
}

// Discover maps the network connecting several people: classification of
// reachable entities, direct ties, bridges and ranked pathways.
func (s *NetworkService) Discover(ctx context.Context, req models.DiscoverRequest) (*engine.DiscoveryResult, error) {
	hops := s.clampDepth(req.MaxHopDistance, defaultDiscoverHops)

	s.log.WithFields(logrus.Fields{
		"query_entities": req.QueryEntities,
		"max_hops":       hops,
	}).Debug("network.discover")

	g, err := s.loader.LoadNetwork(ctx, req.QueryEntities, hops)
	if err != nil {
		return nil, err
	}

	return engine.DiscoverNetwork(g, engine.DiscoveryOptions{
		QueryEntities:          req.QueryEntities,
		MaxHopDistance:         hops,
		IncludeRelationTypes:   req.RelationTypes,
		MaxBridgeEntities:      req.MaxBridgeEntities,
		MaxNodes:               req.MaxNodes,
		PreferredPathRelations: req.PreferredPaths,
	})
}

// Subgraph extracts a bounded rendering graph around a node set or a
// center.
func (s *NetworkService) Subgraph(ctx context.Context, req models.SubgraphRequest) (*graph.Graph, error) {
	radius := s.clampDepth(req.Radius, defaultSubgraphRadius)

	seeds := req.Nodes
	if req.CenterNode != "" {
		seeds = append(append([]string{}, seeds...), req.CenterNode)
	}

	s.log.WithFields(logrus.Fields{
		"seeds":  len(seeds),
		"radius": radius,
	}).Debug("network.subgraph")

	g, err := s.loader.LoadNetwork(ctx, seeds, radius)
	if err != nil {
		return nil, err
	}

	return engine.ExtractSubgraph(g, engine.SubgraphOptions{
		Nodes:             req.Nodes,
		CenterNode:        req.CenterNode,
		Radius:            radius,
		MinDegree:         req.MinDegree,
		PreserveEdgeTypes: req.PreserveEdgeTypes,
	})
}

// degreeScoring ranks candidates by connectivity, the default signal for
// best-first browsing.
func degreeScoring(g *graph.Graph) engine.ScoreFunc {
	return func(id string, attrs map[string]any) float64 {
		return float64(g.Degree(id))
	}
}
