package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/biographdb/biograph/internal/graph"
	"github.com/biographdb/biograph/internal/metrics"
	"github.com/biographdb/biograph/internal/models"
)

// Network loading limits.
const (
	loadNodeLimit     = 10000 // max people materialized into one network
	loadNeighborLimit = 5000  // max relationship rows per direction per hop
	maxLoadHops       = 6     // caps frontier expansion depth
	personChunkSize   = 1000  // batch size for attribute hydration
)

// NetworkStore materializes a neighborhood of the relationship table
// into an in-memory graph for the exploration engine.
type NetworkStore struct {
	Base
}

// NewNetworkStore creates a NetworkStore.
func NewNetworkStore(base Base) *NetworkStore {
	return &NetworkStore{Base: base}
}

// LoadNetwork expands outward from the seed people up to maxHops and
// returns the induced graph. Seeds missing from the database simply do
// not appear in the result. Relationships are loaded as undirected ties
// since kinship and association are symmetric for browsing purposes.
func (s *NetworkStore) LoadNetwork(ctx context.Context, seeds []string, maxHops int) (*graph.Graph, error) {
	if maxHops <= 0 {
		maxHops = 1
	}

	if maxHops > maxLoadHops {
		maxHops = maxLoadHops
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	start := time.Now()
	defer func() {
		metrics.NetworkLoadDuration.Observe(time.Since(start).Seconds())
	}()

	visited := make(map[string]bool, len(seeds))
	frontier := make([]string, 0, len(seeds))

	for _, id := range seeds {
		if !visited[id] {
			visited[id] = true
			frontier = append(frontier, id)
		}
	}

	neighborSQL := `(SELECT ` + relationshipColumns + ` FROM relationships
		WHERE source = ANY($1) ORDER BY source, target LIMIT ` + fmt.Sprintf("%d", loadNeighborLimit) + `)
		UNION
		(SELECT ` + relationshipColumns + ` FROM relationships
		WHERE target = ANY($1) ORDER BY source, target LIMIT ` + fmt.Sprintf("%d", loadNeighborLimit) + `)`

	rels := make([]models.Relationship, 0, 64)

	for hop := 0; hop < maxHops && len(frontier) > 0; hop++ {
		rows, err := s.Pool.Query(ctx, neighborSQL, frontier)
		if err != nil {
			return nil, fmt.Errorf("querying neighbors at hop %d: %w", hop, err)
		}

		hopRels, err := collectRelationships(rows)
		rows.Close()
		if err != nil {
			return nil, fmt.Errorf("collecting neighbors at hop %d: %w", hop, err)
		}

		var nextFrontier []string

		for _, r := range hopRels {
			rels = append(rels, r)

			for _, id := range []string{r.Source, r.Target} {
				if !visited[id] {
					visited[id] = true
					nextFrontier = append(nextFrontier, id)
				}
			}
		}

		if len(visited) >= loadNodeLimit {
			break
		}

		frontier = nextFrontier
	}

	ids := make([]string, 0, len(visited))
	for id := range visited {
		ids = append(ids, id)
	}

	people, err := s.hydratePeople(ctx, ids)
	if err != nil {
		return nil, err
	}

	g := graph.New(graph.Undirected)

	for i := range people {
		p := &people[i]
		g.AddNode(p.ID, p.GraphAttrs())
	}

	for i := range rels {
		r := &rels[i]
		if !visited[r.Source] || !visited[r.Target] {
			continue
		}

		g.AddEdge(r.Source, r.Target, r.Kind, r.Weight, r.GraphAttrs())
	}

	return g, nil
}

// hydratePeople loads person attributes for the given IDs in parallel
// chunks.
func (s *NetworkStore) hydratePeople(ctx context.Context, ids []string) ([]models.Person, error) {
	if len(ids) == 0 {
		return []models.Person{}, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(4)

	var mu sync.Mutex
	people := make([]models.Person, 0, len(ids))

	query := `SELECT ` + personColumns + ` FROM people WHERE id = ANY($1) ORDER BY id`

	for start := 0; start < len(ids); start += personChunkSize {
		end := start + personChunkSize
		if end > len(ids) {
			end = len(ids)
		}

		chunk := ids[start:end]

		eg.Go(func() error {
			rows, err := s.Pool.Query(ctx, query, chunk)
			if err != nil {
				return fmt.Errorf("querying person chunk: %w", err)
			}
			defer rows.Close()

			batch, err := collectPeople(rows)
			if err != nil {
				return err
			}

			mu.Lock()
			people = append(people, batch...)
			mu.Unlock()

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return people, nil
}
