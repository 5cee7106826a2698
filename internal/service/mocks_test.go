package service

import (
	"context"
	"sync"

	"github.com/biographdb/biograph/internal/graph"
	"github.com/biographdb/biograph/internal/models"
)

// mockNetworkLoader records calls and returns a preconfigured graph.
type mockNetworkLoader struct {
	mu    sync.Mutex
	calls []struct {
		Seeds   []string
		MaxHops int
	}

	graph *graph.Graph
	err   error
}

func (m *mockNetworkLoader) LoadNetwork(_ context.Context, seeds []string, maxHops int) (*graph.Graph, error) {
	m.mu.Lock()
	m.calls = append(m.calls, struct {
		Seeds   []string
		MaxHops int
	}{seeds, maxHops})
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	return m.graph, nil
}

// mockPersonStore records calls and returns configured responses.
type mockPersonStore struct {
	mu    sync.Mutex
	calls []string

	getPerson           func(ctx context.Context, id string) (*models.Person, error)
	searchPeople        func(ctx context.Context, q models.SearchQuery) ([]models.Person, error)
	getRelationshipsFor func(ctx context.Context, id string) ([]models.Relationship, error)
}

func (m *mockPersonStore) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockPersonStore) GetPerson(ctx context.Context, id string) (*models.Person, error) {
	m.record("GetPerson")
	return m.getPerson(ctx, id)
}

func (m *mockPersonStore) SearchPeople(ctx context.Context, q models.SearchQuery) ([]models.Person, error) {
	m.record("SearchPeople")
	return m.searchPeople(ctx, q)
}

func (m *mockPersonStore) GetRelationshipsFor(ctx context.Context, id string) ([]models.Relationship, error) {
	m.record("GetRelationshipsFor")
	return m.getRelationshipsFor(ctx, id)
}
