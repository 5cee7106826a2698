package client

import (
	"context"
	"net/url"
	"strconv"
)

// PeopleService handles biographical record lookups.
type PeopleService struct {
	c *Client
}

// Get retrieves one person by ID.
func (s *PeopleService) Get(ctx context.Context, id string) (*Person, error) {
	var resp Person
	if err := s.c.get(ctx, "/api/v1/people/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Search finds people by name, optionally within a dynasty.
func (s *PeopleService) Search(ctx context.Context, query, dynasty string, limit int) (*SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	if dynasty != "" {
		params.Set("dynasty", dynasty)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var resp SearchResult
	if err := s.c.get(ctx, "/api/v1/people/search", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Relationships lists every tie touching a person.
func (s *PeopleService) Relationships(ctx context.Context, id string) (*RelationshipList, error) {
	var resp RelationshipList
	if err := s.c.get(ctx, "/api/v1/people/"+url.PathEscape(id)+"/relationships", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
