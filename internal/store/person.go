package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/biographdb/biograph/internal/models"
)

const maxListLimit = 200

// PersonStore handles biographical record reads.
type PersonStore struct {
	Base
}

// NewPersonStore creates a PersonStore.
func NewPersonStore(base Base) *PersonStore {
	return &PersonStore{Base: base}
}

// GetPerson retrieves a single person by ID.
func (s *PersonStore) GetPerson(ctx context.Context, id string) (*models.Person, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + personColumns + ` FROM people WHERE id = $1`

	row := s.Pool.QueryRow(ctx, query, id)

	p, err := scanPerson(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrPersonNotFound
		}

		return nil, fmt.Errorf("scanning person: %w", err)
	}

	return p, nil
}

// GetPeople retrieves a batch of people by ID. Missing IDs are silently
// skipped; the result preserves database ordering.
func (s *PersonStore) GetPeople(ctx context.Context, ids []string) ([]models.Person, error) {
	if len(ids) == 0 {
		return []models.Person{}, nil
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + personColumns + ` FROM people WHERE id = ANY($1) ORDER BY id`

	rows, err := s.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("querying people: %w", err)
	}
	defer rows.Close()

	return collectPeople(rows)
}

// SearchPeople finds people whose primary or alternate name matches the
// query, optionally restricted to a dynasty.
func (s *PersonStore) SearchPeople(ctx context.Context, q models.SearchQuery) ([]models.Person, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	where := ` WHERE (name ILIKE '%' || $1 || '%' OR name_alt ILIKE '%' || $1 || '%')`
	args := []any{q.Query}
	argIdx := 2

	if q.Dynasty != "" {
		where += fmt.Sprintf(" AND dynasty = $%d", argIdx)
		args = append(args, q.Dynasty)
		argIdx++
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}

	if limit > maxListLimit {
		limit = maxListLimit
	}

	query := `SELECT ` + personColumns + ` FROM people` + where
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d", argIdx)
	args = append(args, limit)

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying person search: %w", err)
	}
	defer rows.Close()

	return collectPeople(rows)
}

// GetRelationshipsFor returns all relationships touching a person.
func (s *PersonStore) GetRelationshipsFor(ctx context.Context, id string) ([]models.Relationship, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + relationshipColumns + ` FROM relationships
		WHERE source = $1 OR target = $1
		ORDER BY source, target, kind`

	rows, err := s.Pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("querying relationships: %w", err)
	}
	defer rows.Close()

	return collectRelationships(rows)
}
