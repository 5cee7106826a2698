package store

import (
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/biographdb/biograph/internal/models"
)

// personColumns lists the columns selected for person queries.
const personColumns = `id, name, name_alt, dynasty, gender,
	birth_year, death_year, index_year, properties`

// relationshipColumns lists the columns selected for relationship queries.
const relationshipColumns = `source, target, kind, label, weight, properties`

// scanPerson scans a single row into a models.Person.
func scanPerson(scan func(dest ...any) error) (*models.Person, error) {
	var p models.Person
	var nameAlt, dynasty, gender *string
	var props []byte

	err := scan(
		&p.ID,
		&p.Name,
		&nameAlt,
		&dynasty,
		&gender,
		&p.BirthYear,
		&p.DeathYear,
		&p.IndexYear,
		&props,
	)
	if err != nil {
		return nil, err
	}

	if nameAlt != nil {
		p.NameAlt = *nameAlt
	}

	if dynasty != nil {
		p.Dynasty = *dynasty
	}

	if gender != nil {
		p.Gender = *gender
	}

	if len(props) > 0 {
		if err := json.Unmarshal(props, &p.Properties); err != nil {
			return nil, fmt.Errorf("unmarshalling person properties: %w", err)
		}
	}

	return &p, nil
}

// scanRelationship scans a single row into a models.Relationship.
func scanRelationship(scan func(dest ...any) error) (*models.Relationship, error) {
	var r models.Relationship
	var label *string
	var props []byte

	err := scan(
		&r.Source,
		&r.Target,
		&r.Kind,
		&label,
		&r.Weight,
		&props,
	)
	if err != nil {
		return nil, err
	}

	if label != nil {
		r.Label = *label
	}

	if len(props) > 0 {
		if err := json.Unmarshal(props, &r.Properties); err != nil {
			return nil, fmt.Errorf("unmarshalling relationship properties: %w", err)
		}
	}

	return &r, nil
}

// collectPeople scans all rows into a person slice.
func collectPeople(rows pgx.Rows) ([]models.Person, error) {
	people := make([]models.Person, 0, 16)

	for rows.Next() {
		p, err := scanPerson(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning person row: %w", err)
		}

		people = append(people, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating person rows: %w", err)
	}

	return people, nil
}

// collectRelationships scans all rows into a relationship slice.
func collectRelationships(rows pgx.Rows) ([]models.Relationship, error) {
	rels := make([]models.Relationship, 0, 16)

	for rows.Next() {
		r, err := scanRelationship(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning relationship row: %w", err)
		}

		rels = append(rels, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating relationship rows: %w", err)
	}

	return rels, nil
}
