// Package models defines data types for the biographical database.
package models

// Person is one biographical record: an addressable entity in the
// relationship network.
type Person struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	NameAlt    string         `json:"name_alt,omitempty"`
	Dynasty    string         `json:"dynasty,omitempty"`
	Gender     string         `json:"gender,omitempty"`
	BirthYear  *int           `json:"birth_year,omitempty"`
	DeathYear  *int           `json:"death_year,omitempty"`
	IndexYear  *int           `json:"index_year,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
}

// GraphAttrs flattens a person into the attribute map carried by graph
// nodes. Filters and scorers read these keys; the engine itself treats
// them as opaque.
func (p *Person) GraphAttrs() map[string]any {
	attrs := map[string]any{
		"name": p.Name,
		"type": "person",
	}

	if p.Dynasty != "" {
		attrs["dynasty"] = p.Dynasty
	}

	if p.Gender != "" {
		attrs["gender"] = p.Gender
	}

	if p.BirthYear != nil {
		attrs["birth_year"] = *p.BirthYear
	}

	if p.DeathYear != nil {
		attrs["death_year"] = *p.DeathYear
	}

	if p.IndexYear != nil {
		attrs["index_year"] = *p.IndexYear
	}

	for k, v := range p.Properties {
		attrs[k] = v
	}

	return attrs
}

// SearchQuery is the parsed form of a person search.
type SearchQuery struct {
	Query   string `json:"query"`
	Dynasty string `json:"dynasty,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}

// Validate checks required fields and clamps the limit.
func (q *SearchQuery) Validate() error {
	if q.Query == "" {
		return ErrMissingQuery
	}

	if len(q.Query) > 255 {
		return ErrFieldTooLong("query", 255)
	}

	if q.Limit <= 0 {
		q.Limit = 20
	}

	if q.Limit > 200 {
		q.Limit = 200
	}

	return nil
}
