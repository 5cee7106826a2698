package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation.
var (
	ErrMissingStartNode     = errors.New("start_node is required")
	ErrMissingQuery         = errors.New("query is required")
	ErrMissingQueryEntities = errors.New("query_entities is required")
	ErrMissingNodeSelection = errors.New("either nodes or center_node is required")
)

// Sentinel errors for entity lookups.
var ErrPersonNotFound = errors.New("person not found")

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%s exceeds maximum length of %d", field, maxLen)
}
