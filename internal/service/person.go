package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/biographdb/biograph/internal/models"
)

// PersonStore is the data-access interface PersonService depends on.
type PersonStore interface {
	GetPerson(ctx context.Context, id string) (*models.Person, error)
	SearchPeople(ctx context.Context, q models.SearchQuery) ([]models.Person, error)
	GetRelationshipsFor(ctx context.Context, id string) ([]models.Relationship, error)
}

// PersonService wraps PersonStore with context-aware logging.
type PersonService struct {
	store PersonStore
	log   *logrus.Logger
}

// NewPersonService creates a PersonService.
func NewPersonService(store PersonStore, log *logrus.Logger) *PersonService {
	return &PersonService{store: store, log: log}
}

// Get retrieves one person by ID.
func (s *PersonService) Get(ctx context.Context, id string) (*models.Person, error) {
	s.log.WithField("person_id", id).Debug("person.get")

	return s.store.GetPerson(ctx, id)
}

// Search finds people by name, optionally within a dynasty.
func (s *PersonService) Search(ctx context.Context, q models.SearchQuery) ([]models.Person, error) {
	s.log.WithFields(logrus.Fields{
		"query":   q.Query,
		"dynasty": q.Dynasty,
		"limit":   q.Limit,
	}).Debug("person.search")

	return s.store.SearchPeople(ctx, q)
}

// Relationships lists every tie touching a person.
func (s *PersonService) Relationships(ctx context.Context, id string) ([]models.Relationship, error) {
	s.log.WithField("person_id", id).Debug("person.relationships")

	return s.store.GetRelationshipsFor(ctx, id)
}
