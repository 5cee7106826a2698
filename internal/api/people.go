// Package api provides HTTP handlers for the biograph server.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/biographdb/biograph/internal/models"
)

// PersonHandler serves biographical record endpoints.
type PersonHandler struct {
	repo PersonRepository
	log  *logrus.Logger
}

// NewPersonHandler creates a PersonHandler with the given repository and logger.
func NewPersonHandler(repo PersonRepository, log *logrus.Logger) *PersonHandler {
	return &PersonHandler{repo: repo, log: log}
}

// Get handles GET /api/v1/people/:id.
func (h *PersonHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	person, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrPersonNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "person not found")

			return
		}

		h.log.WithError(err).Error("getting person")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, person)
}

// Search handles GET /api/v1/people/search.
func (h *PersonHandler) Search(c *gin.Context) {
	q := models.SearchQuery{
		Query:   c.Query("q"),
		Dynasty: c.Query("dynasty"),
		Limit:   parseInt(c.DefaultQuery("limit", "20"), 20),
	}

	if err := q.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	people, err := h.repo.Search(c.Request.Context(), q)
	if err != nil {
		h.log.WithError(err).Error("searching people")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"people": people, "count": len(people)})
}

// Relationships handles GET /api/v1/people/:id/relationships.
func (h *PersonHandler) Relationships(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	rels, err := h.repo.Relationships(c.Request.Context(), id)
	if err != nil {
		h.log.WithError(err).Error("listing relationships")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"relationships": rels, "count": len(rels)})
}
