package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/biographdb/biograph/internal/engine"
	"github.com/biographdb/biograph/internal/export"
	"github.com/biographdb/biograph/internal/metrics"
	"github.com/biographdb/biograph/internal/models"
)

// NetworkHandler serves network exploration endpoints.
type NetworkHandler struct {
	repo NetworkRepository
	log  *logrus.Logger
}

// NewNetworkHandler creates a NetworkHandler with the given repository and logger.
func NewNetworkHandler(repo NetworkRepository, log *logrus.Logger) *NetworkHandler {
	return &NetworkHandler{repo: repo, log: log}
}

// Explore handles POST /api/v1/network/explore.
// A strategy in the payload switches to progressive exploration.
func (h *NetworkHandler) Explore(c *gin.Context) {
	var req models.ExploreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid JSON payload")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	if req.Strategy != "" {
		h.exploreProgressive(c, req)

		return
	}

	result, err := h.repo.Explore(c.Request.Context(), req)
	if err != nil {
		if respondEngineError(c, err) {
			return
		}

		h.log.WithError(err).Error("exploring network")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	metrics.ExplorationsTotal.WithLabelValues("explore").Inc()
	metrics.ExplorationNodes.Observe(float64(result.TotalNodes))

	c.JSON(http.StatusOK, result)
}

func (h *NetworkHandler) exploreProgressive(c *gin.Context, req models.ExploreRequest) {
	result, err := h.repo.ExploreProgressive(c.Request.Context(), req)
	if err != nil {
		if respondEngineError(c, err) {
			return
		}

		h.log.WithError(err).Error("progressive exploration")
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	metrics.ExplorationsTotal.WithLabelValues("progressive").Inc()
	metrics.ExplorationNodes.Observe(float64(len(result.Nodes)))

	c.JSON(http.StatusOK, result)
}

// Discover handles POST /api/v1/network/discover.
func (h *NetworkHandler) Discover(c *gin.Context) {
	var req models.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid JSON payload")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	result, err := h.repo.Discover(c.Request.Context(), req)
	if err != nil {
		if respondEngineError(c, err) {
			return
		}

		h.log.WithError(err).Error("discovering network")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	metrics.ExplorationsTotal.WithLabelValues("discover").Inc()
	metrics.ExplorationNodes.Observe(float64(len(result.Entities)))

	c.JSON(http.StatusOK, result)
}

// Subgraph handles POST /api/v1/network/subgraph.
func (h *NetworkHandler) Subgraph(c *gin.Context) {
	var req models.SubgraphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid JSON payload")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	sub, err := h.repo.Subgraph(c.Request.Context(), req)
	if err != nil {
		if respondEngineError(c, err) {
			return
		}

		h.log.WithError(err).Error("extracting subgraph")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	metrics.ExplorationsTotal.WithLabelValues("subgraph").Inc()
	metrics.ExplorationNodes.Observe(float64(sub.NodeCount()))

	c.JSON(http.StatusOK, gin.H{
		"graph":   export.ToJSONGraph(sub),
		"metrics": sub.Metrics(),
	})
}

// Export handles GET /api/v1/network/export.
// Query parameters select a neighborhood; format picks gexf or json.
func (h *NetworkHandler) Export(c *gin.Context) {
	center := c.Query("center")
	if err := validatePathID(center); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	req := models.SubgraphRequest{
		CenterNode:        center,
		Radius:            parseInt(c.DefaultQuery("radius", "1"), 1),
		MinDegree:         parseInt(c.DefaultQuery("min_degree", "0"), 0),
		PreserveEdgeTypes: c.QueryArray("relation"),
	}

	sub, err := h.repo.Subgraph(c.Request.Context(), req)
	if err != nil {
		if respondEngineError(c, err) {
			return
		}

		h.log.WithError(err).Error("exporting network")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	switch c.DefaultQuery("format", "json") {
	case "gexf":
		c.Header("Content-Type", "application/xml; charset=utf-8")
		c.Header("Content-Disposition", `attachment; filename="network.gexf"`)
		c.Status(http.StatusOK)

		if err := export.WriteGEXF(c.Writer, sub); err != nil {
			h.log.WithError(err).Error("writing gexf export")
		}
	case "json":
		c.JSON(http.StatusOK, export.ToJSONGraph(sub))
	default:
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "format must be json or gexf")
	}
}

// Pathfinders reports the available pathway algorithms, mostly for the CLI.
func (h *NetworkHandler) Pathfinders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"default":   "relation-aware",
		"available": []string{"relation-aware", "bidirectional"},
		"strategies": []engine.Strategy{
			engine.StrategyBreadth,
			engine.StrategyDepth,
			engine.StrategyBestFirst,
			engine.StrategyRandomWalk,
		},
	})
}
