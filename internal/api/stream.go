package api

import (
	"context"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"

	"github.com/biographdb/biograph/internal/models"
)

const streamWriteTimeout = 10 * time.Second

// streamFrame is one message on the exploration stream: either a depth
// layer with its newly discovered nodes, or the final summary.
type streamFrame struct {
	Type      string   `json:"type"`
	Depth     int      `json:"depth,omitempty"`
	Nodes     []string `json:"nodes,omitempty"`
	Total     int      `json:"total,omitempty"`
	Truncated bool     `json:"truncated,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// Stream handles GET /api/v1/network/stream — a WebSocket that emits the
// exploration frontier one depth layer at a time, so clients can render
// the network growing outward instead of waiting for the full result.
func (h *NetworkHandler) Stream(corsOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := models.ExploreRequest{
			StartNode:     c.Query("start"),
			MaxDepth:      parseInt(c.DefaultQuery("depth", "2"), 2),
			RelationTypes: c.QueryArray("relation"),
			MaxNodes:      parseInt(c.DefaultQuery("max_nodes", "0"), 0),
		}

		if err := req.Validate(); err != nil {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

			return
		}

		conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
			OriginPatterns:       corsOrigins,
			CompressionMode:      websocket.CompressionContextTakeover,
			CompressionThreshold: 128,
		})
		if err != nil {
			h.log.WithError(err).Error("websocket accept failed")

			return
		}

		defer conn.Close(websocket.StatusNormalClosure, "") //nolint:errcheck // best-effort

		ctx := c.Request.Context()

		result, err := h.repo.Explore(ctx, req)
		if err != nil {
			frame := streamFrame{Type: "error", Error: err.Error()}
			h.writeFrame(ctx, conn, frame)

			return
		}

		for depth := 0; depth <= result.MaxDepthReached; depth++ {
			layer := result.NodesByDepth[depth]
			if len(layer) == 0 {
				continue
			}

			frame := streamFrame{Type: "layer", Depth: depth, Nodes: layer}
			if !h.writeFrame(ctx, conn, frame) {
				return
			}
		}

		h.writeFrame(ctx, conn, streamFrame{
			Type:      "done",
			Total:     result.TotalNodes,
			Truncated: result.Truncated,
		})
	}
}

// writeFrame sends one frame with a bounded write deadline. A false
// return means the peer is gone and streaming should stop.
func (h *NetworkHandler) writeFrame(ctx context.Context, conn *websocket.Conn, frame streamFrame) bool {
	writeCtx, cancel := context.WithTimeout(ctx, streamWriteTimeout)
	defer cancel()

	if err := wsjson.Write(writeCtx, conn, frame); err != nil {
		if websocket.CloseStatus(err) != -1 {
			h.log.WithField("status", websocket.CloseStatus(err)).Debug("stream client disconnected")
		} else {
			h.log.WithError(err).Debug("stream write failed")
		}

		return false
	}

	return true
}
