package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/servired/backend/internal/middleware"
	"github.com/servired/backend/internal/services"
)

type NetworkHandler struct {
	network  *services.NetworkService
	maxDepth int
}

func NewNetworkHandler(network *services.NetworkService, maxDepth int) *NetworkHandler {
	return &NetworkHandler{network: network, maxDepth: maxDepth}
}

// GetNetwork handles GET /network. An optional depth query parameter can
// shrink the view below the configured maximum, never widen it.
func (h *NetworkHandler) GetNetwork(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	depth := h.maxDepth
	if raw := c.Query("depth"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid depth"})
			return
		}
		if parsed < depth {
			depth = parsed
		}
	}

	network, err := h.network.BuildNetwork(userID, depth)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, network)
}
