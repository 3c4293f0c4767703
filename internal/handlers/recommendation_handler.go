package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/servired/backend/internal/middleware"
	"github.com/servired/backend/internal/security"
	"github.com/servired/backend/internal/services"
)

type RecommendationHandler struct {
	recommendations *services.RecommendationService
}

func NewRecommendationHandler(recommendations *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendations: recommendations}
}

// GetRecommendations handles GET /recommendations with an optional
// category filter.
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	category := security.SanitizeString(c.Query("category"))

	recommendations, err := h.recommendations.Recommend(userID, category)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}
