package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/servired/backend/internal/middleware"
	"github.com/servired/backend/internal/services"
)

type ReviewHandler struct {
	reviews *services.ReviewService
}

func NewReviewHandler(reviews *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type createReviewInput struct {
	ServiceID uint    `json:"service_id" binding:"required"`
	Rating    float64 `json:"rating" binding:"required"`
	Comment   string  `json:"comment"`
}

// CreateReview handles POST /reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	var input createReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "service_id and rating are required"})
		return
	}

	review, err := h.reviews.RecordReview(input.ServiceID, userID, input.Rating, input.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":            review.ID,
		"service_id":    review.ServiceID,
		"technician_id": review.TechnicianID,
		"rating":        review.Rating,
		"comment":       review.Comment,
	})
}
