package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/servired/backend/internal/middleware"
	"github.com/servired/backend/internal/security"
	"github.com/servired/backend/internal/services"
	"github.com/servired/backend/pkg/errors"
)

type FriendHandler struct {
	friendships *services.FriendshipService
}

func NewFriendHandler(friendships *services.FriendshipService) *FriendHandler {
	return &FriendHandler{friendships: friendships}
}

type sendRequestInput struct {
	Email string `json:"email" binding:"required"`
}

// SendRequest handles POST /friends/request
func (h *FriendHandler) SendRequest(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	var input sendRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}
	if !security.ValidateEmail(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email"})
		return
	}

	request, err := h.friendships.SendRequest(userID, security.SanitizeString(input.Email))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          request.ID,
		"receiver_id": request.ReceiverID,
		"status":      request.Status,
	})
}

// AcceptRequest handles POST /friends/requests/:id/accept
func (h *FriendHandler) AcceptRequest(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	accepted, err := h.friendships.AcceptRequest(requestID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !accepted {
		respondError(c, errors.New(errors.ErrCodeNotFound, "pending request not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "request accepted"})
}

// RejectRequest handles POST /friends/requests/:id/reject
func (h *FriendHandler) RejectRequest(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	rejected, err := h.friendships.RejectRequest(requestID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !rejected {
		respondError(c, errors.New(errors.ErrCodeNotFound, "pending request not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "request rejected"})
}

// ListPendingRequests handles GET /friends/requests
func (h *FriendHandler) ListPendingRequests(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	pending, err := h.friendships.ListPendingRequests(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": pending})
}

// ListFriends handles GET /friends
func (h *FriendHandler) ListFriends(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	friends, err := h.friendships.ListFriends(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"friends": friends})
}

// RemoveFriend handles DELETE /friends/:id
func (h *FriendHandler) RemoveFriend(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	friendID, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	if err := h.friendships.RemoveFriend(userID, friendID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "friend removed"})
}

// parseIDParam parses a numeric path parameter, writing the 400 response
// itself on failure.
func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, err
	}
	return uint(id), nil
}
