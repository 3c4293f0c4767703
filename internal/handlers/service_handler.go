package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/servired/backend/internal/middleware"
	"github.com/servired/backend/internal/models"
	"github.com/servired/backend/internal/services"
)

type ServiceHandler struct {
	requests *services.ServiceRequestService
}

func NewServiceHandler(requests *services.ServiceRequestService) *ServiceHandler {
	return &ServiceHandler{requests: requests}
}

type createServiceInput struct {
	TechnicianID  uint       `json:"technician_id" binding:"required"`
	Category      string     `json:"category" binding:"required"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	Address       string     `json:"address"`
}

// CreateService handles POST /services
func (h *ServiceHandler) CreateService(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	var input createServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "technician_id and category are required"})
		return
	}

	service, err := h.requests.CreateRequest(userID, services.CreateServiceInput{
		TechnicianID:  input.TechnicianID,
		Category:      input.Category,
		Title:         input.Title,
		Description:   input.Description,
		ScheduledDate: input.ScheduledDate,
		Address:       input.Address,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetService handles GET /services/:id for a party to the service.
func (h *ServiceHandler) GetService(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	serviceID, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	service, err := h.requests.GetService(serviceID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

// ListServices handles GET /services. The role query parameter selects
// which side of the service the caller is on; default is client.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	role := c.DefaultQuery("role", models.RoleClient)
	if role != models.RoleClient && role != models.RoleTechnician {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}

	list, err := h.requests.ListUserServices(userID, role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": list})
}

// ListPendingRequests handles GET /services/requests for technicians.
func (h *ServiceHandler) ListPendingRequests(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	list, err := h.requests.ListPendingRequests(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": list})
}

type updateStatusInput struct {
	Status string   `json:"status" binding:"required"`
	Price  *float64 `json:"price"`
}

// UpdateStatus handles PUT /services/:id/status
func (h *ServiceHandler) UpdateStatus(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	serviceID, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	var input updateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	service, err := h.requests.UpdateStatus(serviceID, userID, input.Status, input.Price)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}
