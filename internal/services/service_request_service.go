package services

import (
	"time"

	"github.com/servired/backend/internal/models"
	"github.com/servired/backend/internal/security"
	"github.com/servired/backend/pkg/errors"
)

// ServiceRequestService manages the service lifecycle from request to
// completion. Completed services are what the recommendation engine and
// review ingestion read.
type ServiceRequestService struct {
	users    UserStore
	services ServiceStore
}

func NewServiceRequestService(users UserStore, services ServiceStore) *ServiceRequestService {
	return &ServiceRequestService{users: users, services: services}
}

type CreateServiceInput struct {
	TechnicianID  uint
	Category      string
	Description   string
	Title         string
	ScheduledDate *time.Time
	Address       string
}

// CreateRequest creates a pending service request from a client to a
// technician.
func (s *ServiceRequestService) CreateRequest(clientID uint, input CreateServiceInput) (*models.Service, error) {
	technician, err := s.users.GetUserByID(input.TechnicianID)
	if err != nil {
		return nil, err
	}
	if !technician.IsTechnician() {
		return nil, errors.New(errors.ErrCodeNotFound, "technician not found")
	}

	title := security.SanitizeString(input.Title)
	if title == "" {
		title = models.DefaultServiceTitle
	}

	service := &models.Service{
		ClientID:      clientID,
		TechnicianID:  input.TechnicianID,
		Title:         title,
		Category:      security.SanitizeString(input.Category),
		Description:   security.SanitizeString(security.SanitizeHTML(input.Description)),
		ScheduledDate: input.ScheduledDate,
		Address:       security.SanitizeString(input.Address),
		Status:        models.ServiceStatusPending,
	}

	if err := s.services.CreateService(service); err != nil {
		return nil, err
	}

	return service, nil
}

// GetService returns a single service to one of its parties.
func (s *ServiceRequestService) GetService(serviceID, userID uint) (*models.Service, error) {
	service, err := s.services.GetServiceByID(serviceID)
	if err != nil {
		return nil, err
	}
	if service.ClientID != userID && service.TechnicianID != userID {
		return nil, errors.New(errors.ErrCodeUnauthorized, "user is not a party to this service")
	}
	return service, nil
}

// ListUserServices lists the services a user participates in with the
// given role, newest first.
func (s *ServiceRequestService) ListUserServices(userID uint, role string) ([]models.Service, error) {
	return s.services.GetUserServices(userID, role)
}

// ListPendingRequests lists a technician's pending service requests.
func (s *ServiceRequestService) ListPendingRequests(technicianID uint) ([]models.Service, error) {
	return s.services.GetPendingForTechnician(technicianID)
}

var validServiceStatuses = map[string]bool{
	models.ServiceStatusPending:    true,
	models.ServiceStatusAccepted:   true,
	models.ServiceStatusInProgress: true,
	models.ServiceStatusCompleted:  true,
	models.ServiceStatusCancelled:  true,
}

// UpdateStatus updates a service's status on behalf of one of its
// parties.
func (s *ServiceRequestService) UpdateStatus(serviceID, userID uint, status string, price *float64) (*models.Service, error) {
	if !validServiceStatuses[status] {
		return nil, errors.New(errors.ErrCodeValidation, "invalid service status")
	}
	return s.services.UpdateServiceStatus(serviceID, userID, status, price)
}
