package repositories

import (
	"time"

	"github.com/servired/backend/internal/models"
	"github.com/servired/backend/pkg/errors"
	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// CreateService creates a new service request
func (r *ServiceRepository) CreateService(service *models.Service) error {
	if err := r.db.Create(service).Error; err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to create service")
	}
	return nil
}

// GetServiceByID retrieves a service by ID
func (r *ServiceRepository) GetServiceByID(id uint) (*models.Service, error) {
	var service models.Service
	result := r.db.First(&service, id)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "service not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get service")
	}

	return &service, nil
}

// GetCompletedByClients retrieves completed services hired by any of the
// given clients, optionally filtered by category.
func (r *ServiceRepository) GetCompletedByClients(clientIDs []uint, category string) ([]models.Service, error) {
	if len(clientIDs) == 0 {
		return nil, nil
	}

	query := r.db.Where("client_id IN ? AND status = ?", clientIDs, models.ServiceStatusCompleted)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var services []models.Service
	if err := query.Find(&services).Error; err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get completed services")
	}

	return services, nil
}

// GetUserServices retrieves services where the user participates with the
// given role, newest first.
func (r *ServiceRepository) GetUserServices(userID uint, role string) ([]models.Service, error) {
	column := "technician_id"
	if role == models.RoleClient {
		column = "client_id"
	}

	var services []models.Service
	err := r.db.Where(column+" = ?", userID).
		Order("created_at DESC").
		Find(&services).Error

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get user services")
	}

	return services, nil
}

// GetPendingForTechnician retrieves pending service requests for a technician
func (r *ServiceRepository) GetPendingForTechnician(technicianID uint) ([]models.Service, error) {
	var services []models.Service
	err := r.db.Where("technician_id = ? AND status = ?", technicianID, models.ServiceStatusPending).
		Order("created_at DESC").
		Find(&services).Error

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get pending requests")
	}

	return services, nil
}

// UpdateServiceStatus updates the status of a service on behalf of one of
// its parties. Accepting records the agreed price; completing stamps the
// completion time.
func (r *ServiceRepository) UpdateServiceStatus(serviceID, userID uint, status string, price *float64) (*models.Service, error) {
	var service models.Service

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&service, serviceID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.New(errors.ErrCodeNotFound, "service not found")
			}
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to get service")
		}

		if service.ClientID != userID && service.TechnicianID != userID {
			return errors.New(errors.ErrCodeUnauthorized, "user is not a party to this service")
		}

		service.Status = status
		if status == models.ServiceStatusAccepted && price != nil {
			service.Price = price
		}
		if status == models.ServiceStatusCompleted {
			now := time.Now().UTC()
			service.CompletedDate = &now
		}

		if err := tx.Save(&service).Error; err != nil {
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to update service")
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &service, nil
}
