package services

import (
	"github.com/servired/backend/internal/models"
)

// The services consume the storage layer through narrow interfaces. The
// gorm repositories implement them; tests substitute in-memory fakes.

// UserStore is the identity store. The core reads users and never writes
// them directly; rating updates happen inside ReviewStore.CreateForService.
type UserStore interface {
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUsersByIDs(ids []uint) (map[uint]models.User, error)
}

// FriendStore is the relationship ledger: friend requests plus the
// symmetric friendship edge table.
type FriendStore interface {
	GetPendingRequest(senderID, receiverID uint) (*models.FriendRequest, error)
	CreateRequest(request *models.FriendRequest) error
	AcceptRequest(requestID, receiverID uint) (bool, error)
	RejectRequest(requestID, receiverID uint) (bool, error)
	GetPendingRequestsFor(receiverID uint) ([]models.FriendRequest, error)
	AreFriends(userID, friendID uint) (bool, error)
	GetFriends(userID uint) ([]models.User, error)
	GetFriendIDs(userID uint) ([]uint, error)
	RemoveFriend(userID, friendID uint) (bool, error)
}

// ServiceStore is the service side of the service/review ledger.
type ServiceStore interface {
	CreateService(service *models.Service) error
	GetServiceByID(id uint) (*models.Service, error)
	GetCompletedByClients(clientIDs []uint, category string) ([]models.Service, error)
	GetUserServices(userID uint, role string) ([]models.Service, error)
	GetPendingForTechnician(technicianID uint) ([]models.Service, error)
	UpdateServiceStatus(serviceID, userID uint, status string, price *float64) (*models.Service, error)
}

// ReviewStore is the review side of the service/review ledger.
// CreateForService must apply the review insert and the technician rating
// update atomically.
type ReviewStore interface {
	GetReviewsForService(serviceID uint) ([]models.Review, error)
	CreateForService(review *models.Review) error
}
