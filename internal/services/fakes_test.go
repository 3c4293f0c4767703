package services

import (
	"github.com/servired/backend/internal/models"
	"github.com/servired/backend/pkg/errors"
)

// fakeStore backs the service tests with an in-memory copy of the
// ledger. It mirrors the repository semantics: compare-and-set accept,
// both-orderings edge matching and the atomic review-plus-rating update.
type fakeStore struct {
	users    map[uint]*models.User
	requests map[uint]*models.FriendRequest
	edges    []models.Friendship
	services map[uint]*models.Service
	reviews  map[uint][]models.Review

	nextRequestID uint
	nextServiceID uint
	nextReviewID  uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[uint]*models.User),
		requests: make(map[uint]*models.FriendRequest),
		services: make(map[uint]*models.Service),
		reviews:  make(map[uint][]models.Review),
	}
}

func (f *fakeStore) addUser(id uint, username, role string) *models.User {
	u := &models.User{
		ID:       id,
		Email:    username + "@example.com",
		Username: username,
		FullName: username,
		Role:     role,
	}
	f.users[id] = u
	return u
}

func (f *fakeStore) addEdge(userID, friendID uint) {
	f.edges = append(f.edges, models.Friendship{
		UserID:   userID,
		FriendID: friendID,
		Status:   models.FriendshipStatusAccepted,
	})
}

func (f *fakeStore) addCompletedService(clientID, technicianID uint, category string) *models.Service {
	f.nextServiceID++
	svc := &models.Service{
		ID:           f.nextServiceID,
		ClientID:     clientID,
		TechnicianID: technicianID,
		Category:     category,
		Status:       models.ServiceStatusCompleted,
	}
	f.services[svc.ID] = svc
	return svc
}

func (f *fakeStore) addReview(serviceID, clientID, technicianID uint, rating float64) {
	f.nextReviewID++
	f.reviews[serviceID] = append(f.reviews[serviceID], models.Review{
		ID:           f.nextReviewID,
		ServiceID:    serviceID,
		ClientID:     clientID,
		TechnicianID: technicianID,
		Rating:       rating,
	})
}

// UserStore

func (f *fakeStore) GetUserByID(id uint) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, errors.New(errors.ErrCodeNotFound, "user not found")
}

func (f *fakeStore) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.New(errors.ErrCodeNotFound, "user not found")
}

func (f *fakeStore) GetUsersByIDs(ids []uint) (map[uint]models.User, error) {
	result := make(map[uint]models.User, len(ids))
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			result[id] = *u
		}
	}
	return result, nil
}

// FriendStore

func (f *fakeStore) GetPendingRequest(senderID, receiverID uint) (*models.FriendRequest, error) {
	for _, req := range f.requests {
		if req.SenderID == senderID && req.ReceiverID == receiverID && req.Status == models.RequestStatusPending {
			return req, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateRequest(request *models.FriendRequest) error {
	f.nextRequestID++
	request.ID = f.nextRequestID
	request.Status = models.RequestStatusPending
	f.requests[request.ID] = request
	return nil
}

func (f *fakeStore) AcceptRequest(requestID, receiverID uint) (bool, error) {
	req, ok := f.requests[requestID]
	if !ok || req.ReceiverID != receiverID || req.Status != models.RequestStatusPending {
		return false, nil
	}
	req.Status = models.RequestStatusAccepted

	for i := range f.edges {
		e := &f.edges[i]
		if (e.UserID == req.SenderID && e.FriendID == req.ReceiverID) ||
			(e.UserID == req.ReceiverID && e.FriendID == req.SenderID) {
			e.Status = models.FriendshipStatusAccepted
			return true, nil
		}
	}
	f.addEdge(req.SenderID, req.ReceiverID)
	return true, nil
}

func (f *fakeStore) RejectRequest(requestID, receiverID uint) (bool, error) {
	req, ok := f.requests[requestID]
	if !ok || req.ReceiverID != receiverID || req.Status != models.RequestStatusPending {
		return false, nil
	}
	req.Status = models.RequestStatusRejected
	return true, nil
}

func (f *fakeStore) GetPendingRequestsFor(receiverID uint) ([]models.FriendRequest, error) {
	var pending []models.FriendRequest
	for _, req := range f.requests {
		if req.ReceiverID == receiverID && req.Status == models.RequestStatusPending {
			pending = append(pending, *req)
		}
	}
	return pending, nil
}

func (f *fakeStore) AreFriends(userID, friendID uint) (bool, error) {
	for _, e := range f.edges {
		if e.Status != models.FriendshipStatusAccepted {
			continue
		}
		if (e.UserID == userID && e.FriendID == friendID) ||
			(e.UserID == friendID && e.FriendID == userID) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) GetFriends(userID uint) ([]models.User, error) {
	ids, _ := f.GetFriendIDs(userID)
	var friends []models.User
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			friends = append(friends, *u)
		}
	}
	return friends, nil
}

func (f *fakeStore) GetFriendIDs(userID uint) ([]uint, error) {
	var ids []uint
	seen := make(map[uint]bool)
	for _, e := range f.edges {
		if e.Status != models.FriendshipStatusAccepted {
			continue
		}
		var partner uint
		switch userID {
		case e.UserID:
			partner = e.FriendID
		case e.FriendID:
			partner = e.UserID
		default:
			continue
		}
		if !seen[partner] {
			seen[partner] = true
			ids = append(ids, partner)
		}
	}
	return ids, nil
}

func (f *fakeStore) RemoveFriend(userID, friendID uint) (bool, error) {
	for i, e := range f.edges {
		if e.Status != models.FriendshipStatusAccepted {
			continue
		}
		if (e.UserID == userID && e.FriendID == friendID) ||
			(e.UserID == friendID && e.FriendID == userID) {
			f.edges = append(f.edges[:i], f.edges[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ServiceStore

func (f *fakeStore) CreateService(service *models.Service) error {
	f.nextServiceID++
	service.ID = f.nextServiceID
	f.services[service.ID] = service
	return nil
}

func (f *fakeStore) GetServiceByID(id uint) (*models.Service, error) {
	if svc, ok := f.services[id]; ok {
		return svc, nil
	}
	return nil, errors.New(errors.ErrCodeNotFound, "service not found")
}

func (f *fakeStore) GetCompletedByClients(clientIDs []uint, category string) ([]models.Service, error) {
	if len(clientIDs) == 0 {
		return nil, nil
	}
	clients := make(map[uint]bool, len(clientIDs))
	for _, id := range clientIDs {
		clients[id] = true
	}
	var completed []models.Service
	for id := uint(1); id <= f.nextServiceID; id++ {
		svc, ok := f.services[id]
		if !ok || svc.Status != models.ServiceStatusCompleted || !clients[svc.ClientID] {
			continue
		}
		if category != "" && svc.Category != category {
			continue
		}
		completed = append(completed, *svc)
	}
	return completed, nil
}

func (f *fakeStore) GetUserServices(userID uint, role string) ([]models.Service, error) {
	var list []models.Service
	for id := uint(1); id <= f.nextServiceID; id++ {
		svc, ok := f.services[id]
		if !ok {
			continue
		}
		if (role == models.RoleClient && svc.ClientID == userID) ||
			(role == models.RoleTechnician && svc.TechnicianID == userID) {
			list = append(list, *svc)
		}
	}
	return list, nil
}

func (f *fakeStore) GetPendingForTechnician(technicianID uint) ([]models.Service, error) {
	var list []models.Service
	for id := uint(1); id <= f.nextServiceID; id++ {
		svc, ok := f.services[id]
		if !ok {
			continue
		}
		if svc.TechnicianID == technicianID && svc.Status == models.ServiceStatusPending {
			list = append(list, *svc)
		}
	}
	return list, nil
}

func (f *fakeStore) UpdateServiceStatus(serviceID, userID uint, status string, price *float64) (*models.Service, error) {
	svc, ok := f.services[serviceID]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "service not found")
	}
	if svc.ClientID != userID && svc.TechnicianID != userID {
		return nil, errors.New(errors.ErrCodeUnauthorized, "not a party to this service")
	}
	svc.Status = status
	if status == models.ServiceStatusAccepted && price != nil {
		svc.Price = price
	}
	return svc, nil
}

// ReviewStore

func (f *fakeStore) GetReviewsForService(serviceID uint) ([]models.Review, error) {
	return f.reviews[serviceID], nil
}

func (f *fakeStore) CreateForService(review *models.Review) error {
	svc, ok := f.services[review.ServiceID]
	if !ok || svc.ClientID != review.ClientID || svc.Status != models.ServiceStatusCompleted {
		return errors.New(errors.ErrCodeValidation, "service missing, not owned by client, or not completed")
	}
	if len(f.reviews[review.ServiceID]) > 0 {
		return errors.New(errors.ErrCodeAlreadyExists, "service already reviewed")
	}

	review.TechnicianID = svc.TechnicianID
	f.nextReviewID++
	review.ID = f.nextReviewID
	f.reviews[review.ServiceID] = append(f.reviews[review.ServiceID], *review)

	technician, ok := f.users[svc.TechnicianID]
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "technician not found")
	}
	technician.Rating = models.NextRating(technician.Rating, technician.TotalReviews, review.Rating)
	technician.TotalReviews++
	return nil
}
