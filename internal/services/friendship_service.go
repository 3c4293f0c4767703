package services

import (
	"github.com/servired/backend/internal/models"
	"github.com/servired/backend/pkg/errors"
)

// FriendshipService drives the request -> accept/reject -> edge state
// machine over the relationship ledger.
type FriendshipService struct {
	users   UserStore
	friends FriendStore
}

func NewFriendshipService(users UserStore, friends FriendStore) *FriendshipService {
	return &FriendshipService{users: users, friends: friends}
}

// SendRequest resolves the receiver by email and creates a pending
// request. Sending again while a pending request exists returns the
// existing request unchanged.
func (s *FriendshipService) SendRequest(senderID uint, receiverEmail string) (*models.FriendRequest, error) {
	receiver, err := s.users.GetUserByEmail(receiverEmail)
	if err != nil {
		return nil, err
	}

	if receiver.ID == senderID {
		return nil, errors.New(errors.ErrCodeValidation, "cannot send a friend request to yourself")
	}

	areFriends, err := s.friends.AreFriends(senderID, receiver.ID)
	if err != nil {
		return nil, err
	}
	if areFriends {
		return nil, errors.New(errors.ErrCodeAlreadyExists, "users are already connected")
	}

	existing, err := s.friends.GetPendingRequest(senderID, receiver.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	request := &models.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiver.ID,
	}
	if err := s.friends.CreateRequest(request); err != nil {
		return nil, err
	}

	return request, nil
}

// AcceptRequest accepts a pending request addressed to receiverID and
// materializes the friendship edge. Returns false on any mismatch
// (unknown id, wrong receiver, non-pending status) without distinguishing
// the cases, so callers cannot probe other users' requests.
func (s *FriendshipService) AcceptRequest(requestID, receiverID uint) (bool, error) {
	return s.friends.AcceptRequest(requestID, receiverID)
}

// RejectRequest rejects a pending request addressed to receiverID. Same
// matching rule as AcceptRequest; no edge side effect.
func (s *FriendshipService) RejectRequest(requestID, receiverID uint) (bool, error) {
	return s.friends.RejectRequest(requestID, receiverID)
}

// ListPendingRequests returns the pending requests addressed to a user
// together with a summary of each sender. Senders are resolved in one
// batched lookup; a request whose sender row is gone keeps an empty
// summary rather than dropping the request.
func (s *FriendshipService) ListPendingRequests(receiverID uint) ([]PendingRequest, error) {
	requests, err := s.friends.GetPendingRequestsFor(receiverID)
	if err != nil {
		return nil, err
	}

	senderIDs := make([]uint, 0, len(requests))
	for _, req := range requests {
		senderIDs = append(senderIDs, req.SenderID)
	}
	senders, err := s.users.GetUsersByIDs(senderIDs)
	if err != nil {
		return nil, err
	}

	pending := make([]PendingRequest, 0, len(requests))
	for _, req := range requests {
		var summary UserSummary
		if sender, ok := senders[req.SenderID]; ok {
			summary = NewUserSummary(&sender)
		}
		pending = append(pending, PendingRequest{
			ID:        req.ID,
			SenderID:  req.SenderID,
			Status:    req.Status,
			CreatedAt: req.CreatedAt,
			Sender:    summary,
		})
	}

	return pending, nil
}

// AreFriends reports whether an accepted edge exists in either ordering.
func (s *FriendshipService) AreFriends(userID, friendID uint) (bool, error) {
	return s.friends.AreFriends(userID, friendID)
}

// ListFriends returns summaries of the user's accepted-edge partners.
func (s *FriendshipService) ListFriends(userID uint) ([]UserSummary, error) {
	friends, err := s.friends.GetFriends(userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]UserSummary, 0, len(friends))
	seen := make(map[uint]bool, len(friends))
	for i := range friends {
		if seen[friends[i].ID] {
			continue
		}
		seen[friends[i].ID] = true
		summaries = append(summaries, NewUserSummary(&friends[i]))
	}

	return summaries, nil
}

// RemoveFriend removes the accepted edge between two users.
func (s *FriendshipService) RemoveFriend(userID, friendID uint) error {
	removed, err := s.friends.RemoveFriend(userID, friendID)
	if err != nil {
		return err
	}
	if !removed {
		return errors.New(errors.ErrCodeNotConnected, "users are not connected")
	}
	return nil
}
