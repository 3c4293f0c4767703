package repositories

import (
	"github.com/servired/backend/internal/models"
	"github.com/servired/backend/pkg/errors"
	"gorm.io/gorm"
)

// FriendRepository owns the relationship ledger: friend request rows and
// the symmetric friendship edge table. No other repository writes either.
type FriendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) *FriendRepository {
	return &FriendRepository{db: db}
}

// GetPendingRequest returns the pending request for the ordered
// (sender, receiver) pair, or nil when none exists.
func (r *FriendRepository) GetPendingRequest(senderID, receiverID uint) (*models.FriendRequest, error) {
	var request models.FriendRequest
	result := r.db.Where(
		"sender_id = ? AND receiver_id = ? AND status = ?",
		senderID, receiverID, models.RequestStatusPending,
	).First(&request)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to check pending request")
	}

	return &request, nil
}

// CreateRequest creates a new pending friend request
func (r *FriendRepository) CreateRequest(request *models.FriendRequest) error {
	request.Status = models.RequestStatusPending
	if err := r.db.Create(request).Error; err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to create friend request")
	}
	return nil
}

// AcceptRequest transitions a pending request addressed to receiverID into
// accepted and materializes the friendship edge. The status update is a
// compare-and-set guarded on status = pending, so of two concurrent
// accepts only one observes the pending row; the edge upsert runs in the
// same transaction and checks both orderings before inserting.
func (r *FriendRepository) AcceptRequest(requestID, receiverID uint) (bool, error) {
	accepted := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.FriendRequest{}).
			Where("id = ? AND receiver_id = ? AND status = ?", requestID, receiverID, models.RequestStatusPending).
			Update("status", models.RequestStatusAccepted)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		var request models.FriendRequest
		if err := tx.First(&request, requestID).Error; err != nil {
			return err
		}

		var edge models.Friendship
		err := tx.Where(
			"(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			request.SenderID, request.ReceiverID, request.ReceiverID, request.SenderID,
		).First(&edge).Error

		switch {
		case err == gorm.ErrRecordNotFound:
			edge = models.Friendship{
				UserID:   request.SenderID,
				FriendID: request.ReceiverID,
				Status:   models.FriendshipStatusAccepted,
			}
			if err := tx.Create(&edge).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&edge).Update("status", models.FriendshipStatusAccepted).Error; err != nil {
				return err
			}
		}

		accepted = true
		return nil
	})

	if err != nil {
		return false, errors.Wrap(err, errors.ErrCodeInternalError, "failed to accept friend request")
	}
	return accepted, nil
}

// RejectRequest transitions a pending request addressed to receiverID into
// rejected. No edge side effect.
func (r *FriendRepository) RejectRequest(requestID, receiverID uint) (bool, error) {
	result := r.db.Model(&models.FriendRequest{}).
		Where("id = ? AND receiver_id = ? AND status = ?", requestID, receiverID, models.RequestStatusPending).
		Update("status", models.RequestStatusRejected)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to reject friend request")
	}
	return result.RowsAffected > 0, nil
}

// GetPendingRequestsFor retrieves pending friend requests addressed to a
// user. Sender rows are resolved separately through the identity store.
func (r *FriendRepository) GetPendingRequestsFor(receiverID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest

	err := r.db.Where("receiver_id = ? AND status = ?", receiverID, models.RequestStatusPending).
		Find(&requests).Error

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get pending requests")
	}

	return requests, nil
}

// AreFriends checks if an accepted edge exists in either ordering
func (r *FriendRepository) AreFriends(userID, friendID uint) (bool, error) {
	var count int64
	result := r.db.Model(&models.Friendship{}).
		Where(
			"((user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)) AND status = ?",
			userID, friendID, friendID, userID, models.FriendshipStatusAccepted,
		).Count(&count)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to check friendship")
	}

	return count > 0, nil
}

// GetFriends retrieves the accepted-edge partners of a user
func (r *FriendRepository) GetFriends(userID uint) ([]models.User, error) {
	var friends []models.User

	err := r.db.Table("users").
		Select("users.*").
		Joins("JOIN friendships ON (friendships.user_id = users.id OR friendships.friend_id = users.id)").
		Where("(friendships.user_id = ? OR friendships.friend_id = ?) AND friendships.status = ? AND users.id != ?",
			userID, userID, models.FriendshipStatusAccepted, userID).
		Find(&friends).Error

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get friends")
	}

	return friends, nil
}

// GetFriendIDs retrieves the ids of a user's accepted-edge partners
func (r *FriendRepository) GetFriendIDs(userID uint) ([]uint, error) {
	var edges []models.Friendship

	err := r.db.Where(
		"(user_id = ? OR friend_id = ?) AND status = ?",
		userID, userID, models.FriendshipStatusAccepted,
	).Find(&edges).Error

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get friend ids")
	}

	ids := make([]uint, 0, len(edges))
	seen := make(map[uint]bool, len(edges))
	for _, edge := range edges {
		partnerID := edge.FriendID
		if edge.FriendID == userID {
			partnerID = edge.UserID
		}
		if !seen[partnerID] {
			seen[partnerID] = true
			ids = append(ids, partnerID)
		}
	}

	return ids, nil
}

// RemoveFriend deletes the accepted edge between two users. The edge is a
// single unordered record, so the delete matches both orderings.
func (r *FriendRepository) RemoveFriend(userID, friendID uint) (bool, error) {
	result := r.db.Where(
		"((user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)) AND status = ?",
		userID, friendID, friendID, userID, models.FriendshipStatusAccepted,
	).Delete(&models.Friendship{})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to remove friend")
	}

	return result.RowsAffected > 0, nil
}
