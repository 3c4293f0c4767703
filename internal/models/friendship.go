package models

import (
	"time"
)

// FriendRequest is one directed request from sender to receiver. At most
// one pending row may exist per ordered (sender, receiver) pair; accepted
// and rejected are terminal.
type FriendRequest struct {
	ID         uint      `gorm:"primaryKey"`
	SenderID   uint      `gorm:"not null;index"`
	Sender     User      `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
	ReceiverID uint      `gorm:"not null;index"`
	Receiver   User      `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE"`
	Status     string    `gorm:"type:varchar(20);default:'pending'"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// Friend request status constants
const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusRejected = "rejected"
)

func (FriendRequest) TableName() string {
	return "friend_requests"
}

// Friendship is the symmetric edge materialized when a request is
// accepted. The (UserID, FriendID) pair is unordered: readers must check
// both orderings, and writers must never insert a second row for the
// reverse pair.
type Friendship struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index:idx_friendship,unique"`
	FriendID  uint      `gorm:"not null;index:idx_friendship,unique"`
	Status    string    `gorm:"type:varchar(20);default:'pending'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Friendship edge status constants. Only accepted edges participate in
// graph traversal and recommendations.
const (
	FriendshipStatusPending  = "pending"
	FriendshipStatusAccepted = "accepted"
)

func (Friendship) TableName() string {
	return "friendships"
}
