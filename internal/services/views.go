package services

import (
	"time"

	"github.com/servired/backend/internal/models"
)

// Derived response shapes. These are computed fresh per call and never
// persisted; they hold copies of ids and profile fields, not references
// into the ledger.

type UserSummary struct {
	ID           uint    `json:"id"`
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	FullName     string  `json:"full_name"`
	Role         string  `json:"role"`
	Rating       float64 `json:"rating"`
	TotalReviews int     `json:"total_reviews"`
}

func NewUserSummary(u *models.User) UserSummary {
	return UserSummary{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FullName:     u.FullName,
		Role:         u.Role,
		Rating:       u.Rating,
		TotalReviews: u.TotalReviews,
	}
}

type PendingRequest struct {
	ID        uint        `json:"id"`
	SenderID  uint        `json:"sender_id"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	Sender    UserSummary `json:"sender"`
}

// NetworkNode is one user in the trust network view. Distance is the BFS
// depth from the center user: 0 = self, 1 = direct friend, 2 =
// friend-of-friend or recommended technician.
type NetworkNode struct {
	ID           uint    `json:"id"`
	Username     string  `json:"username"`
	FullName     string  `json:"full_name"`
	Role         string  `json:"role"`
	IsFriend     bool    `json:"is_friend"`
	IsTechnician bool    `json:"is_technician"`
	Rating       float64 `json:"rating"`
	TotalReviews int     `json:"total_reviews"`
	Distance     int     `json:"distance"`
}

type NetworkConnection struct {
	Source uint   `json:"source"`
	Target uint   `json:"target"`
	Kind   string `json:"type"`
}

// Connection kinds. A friendship connection is a confirmed edge; a
// recommendation connection encodes "a friend vouches for this
// technician", not "is friends with".
const (
	ConnectionFriendship     = "friendship"
	ConnectionRecommendation = "recommendation"
)

type TrustNetwork struct {
	Nodes        []NetworkNode       `json:"nodes"`
	Connections  []NetworkConnection `json:"connections"`
	CenterUserID uint                `json:"center_user_id"`
}

type Recommendation struct {
	Technician    UserSummary `json:"technician"`
	Score         float64     `json:"score"`
	Reason        string      `json:"reason"`
	CommonFriends int         `json:"common_friends"`
}
