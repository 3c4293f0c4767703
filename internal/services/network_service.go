package services

import (
	"github.com/servired/backend/pkg/logger"
)

// NetworkService builds the bounded-depth trust network view around a
// user. The view is regenerated on every call and never cached.
type NetworkService struct {
	users    UserStore
	friends  FriendStore
	services ServiceStore
	reviews  ReviewStore

	minRating float64
}

func NewNetworkService(users UserStore, friends FriendStore, services ServiceStore, reviews ReviewStore, minRating float64) *NetworkService {
	return &NetworkService{
		users:     users,
		friends:   friends,
		services:  services,
		reviews:   reviews,
		minRating: minRating,
	}
}

type queueEntry struct {
	userID uint
	depth  int
}

// BuildNetwork runs a breadth-first traversal over accepted friendship
// edges starting at centerUserID. Neighbors are enqueued without checking
// the visited set; dedup happens at dequeue time, so each node is emitted
// exactly once and, because BFS explores in non-decreasing depth order,
// its recorded distance is the shortest one. Friends at depth 1
// additionally introduce the technicians they have positively reviewed as
// depth-2 nodes joined by recommendation connections.
func (s *NetworkService) BuildNetwork(centerUserID uint, maxDepth int) (*TrustNetwork, error) {
	network := &TrustNetwork{
		Nodes:        []NetworkNode{},
		Connections:  []NetworkConnection{},
		CenterUserID: centerUserID,
	}

	visited := make(map[uint]bool)
	queue := []queueEntry{{userID: centerUserID, depth: 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current.userID] {
			continue
		}
		visited[current.userID] = true

		user, err := s.users.GetUserByID(current.userID)
		if err != nil {
			// Dangling ids degrade to a smaller view instead of failing
			// the whole traversal.
			logger.Warn("skipping unresolvable network node", "user_id", current.userID, "error", err)
			continue
		}

		network.Nodes = append(network.Nodes, NetworkNode{
			ID:           user.ID,
			Username:     user.Username,
			FullName:     user.FullName,
			Role:         user.Role,
			IsFriend:     current.depth == 1,
			IsTechnician: user.IsTechnician(),
			Rating:       user.Rating,
			TotalReviews: user.TotalReviews,
			Distance:     current.depth,
		})

		if current.depth >= maxDepth {
			continue
		}

		friendIDs, err := s.friends.GetFriendIDs(current.userID)
		if err != nil {
			logger.Warn("skipping neighbors of network node", "user_id", current.userID, "error", err)
			continue
		}

		for _, friendID := range friendIDs {
			network.Connections = append(network.Connections, NetworkConnection{
				Source: current.userID,
				Target: friendID,
				Kind:   ConnectionFriendship,
			})
			queue = append(queue, queueEntry{userID: friendID, depth: current.depth + 1})
		}

		if current.depth == 1 {
			queue = s.widenWithVouchedTechnicians(network, current, queue)
		}
	}

	return network, nil
}

// widenWithVouchedTechnicians adds, for a depth-1 friend, the technicians
// that friend hired for a completed service and rated at or above the
// threshold. The technician joins the view at depth 2 through a
// recommendation connection even though no friendship edge exists. The
// center user is never reintroduced through a vouching edge, even when
// they are the technician a friend hired.
func (s *NetworkService) widenWithVouchedTechnicians(network *TrustNetwork, friend queueEntry, queue []queueEntry) []queueEntry {
	completed, err := s.services.GetCompletedByClients([]uint{friend.userID}, "")
	if err != nil {
		logger.Warn("skipping vouched technicians", "user_id", friend.userID, "error", err)
		return queue
	}

	vouched := make(map[uint]bool)
	for _, service := range completed {
		if service.TechnicianID == network.CenterUserID || vouched[service.TechnicianID] {
			continue
		}
		reviews, err := s.reviews.GetReviewsForService(service.ID)
		if err != nil {
			logger.Warn("skipping reviews of completed service", "service_id", service.ID, "error", err)
			continue
		}
		for _, review := range reviews {
			if review.Rating >= s.minRating {
				vouched[service.TechnicianID] = true
				network.Connections = append(network.Connections, NetworkConnection{
					Source: friend.userID,
					Target: service.TechnicianID,
					Kind:   ConnectionRecommendation,
				})
				queue = append(queue, queueEntry{userID: service.TechnicianID, depth: friend.depth + 1})
				break
			}
		}
	}

	return queue
}

// DefaultMaxDepth bounds the traversal when the caller does not override
// it.
const DefaultMaxDepth = 2
