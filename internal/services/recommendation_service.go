package services

import (
	"fmt"
	"sort"

	"github.com/servired/backend/pkg/logger"
)

// RecommendationService ranks technicians for a user by combining graph
// proximity with review quality. Recommendations are trust-derived only:
// a user with no friends gets an empty list, never a global ranking.
type RecommendationService struct {
	users    UserStore
	friends  FriendStore
	services ServiceStore
	reviews  ReviewStore

	minRating   float64
	boostFactor float64
}

func NewRecommendationService(users UserStore, friends FriendStore, services ServiceStore, reviews ReviewStore, minRating, boostFactor float64) *RecommendationService {
	return &RecommendationService{
		users:       users,
		friends:     friends,
		services:    services,
		reviews:     reviews,
		minRating:   minRating,
		boostFactor: boostFactor,
	}
}

// evidence accumulates, per technician, the qualifying review ratings and
// the distinct friends who hired them. It lives only for the duration of
// one Recommend call.
type evidence struct {
	ratings []float64
	friends map[uint]bool
}

// Recommend returns technicians hired and positively reviewed by the
// user's friends, ranked by score. The score is the mean qualifying
// rating boosted 10% per distinct vouching friend, so breadth of
// endorsement outweighs one friend's repeated hires. Ties order by
// ascending technician id.
func (s *RecommendationService) Recommend(userID uint, category string) ([]Recommendation, error) {
	friendIDs, err := s.friends.GetFriendIDs(userID)
	if err != nil {
		return nil, err
	}
	if len(friendIDs) == 0 {
		return []Recommendation{}, nil
	}

	completed, err := s.services.GetCompletedByClients(friendIDs, category)
	if err != nil {
		return nil, err
	}

	byTechnician := make(map[uint]*evidence)
	for _, service := range completed {
		reviews, err := s.reviews.GetReviewsForService(service.ID)
		if err != nil {
			logger.Warn("skipping reviews of completed service", "service_id", service.ID, "error", err)
			continue
		}
		for _, review := range reviews {
			if review.Rating < s.minRating {
				continue
			}
			ev := byTechnician[service.TechnicianID]
			if ev == nil {
				ev = &evidence{friends: make(map[uint]bool)}
				byTechnician[service.TechnicianID] = ev
			}
			ev.ratings = append(ev.ratings, review.Rating)
			ev.friends[service.ClientID] = true
		}
	}

	technicianIDs := make([]uint, 0, len(byTechnician))
	for id := range byTechnician {
		technicianIDs = append(technicianIDs, id)
	}
	sort.Slice(technicianIDs, func(i, j int) bool { return technicianIDs[i] < technicianIDs[j] })

	recommendations := make([]Recommendation, 0, len(technicianIDs))
	for _, technicianID := range technicianIDs {
		ev := byTechnician[technicianID]

		technician, err := s.users.GetUserByID(technicianID)
		if err != nil {
			// Data integrity gap; drop this entry rather than failing
			// the whole ranking.
			logger.Warn("skipping recommendation for unresolvable technician", "technician_id", technicianID, "error", err)
			continue
		}

		var sum float64
		for _, rating := range ev.ratings {
			sum += rating
		}
		avgRating := sum / float64(len(ev.ratings))
		numFriends := len(ev.friends)
		score := avgRating * (1 + s.boostFactor*float64(numFriends))

		recommendations = append(recommendations, Recommendation{
			Technician:    NewUserSummary(technician),
			Score:         score,
			Reason:        s.buildReason(ev, avgRating),
			CommonFriends: numFriends,
		})
	}

	// Stable sort on a technician-id-ordered slice keeps tied scores
	// deterministic.
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	return recommendations, nil
}

// buildReason phrases the endorsement: a single vouching friend is named,
// several are counted.
func (s *RecommendationService) buildReason(ev *evidence, avgRating float64) string {
	friendIDs := make([]uint, 0, len(ev.friends))
	for id := range ev.friends {
		friendIDs = append(friendIDs, id)
	}
	sort.Slice(friendIDs, func(i, j int) bool { return friendIDs[i] < friendIDs[j] })

	if len(friendIDs) == 1 {
		name := fmt.Sprintf("#%d", friendIDs[0])
		if friend, err := s.users.GetUserByID(friendIDs[0]); err == nil {
			name = friend.FullName
			if name == "" {
				name = friend.Username
			}
		}
		return fmt.Sprintf("Your friend %s hired them and rated them %.1f stars", name, avgRating)
	}

	return fmt.Sprintf("%d of your friends hired them, average %.1f stars", len(friendIDs), avgRating)
}
