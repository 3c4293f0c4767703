package services

import (
	"github.com/servired/backend/internal/models"
	"github.com/servired/backend/internal/security"
	"github.com/servired/backend/pkg/errors"
)

// ReviewService ingests reviews on completed services and keeps the
// technician's running rating average in step with them.
type ReviewService struct {
	reviews ReviewStore
}

func NewReviewService(reviews ReviewStore) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// RecordReview creates the single review for a completed service owned by
// the client. The store applies the insert and the technician rating
// update in one transaction, so no reader can observe one without the
// other.
func (s *ReviewService) RecordReview(serviceID, clientID uint, rating float64, comment string) (*models.Review, error) {
	if rating < models.MinRating || rating > models.MaxRating {
		return nil, errors.New(errors.ErrCodeValidation, "rating must be between 1 and 5")
	}

	review := &models.Review{
		ServiceID: serviceID,
		ClientID:  clientID,
		Rating:    rating,
		Comment:   security.SanitizeString(security.SanitizeHTML(comment)),
	}

	if err := s.reviews.CreateForService(review); err != nil {
		return nil, err
	}

	return review, nil
}
