package repositories

import (
	"github.com/servired/backend/internal/models"
	"github.com/servired/backend/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// GetReviewsForService retrieves the reviews left on a service
func (r *ReviewRepository) GetReviewsForService(serviceID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("service_id = ?", serviceID).Find(&reviews).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get reviews")
	}
	return reviews, nil
}

// CreateForService inserts a review for a completed service owned by the
// client and folds the rating into the technician's running average. The
// whole operation is one transaction: the service row is locked so
// concurrent submissions for the same service serialize on the existence
// check, and the technician row is locked so concurrent reviews for
// different services cannot lose a rating update.
func (r *ReviewRepository) CreateForService(review *models.Review) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var service models.Service
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND client_id = ? AND status = ?",
				review.ServiceID, review.ClientID, models.ServiceStatusCompleted).
			First(&service).Error
		if err == gorm.ErrRecordNotFound {
			return errors.New(errors.ErrCodeValidation, "service missing, not owned by client, or not completed")
		}
		if err != nil {
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to get service")
		}

		var count int64
		if err := tx.Model(&models.Review{}).Where("service_id = ?", review.ServiceID).Count(&count).Error; err != nil {
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to check existing review")
		}
		if count > 0 {
			return errors.New(errors.ErrCodeAlreadyExists, "service already reviewed")
		}

		review.TechnicianID = service.TechnicianID
		if err := tx.Create(review).Error; err != nil {
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to create review")
		}

		var technician models.User
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&technician, service.TechnicianID).Error
		if err != nil {
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to get technician")
		}

		newRating := models.NextRating(technician.Rating, technician.TotalReviews, review.Rating)
		err = tx.Model(&models.User{}).
			Where("id = ?", technician.ID).
			Updates(map[string]interface{}{
				"rating":        newRating,
				"total_reviews": technician.TotalReviews + 1,
			}).Error
		if err != nil {
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to update technician rating")
		}

		return nil
	})

	if err != nil {
		if _, ok := err.(*errors.AppError); ok {
			return err
		}
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to record review")
	}
	return nil
}
