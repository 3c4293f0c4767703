package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// Review is the single rating a client leaves on a completed service.
// Uniqueness per service is enforced by the ingestion transaction, not by
// a storage constraint.
type Review struct {
	ID           uint      `gorm:"primaryKey"`
	ServiceID    uint      `gorm:"not null;index"`
	Service      Service   `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	ClientID     uint      `gorm:"not null;index"`
	TechnicianID uint      `gorm:"not null;index"`
	Rating       float64   `gorm:"not null"`
	Comment      string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// Rating bounds for a review.
const (
	MinRating = 1.0
	MaxRating = 5.0
)

// NextRating folds one new review rating into a technician's running
// average: (oldAvg*oldCount + rating) / (oldCount+1), rounded to two
// decimal places.
func NextRating(oldAvg float64, oldCount int, rating float64) float64 {
	next := (oldAvg*float64(oldCount) + rating) / float64(oldCount+1)
	return math.Round(next*100) / 100
}

// BeforeSave hook for validation
func (r *Review) BeforeSave(tx *gorm.DB) error {
	if r.Rating < MinRating || r.Rating > MaxRating {
		return gorm.ErrInvalidData
	}
	return nil
}

func (Review) TableName() string {
	return "reviews"
}
