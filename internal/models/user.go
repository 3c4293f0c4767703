package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID            uint      `gorm:"primaryKey"`
	Email         string    `gorm:"uniqueIndex;type:varchar(255);not null"`
	Username      string    `gorm:"uniqueIndex;type:varchar(100);not null"`
	FullName      string    `gorm:"type:varchar(255)"`
	Role          string    `gorm:"type:varchar(50);default:'client';index"`
	Location      string    `gorm:"type:varchar(255)"`
	Bio           string    `gorm:"type:text"`
	Specialties   string    `gorm:"type:text"`
	Rating        float64   `gorm:"default:0"`
	TotalReviews  int       `gorm:"default:0;not null"`
	JobsCompleted int       `gorm:"default:0;not null"`
	JobsActive    int       `gorm:"default:0;not null"`
	PublicID      string    `gorm:"uniqueIndex;type:varchar(8)"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

// User role constants
const (
	RoleClient     = "client"
	RoleTechnician = "technician"
)

// IsTechnician reports whether the user offers services.
func (u *User) IsTechnician() bool {
	return u.Role == RoleTechnician
}

// BeforeSave hook for validation
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Role != RoleClient && u.Role != RoleTechnician {
		return gorm.ErrInvalidData
	}
	if u.Rating < 0 || u.Rating > 5 {
		return gorm.ErrInvalidData
	}
	if u.TotalReviews < 0 {
		return gorm.ErrInvalidData
	}
	return nil
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}
