package models

import (
	"time"
)

type Service struct {
	ID            uint       `gorm:"primaryKey"`
	ClientID      uint       `gorm:"not null;index"`
	Client        User       `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	TechnicianID  uint       `gorm:"not null;index"`
	Technician    User       `gorm:"foreignKey:TechnicianID;constraint:OnDelete:CASCADE"`
	Title         string     `gorm:"type:varchar(200)"`
	Category      string     `gorm:"type:varchar(100);index"`
	Description   string     `gorm:"type:text"`
	Status        string     `gorm:"type:varchar(50);default:'pending';index"`
	ScheduledDate *time.Time
	CompletedDate *time.Time
	Price         *float64
	Address       string    `gorm:"type:varchar(500)"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

// Service status constants
const (
	ServiceStatusPending    = "pending"
	ServiceStatusAccepted   = "accepted"
	ServiceStatusInProgress = "in_progress"
	ServiceStatusCompleted  = "completed"
	ServiceStatusCancelled  = "cancelled"
)

// DefaultServiceTitle is used when a request is created from a chat
// agreement without an explicit title.
const DefaultServiceTitle = "Service agreed via chat"

func (Service) TableName() string {
	return "services"
}
