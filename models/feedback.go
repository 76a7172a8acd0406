package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackStatus string

const (
	FeedbackStatusPending  FeedbackStatus = "PENDING"
	FeedbackStatusApproved FeedbackStatus = "APPROVED"
	FeedbackStatusRejected FeedbackStatus = "REJECTED"
)

var ValidFeedbackStatuses = map[FeedbackStatus]bool{
	FeedbackStatusPending:  true,
	FeedbackStatusApproved: true,
	FeedbackStatusRejected: true,
}

// Feedback is a public review submission. Only APPROVED entries are visible
// on the public listing.
type Feedback struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"not null" json:"email"`
	Message   string         `gorm:"not null" json:"message"`
	Rating    int            `gorm:"default:5" json:"rating"`
	UserID    *uuid.UUID     `gorm:"type:uuid;index" json:"user_id,omitempty"`
	User      *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Status    FeedbackStatus `gorm:"default:PENDING" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
