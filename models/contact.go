package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactStatus string

const (
	ContactStatusPending  ContactStatus = "PENDING"
	ContactStatusReviewed ContactStatus = "REVIEWED"
	ContactStatusResolved ContactStatus = "RESOLVED"
)

var ValidContactStatuses = map[ContactStatus]bool{
	ContactStatusPending:  true,
	ContactStatusReviewed: true,
	ContactStatusResolved: true,
}

// Contact is an inbound message from the contact form, optionally linked to
// a registered user.
type Contact struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string        `gorm:"not null" json:"name"`
	Email     string        `gorm:"not null" json:"email"`
	Message   string        `gorm:"not null" json:"message"`
	UserID    *uuid.UUID    `gorm:"type:uuid;index" json:"user_id,omitempty"`
	User      *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Status    ContactStatus `gorm:"default:PENDING" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
