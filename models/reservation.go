package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCompleted ReservationStatus = "COMPLETED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

var ValidReservationStatuses = map[ReservationStatus]bool{
	ReservationStatusPending:   true,
	ReservationStatusConfirmed: true,
	ReservationStatusCompleted: true,
	ReservationStatusCancelled: true,
}

type Reservation struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	// Date is the combined reservation instant; Time keeps the wall-clock
	// string as submitted for display.
	Date           time.Time         `gorm:"not null;index" json:"date"`
	Time           string            `gorm:"not null" json:"time"`
	PartySize      int               `gorm:"not null" json:"party_size"`
	SpecialRequest string            `json:"special_request,omitempty"`
	Status         ReservationStatus `gorm:"default:PENDING" json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	DeletedAt      gorm.DeletedAt    `gorm:"index" json:"-"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
