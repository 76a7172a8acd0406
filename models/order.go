package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// ValidOrderStatuses enumerates every accepted order status. Staff may set
// any member at any time; there is no enforced transition graph.
var ValidOrderStatuses = map[OrderStatus]bool{
	OrderStatusPending:   true,
	OrderStatusPreparing: true,
	OrderStatusReady:     true,
	OrderStatusCompleted: true,
	OrderStatusCancelled: true,
}

// Order stores only the aggregate total; line items are priced from the menu
// catalog at creation time and not persisted.
type Order struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Total     float64        `gorm:"not null" json:"total"`
	Status    OrderStatus    `gorm:"default:PENDING" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
