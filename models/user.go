package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleCustomer = "CUSTOMER"
	RoleCashier  = "CASHIER"
	RoleChef     = "CHEF"
	RoleManager  = "MANAGER"
	RoleAdmin    = "ADMIN"
)

// ValidRoles is the set of assignable user roles.
var ValidRoles = map[string]bool{
	RoleCustomer: true,
	RoleCashier:  true,
	RoleChef:     true,
	RoleManager:  true,
	RoleAdmin:    true,
}

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"default:CUSTOMER" json:"role"` // CUSTOMER, CASHIER, CHEF, MANAGER, ADMIN
	// CreatedByID records which admin created this account (staff accounts
	// only). An admin may only modify or delete another admin they created.
	CreatedByID *uuid.UUID     `gorm:"type:uuid;index" json:"created_by_id,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsStaff reports whether the role belongs to the staff tier.
func IsStaff(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleCashier, RoleChef:
		return true
	}
	return false
}
