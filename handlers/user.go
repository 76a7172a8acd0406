package handlers

import (
	"errors"
	"net/http"

	"steakz-backend/middleware"
	"steakz-backend/models"
	"steakz-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserHandler carries the admin-only user management surface.
type UserHandler struct {
	DB *gorm.DB
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	var users []models.User
	if err := h.DB.WithContext(c.Request.Context()).Order("created_at DESC").Find(&users).Error; err != nil {
		storeFailure(c, err, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Users retrieved successfully",
		"users":   users,
	})
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req struct {
		Name     string `json:"name" binding:"required,min=2"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"role"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if !models.ValidRoles[role] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	db := h.DB.WithContext(c.Request.Context())

	var existingUser models.User
	if err := db.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User with this email already exists"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    string(hashedPassword),
		Role:        role,
		CreatedByID: &caller.ID,
	}

	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User with this email already exists"})
			return
		}
		storeFailure(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req struct {
		Role string `json:"role" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if !models.ValidRoles[req.Role] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	db := h.DB.WithContext(c.Request.Context())

	var target models.User
	if err := db.Where("id = ?", targetID).First(&target).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if target.ID == caller.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot change your own role"})
		return
	}

	// An admin record may only be touched by the admin who created it.
	if target.Role == models.RoleAdmin && (target.CreatedByID == nil || *target.CreatedByID != caller.ID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot modify another admin's role"})
		return
	}

	if err := db.Model(&target).Update("role", req.Role).Error; err != nil {
		storeFailure(c, err, "Failed to update user role")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User role updated successfully",
		"user":    target,
	})
}

// DeleteUser removes an account along with the rows it owns; contact and
// feedback submissions survive unlinked.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	db := h.DB.WithContext(c.Request.Context())

	var target models.User
	if err := db.Where("id = ?", targetID).First(&target).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if target.ID == caller.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete your own account"})
		return
	}

	if target.Role == models.RoleAdmin && (target.CreatedByID == nil || *target.CreatedByID != caller.ID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot delete another admin account"})
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", target.ID).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", target.ID).Delete(&models.Reservation{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Contact{}).Where("user_id = ?", target.ID).Update("user_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Feedback{}).Where("user_id = ?", target.ID).Update("user_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&target).Error
	})
	if err != nil {
		storeFailure(c, err, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User " + target.Name + " and all associated data deleted successfully",
	})
}
