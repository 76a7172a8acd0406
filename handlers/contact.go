package handlers

import (
	"net/http"
	"strings"

	"steakz-backend/models"
	"steakz-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactHandler struct {
	DB *gorm.DB
}

// CreateContact accepts a public contact-form submission, optionally linked
// to a registered user.
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required,max=100"`
		Email   string `json:"email" binding:"required,email"`
		Message string `json:"message" binding:"required,max=1000"`
		UserID  string `json:"userId"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	db := h.DB.WithContext(c.Request.Context())

	var userID *uuid.UUID
	if req.UserID != "" {
		parsed, err := uuid.Parse(req.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var user models.User
		if err := db.Where("id = ?", parsed).First(&user).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		userID = &parsed
	}

	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		UserID:  userID,
		Status:  models.ContactStatusPending,
	}

	if err := db.Create(&contact).Error; err != nil {
		storeFailure(c, err, "Failed to create contact message")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Contact message sent successfully",
		"contact": contact,
	})
}

func (h *ContactHandler) ListContacts(c *gin.Context) {
	var contacts []models.Contact
	if err := h.DB.WithContext(c.Request.Context()).
		Preload("User").
		Order("created_at DESC").
		Find(&contacts).Error; err != nil {
		storeFailure(c, err, "Failed to fetch contacts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Contact messages retrieved successfully",
		"contacts": contacts,
	})
}

func (h *ContactHandler) ListContactsByStatus(c *gin.Context) {
	status := models.ContactStatus(strings.ToUpper(c.Param("status")))
	if !models.ValidContactStatuses[status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be PENDING, REVIEWED, or RESOLVED"})
		return
	}

	var contacts []models.Contact
	if err := h.DB.WithContext(c.Request.Context()).
		Preload("User").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&contacts).Error; err != nil {
		storeFailure(c, err, "Failed to fetch contacts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Contact messages with status " + string(status) + " retrieved successfully",
		"contacts": contacts,
	})
}

func (h *ContactHandler) UpdateContactStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	status := models.ContactStatus(strings.ToUpper(req.Status))
	if !models.ValidContactStatuses[status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be PENDING, REVIEWED, or RESOLVED"})
		return
	}

	db := h.DB.WithContext(c.Request.Context())

	var contact models.Contact
	if err := db.Where("id = ?", c.Param("id")).First(&contact).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact message not found"})
		return
	}

	if err := db.Model(&contact).Update("status", status).Error; err != nil {
		storeFailure(c, err, "Failed to update contact status")
		return
	}

	db.Preload("User").First(&contact, contact.ID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Contact status updated successfully",
		"contact": contact,
	})
}
