package handlers

import (
	"net/http"

	"steakz-backend/models"
	"steakz-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackHandler struct {
	DB *gorm.DB
}

// CreateFeedback accepts a public review. Logged-in callers may pass their
// id in the X-User-Id header to link the review to their account; an
// unresolvable header is ignored rather than rejected.
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required,max=100"`
		Email   string `json:"email" binding:"required,email,max=255"`
		Message string `json:"message" binding:"required,min=10,max=1000"`
		Rating  *int   `json:"rating" binding:"omitempty,min=1,max=5"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	rating := 5
	if req.Rating != nil {
		rating = *req.Rating
	}

	db := h.DB.WithContext(c.Request.Context())

	var userID *uuid.UUID
	if header := c.GetHeader("X-User-Id"); header != "" {
		if parsed, err := uuid.Parse(header); err == nil {
			var user models.User
			if err := db.Where("id = ?", parsed).First(&user).Error; err == nil {
				userID = &parsed
			}
		}
	}

	feedback := models.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Rating:  rating,
		UserID:  userID,
		Status:  models.FeedbackStatusPending,
	}

	if err := db.Create(&feedback).Error; err != nil {
		storeFailure(c, err, "Failed to submit feedback")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Feedback submitted successfully",
		"feedback": feedback,
	})
}

// ListApprovedFeedbacks is the public review wall: the 20 most recent
// approved entries, trimmed of moderation fields.
func (h *FeedbackHandler) ListApprovedFeedbacks(c *gin.Context) {
	var feedbacks []models.Feedback
	if err := h.DB.WithContext(c.Request.Context()).
		Where("status = ?", models.FeedbackStatusApproved).
		Order("created_at DESC").
		Limit(20).
		Find(&feedbacks).Error; err != nil {
		storeFailure(c, err, "Failed to fetch feedbacks")
		return
	}

	type publicFeedback struct {
		ID        uuid.UUID `json:"id"`
		Name      string    `json:"name"`
		Message   string    `json:"message"`
		Rating    int       `json:"rating"`
		CreatedAt string    `json:"created_at"`
	}

	result := make([]publicFeedback, 0, len(feedbacks))
	for _, f := range feedbacks {
		result = append(result, publicFeedback{
			ID:        f.ID,
			Name:      f.Name,
			Message:   f.Message,
			Rating:    f.Rating,
			CreatedAt: f.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	c.JSON(http.StatusOK, gin.H{"feedbacks": result})
}

func (h *FeedbackHandler) ListAllFeedbacks(c *gin.Context) {
	var feedbacks []models.Feedback
	if err := h.DB.WithContext(c.Request.Context()).
		Preload("User").
		Order("created_at DESC").
		Find(&feedbacks).Error; err != nil {
		storeFailure(c, err, "Failed to fetch feedbacks")
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedbacks": feedbacks})
}

func (h *FeedbackHandler) UpdateFeedbackStatus(c *gin.Context) {
	var req struct {
		Status models.FeedbackStatus `json:"status"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if !models.ValidFeedbackStatuses[req.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be PENDING, APPROVED, or REJECTED"})
		return
	}

	db := h.DB.WithContext(c.Request.Context())

	var feedback models.Feedback
	if err := db.Where("id = ?", c.Param("id")).First(&feedback).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
		return
	}

	if err := db.Model(&feedback).Update("status", req.Status).Error; err != nil {
		storeFailure(c, err, "Failed to update feedback status")
		return
	}

	db.Preload("User").First(&feedback, feedback.ID)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Feedback status updated successfully",
		"feedback": feedback,
	})
}
