package handlers

import (
	"net/http"
	"time"

	"steakz-backend/models"
	"steakz-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReservationHandler struct {
	DB *gorm.DB
}

func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req struct {
		UserID         string `json:"userId" binding:"required"`
		Date           string `json:"date" binding:"required"`
		Time           string `json:"time" binding:"required"`
		PartySize      int    `json:"partySize" binding:"required,min=1,max=20"`
		SpecialRequest string `json:"specialRequest"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	reservationAt, err := time.Parse("2006-01-02T15:04", req.Date+"T"+req.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date or time format"})
		return
	}

	db := h.DB.WithContext(c.Request.Context())

	var user models.User
	if err := db.Where("id = ?", req.UserID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// One live booking per user per instant. Cancelled and completed
	// reservations do not block a new one.
	var existing models.Reservation
	err = db.Where("user_id = ? AND date = ? AND status IN ?",
		user.ID, reservationAt,
		[]models.ReservationStatus{models.ReservationStatusPending, models.ReservationStatusConfirmed}).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You already have a reservation at this date and time"})
		return
	}

	reservation := models.Reservation{
		UserID:         user.ID,
		Date:           reservationAt,
		Time:           req.Time,
		PartySize:      req.PartySize,
		SpecialRequest: req.SpecialRequest,
		Status:         models.ReservationStatusPending,
	}

	if err := db.Create(&reservation).Error; err != nil {
		storeFailure(c, err, "Failed to create reservation")
		return
	}

	db.Preload("User").First(&reservation, reservation.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Reservation created successfully",
		"reservation": reservation,
	})
}

// ListAllReservations serves the walk-in desk: earliest upcoming first.
func (h *ReservationHandler) ListAllReservations(c *gin.Context) {
	var reservations []models.Reservation
	if err := h.DB.WithContext(c.Request.Context()).
		Preload("User").
		Order("date ASC").
		Find(&reservations).Error; err != nil {
		storeFailure(c, err, "Failed to fetch reservations")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Reservations retrieved successfully",
		"reservations": reservations,
	})
}

// GetUserReservations lists one user's bookings, most recent date first.
// The ordering deliberately differs from the staff listing.
func (h *ReservationHandler) GetUserReservations(c *gin.Context) {
	userID := c.Param("userId")

	db := h.DB.WithContext(c.Request.Context())

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var reservations []models.Reservation
	if err := db.Where("user_id = ?", userID).Order("date DESC").Find(&reservations).Error; err != nil {
		storeFailure(c, err, "Failed to fetch reservations")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "User reservations retrieved successfully",
		"reservations": reservations,
	})
}

func (h *ReservationHandler) UpdateReservationStatus(c *gin.Context) {
	var req struct {
		Status models.ReservationStatus `json:"status"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if !models.ValidReservationStatuses[req.Status] {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":          "Invalid status",
			"valid_statuses": []models.ReservationStatus{models.ReservationStatusPending, models.ReservationStatusConfirmed, models.ReservationStatusCancelled, models.ReservationStatusCompleted},
		})
		return
	}

	db := h.DB.WithContext(c.Request.Context())

	var reservation models.Reservation
	if err := db.Where("id = ?", c.Param("reservationId")).First(&reservation).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return
	}

	if err := db.Model(&reservation).Update("status", req.Status).Error; err != nil {
		storeFailure(c, err, "Failed to update reservation status")
		return
	}

	db.Preload("User").First(&reservation, reservation.ID)

	c.JSON(http.StatusOK, gin.H{
		"message":     "Reservation status updated successfully",
		"reservation": reservation,
	})
}
