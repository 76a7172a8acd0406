package handlers

import (
	"net/http"

	"steakz-backend/models"
	"steakz-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderHandler struct {
	DB *gorm.DB
}

type orderItemRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req struct {
		UserID string             `json:"userId" binding:"required"`
		Items  []orderItemRequest `json:"items" binding:"required,min=1,dive"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	db := h.DB.WithContext(c.Request.Context())

	var user models.User
	if err := db.Where("id = ?", req.UserID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// Every item must resolve against the catalog before anything is
	// written; the client never supplies a price.
	var total float64
	for _, item := range req.Items {
		menuItem, ok := models.MenuItemByID(item.ItemID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item " + item.ItemID + " not found"})
			return
		}
		total += menuItem.Price * float64(item.Quantity)
	}

	order := models.Order{
		UserID: user.ID,
		Total:  models.RoundToCents(total),
		Status: models.OrderStatusPending,
	}

	if err := db.Create(&order).Error; err != nil {
		storeFailure(c, err, "Failed to create order")
		return
	}

	db.Preload("User").First(&order, order.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"order":   order,
	})
}

// GetUserOrders returns one user's orders, newest first. Route is guarded by
// the ownership-or-staff rule.
func (h *OrderHandler) GetUserOrders(c *gin.Context) {
	userID := c.Param("userId")

	db := h.DB.WithContext(c.Request.Context())

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var orders []models.Order
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error; err != nil {
		storeFailure(c, err, "Failed to fetch orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"orders":  orders,
	})
}

// GetAllOrders is the kitchen/staff view.
func (h *OrderHandler) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := h.DB.WithContext(c.Request.Context()).
		Preload("User").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		storeFailure(c, err, "Failed to fetch orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "All orders retrieved successfully",
		"orders":  orders,
	})
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status models.OrderStatus `json:"status"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	// Membership check only. Any status may follow any other; the kitchen
	// owns the lifecycle.
	if !models.ValidOrderStatuses[req.Status] {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":          "Invalid status",
			"valid_statuses": []models.OrderStatus{models.OrderStatusPending, models.OrderStatusPreparing, models.OrderStatusReady, models.OrderStatusCompleted, models.OrderStatusCancelled},
		})
		return
	}

	db := h.DB.WithContext(c.Request.Context())

	var order models.Order
	if err := db.Where("id = ?", c.Param("orderId")).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := db.Model(&order).Update("status", req.Status).Error; err != nil {
		storeFailure(c, err, "Failed to update order status")
		return
	}

	db.Preload("User").First(&order, order.ID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"order":   order,
	})
}
