package handlers

import (
	"net/http"

	"steakz-backend/models"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct{}

// GetMenu serves the fixed catalog the frontend renders and order totals
// are priced from.
func (h *MenuHandler) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"menu": models.MenuCatalog})
}
