package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// storeFailure converts an unexpected store error into a response. A request
// that outlived its deadline gets a 503; anything else is logged and hidden
// behind a generic 500.
func storeFailure(c *gin.Context, err error, msg string) {
	if errors.Is(err, context.DeadlineExceeded) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
		return
	}
	log.Printf("%s: %v", msg, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
