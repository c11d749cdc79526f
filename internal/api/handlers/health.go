package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GetHealth returns basic health status - always returns 200 if server is running
func GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "matchup-analyzer",
		"time":    time.Now().UTC(),
	})
}
