package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MakeHealthHandler returns the GET /health handler bound to deps.
func MakeHealthHandler(deps HandlerDependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":        "ok",
			"failover_mode": deps.InFailoverMode(),
		})
	}
}
