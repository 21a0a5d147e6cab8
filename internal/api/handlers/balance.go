package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type balanceRequest struct {
	AccountID string `json:"account_id" binding:"required"`
}

// MakeBalanceHandler returns the POST /balance handler bound to deps. Reads
// never go through the Replicated Writer — they hit the primary's Ledger
// Engine directly.
func MakeBalanceHandler(deps HandlerDependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req balanceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
			return
		}

		success, balance, message := deps.GetBalance(req.AccountID)
		c.JSON(http.StatusOK, gin.H{"success": success, "balance": balance, "message": message})
	}
}
