package handlers

import (
	"net/http"
	"time"

	"ftwallet/internal/domain/models"
	"ftwallet/internal/infrastructure/messaging"
	"ftwallet/internal/metrics"
	"ftwallet/internal/pkg/idempotency"
	"ftwallet/internal/pkg/logging"

	"github.com/gin-gonic/gin"
)

// MakeWithdrawHandler returns the POST /withdraw handler bound to deps.
func MakeWithdrawHandler(deps HandlerDependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req mutationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
			return
		}
		if req.TransactionID == "" {
			req.TransactionID = idempotency.NewTransactionID()
		}

		success, message, newBalance, err := deps.Withdraw(req.AccountID, req.Amount, req.TransactionID)
		if err != nil {
			logging.Error("withdraw failed", err, map[string]interface{}{"transaction_id": req.TransactionID})
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal error"})
			return
		}

		status := "success"
		if !success {
			status = "rejected"
		}
		metrics.RecordBankingOperation("withdraw", status, deps.Replica(), newBalance)

		deps.RecordAudit(&models.TransactionRecord{
			TransactionID: req.TransactionID,
			Status:        models.StatusCommitted,
			Operation:     models.OperationWithdraw,
			AccountID:     req.AccountID,
			Amount:        req.Amount,
			Success:       success,
			Message:       message,
			NewBalance:    newBalance,
		})

		if success {
			publishErr := deps.EventPublisher().PublishWithdrawalCompleted(messaging.WithdrawalCompletedEvent{
				TransactionID: req.TransactionID,
				AccountID:     req.AccountID,
				Amount:        req.Amount,
				BalanceAfter:  newBalance,
				Replica:       deps.Replica(),
				Timestamp:     time.Now(),
			})
			if publishErr != nil {
				logging.Error("failed to publish withdrawal completed event", publishErr, map[string]interface{}{"transaction_id": req.TransactionID})
			}
		} else {
			publishErr := deps.EventPublisher().PublishTransactionRejected(messaging.TransactionRejectedEvent{
				TransactionID: req.TransactionID,
				Operation:     "WITHDRAW",
				AccountID:     req.AccountID,
				Amount:        req.Amount,
				Reason:        message,
				Replica:       deps.Replica(),
				Timestamp:     time.Now(),
			})
			if publishErr != nil {
				logging.Error("failed to publish rejected withdraw event", publishErr, map[string]interface{}{"transaction_id": req.TransactionID})
			}
		}

		c.JSON(httpStatusFor(success, message), gin.H{"success": success, "message": message, "new_balance": newBalance})
	}
}
