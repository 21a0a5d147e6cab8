// Package messaging is the optional audit-event stream: every committed
// ledger mutation, success or rejection, is published here for downstream
// analytics. It never sits on the ledger's critical path — publish
// failures are logged and swallowed, never rolled back into the WAL.
package messaging

import "time"

// DepositCompletedEvent records a successful deposit.
type DepositCompletedEvent struct {
	TransactionID  string    `json:"transaction_id"`
	IdempotencyKey string    `json:"idempotency_key"`
	AccountID      string    `json:"account_id"`
	Amount         float64   `json:"amount"`
	BalanceAfter   float64   `json:"balance_after"`
	Replica        string    `json:"replica"`
	Timestamp      time.Time `json:"timestamp"`
}

// WithdrawalCompletedEvent records a successful withdrawal.
type WithdrawalCompletedEvent struct {
	TransactionID  string    `json:"transaction_id"`
	IdempotencyKey string    `json:"idempotency_key"`
	AccountID      string    `json:"account_id"`
	Amount         float64   `json:"amount"`
	BalanceAfter   float64   `json:"balance_after"`
	Replica        string    `json:"replica"`
	Timestamp      time.Time `json:"timestamp"`
}

// TransactionRejectedEvent records a validation or insufficient-funds
// rejection — still COMMITTED in the WAL (I4), so still worth auditing.
type TransactionRejectedEvent struct {
	TransactionID  string    `json:"transaction_id"`
	IdempotencyKey string    `json:"idempotency_key"`
	Operation      string    `json:"operation"`
	AccountID      string    `json:"account_id"`
	Amount         float64   `json:"amount"`
	Reason         string    `json:"reason"`
	Replica        string    `json:"replica"`
	Timestamp      time.Time `json:"timestamp"`
}
