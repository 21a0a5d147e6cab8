// Package idempotency provides the transaction-identifier helpers shared by
// the HTTP adapter and the audit/event-publishing layer. The ledger engine
// itself treats a transaction_id as an opaque client-supplied string — these
// helpers exist for the one case the spec hands to the adapter: inventing
// an identifier when the caller didn't send one.
package idempotency

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// NewTransactionID mints a fresh client-facing transaction identifier.
// Used by the HTTP adapter when a request omits transaction_id.
func NewTransactionID() string {
	return uuid.NewString()
}

// GenerateKey derives a deterministic key from operation details. It is not
// used as the ledger's idempotency key (that's the caller-supplied
// transaction_id) — it backs the audit event stream, where Kafka consumers
// need a stable dedup key independent of transaction_id retries producing
// distinct Kafka messages for the same logical retry.
func GenerateKey(operationType string, accountID string, amount float64) string {
	data := fmt.Sprintf("%s:%s:%f", operationType, accountID, amount)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
